package raster

import "github.com/go-gl/mathgl/mgl64"

// vertex is a clip-space vertex with its interpolated attributes.
type vertex struct {
	clip  mgl64.Vec4
	uv    [2]float64
	color mgl64.Vec4
}

func lerpVertex(a, b vertex, t float64) vertex {
	return vertex{
		clip: a.clip.Add(b.clip.Sub(a.clip).Mul(t)),
		uv: [2]float64{
			a.uv[0] + (b.uv[0]-a.uv[0])*t,
			a.uv[1] + (b.uv[1]-a.uv[1])*t,
		},
		color: a.color.Add(b.color.Sub(a.color).Mul(t)),
	}
}

// Signed distances to the near (z >= -w) and far (z <= w) planes.
func nearDist(v vertex) float64 { return v.clip.W() + v.clip.Z() }
func farDist(v vertex) float64  { return v.clip.W() - v.clip.Z() }

// clipPolygon keeps the part of poly inside the near and far planes.
// Sutherland–Hodgman, one plane at a time. buf is reused to avoid allocation.
func clipPolygon(poly, buf []vertex) []vertex {
	for _, dist := range [...]func(vertex) float64{nearDist, farDist} {
		if len(poly) == 0 {
			return poly
		}
		out := buf[:0]
		prev := poly[len(poly)-1]
		dPrev := dist(prev)
		for _, cur := range poly {
			dCur := dist(cur)
			if dCur >= 0 {
				if dPrev < 0 {
					out = append(out, lerpVertex(prev, cur, dPrev/(dPrev-dCur)))
				}
				out = append(out, cur)
			} else if dPrev >= 0 {
				out = append(out, lerpVertex(prev, cur, dPrev/(dPrev-dCur)))
			}
			prev, dPrev = cur, dCur
		}
		poly, buf = out, poly[:0]
	}
	return poly
}
