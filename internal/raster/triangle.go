package raster

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// screenVertex is a vertex after the perspective divide and viewport transform.
type screenVertex struct {
	x, y, z float64 // pixels, NDC depth
	invW    float64
	uw, vw  float64    // uv / w
	cw      mgl64.Vec4 // color / w
}

func toScreen(v vertex, width, height int) screenVertex {
	invW := 1 / v.clip.W()
	return screenVertex{
		x:    (v.clip.X()*invW + 1) * 0.5 * float64(width),
		y:    (1 - v.clip.Y()*invW) * 0.5 * float64(height),
		z:    v.clip.Z() * invW,
		invW: invW,
		uw:   v.uv[0] * invW,
		vw:   v.uv[1] * invW,
		cw:   v.color.Mul(invW),
	}
}

// surface is what a triangle is painted with.
type surface struct {
	tex        *image.NRGBA // nil paints vertex colours
	repeat     bool
	shade      float64 // 0 leaves colours unlit
	depthWrite bool
}

// rasterizeTriangle fills one screen-space triangle with perspective-correct
// attributes and a LEQUAL depth test. Counter-clockwise triangles (as seen
// in NDC, y up) are front-facing; the caller culls the rest.
//
// This is the HOT PATH: no allocation in the pixel loop.
func rasterizeTriangle(fb *FrameBuffer, a, b, c screenVertex, s *surface, lc *LightConfig) int {
	minX := int(math.Floor(math.Min(math.Min(a.x, b.x), c.x)))
	maxX := int(math.Ceil(math.Max(math.Max(a.x, b.x), c.x)))
	minY := int(math.Floor(math.Min(math.Min(a.y, b.y), c.y)))
	maxY := int(math.Ceil(math.Max(math.Max(a.y, b.y), c.y)))

	if minX < 0 {
		minX = 0
	}
	if maxX > fb.Width-1 {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY > fb.Height-1 {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return 0
	}

	// Edge functions in screen space (y down).
	area := (b.x-a.x)*(c.y-a.y) - (c.x-a.x)*(b.y-a.y)
	if math.Abs(area) < 1e-12 {
		return 0
	}
	invArea := 1 / area

	written := 0
	for py := minY; py <= maxY; py++ {
		sy := float64(py) + 0.5
		rowOff := py * fb.Width
		for px := minX; px <= maxX; px++ {
			sx := float64(px) + 0.5

			w0 := ((b.x-sx)*(c.y-sy) - (c.x-sx)*(b.y-sy)) * invArea
			w1 := ((c.x-sx)*(a.y-sy) - (a.x-sx)*(c.y-sy)) * invArea
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*a.z + w1*b.z + w2*c.z
			zIdx := rowOff + px
			if z > fb.ZBuf[zIdx] {
				continue
			}

			// Perspective-correct weights.
			iw := w0*a.invW + w1*b.invW + w2*c.invW
			if iw <= 0 {
				continue
			}
			k := 1 / iw

			var cr, cg, cb, ca uint8
			if s.tex != nil {
				u := (w0*a.uw + w1*b.uw + w2*c.uw) * k
				v := (w0*a.vw + w1*b.vw + w2*c.vw) * k
				cr, cg, cb, ca = SampleTexture(s.tex, u, v, s.repeat)
			} else {
				col := a.cw.Mul(w0).Add(b.cw.Mul(w1)).Add(c.cw.Mul(w2)).Mul(k)
				cr, cg, cb, ca = clamp255(col[0]*255), clamp255(col[1]*255), clamp255(col[2]*255), clamp255(col[3]*255)
			}

			// Skip transparent texels
			if ca < 8 {
				continue
			}
			if s.depthWrite {
				fb.ZBuf[zIdx] = z
			}
			if s.shade > 0 {
				cr, cg, cb = lc.shadeColor(cr, cg, cb, s.shade)
			}

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = cr
			fb.Color[pxIdx+1] = cg
			fb.Color[pxIdx+2] = cb
			fb.Color[pxIdx+3] = 255
			written++
		}
	}
	return written
}

// frontFacing reports counter-clockwise winding in NDC. Screen y points
// down, which flips the sign.
func frontFacing(a, b, c screenVertex) bool {
	return (b.x-a.x)*(c.y-a.y)-(c.x-a.x)*(b.y-a.y) < 0
}
