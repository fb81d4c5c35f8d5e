package geometry

import "github.com/go-gl/mathgl/mgl64"

const (
	// FloorHalfSize is half the edge of the square floor at z = 0.
	FloorHalfSize = 30.0
	// FloorRepeat is how often the floor texture tiles along each axis.
	FloorRepeat = 5.0
	// SkyboxHalfSize is half the edge of the sky cube.
	SkyboxHalfSize = 1000.0
)

// Face order of every cube: front (+Z), back (-Z), top (+Y), bottom (-Y), right (+X), left (-X).
var cubeCorners = [][4]mgl64.Vec3{
	{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},
	{{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1}},
	{{-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}, {1, 1, -1}},
	{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}},
	{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}},
	{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}},
}

// FaceColors are the vertex colours of the six cube faces.
var FaceColors = []mgl64.Vec4{
	{1, 0, 0, 1}, // red
	{0, 1, 0, 1}, // green
	{0, 0, 1, 1}, // blue
	{1, 1, 0, 1}, // yellow
	{1, 0, 1, 1}, // magenta
	{0, 1, 1, 1}, // cyan
}

var cubeUVs = [][4][2]float64{
	{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	{{1, 0}, {1, 1}, {0, 1}, {0, 0}},
	{{0, 1}, {0, 0}, {1, 0}, {1, 1}},
	{{1, 1}, {0, 1}, {0, 0}, {1, 0}},
	{{1, 0}, {1, 1}, {0, 1}, {0, 0}},
	{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
}

// headUVs lay the head texture out as a cross: face in the middle,
// back of the head right of it, ears on either side.
var headUVs = [][4][2]float64{
	{{0.25, 0.33}, {0.5, 0.33}, {0.5, 0.66}, {0.25, 0.66}},
	{{0.5, 0.33}, {0.75, 0.33}, {0.75, 0.66}, {0.5, 0.66}},
	{{0.25, 0}, {0.5, 0}, {0.5, 0.33}, {0.25, 0.33}},
	{{0.25, 0.66}, {0.5, 0.66}, {0.5, 1}, {0.25, 1}},
	{{0, 0.33}, {0.25, 0.33}, {0.25, 0.66}, {0, 0.66}},
	{{0.75, 0.33}, {1, 0.33}, {1, 0.66}, {0.75, 0.66}},
}

func scaledCorners(s float64) [][4]mgl64.Vec3 {
	out := make([][4]mgl64.Vec3, len(cubeCorners))
	for f, face := range cubeCorners {
		for v, p := range face {
			out[f][v] = p.Mul(s)
		}
	}
	return out
}

// Cube returns the unit cube centred at the origin: 24 vertices, 36 indices.
func Cube() *Mesh {
	return quads(scaledCorners(0.5), cubeUVs, FaceColors)
}

// HeadUVs returns the per-vertex head texture layout matching Cube's vertex order.
func HeadUVs() [][2]float64 {
	out := make([][2]float64, 0, 24)
	for _, face := range headUVs {
		out = append(out, face[:]...)
	}
	return out
}

// Head is the unit cube with the head texture layout.
func Head() *Mesh {
	return Cube().WithUVs(HeadUVs())
}

// Floor is a square in the XY plane at z = 0 facing +Z, its texture tiled.
func Floor() *Mesh {
	h, r := FloorHalfSize, FloorRepeat
	grey := mgl64.Vec4{0.5, 0.5, 0.5, 1}
	return &Mesh{
		Verts:   []mgl64.Vec3{{-h, -h, 0}, {h, -h, 0}, {h, h, 0}, {-h, h, 0}},
		Colors:  []mgl64.Vec4{grey, grey, grey, grey},
		UVs:     [][2]float64{{0, 0}, {r, 0}, {r, r}, {0, r}},
		Indices: []uint16{0, 1, 2, 0, 2, 3},
	}
}

// Skybox is a large cube around the scene. It keeps the outward winding of
// Cube, so a camera inside sees only back faces.
func Skybox() *Mesh {
	sky := mgl64.Vec4{0.4, 0.6, 0.9, 1}
	colors := make([]mgl64.Vec4, 6)
	uvs := make([][4][2]float64, 6)
	for i := range colors {
		colors[i] = sky
		uvs[i] = [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	}
	return quads(scaledCorners(SkyboxHalfSize), uvs, colors)
}
