// Package geometry holds the static meshes of the robot scene.
// All meshes use counter-clockwise winding for outward faces.
package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is an indexed triangle list. Colors and UVs are per vertex.
type Mesh struct {
	Verts   []mgl64.Vec3
	Colors  []mgl64.Vec4 // RGBA in [0, 1]
	UVs     [][2]float64
	Indices []uint16
}

// Triangles is the number of triangles in the index list.
func (m *Mesh) Triangles() int { return len(m.Indices) / 3 }

// Validate checks that every index refers to an existing vertex and that the
// per-vertex attributes line up.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("geometry: %d indices is not a triangle list", len(m.Indices))
	}
	n := len(m.Verts)
	if len(m.Colors) != n || len(m.UVs) != n {
		return fmt.Errorf("geometry: %d verts, %d colors, %d uvs", n, len(m.Colors), len(m.UVs))
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("geometry: index %d = %d out of range (%d verts)", i, idx, n)
		}
	}
	return nil
}

// WithUVs returns a shallow copy of m using a different texture layout.
func (m *Mesh) WithUVs(uvs [][2]float64) *Mesh {
	if len(uvs) != len(m.Verts) {
		panic(fmt.Sprintf("geometry: %d uvs for %d verts", len(uvs), len(m.Verts)))
	}
	c := *m
	c.UVs = uvs
	return &c
}

// quads expands faces of four corners into an indexed mesh, one colour per face.
func quads(corners [][4]mgl64.Vec3, uvs [][4][2]float64, colors []mgl64.Vec4) *Mesh {
	m := &Mesh{}
	for f, face := range corners {
		base := uint16(len(m.Verts))
		for v := 0; v < 4; v++ {
			m.Verts = append(m.Verts, face[v])
			m.UVs = append(m.UVs, uvs[f][v])
			m.Colors = append(m.Colors, colors[f])
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}
