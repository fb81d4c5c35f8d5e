package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshesAreValid(t *testing.T) {
	for name, m := range map[string]*Mesh{
		"cube":   Cube(),
		"head":   Head(),
		"floor":  Floor(),
		"skybox": Skybox(),
	} {
		require.NoError(t, m.Validate(), name)
	}
}

func TestCubeLayout(t *testing.T) {
	c := Cube()
	assert.Len(t, c.Verts, 24)
	assert.Len(t, c.Indices, 36)
	assert.Equal(t, 12, c.Triangles())
	assert.Equal(t, mgl64.Vec4{1, 0, 0, 1}, c.Colors[0])
	assert.Equal(t, mgl64.Vec4{0, 1, 1, 1}, c.Colors[23])
	for _, v := range c.Verts {
		for _, x := range v {
			assert.Equal(t, 0.5, abs(x))
		}
	}
}

// Each triangle's normal must point away from the cube centre.
func TestCubeWindingIsOutward(t *testing.T) {
	c := Cube()
	for i := 0; i < len(c.Indices); i += 3 {
		a, b, d := c.Verts[c.Indices[i]], c.Verts[c.Indices[i+1]], c.Verts[c.Indices[i+2]]
		n := b.Sub(a).Cross(d.Sub(a))
		centroid := a.Add(b).Add(d).Mul(1.0 / 3)
		assert.Positive(t, n.Dot(centroid), "triangle %d", i/3)
	}
}

func TestFloorFacesUp(t *testing.T) {
	f := Floor()
	a, b, c := f.Verts[0], f.Verts[1], f.Verts[2]
	n := b.Sub(a).Cross(c.Sub(a))
	assert.Positive(t, n.Z())
	assert.Equal(t, [2]float64{5, 5}, f.UVs[2])
}

func TestHeadUVsStayInAtlas(t *testing.T) {
	uvs := HeadUVs()
	require.Len(t, uvs, 24)
	for _, uv := range uvs {
		assert.GreaterOrEqual(t, uv[0], 0.0)
		assert.LessOrEqual(t, uv[0], 1.0)
		assert.GreaterOrEqual(t, uv[1], 0.0)
		assert.LessOrEqual(t, uv[1], 1.0)
	}
	assert.Equal(t, [2]float64{0.25, 0.33}, uvs[0])
}

func TestValidateCatchesBadIndex(t *testing.T) {
	m := Floor()
	m.Indices = append(m.Indices, 0, 1, 9)
	assert.Error(t, m.Validate())
}

func TestWithUVsPanicsOnMismatch(t *testing.T) {
	assert.Panics(t, func() { Cube().WithUVs(make([][2]float64, 3)) })
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
