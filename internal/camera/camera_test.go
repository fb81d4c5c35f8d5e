package camera

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	c := New()

	require.NoError(t, c.SetPreset("lft"))
	assert.Equal(t, mgl64.Vec3{-8, -8, 8}, c.Position)

	require.NoError(t, c.SetPreset("rbb"))
	assert.Equal(t, mgl64.Vec3{8, 8, -8}, c.Position)

	for _, code := range Presets() {
		require.NoError(t, c.SetPreset(code))
		for _, v := range c.Position {
			assert.Equal(t, 8.0, math.Abs(v), code)
		}
	}
}

func TestUnknownPresetKeepsPosition(t *testing.T) {
	c := New()
	before := c.Position
	err := c.SetPreset("top")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPreset))
	assert.Equal(t, before, c.Position)
}

func TestSetFOVRejectsOutOfRange(t *testing.T) {
	c := New()
	for _, v := range []float64{200, 180, 0, -10, math.NaN()} {
		err := c.SetFOV(v)
		assert.ErrorIs(t, err, ErrInvalidFOV)
		assert.Equal(t, 60.0, c.FOV)
	}
	require.NoError(t, c.SetFOV(45))
	assert.Equal(t, 45.0, c.FOV)
}

func TestSetDistance(t *testing.T) {
	c := New()
	assert.ErrorIs(t, c.SetDistance(0), ErrInvalidDistance)
	assert.ErrorIs(t, c.SetDistance(-3), ErrInvalidDistance)
	assert.ErrorIs(t, c.SetDistance(math.Inf(1)), ErrInvalidDistance)
	assert.Equal(t, DefaultDistance, c.Distance)

	require.NoError(t, c.SetDistance(12))
	assert.InDelta(t, 12, c.Position[0], 1e-12)
	assert.InDelta(t, 0, c.Position[1], 1e-12)
	assert.Equal(t, 12.0, c.Position[2])
	assert.InDelta(t, 120, c.Far(), 1e-12)
}

func TestOrbit(t *testing.T) {
	c := New()
	c.Orbit(50)

	assert.InDelta(t, 1.0, c.RotationAngle, 1e-12)
	assert.InDelta(t, 0.5, c.HeightOffset, 1e-12)
	assert.InDelta(t, 8*math.Cos(1), c.Position[0], 1e-12)
	assert.InDelta(t, 8*math.Sin(1), c.Position[1], 1e-12)
	assert.InDelta(t, 8+2*math.Sin(0.5), c.Position[2], 1e-12)
}

func TestDragSuspendsOrbit(t *testing.T) {
	c := New()
	c.BeginDrag(100, 100)
	assert.Equal(t, ControlManual, c.Control)

	c.Orbit(10)
	assert.Zero(t, c.RotationAngle)
	assert.Zero(t, c.HeightOffset)

	c.DragTo(150, 120)
	assert.InDelta(t, 0.5, c.RotationAngle, 1e-12)
	assert.InDelta(t, 10, c.Position[2], 1e-12)
	assert.InDelta(t, 8*math.Cos(0.5), c.Position[0], 1e-12)

	// Height clamps to [1, 20].
	c.DragTo(150, 1000)
	assert.Equal(t, 20.0, c.Position[2])
	c.DragTo(150, -5000)
	assert.Equal(t, 1.0, c.Position[2])

	c.EndDrag()
	assert.Equal(t, ControlAuto, c.Control)
	c.DragTo(400, 400)
	assert.InDelta(t, 0.5, c.RotationAngle, 1e-12)

	c.Orbit(10)
	assert.InDelta(t, 0.7, c.RotationAngle, 1e-12)
}

func TestProjectionFarPlaneScalesWithDistance(t *testing.T) {
	c := New()
	got := c.ProjectionMatrix(4.0 / 3.0)
	want := mgl64.Perspective(math.Pi/3, 4.0/3.0, 0.001, 80)
	assert.True(t, got.ApproxEqualThreshold(want, 1e-9))
}

func TestViewMatrixMapsTargetInFront(t *testing.T) {
	c := New()
	v := c.ViewMatrix()
	p := mgl64.TransformCoordinate(mgl64.Vec3{}, v)
	// Camera looks down -Z in view space.
	assert.InDelta(t, 0, p[0], 1e-9)
	assert.InDelta(t, 0, p[1], 1e-9)
	assert.InDelta(t, -c.Position.Len(), p[2], 1e-9)
}

func TestReset(t *testing.T) {
	c := New()
	require.NoError(t, c.SetFOV(30))
	require.NoError(t, c.SetDistance(3))
	c.Orbit(5)
	c.BeginDrag(0, 0)

	c.Reset()
	assert.Equal(t, New(), c)
}
