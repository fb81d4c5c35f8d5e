package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ControlMode says who moves the camera: the orbit animation or a human drag.
type ControlMode int

const (
	ControlAuto ControlMode = iota
	ControlManual
)

func (m ControlMode) String() string {
	if m == ControlManual {
		return "manual"
	}
	return "auto"
}

const (
	DefaultFOV      = 60.0
	DefaultDistance = 8.0
	Near            = 0.001

	orbitSpeed   = 0.02 // rad per second
	heightSpeed  = 0.01 // rad per second
	heightSwing  = 2.0
	dragRotation = 0.01 // rad per pixel
	dragHeight   = 0.1  // units per pixel
	minHeight    = 1.0
	maxHeight    = 20.0
	farFactor    = 10.0
)

var (
	ErrInvalidFOV      = errors.New("camera: field of view must be inside (0, 180)")
	ErrInvalidDistance = errors.New("camera: distance must be positive")
	ErrUnknownPreset   = errors.New("camera: unknown preset")
)

// Camera is an orbit camera looking at the origin with +Z up.
type Camera struct {
	Position      mgl64.Vec3
	Target        mgl64.Vec3
	Up            mgl64.Vec3
	FOV           float64 // degrees
	Distance      float64
	RotationAngle float64
	HeightOffset  float64
	Control       ControlMode

	dragX, dragY float64
}

// New returns the camera in its default placement.
func New() Camera {
	c := Camera{}
	c.Reset()
	return c
}

// Reset restores position, angles, field of view and distance.
func (c *Camera) Reset() {
	c.Position = mgl64.Vec3{DefaultDistance, DefaultDistance, DefaultDistance}
	c.Target = mgl64.Vec3{}
	c.Up = mgl64.Vec3{0, 0, 1}
	c.FOV = DefaultFOV
	c.Distance = DefaultDistance
	c.RotationAngle = 0
	c.HeightOffset = 0
	c.Control = ControlAuto
}

// Preset codes are Left/Right (X), Front/Back (Y), Top/Bottom (Z).
var presetSigns = map[string][3]float64{
	"lft": {-1, -1, 1},
	"lfb": {-1, -1, -1},
	"lbt": {-1, 1, 1},
	"lbb": {-1, 1, -1},
	"rft": {1, -1, 1},
	"rfb": {1, -1, -1},
	"rbt": {1, 1, 1},
	"rbb": {1, 1, -1},
}

// Presets lists the valid preset codes in a stable order.
func Presets() []string {
	return []string{"lft", "lfb", "lbt", "lbb", "rft", "rfb", "rbt", "rbb"}
}

// SetPreset jumps to a corner of the cube of half-size Distance.
func (c *Camera) SetPreset(code string) error {
	s, ok := presetSigns[code]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, code)
	}
	d := c.Distance
	c.Position = mgl64.Vec3{s[0] * d, s[1] * d, s[2] * d}
	return nil
}

// Orbit advances the spiral fly-around by dt seconds.
// It does nothing while a drag owns the camera.
func (c *Camera) Orbit(dt float64) {
	if c.Control != ControlAuto {
		return
	}
	c.RotationAngle += dt * orbitSpeed
	c.placeOnCircle()

	c.HeightOffset += dt * heightSpeed
	c.Position[2] = c.Distance + heightSwing*math.Sin(c.HeightOffset)
}

// BeginDrag starts a human drag at pointer (x, y) and suspends the orbit.
func (c *Camera) BeginDrag(x, y float64) {
	c.Control = ControlManual
	c.dragX, c.dragY = x, y
}

// DragTo moves the pointer of an active drag. Ignored when no drag is active.
func (c *Camera) DragTo(x, y float64) {
	if c.Control != ControlManual {
		return
	}
	c.DragBy(x-c.dragX, y-c.dragY)
	c.dragX, c.dragY = x, y
}

// DragBy applies a pointer delta in device pixels: horizontal turns the
// camera around the target, vertical raises or lowers it within [1, 20].
func (c *Camera) DragBy(dx, dy float64) {
	c.RotationAngle += dx * dragRotation
	c.Position[2] = mgl64.Clamp(c.Position[2]+dy*dragHeight, minHeight, maxHeight)
	c.placeOnCircle()
}

// EndDrag hands the camera back to the orbit animation.
func (c *Camera) EndDrag() {
	c.Control = ControlAuto
}

// SetFOV accepts a field of view in degrees strictly inside (0, 180).
// Invalid values leave the current one untouched.
func (c *Camera) SetFOV(deg float64) error {
	if math.IsNaN(deg) || deg <= 0 || deg >= 180 {
		return fmt.Errorf("%w: %v", ErrInvalidFOV, deg)
	}
	c.FOV = deg
	return nil
}

// SetDistance accepts a strictly positive, finite orbit radius and
// re-places the camera on it at the current angle.
func (c *Camera) SetDistance(d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDistance, d)
	}
	c.Distance = d
	c.placeOnCircle()
	c.Position[2] = d
	return nil
}

func (c *Camera) placeOnCircle() {
	c.Position[0] = c.Distance * math.Cos(c.RotationAngle)
	c.Position[1] = c.Distance * math.Sin(c.RotationAngle)
}

// ViewMatrix looks from Position at Target.
func (c Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// Far is the far clip plane; it grows with distance so the scene stays in view.
func (c Camera) Far() float64 {
	return c.Distance * farFactor
}

// ProjectionMatrix builds the perspective projection for a viewport aspect ratio.
func (c Camera) ProjectionMatrix(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, Near, c.Far())
}
