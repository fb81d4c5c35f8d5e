package texture

import (
	"image"
	"image/color"
	"math"
)

// Placeholder is shown while a texture is still loading or failed to load.
var Placeholder = color.NRGBA{0, 0, 255, 255}

var fallbackColors = map[string]color.NRGBA{
	Metal:  {128, 128, 128, 255},
	Floor:  {80, 80, 80, 255},
	Skybox: {100, 150, 220, 255},
}

// Solid returns a 1×1 texture of a single colour.
func Solid(c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, c)
	return img
}

// Fallback is the texture a slot gets when no file is configured.
func Fallback(slot string) *image.NRGBA {
	if slot == Head {
		return ProceduralHead(headSize)
	}
	if c, ok := fallbackColors[slot]; ok {
		return Solid(c)
	}
	return Solid(Placeholder)
}

const headSize = 256

var (
	skin  = color.NRGBA{255, 200, 150, 255}
	eye   = color.NRGBA{0, 0, 0, 255}
	mouth = color.NRGBA{100, 50, 50, 255}
)

// ProceduralHead draws a simple face: skin, two round eyes and a flat mouth.
func ProceduralHead(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	s := float64(size)
	eyeY, leftEyeX, rightEyeX := s*0.4, s*0.35, s*0.65
	eyeRadius := s * 0.05
	mouthY, mouthHalfWidth, mouthHeight := s*0.6, s*0.15, s*0.02

	for y := 0; y < size; y++ {
		fy := float64(y)
		for x := 0; x < size; x++ {
			fx := float64(x)
			c := skin
			if math.Hypot(fx-leftEyeX, fy-eyeY) < eyeRadius || math.Hypot(fx-rightEyeX, fy-eyeY) < eyeRadius {
				c = eye
			}
			if math.Abs(fy-mouthY) < mouthHeight && math.Abs(fx-s*0.5) < mouthHalfWidth {
				c = mouth
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
