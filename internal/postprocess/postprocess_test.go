package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fill(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestDownsampleKeepsFlatColour(t *testing.T) {
	c := color.NRGBA{51, 102, 204, 255}
	out := Downsample(fill(40, 20, c), 20, 10)
	assert.Equal(t, image.Rect(0, 0, 20, 10), out.Bounds())
	got := out.NRGBAAt(10, 5)
	assert.InDelta(t, c.R, got.R, 1)
	assert.InDelta(t, c.G, got.G, 1)
	assert.InDelta(t, c.B, got.B, 1)
	assert.InDelta(t, c.A, got.A, 1)
}

func TestResampleNoopAtSize(t *testing.T) {
	src := fill(8, 8, color.NRGBA{1, 2, 3, 255})
	assert.Same(t, src, Downsample(src, 8, 8))
	assert.Same(t, src, Resample(src, 8, 8, Fast))
}

func TestResampleFastUpscales(t *testing.T) {
	c := color.NRGBA{200, 10, 30, 255}
	out := Resample(fill(4, 3, c), 16, 12, Fast)
	assert.Equal(t, image.Rect(0, 0, 16, 12), out.Bounds())
	got := out.NRGBAAt(8, 6)
	assert.InDelta(t, c.R, got.R, 1)
	assert.InDelta(t, c.B, got.B, 1)
}

func TestDrawHUDWritesText(t *testing.T) {
	bg := color.NRGBA{51, 51, 51, 255}
	img := fill(200, 40, bg)
	DrawHUD(img, []string{"FPS: 60", "Parade march animation active"})

	changed := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 200; x++ {
			if img.NRGBAAt(x, y) != bg {
				changed++
			}
		}
	}
	assert.Positive(t, changed)
	assert.Equal(t, bg, img.NRGBAAt(199, 39))
}

func TestMeasureHUD(t *testing.T) {
	sz := MeasureHUD([]string{"abc", "abcdef"})
	assert.Equal(t, 6*7+2*hudMargin+1, sz.X)
	assert.Equal(t, 2*13+2*hudMargin+1, sz.Y)
}
