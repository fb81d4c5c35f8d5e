package termview

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestBlitHalfBlocks(t *testing.T) {
	s := newScreen(t, 10, 5)

	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(1, 2, color.NRGBA{0, 255, 0, 255})

	Blit(s, img, 1, 1)

	r, _, style, _ := s.GetContent(1, 1)
	assert.Equal(t, upperHalf, r)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), bg)

	// Odd last row repeats its colour in both halves.
	_, _, style, _ = s.GetContent(2, 2)
	fg, bg, _ = style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 255, 0), fg)
	assert.Equal(t, fg, bg)

	r, _, _, _ = s.GetContent(0, 0)
	assert.NotEqual(t, upperHalf, r)
}

func TestBlitClipsToScreen(t *testing.T) {
	s := newScreen(t, 3, 2)
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	assert.NotPanics(t, func() { Blit(s, img, -2, -1) })
}

func TestTextAndPixelSize(t *testing.T) {
	s := newScreen(t, 4, 1)
	Text(s, 1, 0, "robot", tcell.StyleDefault)
	r, _, _, _ := s.GetContent(3, 0)
	assert.Equal(t, 'b', r)

	w, h := PixelSize(80, 24)
	assert.Equal(t, 80, w)
	assert.Equal(t, 48, h)
}
