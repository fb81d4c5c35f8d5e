// Package termview paints frames into a terminal with half-block cells:
// each cell shows two vertically stacked pixels.
package termview

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

const upperHalf = '▀'

// PixelSize returns the frame size that fills cols×rows cells.
func PixelSize(cols, rows int) (w, h int) {
	return cols, rows * 2
}

// Blit draws img with its top-left at cell (x0, y0). Rows beyond the
// screen are clipped. The caller calls Show.
func Blit(s tcell.Screen, img *image.NRGBA, x0, y0 int) {
	sw, sh := s.Size()
	b := img.Bounds()
	for py := b.Min.Y; py < b.Max.Y; py += 2 {
		cy := y0 + (py-b.Min.Y)/2
		if cy < 0 || cy >= sh {
			continue
		}
		for px := b.Min.X; px < b.Max.X; px++ {
			cx := x0 + px - b.Min.X
			if cx < 0 || cx >= sw {
				continue
			}
			top := img.NRGBAAt(px, py)
			bottom := top
			if py+1 < b.Max.Y {
				bottom = img.NRGBAAt(px, py+1)
			}
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			s.SetContent(cx, cy, upperHalf, nil, style)
		}
	}
}

// Text writes a line at cell (x, y), clipped to the screen width.
func Text(s tcell.Screen, x, y int, text string, style tcell.Style) {
	sw, _ := s.Size()
	for _, r := range text {
		if x >= sw {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func rgb(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
