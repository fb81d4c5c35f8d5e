package postprocess

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	hudText   = color.NRGBA{255, 255, 255, 255}
	hudShadow = color.NRGBA{0, 0, 0, 200}
)

const hudMargin = 4

// DrawHUD writes lines of text into the top-left corner of img in place,
// each with a one-pixel drop shadow. Lines that do not fit are dropped.
func DrawHUD(img draw.Image, lines []string) {
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	b := img.Bounds()

	d := &font.Drawer{Dst: img, Face: face}
	for i, line := range lines {
		baseline := b.Min.Y + hudMargin + ascent + i*lineHeight
		if baseline > b.Max.Y {
			return
		}
		x := b.Min.X + hudMargin

		d.Src = image.NewUniform(hudShadow)
		d.Dot = fixed.P(x+1, baseline+1)
		d.DrawString(line)

		d.Src = image.NewUniform(hudText)
		d.Dot = fixed.P(x, baseline)
		d.DrawString(line)
	}
}

// MeasureHUD returns the pixel size DrawHUD needs for lines.
func MeasureHUD(lines []string) image.Point {
	face := basicfont.Face7x13
	w := 0
	for _, line := range lines {
		if adv := font.MeasureString(face, line).Ceil(); adv > w {
			w = adv
		}
	}
	return image.Pt(w+2*hudMargin+1, len(lines)*face.Metrics().Height.Ceil()+2*hudMargin+1)
}
