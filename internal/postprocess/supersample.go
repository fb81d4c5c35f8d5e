package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Quality selects the resampling kernel.
type Quality int

const (
	// Smooth uses Catmull-Rom, for frames written to disk.
	Smooth Quality = iota
	// Fast uses approximate bilinear, for interactive redraws.
	Fast
)

func (q Quality) scaler() draw.Scaler {
	if q == Fast {
		return draw.ApproxBiLinear
	}
	return draw.CatmullRom
}

// Downsample reduces a supersampled frame to width×height.
func Downsample(img *image.NRGBA, width, height int) *image.NRGBA {
	return Resample(img, width, height, Smooth)
}

// Resample scales a frame to exactly width×height. Frames from the
// renderer are opaque, so no alpha premultiplication is needed.
// An image already at the requested size is returned as is.
func Resample(img *image.NRGBA, width, height int, q Quality) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	q.scaler().Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
