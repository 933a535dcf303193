// Package pixelart turns images into blocky, recolored pixel art.
//
// All functions take opaque *image.NRGBA values and return new images;
// inputs are never modified.
package pixelart

import "image"

// Params selects how an image is rendered.
type Params struct {
	Style     Style
	PixelSize int
}

// Render pixelates img and applies the selected style.
func Render(img *image.NRGBA, p Params) *image.NRGBA {
	return ApplyStyle(Pixelate(img, p.PixelSize), p.Style)
}
