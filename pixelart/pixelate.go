package pixelart

import (
	"image"

	"github.com/disintegration/imaging"
)

// GridSize returns the size of the coarse grid an image of w×h pixels is
// sampled down to for the given pixel size. Both sides are at least 1.
func GridSize(w, h, pixelSize int) image.Point {
	if pixelSize < 1 {
		pixelSize = 1
	}
	return image.Point{
		X: max(1, w/pixelSize),
		Y: max(1, h/pixelSize),
	}
}

// Pixelate samples img down to its coarse grid and back up to the original
// size, both times with nearest-neighbor, so every grid cell becomes a solid
// block. The input is not modified.
func Pixelate(img *image.NRGBA, pixelSize int) *image.NRGBA {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, max(0, width), max(0, height)))
	}

	grid := GridSize(width, height, pixelSize)
	small := imaging.Resize(img, grid.X, grid.Y, imaging.NearestNeighbor)
	return imaging.Resize(small, width, height, imaging.NearestNeighbor)
}
