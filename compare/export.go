package compare

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// MIMEType of every exported image.
const MIMEType = "image/png"

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return errors.Wrap(err, "encode png")
	}
	return nil
}

// PNGBytes returns img encoded as PNG.
func PNGBytes(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DataURI returns img as a base64 "data:image/png" URI.
func DataURI(img image.Image) (string, error) {
	b, err := PNGBytes(img)
	if err != nil {
		return "", err
	}
	return "data:" + MIMEType + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}

// Preview shrinks a photo to fit in a maxSide×maxSide box, keeping its
// aspect ratio. Images that already fit are returned as is.
func Preview(img image.Image, maxSide int) image.Image {
	if maxSide <= 0 {
		return img
	}
	return resize.Thumbnail(uint(maxSide), uint(maxSide), img, resize.Lanczos3)
}

// PixelPreview is Preview for pixel art: it samples with nearest-neighbor so
// every preview pixel is one of the source pixels and block colors survive.
func PixelPreview(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	if maxSide <= 0 || (b.Dx() <= maxSide && b.Dy() <= maxSide) {
		return img
	}
	return imaging.Fit(img, maxSide, maxSide, imaging.NearestNeighbor)
}

// SideBySide places before and after next to each other on a white canvas
// with gap pixels between them. Both are top aligned.
func SideBySide(before, after image.Image, gap int) *image.NRGBA {
	gap = max(0, gap)
	bb, ab := before.Bounds(), after.Bounds()
	width := bb.Dx() + gap + ab.Dx()
	height := max(bb.Dy(), ab.Dy())

	canvas := imaging.New(width, height, color.White)
	canvas = imaging.Paste(canvas, before, image.Pt(0, 0))
	canvas = imaging.Paste(canvas, after, image.Pt(bb.Dx()+gap, 0))
	return canvas
}
