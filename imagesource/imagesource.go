// Package imagesource decodes user supplied image bytes into the opaque
// RGB bitmaps the pixelart package works on.
package imagesource

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
)

var (
	// ErrDecode is the cause of every error for data that is not a
	// readable image.
	ErrDecode = errors.New("cannot decode image")

	// ErrTooLarge is returned for images above MaxPixels.
	ErrTooLarge = errors.New("image too large")
)

// DecodeError wraps a decoder failure. It matches ErrDecode with errors.Is
// and unwraps to the decoder's own error, e.g. image.ErrFormat.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return ErrDecode.Error() + ": " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports whether target is ErrDecode.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// MaxPixels bounds width*height of accepted images. Zero disables the check.
var MaxPixels = 40_000_000

// Formats lists the file extensions accepted by Decode.
var Formats = []string{"png", "jpg", "jpeg", "gif", "bmp", "webp"}

// Source is a decoded upload.
type Source struct {
	// Image is opaque; every alpha byte is 0xff.
	Image *image.NRGBA
	// Format is the name the decoder registered, e.g. "png" or "jpeg".
	Format string
}

// Width of the decoded image.
func (s *Source) Width() int { return s.Image.Bounds().Dx() }

// Height of the decoded image.
func (s *Source) Height() int { return s.Image.Bounds().Dy() }

// Decode reads an image from r, applies its EXIF orientation and normalizes
// it with Normalize.
func Decode(r io.Reader) (*Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read image")
	}
	return DecodeBytes(data)
}

// DecodeBytes is Decode for an in-memory upload.
func DecodeBytes(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, errors.Wrap(ErrDecode, "empty upload")
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.Wrapf(ErrDecode, "%s has no pixels", format)
	}
	if MaxPixels > 0 && cfg.Width*cfg.Height > MaxPixels {
		return nil, errors.Wrapf(ErrTooLarge, "%dx%d", cfg.Width, cfg.Height)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &Source{Image: Normalize(img), Format: format}, nil
}

// Normalize copies img into an opaque NRGBA image with its origin at (0, 0).
// Alpha is discarded rather than composited, so the color channels of
// translucent pixels are kept as they are.
func Normalize(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}
