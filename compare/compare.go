// Package compare builds the before/after view of a pixel art rendition:
// the info panel, the PNG export and the preview images.
package compare

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/radeeyate/pixelart/pixelart"
)

// Pixel size range offered by the UI.
const (
	MinPixelSize     = 2
	MaxPixelSize     = 50
	DefaultPixelSize = 10
)

var (
	// ErrPixelSize is the cause of pixel sizes outside the UI range.
	ErrPixelSize = errors.Errorf("pixel size must be between %d and %d", MinPixelSize, MaxPixelSize)
	// ErrStyle is the cause of style names outside pixelart.Styles.
	ErrStyle = errors.New("unknown color style")
)

// ValidatePixelSize reports ErrPixelSize for values outside the UI range.
func ValidatePixelSize(n int) error {
	if n < MinPixelSize || n > MaxPixelSize {
		return errors.Wrapf(ErrPixelSize, "got %d", n)
	}
	return nil
}

// ParseParams validates raw UI input. An empty pixel size means
// DefaultPixelSize.
func ParseParams(style, pixelSize string) (pixelart.Params, error) {
	s, ok := pixelart.ParseStyle(style)
	if !ok {
		return pixelart.Params{}, errors.Wrapf(ErrStyle, "%q", style)
	}

	n := DefaultPixelSize
	if pixelSize = strings.TrimSpace(pixelSize); pixelSize != "" {
		v, err := strconv.Atoi(pixelSize)
		if err != nil {
			return pixelart.Params{}, errors.Wrapf(ErrPixelSize, "%q is not a number", pixelSize)
		}
		n = v
	}
	if err := ValidatePixelSize(n); err != nil {
		return pixelart.Params{}, err
	}
	return pixelart.Params{Style: s, PixelSize: n}, nil
}

// Info is the read-only metadata shown next to a comparison.
type Info struct {
	OriginalWidth  int `json:"originalWidth"`
	OriginalHeight int `json:"originalHeight"`
	PixelSize      int `json:"pixelSize"`
	GridWidth      int `json:"gridWidth"`
	GridHeight     int `json:"gridHeight"`
}

// NewInfo derives the metadata for an image of the given size.
func NewInfo(size image.Point, pixelSize int) Info {
	grid := pixelart.GridSize(size.X, size.Y, pixelSize)
	return Info{
		OriginalWidth:  size.X,
		OriginalHeight: size.Y,
		PixelSize:      pixelSize,
		GridWidth:      grid.X,
		GridHeight:     grid.Y,
	}
}

// Lines formats the info panel.
func (i Info) Lines() []string {
	return []string{
		fmt.Sprintf("Original size: %d × %d pixels", i.OriginalWidth, i.OriginalHeight),
		fmt.Sprintf("Pixel size: %d", i.PixelSize),
		fmt.Sprintf("Downsampled size: %d × %d pixels", i.GridWidth, i.GridHeight),
	}
}

// Comparison holds both sides of a before/after view.
type Comparison struct {
	Original *image.NRGBA
	Styled   *image.NRGBA
	Params   pixelart.Params
	Info     Info
}

// New renders original with p.
func New(original *image.NRGBA, p pixelart.Params) *Comparison {
	return &Comparison{
		Original: original,
		Styled:   pixelart.Render(original, p),
		Params:   p,
		Info:     NewInfo(original.Bounds().Size(), p.PixelSize),
	}
}

// FileName is the download name of the styled image.
func (c *Comparison) FileName() string {
	return FileName(c.Params.Style, c.Params.PixelSize)
}

// Heading is the title of the styled column.
func (c *Comparison) Heading() string {
	return fmt.Sprintf("Pixel art (%s)", c.Params.Style.Label())
}

// DownloadLabel is the text of the download button.
func (c *Comparison) DownloadLabel() string {
	return fmt.Sprintf("Download %s pixel art", c.Params.Style.Label())
}

// FileName builds "<style>_pixel_art_<size>.png".
func FileName(style pixelart.Style, pixelSize int) string {
	return fmt.Sprintf("%s_pixel_art_%d.png", style, pixelSize)
}
