package pixelart

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// indexedImage gives every pixel a distinct color derived from its position.
func indexedImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), B: uint8(x + y), A: 255})
		}
	}
	return img
}

func randomImage(w, h int, seed int64) *image.NRGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = uint8(rng.Intn(256))
		img.Pix[i+1] = uint8(rng.Intn(256))
		img.Pix[i+2] = uint8(rng.Intn(256))
		img.Pix[i+3] = 255
	}
	return img
}

func distinctColors(img *image.NRGBA) int {
	seen := make(map[color.NRGBA]struct{})
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			seen[img.NRGBAAt(x, y)] = struct{}{}
		}
	}
	return len(seen)
}

func TestGridSize(t *testing.T) {
	tests := []struct {
		name     string
		w, h, ps int
		want     image.Point
	}{
		{"exact halves", 10, 10, 2, image.Pt(5, 5)},
		{"floor division", 107, 33, 10, image.Pt(10, 3)},
		{"clamped to one", 4, 4, 50, image.Pt(1, 1)},
		{"pixel size one", 7, 3, 1, image.Pt(7, 3)},
		{"zero pixel size", 7, 3, 0, image.Pt(7, 3)},
		{"negative pixel size", 7, 3, -4, image.Pt(7, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GridSize(tt.w, tt.h, tt.ps))
		})
	}
}

func TestPixelatePreservesSize(t *testing.T) {
	img := randomImage(37, 23, 1)
	for _, ps := range []int{-1, 0, 1, 2, 3, 7, 10, 23, 37, 50, 1000} {
		out := Pixelate(img, ps)
		assert.Equal(t, img.Bounds().Size(), out.Bounds().Size(), "pixel size %d", ps)
		grid := GridSize(37, 23, ps)
		assert.LessOrEqual(t, distinctColors(out), grid.X*grid.Y, "pixel size %d", ps)
	}
}

func TestPixelateDoesNotModifyInput(t *testing.T) {
	img := randomImage(16, 16, 2)
	before := append([]uint8(nil), img.Pix...)

	out := Pixelate(img, 4)
	assert.Equal(t, before, img.Pix)
	assert.NotSame(t, img, out)
}

func TestPixelateLargePixelSizeIsSolid(t *testing.T) {
	img := indexedImage(9, 6)
	out := Pixelate(img, 9)
	require.Equal(t, 1, distinctColors(out))
	// Nearest-neighbor samples the center of the single grid cell.
	assert.Equal(t, img.NRGBAAt(4, 3), out.NRGBAAt(0, 0))
}

func TestPixelateClampsToSinglePixel(t *testing.T) {
	img := indexedImage(4, 4)
	out := Pixelate(img, 50)

	assert.Equal(t, image.Pt(4, 4), out.Bounds().Size())
	want := img.NRGBAAt(2, 2)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, want, out.NRGBAAt(x, y))
		}
	}
}

func TestPixelateHalvesGrid(t *testing.T) {
	img := indexedImage(10, 10)
	out := Pixelate(img, 2)

	require.Equal(t, image.Pt(10, 10), out.Bounds().Size())
	assert.Equal(t, 25, distinctColors(out))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			// Each 2x2 block takes the color of its lower-right source pixel.
			want := img.NRGBAAt(x/2*2+1, y/2*2+1)
			assert.Equal(t, want, out.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestPixelateSizeOneIsCopy(t *testing.T) {
	img := randomImage(12, 5, 3)
	out := Pixelate(img, 1)
	assert.Equal(t, img.Pix, out.Pix)
}

func TestPixelateEmptyImage(t *testing.T) {
	out := Pixelate(image.NewNRGBA(image.Rect(0, 0, 0, 5)), 3)
	assert.Equal(t, 0, out.Bounds().Dx())
	assert.Equal(t, 5, out.Bounds().Dy())
}

func TestQuantizeBit16(t *testing.T) {
	img := solidImage(2, 2, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	out := QuantizeBit16(img)
	assert.Equal(t, color.NRGBA{R: 248, G: 252, B: 248, A: 255}, out.NRGBAAt(1, 1))

	img = solidImage(1, 1, color.NRGBA{R: 7, G: 3, B: 15, A: 255})
	out = QuantizeBit16(img)
	assert.Equal(t, color.NRGBA{R: 0, G: 0, B: 8, A: 255}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 7, G: 3, B: 15, A: 255}, img.NRGBAAt(0, 0), "input must not change")
}

func TestQuantizeBit16Idempotent(t *testing.T) {
	img := randomImage(31, 17, 4)
	once := QuantizeBit16(img)
	twice := QuantizeBit16(once)
	assert.Equal(t, once.Pix, twice.Pix)
	for i := 0; i < len(once.Pix); i += 4 {
		assert.Zero(t, once.Pix[i+0]&0x07)
		assert.Zero(t, once.Pix[i+1]&0x03)
		assert.Zero(t, once.Pix[i+2]&0x07)
		assert.Equal(t, uint8(255), once.Pix[i+3])
	}
}

func TestGrayscale(t *testing.T) {
	img := solidImage(3, 3, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	out := Grayscale(img)
	// 0.299 * 255 = 76.2
	assert.Equal(t, color.NRGBA{R: 76, G: 76, B: 76, A: 255}, out.NRGBAAt(1, 1))

	img = solidImage(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, Grayscale(img).NRGBAAt(0, 0))
}

func TestGrayscaleIdempotent(t *testing.T) {
	img := randomImage(29, 19, 5)
	once := Grayscale(img)
	twice := Grayscale(once)
	assert.Equal(t, once.Pix, twice.Pix)
	for i := 0; i < len(once.Pix); i += 4 {
		assert.Equal(t, once.Pix[i], once.Pix[i+1])
		assert.Equal(t, once.Pix[i], once.Pix[i+2])
	}
}

func TestSaturateFactorOneIsIdentity(t *testing.T) {
	img := randomImage(20, 20, 6)
	out := SaturateFactor(img, 1)
	require.Equal(t, len(img.Pix), len(out.Pix))
	for i := range img.Pix {
		assert.InDelta(t, img.Pix[i], out.Pix[i], 1, "byte %d", i)
	}
}

func TestSaturateFactorZeroIsGrayscale(t *testing.T) {
	img := randomImage(20, 20, 7)
	assert.Equal(t, Grayscale(img).Pix, SaturateFactor(img, 0).Pix)
}

func TestSaturate(t *testing.T) {
	// y = 0.299*200 + 0.587*100 + 0.114*50 = 124.8
	// r = 124.8 + 2*(200-124.8) = 275.2 -> 255
	// g = 124.8 + 2*(100-124.8) = 75.2
	// b = 124.8 + 2*(50-124.8)  = -24.8 -> 0
	img := solidImage(2, 2, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	out := Saturate(img)
	got := out.NRGBAAt(0, 0)
	assert.Equal(t, uint8(255), got.R)
	assert.InDelta(t, 75, got.G, 1)
	assert.Equal(t, uint8(0), got.B)
	assert.Equal(t, uint8(255), got.A)

	gray := solidImage(1, 1, color.NRGBA{R: 90, G: 90, B: 90, A: 255})
	assert.InDelta(t, 90, Saturate(gray).NRGBAAt(0, 0).R, 1)
}

func TestApplyStyle(t *testing.T) {
	img := randomImage(8, 8, 8)
	tests := []struct {
		style Style
		want  *image.NRGBA
	}{
		{StyleBit16, QuantizeBit16(img)},
		{StyleGrayscale, Grayscale(img)},
		{StyleSaturate, Saturate(img)},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			assert.Equal(t, tt.want.Pix, ApplyStyle(img, tt.style).Pix)
		})
	}
}

func TestApplyStyleUnknownPassesThrough(t *testing.T) {
	img := randomImage(8, 8, 9)
	for _, s := range []Style{"unknown-style", "", "BIT16", "16-bit"} {
		assert.Same(t, img, ApplyStyle(img, s), "style %q", s)
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in    string
		want  Style
		known bool
	}{
		{"bit16", StyleBit16, true},
		{" Grayscale ", StyleGrayscale, true},
		{"monochrome", StyleGrayscale, true},
		{"Colorful", StyleSaturate, true},
		{"sepia", Style("sepia"), false},
		{"", Style(""), false},
	}
	for _, tt := range tests {
		got, ok := ParseStyle(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.known, ok, tt.in)
	}
}

func TestStyleLabel(t *testing.T) {
	assert.Equal(t, "16-bit", StyleBit16.Label())
	assert.Equal(t, "Monochrome", StyleGrayscale.Label())
	assert.Equal(t, "Colorful", StyleSaturate.Label())
	assert.Equal(t, "other", Style("other").Label())
	assert.False(t, Style("other").Known())
	assert.Len(t, Styles(), 3)
}

func TestRenderRedBit16(t *testing.T) {
	img := solidImage(100, 100, color.NRGBA{R: 255, A: 255})
	out := Render(img, Params{Style: StyleBit16, PixelSize: 10})

	require.Equal(t, image.Pt(100, 100), out.Bounds().Size())
	want := color.NRGBA{R: 248, G: 0, B: 0, A: 255}
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if out.NRGBAAt(x, y) != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, out.NRGBAAt(x, y), want)
			}
		}
	}
}

func TestRenderUnknownStyleOnlyPixelates(t *testing.T) {
	img := randomImage(20, 10, 10)
	out := Render(img, Params{Style: "none", PixelSize: 5})
	assert.Equal(t, Pixelate(img, 5).Pix, out.Pix)
}
