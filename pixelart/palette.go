package pixelart

import (
	"image"

	"github.com/disintegration/gift"
	"github.com/disintegration/imaging"
)

// Low-order bits cleared per channel by QuantizeBit16 (RGB565).
const (
	redShift   = 3
	greenShift = 2
	blueShift  = 3
)

// DefaultSaturation is the factor Saturate uses.
const DefaultSaturation = 2.0

// ITU-R BT.601 luma weights.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

func quantizeChannel(v uint8, shift uint) uint8 {
	return (v >> shift) << shift
}

func calculateLuminance(r, g, b float32) float32 {
	return lumaR*r + lumaG*g + lumaB*b
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// applyFilters runs img through a gift filter chain into a new image.
func applyFilters(img *image.NRGBA, filters ...gift.Filter) *image.NRGBA {
	g := gift.New(filters...)
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}

// QuantizeBit16 emulates a 16-bit (RGB565) display by zeroing the low 3 bits
// of red, the low 2 bits of green and the low 3 bits of blue.
func QuantizeBit16(img *image.NRGBA) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 0; i+3 < len(dst.Pix); i += 4 {
		dst.Pix[i+0] = quantizeChannel(dst.Pix[i+0], redShift)
		dst.Pix[i+1] = quantizeChannel(dst.Pix[i+1], greenShift)
		dst.Pix[i+2] = quantizeChannel(dst.Pix[i+2], blueShift)
	}
	return dst
}

// Grayscale replaces every channel with the pixel's BT.601 luma.
func Grayscale(img *image.NRGBA) *image.NRGBA {
	return applyFilters(img, gift.ColorFunc(
		func(r0, g0, b0, a0 float32) (r, g, b, a float32) {
			y := clamp01(calculateLuminance(r0, g0, b0))
			return y, y, y, a0
		},
	))
}

// Saturate boosts color saturation by DefaultSaturation.
func Saturate(img *image.NRGBA) *image.NRGBA {
	return SaturateFactor(img, DefaultSaturation)
}

// SaturateFactor moves every channel away from the pixel's luma:
// out = y + factor*(in - y), clamped to the channel range. A factor of 1
// leaves the image unchanged and 0 yields Grayscale.
func SaturateFactor(img *image.NRGBA, factor float32) *image.NRGBA {
	return applyFilters(img, gift.ColorFunc(
		func(r0, g0, b0, a0 float32) (r, g, b, a float32) {
			y := calculateLuminance(r0, g0, b0)
			r = clamp01(y + factor*(r0-y))
			g = clamp01(y + factor*(g0-y))
			b = clamp01(y + factor*(b0-y))
			return r, g, b, a0
		},
	))
}
