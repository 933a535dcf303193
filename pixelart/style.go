package pixelart

import (
	"image"
	"strings"
)

// Style names a color style applied after pixelation.
type Style string

const (
	StyleBit16     Style = "bit16"
	StyleGrayscale Style = "grayscale"
	StyleSaturate  Style = "saturate"
)

var styleLabels = map[Style]string{
	StyleBit16:     "16-bit",
	StyleGrayscale: "Monochrome",
	StyleSaturate:  "Colorful",
}

// Styles returns the known styles in display order.
func Styles() []Style {
	return []Style{StyleBit16, StyleGrayscale, StyleSaturate}
}

// Label is the human readable name of s. Unknown styles are labelled with
// their raw value.
func (s Style) Label() string {
	if label, ok := styleLabels[s]; ok {
		return label
	}
	return string(s)
}

// Known reports whether s is one of Styles.
func (s Style) Known() bool {
	_, ok := styleLabels[s]
	return ok
}

// ParseStyle resolves an identifier or a label, ignoring case and
// surrounding space.
func ParseStyle(name string) (Style, bool) {
	name = strings.TrimSpace(name)
	for _, s := range Styles() {
		if strings.EqualFold(name, string(s)) || strings.EqualFold(name, s.Label()) {
			return s, true
		}
	}
	return Style(name), false
}

// ApplyStyle runs the stylist selected by style. Any other value returns img
// itself.
func ApplyStyle(img *image.NRGBA, style Style) *image.NRGBA {
	switch style {
	case StyleBit16:
		return QuantizeBit16(img)
	case StyleGrayscale:
		return Grayscale(img)
	case StyleSaturate:
		return Saturate(img)
	default:
		return img
	}
}
