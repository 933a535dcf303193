package main

import (
	"fmt"
	"log"

	"github.com/radeeyate/pixelart/compare"
	"github.com/radeeyate/pixelart/imagesource"
	"github.com/radeeyate/pixelart/pixelart"
)

const comparisonGap = 8

func gridSize(width, height, pixelSize int) (int, int) {
	grid := pixelart.GridSize(width, height, pixelSize)
	return grid.X, grid.Y
}

// renderCore decodes inputImageBytes, renders it and returns the PNG of the
// styled image, or of the side-by-side comparison when sideBySide is set.
// Callers are trusted with the pixel size, so any value is accepted; unknown
// styles only pixelate.
func renderCore(inputImageBytes []byte, style string, pixelSize int, sideBySide bool) ([]byte, error) {
	src, err := imagesource.DecodeBytes(inputImageBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to decode input image: %w", err)
	}

	s, ok := pixelart.ParseStyle(style)
	if !ok {
		log.Printf("Warning: unknown style %q, image will only be pixelated", style)
	}

	cmp := compare.New(src.Image, pixelart.Params{Style: s, PixelSize: pixelSize})

	var pngBytes []byte
	if sideBySide {
		pngBytes, err = compare.PNGBytes(compare.SideBySide(cmp.Original, cmp.Styled, comparisonGap))
	} else {
		pngBytes, err = compare.PNGBytes(cmp.Styled)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode output PNG: %w", err)
	}
	return pngBytes, nil
}
