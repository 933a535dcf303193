package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/radeeyate/pixelart/compare"
	"github.com/radeeyate/pixelart/imagesource"
	"github.com/radeeyate/pixelart/pixelart"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

type options struct {
	input      string
	output     string
	compareOut string
	style      string
	pixelSize  string
	compareGap int
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.input, "input", "", "Path to the source image (png, jpg, gif, bmp, webp)")
	fs.StringVar(&opts.output, "output", "", "Output PNG path (default <style>_pixel_art_<size>.png next to the input)")
	fs.StringVar(&opts.compareOut, "compare", "", "Also write a side-by-side before/after PNG to this path")
	fs.StringVar(&opts.style, "style", string(pixelart.StyleBit16), "Color style: bit16, grayscale or saturate")
	fs.StringVar(&opts.pixelSize, "pixel-size", fmt.Sprint(compare.DefaultPixelSize), "Pixel size (2-50)")
	fs.IntVar(&opts.compareGap, "gap", 8, "Gap in pixels between the images of -compare")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.input == "" {
		return opts, fmt.Errorf("input file is required, use -input")
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, stdout io.Writer) error {
	params, err := compare.ParseParams(opts.style, opts.pixelSize)
	if err != nil {
		return err
	}

	file, err := os.Open(opts.input)
	if err != nil {
		return fmt.Errorf("could not open image file '%s': %w", opts.input, err)
	}
	defer file.Close()

	src, err := imagesource.Decode(file)
	if err != nil {
		return fmt.Errorf("could not decode image '%s': %w", opts.input, err)
	}

	cmp := compare.New(src.Image, params)

	output := opts.output
	if output == "" {
		output = filepath.Join(filepath.Dir(opts.input), cmp.FileName())
	}
	if err := writePNG(output, cmp.Styled); err != nil {
		return err
	}

	if opts.compareOut != "" {
		if err := writePNG(opts.compareOut, compare.SideBySide(cmp.Original, cmp.Styled, opts.compareGap)); err != nil {
			return err
		}
	}

	fmt.Fprintln(stdout, renderInfo(cmp, src.Format, output, opts.compareOut))
	return nil
}

func renderInfo(cmp *compare.Comparison, format, output, compareOut string) string {
	lines := []string{titleStyle.Render(cmp.Heading())}
	lines = append(lines, fmt.Sprintf("Source format: %s", format))
	lines = append(lines, cmp.Info.Lines()...)
	lines = append(lines, fmt.Sprintf("Wrote: %s", output))
	if compareOut != "" {
		lines = append(lines, fmt.Sprintf("Comparison: %s", compareOut))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func writePNG(path string, img image.Image) error {
	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create output image file '%s': %w", path, err)
	}

	if err := compare.EncodePNG(outFile, img); err != nil {
		outFile.Close()
		return fmt.Errorf("could not write '%s': %w", path, err)
	}
	if err := outFile.Close(); err != nil {
		return fmt.Errorf("could not close '%s': %w", path, err)
	}
	return nil
}
