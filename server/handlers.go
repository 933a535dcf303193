package main

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/radeeyate/pixelart/compare"
	"github.com/radeeyate/pixelart/imagesource"
	"github.com/radeeyate/pixelart/pixelart"
)

const decodeFailedMessage = "Could not read the image. Please check the file and try again."

type handler struct {
	cfg Config
}

type styleOption struct {
	ID    pixelart.Style `json:"id"`
	Label string         `json:"label"`
}

type pixelSizeRange struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

type stylesResponse struct {
	Styles    []styleOption  `json:"styles"`
	PixelSize pixelSizeRange `json:"pixelSize"`
	Formats   []string       `json:"formats"`
}

type convertResponse struct {
	Original      string       `json:"original"`
	Styled        string       `json:"styled"`
	Style         string       `json:"style"`
	Heading       string       `json:"heading"`
	DownloadLabel string       `json:"downloadLabel"`
	FileName      string       `json:"fileName"`
	Info          compare.Info `json:"info"`
	InfoLines     []string     `json:"infoLines"`
}

func (h *handler) handleIndex(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(htmlClientPage)
}

func (h *handler) handleStyles(c *fiber.Ctx) error {
	resp := stylesResponse{
		PixelSize: pixelSizeRange{
			Min:     compare.MinPixelSize,
			Max:     compare.MaxPixelSize,
			Default: h.cfg.DefaultPixelSize,
		},
		Formats: imagesource.Formats,
	}
	for _, s := range pixelart.Styles() {
		resp.Styles = append(resp.Styles, styleOption{ID: s, Label: s.Label()})
	}
	return c.JSON(resp)
}

func (h *handler) handleConvert(c *fiber.Ctx) error {
	cmp, status, err := h.readComparison(c)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	original, err := compare.DataURI(compare.Preview(cmp.Original, h.cfg.PreviewMax))
	if err != nil {
		log.Printf("Error encoding original preview: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to encode preview"})
	}
	styled, err := compare.DataURI(compare.PixelPreview(cmp.Styled, h.cfg.PreviewMax))
	if err != nil {
		log.Printf("Error encoding styled preview: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to encode preview"})
	}

	return c.Status(fiber.StatusOK).JSON(convertResponse{
		Original:      original,
		Styled:        styled,
		Style:         string(cmp.Params.Style),
		Heading:       cmp.Heading(),
		DownloadLabel: cmp.DownloadLabel(),
		FileName:      cmp.FileName(),
		Info:          cmp.Info,
		InfoLines:     cmp.Info.Lines(),
	})
}

func (h *handler) handleDownload(c *fiber.Ctx) error {
	cmp, status, err := h.readComparison(c)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	pngBytes, err := compare.PNGBytes(cmp.Styled)
	if err != nil {
		log.Printf("Error encoding %s: %v", cmp.FileName(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to encode image"})
	}

	c.Attachment(cmp.FileName())
	c.Set(fiber.HeaderContentType, compare.MIMEType)
	return c.Status(fiber.StatusOK).Send(pngBytes)
}

// readComparison parses the multipart form shared by the convert and
// download endpoints and renders it. On failure it returns the HTTP status
// and a message fit for the user.
func (h *handler) readComparison(c *fiber.Ctx) (*compare.Comparison, int, error) {
	style := strings.TrimSpace(c.FormValue("style"))
	if style == "" {
		style = string(pixelart.Styles()[0])
	}
	pixelSize := strings.TrimSpace(c.FormValue("pixelSize"))
	if pixelSize == "" {
		pixelSize = strconv.Itoa(h.cfg.DefaultPixelSize)
	}

	params, err := compare.ParseParams(style, pixelSize)
	if err != nil {
		return nil, fiber.StatusBadRequest, err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, fiber.StatusBadRequest, errors.New("image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening upload %s: %v", fileHeader.Filename, err)
		return nil, fiber.StatusInternalServerError, errors.New("failed to read upload")
	}
	defer file.Close()

	src, err := imagesource.Decode(file)
	if err != nil {
		log.Printf("Error decoding upload %s: %v", fileHeader.Filename, err)
		switch {
		case errors.Is(err, imagesource.ErrDecode):
			return nil, fiber.StatusBadRequest, errors.New(decodeFailedMessage)
		case errors.Is(err, imagesource.ErrTooLarge):
			return nil, fiber.StatusRequestEntityTooLarge, errors.New("image dimensions are too large")
		default:
			return nil, fiber.StatusInternalServerError, errors.New("failed to read upload")
		}
	}

	log.Printf("Rendering %s (%s, %dx%d) style=%s pixelSize=%d",
		fileHeader.Filename, src.Format, src.Width(), src.Height(), params.Style, params.PixelSize)
	return compare.New(src.Image, params), fiber.StatusOK, nil
}
