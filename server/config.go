package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/radeeyate/pixelart/compare"
)

// Config is read from the environment, optionally seeded from a .env file.
type Config struct {
	Addr             string
	MaxUploadMB      int
	PreviewMax       int
	DefaultPixelSize int
}

func defaultConfig() Config {
	return Config{
		Addr:             ":3000",
		MaxUploadMB:      20,
		PreviewMax:       512,
		DefaultPixelSize: compare.DefaultPixelSize,
	}
}

func loadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("error loading .env file: %w", err)
	}

	cfg := defaultConfig()
	if addr := os.Getenv("PIXELART_ADDR"); addr != "" {
		cfg.Addr = addr
	}

	var err error
	if cfg.MaxUploadMB, err = envInt("PIXELART_MAX_UPLOAD_MB", cfg.MaxUploadMB); err != nil {
		return Config{}, err
	}
	if cfg.PreviewMax, err = envInt("PIXELART_PREVIEW_MAX", cfg.PreviewMax); err != nil {
		return Config{}, err
	}
	if cfg.DefaultPixelSize, err = envInt("PIXELART_DEFAULT_PIXEL_SIZE", cfg.DefaultPixelSize); err != nil {
		return Config{}, err
	}

	if cfg.MaxUploadMB <= 0 {
		return Config{}, fmt.Errorf("PIXELART_MAX_UPLOAD_MB must be positive, got %d", cfg.MaxUploadMB)
	}
	if err := compare.ValidatePixelSize(cfg.DefaultPixelSize); err != nil {
		return Config{}, fmt.Errorf("PIXELART_DEFAULT_PIXEL_SIZE: %w", err)
	}

	log.Printf("Config: addr=%s maxUpload=%dMB previewMax=%d defaultPixelSize=%d",
		cfg.Addr, cfg.MaxUploadMB, cfg.PreviewMax, cfg.DefaultPixelSize)
	return cfg, nil
}

func envInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("error parsing %s from '%s': %w", key, s, err)
	}
	return v, nil
}
