package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	app := newApp(cfg)

	log.Printf("Server starting on %s...", cfg.Addr)
	log.Fatal(app.Listen(cfg.Addr))
}

func newApp(cfg Config) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.MaxUploadMB * 1024 * 1024,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	h := &handler{cfg: cfg}

	app.Get("/", h.handleIndex)
	app.Get("/api/styles", h.handleStyles)
	app.Post("/api/convert", h.handleConvert)
	app.Post("/api/download", h.handleDownload)

	return app
}
