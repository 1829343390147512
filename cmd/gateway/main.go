package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"plan-designer/internal/common/config"
	"plan-designer/internal/common/middleware"
	"plan-designer/internal/gateway/proxy"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// API Gateway
// ============================================================

func main() {
	cfg := config.Load()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "API Gateway",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready"})
	})

	// ============================================================
	// API Routes
	// ============================================================

	api := app.Group("/api/v1")

	api.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Plan Designer API v1",
			"status":  "ok",
		})
	})

	// ============================================================
	// Designer Service Routes (Proxy)
	// ============================================================

	designerURL := getEnv("DESIGNER_URL", "http://localhost:3001")

	api.Post("/scene", proxy.ProxyTo(designerURL+"/scene"))
	api.Post("/scene/shapes", proxy.ProxyTo(designerURL+"/scene/shapes"))
	api.Post("/scene/shapes/delete", proxy.ProxyTo(designerURL+"/scene/shapes/delete"))

	api.Post("/3d", proxy.ProxyTo(designerURL+"/3d"))
	api.Post("/estimate", proxy.ProxyTo(designerURL+"/estimate"))

	api.Post("/plans", proxy.ProxyTo(designerURL+"/plans"))
	api.Get("/plans/:id", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/plans/%s", designerURL, c.Params("id")))
	})
	api.Post("/plans/:id/versions", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/plans/%s/versions", designerURL, c.Params("id")))
	})
	api.Get("/plans/:id/versions", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/plans/%s/versions", designerURL, c.Params("id")))
	})
	api.Get("/plans/:id/versions/latest", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/plans/%s/versions/latest", designerURL, c.Params("id")))
	})
	api.Post("/plans/:id/export/:format", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/plans/%s/export/%s", designerURL, c.Params("id"), c.Params("format")))
	})

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting API Gateway on %s (env: %s)", addr, cfg.Environment)
	log.Printf("Proxying /api/v1 to %s", designerURL)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
