package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"plan-designer/internal/common/config"
	"plan-designer/internal/common/middleware"
	"plan-designer/internal/designer/handlers"
	"plan-designer/internal/designer/repository"
	"plan-designer/internal/designer/units"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Designer Service
// ============================================================

func main() {
	cfg := config.Load()
	if os.Getenv("PORT") == "" {
		cfg.Port = "3001"
	}

	db, err := repository.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := repository.New(db)
	if err := repo.Init(context.Background(), cfg.MigrationsPath); err != nil {
		log.Fatalf("init db: %v", err)
	}

	conv := units.NewConverter(cfg.PixelsPerMeter)
	handler := handlers.New(repo, conv)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Designer Service",
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
	// Scene Routes
	// ============================================================

	app.Post("/scene", handler.NewScene)
	app.Post("/scene/shapes", handler.AddShape)
	app.Post("/scene/shapes/delete", handler.RemoveShape)

	// ============================================================
	// Derived Artifacts
	// ============================================================

	app.Post("/3d", handler.Project3D)
	app.Post("/estimate", handler.EstimateCost)

	// ============================================================
	// Plans, Versions & Export
	// ============================================================

	app.Post("/plans", handler.CreatePlan)
	app.Get("/plans/:id", handler.GetPlan)
	app.Post("/plans/:id/versions", handler.SaveVersion)
	app.Get("/plans/:id/versions", handler.ListVersions)
	app.Get("/plans/:id/versions/latest", handler.LatestVersion)
	app.Post("/plans/:id/export/:format", handler.Export)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Designer Service on %s (env: %s)", addr, cfg.Environment)
	log.Printf("Unit ratio: %g px per meter", conv.PixelsPerMeter())

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
