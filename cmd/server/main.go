package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/http/middleware"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/http/routes"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/models"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/repositories"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/config"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// @title ClubCentral API
// @version 1.0
// @description Campus club directory backend: catalog, memberships, favorites and admin approvals.

// @contact.name API Support

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase(db)

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed super admins and the static club catalog
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed database: %v", err)
	}

	// Nightly token purge + pending approval digest
	cronService := services.NewCronService(
		repositories.NewRefreshTokenRepository(db),
		repositories.NewNotificationRepository(db),
	)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "ClubCentral API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
