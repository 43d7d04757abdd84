package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"studesk/internal/adapters/http/middleware"
	"studesk/internal/adapters/http/routes"
	"studesk/internal/adapters/persistence/models"
	"studesk/internal/adapters/persistence/repositories"
	"studesk/internal/config"
	"studesk/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "studesk/docs" // Swagger docs
)

// @title StuDesk student services API
// @version 1.0
// @description Student document requests and complaints portal API

// @host localhost:3000
// @BasePath /api
// @schemes http https

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
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed master data and dev fixtures
	if err := config.NewSeeder(db, cfg).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed data: %v", err)
	}

	// Daily backlog reminder (08:30)
	mailer := services.NewMailer(cfg.SMTP)
	reminder := services.NewReminderService(
		repositories.NewRequestRepository(db),
		repositories.NewComplaintRepository(db),
		mailer,
		os.Getenv("ADMIN_NOTIFY_EMAIL"),
	)
	reminder.Start()
	defer reminder.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "StuDesk API v1.0",
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
