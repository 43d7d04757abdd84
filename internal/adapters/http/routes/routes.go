package routes

import (
	"studesk/internal/adapters/http/handlers"
	"studesk/internal/adapters/http/middleware"
	"studesk/internal/adapters/persistence/repositories"
	"studesk/internal/config"
	"studesk/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Repositories
	studentRepo := repositories.NewStudentRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	requestRepo := repositories.NewRequestRepository(db)
	complaintRepo := repositories.NewComplaintRepository(db)
	lookupRepo := repositories.NewLookupRepository(db)

	// Services
	mailer := services.NewMailer(cfg.SMTP)
	authService := services.NewAuthService(adminRepo, refreshTokenRepo, cfg)
	studentService := services.NewStudentService(studentRepo, requestRepo)
	requestService := services.NewRequestService(requestRepo, studentRepo, mailer)
	complaintService := services.NewComplaintService(complaintRepo, requestRepo, mailer)
	dashboardService := services.NewDashboardService(db)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	studentHandler := handlers.NewStudentHandler(studentService)
	requestHandler := handlers.NewRequestHandler(requestService)
	complaintHandler := handlers.NewComplaintHandler(complaintService)
	lookupHandler := handlers.NewLookupHandler(lookupRepo)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")

	// Auth
	api.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	api.Post("/auth/refresh", authHandler.Refresh)
	api.Post("/logout", middleware.AuthMiddleware(cfg), authHandler.Logout)

	// Students (public: identity validation and self-service history)
	api.Post("/students/validate", studentHandler.Validate)
	api.Post("/students/demands", studentHandler.Demands)
	api.Post("/students/history", studentHandler.History)

	// Lookups
	api.Get("/academic-years", lookupHandler.AcademicYears)
	api.Get("/semesters", lookupHandler.Semesters)
	api.Get("/supervisors", lookupHandler.Supervisors)

	// Document requests
	api.Get("/requests", requestHandler.List)
	api.Post("/requests", middleware.SubmitRateLimiter(), requestHandler.Create)
	api.Get("/requests/:id/download", requestHandler.Download)

	// Complaints
	api.Get("/complaints", complaintHandler.List)
	api.Post("/complaints", middleware.SubmitRateLimiter(), complaintHandler.Create)
	api.Get("/complaints/:id", complaintHandler.Get)

	// Admin-only operations
	admin := api.Group("", middleware.AuthMiddleware(cfg))
	admin.Post("/requests/:id/status", requestHandler.UpdateStatus)
	admin.Post("/requests/:id/send-email", requestHandler.SendEmail)
	admin.Post("/complaints/:id/response", complaintHandler.Respond)
	admin.Get("/dashboard", dashboardHandler.Get)
}
