package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ClinicDesk/audit"
	"ClinicDesk/config"
	"ClinicDesk/controllers"
	"ClinicDesk/handlers"
	"ClinicDesk/middlewares"
	"ClinicDesk/repositories"
	"ClinicDesk/services"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(auditLog *audit.Logger, config *config.AppConfig) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware. One human operator drives the
	// client, so the ceiling is generous.
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers. Each repository
	// loads its file once here and owns its collection from then on.
	visitRepo := repositories.NewVisitRepository(config.PatientDataFile, auditLog)
	noteIndex := repositories.NewNoteIndex(config.NotesFile, auditLog)
	credentialStore := repositories.NewCredentialStore(config.CredentialsFile, auditLog)

	visitService := services.NewVisitService(visitRepo)
	noteService := services.NewNoteService(noteIndex)
	authService := services.NewAuthService(credentialStore)
	statsService := services.NewStatsService(visitService, config.VisitStatsFile)

	visitHandler := handlers.NewVisitHandler(visitService)
	noteHandler := handlers.NewNoteHandler(noteService)
	authHandler := handlers.NewAuthHandler(authService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Register routes
	controllers.SetupVisitRoutes(router, visitHandler, noteHandler, statsHandler)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
