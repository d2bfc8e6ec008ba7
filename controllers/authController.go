package controllers

import (
	"github.com/gin-gonic/gin"

	"ClinicDesk/handlers"
	"ClinicDesk/middlewares"
	"ClinicDesk/models"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

// NewAuthController creates a new AuthController with the given AuthHandler
func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{
		Handler: authHandler,
	}
}

// RegisterRoutes initializes all authentication routes directly on the router
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	// Public route: login is how a session token is obtained
	router.POST("/auth/login", ac.Handler.Login)

	// Admin routes: the failed-attempt counter is informational, but only
	// an admin gets to read it
	adminGroup := router.Group("/auth/admin").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleAdmin),
	)
	{
		adminGroup.GET("/failed-attempts/:username", ac.Handler.FailedAttempts)
	}
}
