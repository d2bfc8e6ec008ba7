package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ClinicDesk/middlewares"
	"ClinicDesk/repositories"
	"ClinicDesk/services"
	"ClinicDesk/utils"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login authenticates the operator and returns a session token along with
// the session details the front end uses to pick a menu.
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	session, err := h.service.Authenticate(credentials.Username, credentials.Password)
	if err != nil {
		if errors.Is(err, repositories.ErrNotAuthenticated) {
			c.JSON(401, gin.H{"error": "Invalid username or password"})
			return
		}
		middlewares.HttpError(c, "Login failed", http.StatusInternalServerError, err)
		return
	}

	accessToken, err := utils.GenerateAccessToken(session.Username, session.Role)
	if err != nil {
		middlewares.HttpError(c, "Failed to generate access token", http.StatusInternalServerError, err)
		return
	}

	c.JSON(200, gin.H{
		"accessToken": accessToken,
		"session":     session,
	})
}

// FailedAttempts reports the failed-login count recorded for a user. The
// count is informational only; nothing locks an account out.
func (h *AuthHandler) FailedAttempts(c *gin.Context) {
	username := c.Param("username")
	c.JSON(200, gin.H{
		"username":        username,
		"failed_attempts": h.service.FailedAttempts(username),
	})
}
