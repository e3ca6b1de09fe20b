// Package handlers provides HTTP request handlers for the presentation layer.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prelandr/prelandr-go/internal/application/services"
	"github.com/prelandr/prelandr-go/internal/domain/entities/user"
	"github.com/prelandr/prelandr-go/internal/infrastructure/observability/logging"
)

// AuthHandlers contains all authentication-related HTTP handlers
type AuthHandlers struct {
	authService *services.AuthService
	logger      *logging.ChanneledLogger
}

// NewAuthHandlers creates auth handlers with injected dependencies
func NewAuthHandlers(authService *services.AuthService, logger *logging.ChanneledLogger) *AuthHandlers {
	return &AuthHandlers{authService: authService, logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// PostRegister handles POST /api/v1/auth/register
func (h *AuthHandlers) PostRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password (min 8 chars) are required"})
		return
	}

	account, token, err := h.authService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Auth().Warn("Registration failed", "email", req.Email, "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"account": gin.H{
			"id":    account.ID,
			"email": account.Email,
			"orgId": account.OrgID,
		},
	})
}

// PostLogin handles POST /api/v1/auth/login
func (h *AuthHandlers) PostLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	account, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"account": gin.H{
			"id":    account.ID,
			"email": account.Email,
			"orgId": account.OrgID,
		},
	})
}
