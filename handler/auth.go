package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spoiledshruu/SaaS-contracts-dashboard/config"
	"github.com/spoiledshruu/SaaS-contracts-dashboard/middleware"
)

type AuthHandler struct {
	config *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{config: cfg}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the token/display-name pair the client persists
// across page reloads.
type LoginResponse struct {
	Token       string `json:"token"`
	ExpiresAt   string `json:"expires_at"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// Login handles user login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user := h.config.FindUser(req.Username)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	// Simple password check (in production, use bcrypt)
	if user.Password != req.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, expiresAt, err := middleware.GenerateToken(user.Username, user.DisplayName, &h.config.Auth)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:       token,
		ExpiresAt:   expiresAt.Format("2006-01-02T15:04:05Z07:00"),
		Username:    user.Username,
		DisplayName: user.DisplayName,
	})
}

// GetCurrentUser returns the current user info
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"username":     middleware.GetUsername(c),
		"display_name": middleware.GetDisplayName(c),
	})
}
