package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ramanuj-ai/ramanuj-site/internal/auth"
	"github.com/ramanuj-ai/ramanuj-site/internal/dtos"
	"github.com/ramanuj-ai/ramanuj-site/internal/services"
)

type AuthHandler struct {
	Users    *services.UserService
	Sessions *auth.Manager
	Log      *zap.Logger
}

func NewAuthHandler(users *services.UserService, sessions *auth.Manager, log *zap.Logger) *AuthHandler {
	return &AuthHandler{Users: users, Sessions: sessions, Log: log}
}

// LoginPage is the GET /auth/login target the admin gate redirects to.
// Already signed-in admins are bounced straight to the dashboard.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if _, ok := h.Sessions.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Login is POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, err := h.Users.FindByEmail(req.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.Log.Error("user lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := h.Sessions.SignIn(c, *user); err != nil {
		h.Log.Error("session write failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "email": user.Email, "role": user.Role})
}

// Logout is POST /auth/logout: clear the session and send the browser
// back to the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Sessions.SignOut(c); err != nil {
		h.Log.Warn("session clear failed", zap.Error(err))
	}
	c.Redirect(http.StatusFound, "/auth/login")
}
