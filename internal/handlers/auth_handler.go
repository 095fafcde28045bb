package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"comictrack/internal/models"
	"comictrack/internal/services"
)

type AuthHandler struct {
	users  services.UserService
	resets services.PasswordResetService
	emails services.EmailService
}

func NewAuthHandler(users services.UserService, resets services.PasswordResetService, emails services.EmailService) *AuthHandler {
	return &AuthHandler{users: users, resets: resets, emails: emails}
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[auth][register] bind json failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Register(req.Name, strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		log.Printf("[auth][register] email=%q: %v", req.Email, err)
		respondError(c, err)
		return
	}

	if h.emails != nil {
		if err := h.emails.SendWelcomeEmail(user.Email, user.Name); err != nil {
			// warn but do not fail registration
			log.Printf("[auth][register] welcome email to %s failed: %v", user.Email, err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": user})
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[auth][login] bind json failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.users.Login(strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		log.Printf("[auth][login] email=%q: %v", req.Email, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// POST /auth/verify-email — sends a reset code to the given address.
func (h *AuthHandler) SendResetToken(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.resets.SendResetToken(strings.TrimSpace(req.Email)); err != nil {
		log.Printf("[auth][send-reset] email=%q: %v", req.Email, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /auth/verify-token
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.resets.VerifyToken(req.Token)
	if err != nil {
		respondError(c, err)
		return
	}

	// expired codes are pruned here, not inside verification
	if !result.Valid {
		if err := h.resets.RemoveToken(req.Token); err != nil {
			log.Printf("[auth][verify-token] remove expired token: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// POST /auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.resets.ResetPassword(req.Token, req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /auth/change-password (guarded)
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req struct {
		OldPassword string `json:"old_password" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.ChangePassword(userID, req.OldPassword, req.NewPassword)
	if err != nil {
		log.Printf("[auth][change-password] userID=%d: %v", userID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}
