package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gonzalcbar02/store-controller-web/internal/database/repository"
	"github.com/gonzalcbar02/store-controller-web/internal/database/service"
	"github.com/gonzalcbar02/store-controller-web/internal/middleware"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// Request DTOs
type RegisterRequest struct {
	Nickname string `json:"nickname" binding:"required,min=1,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required"`
	Token                string `json:"token"`
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, http.StatusBadRequest, err)
		return
	}

	user, err := h.service.Register(req.Nickname, req.Email, req.Password)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "user", user)
}

// Login handles user login and issues a bearer token
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, http.StatusBadRequest, err)
		return
	}

	user, token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":   user,
		"token":  token,
		"status": http.StatusOK,
	})
}

// Logout revokes the bearer token the request was authenticated with
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.BearerToken(c)

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Session closed")
}

// ForgotPassword verifies the email and issues a reset token. Delivery
// of the token is outside this service.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, http.StatusBadRequest, err)
		return
	}

	resetToken, err := h.service.ForgotPassword(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// An unregistered email is a validation failure here,
			// not a 404.
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid request data",
				"errors":  gin.H{"email": "exists"},
				"status":  http.StatusBadRequest,
			})
			return
		}
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "A recovery link has been sent to your email",
		"reset_token": resetToken,
		"status":      http.StatusOK,
	})
}

// ResetPassword overwrites the stored hash
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, http.StatusUnprocessableEntity, err)
		return
	}

	err := h.service.ResetPassword(req.Email, req.Password, req.PasswordConfirmation, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordMismatch), errors.Is(err, service.ErrInvalidResetToken):
			respondMessage(c, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, repository.ErrUserNotFound):
			respondMessage(c, http.StatusNotFound, "User not found")
		default:
			h.handleServiceError(c, err)
		}
		return
	}

	respondMessage(c, http.StatusOK, "Password updated")
}

// handleServiceError maps service errors to HTTP responses
func (h *AuthHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"errors":  gin.H{"email": "unique"},
			"status":  http.StatusBadRequest,
		})
	case errors.Is(err, service.ErrNicknameAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"errors":  gin.H{"nickname": "unique"},
			"status":  http.StatusBadRequest,
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		respondMessage(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrInvalidToken), errors.Is(err, repository.ErrTokenNotFound), errors.Is(err, repository.ErrTokenExpired):
		respondMessage(c, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, repository.ErrUserNotFound):
		respondMessage(c, http.StatusNotFound, "User not found")
	default:
		h.logger.Error("internal server error", "error", err)
		respondMessage(c, http.StatusInternalServerError, "Internal server error")
	}
}
