package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gonzalcbar02/store-controller-web/internal/database/repository"
	"github.com/gonzalcbar02/store-controller-web/internal/database/service"
)

// UserHandler handles HTTP requests for user profiles
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

type UpdateUserRequest struct {
	Nickname string `json:"nickname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

// List returns every registered user
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List()
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "users", users)
}

// GetByEmail returns one user looked up by email
func (h *UserHandler) GetByEmail(c *gin.Context) {
	user, err := h.service.GetByEmail(c.Param("email"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "user", user)
}

// Update rewrites the profile fields; password only when provided
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, http.StatusBadRequest, err)
		return
	}

	user, err := h.service.Update(id, service.UserInput{
		Nickname: req.Nickname,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "user", user)
}

// Delete removes a user account and everything it owns
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "User deleted")
}

func (h *UserHandler) handleServiceError(c *gin.Context, err error) {
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
	case errors.Is(err, repository.ErrUserNotFound):
		respondMessage(c, http.StatusNotFound, "User not found")
	default:
		h.logger.Error("internal server error", "error", err)
		respondMessage(c, http.StatusInternalServerError, "Internal server error")
	}
}
