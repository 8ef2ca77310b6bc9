package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gonzalcbar02/store-controller-web/internal/database/repository"
	"github.com/gonzalcbar02/store-controller-web/internal/database/service"
)

// HouseHandler handles HTTP requests for houses
type HouseHandler struct {
	service service.HouseService
	logger  *slog.Logger
}

// NewHouseHandler creates a new house handler
func NewHouseHandler(service service.HouseService, logger *slog.Logger) *HouseHandler {
	return &HouseHandler{
		service: service,
		logger:  logger,
	}
}

type CreateHouseRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	UserID      uint    `json:"user_id" binding:"required"`
}

type UpdateHouseRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// ListByUser returns the houses owned by a user; an unknown user id
// yields an empty list, never a 404.
func (h *HouseHandler) ListByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	houses, err := h.service.ListByUser(userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "houses", houses)
}

// Get returns one house by id
func (h *HouseHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	house, err := h.service.Get(id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "house", house)
}

// Create creates a house under an existing user
func (h *HouseHandler) Create(c *gin.Context) {
	var req CreateHouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, http.StatusBadRequest, err)
		return
	}

	house, err := h.service.Create(service.HouseInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		UserID:      req.UserID,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "house", house)
}

// Update rewrites the editable fields of a house; the owner never changes
func (h *HouseHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateHouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, http.StatusBadRequest, err)
		return
	}

	house, err := h.service.Update(id, service.HouseInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "house", house)
}

// Delete removes a house and, through the cascade, everything in it
func (h *HouseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "House deleted")
}

func (h *HouseHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidParent):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"errors":  gin.H{"user_id": "exists"},
			"status":  http.StatusBadRequest,
		})
	case errors.Is(err, repository.ErrHouseNotFound):
		respondMessage(c, http.StatusNotFound, "House not found")
	default:
		h.logger.Error("internal server error", "error", err)
		respondMessage(c, http.StatusInternalServerError, "Internal server error")
	}
}
