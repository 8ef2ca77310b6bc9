package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gonzalcbar02/store-controller-web/internal/database/repository"
	"github.com/gonzalcbar02/store-controller-web/internal/database/service"
)

// CabinetHandler handles HTTP requests for cabinets
type CabinetHandler struct {
	service service.CabinetService
	logger  *slog.Logger
}

// NewCabinetHandler creates a new cabinet handler
func NewCabinetHandler(service service.CabinetService, logger *slog.Logger) *CabinetHandler {
	return &CabinetHandler{
		service: service,
		logger:  logger,
	}
}

type CreateCabinetRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	HouseID     uint    `json:"house_id" binding:"required"`
}

type UpdateCabinetRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// ListByHouse returns the cabinets of a house
func (h *CabinetHandler) ListByHouse(c *gin.Context) {
	houseID, ok := parseID(c, "houseId")
	if !ok {
		return
	}

	cabinets, err := h.service.ListByHouse(houseID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "cabinets", cabinets)
}

// Get returns one cabinet by id
func (h *CabinetHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	cabinet, err := h.service.Get(id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "cabinet", cabinet)
}

// ResolveQR resolves a cabinet from the public identifier embedded in
// a scanned QR deep link. Unauthenticated.
func (h *CabinetHandler) ResolveQR(c *gin.Context) {
	cabinet, err := h.service.GetByQRCode(c.Param("code"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "cabinet", cabinet)
}

// Create creates a cabinet under an existing house
func (h *CabinetHandler) Create(c *gin.Context) {
	var req CreateCabinetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, http.StatusBadRequest, err)
		return
	}

	cabinet, err := h.service.Create(service.CabinetInput{
		Name:        req.Name,
		Description: req.Description,
		HouseID:     req.HouseID,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "cabinet", cabinet)
}

// Update rewrites the editable fields of a cabinet
func (h *CabinetHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateCabinetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, http.StatusBadRequest, err)
		return
	}

	cabinet, err := h.service.Update(id, service.CabinetInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "cabinet", cabinet)
}

// Delete removes a cabinet and its products
func (h *CabinetHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Cabinet deleted")
}

func (h *CabinetHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidParent):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"errors":  gin.H{"house_id": "exists"},
			"status":  http.StatusBadRequest,
		})
	case errors.Is(err, repository.ErrCabinetNotFound):
		respondMessage(c, http.StatusNotFound, "Cabinet not found")
	default:
		h.logger.Error("internal server error", "error", err)
		respondMessage(c, http.StatusInternalServerError, "Internal server error")
	}
}
