package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gonzalcbar02/store-controller-web/internal/database/repository"
	"github.com/gonzalcbar02/store-controller-web/internal/database/service"
)

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	service service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	CabinetID   uint    `json:"cabinet_id" binding:"required"`
}

type UpdateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// ListByCabinet returns the products of a cabinet
func (h *ProductHandler) ListByCabinet(c *gin.Context) {
	cabinetID, ok := parseID(c, "cabinetId")
	if !ok {
		return
	}

	products, err := h.service.ListByCabinet(cabinetID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "products", products)
}

// Get returns one product by id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := h.service.Get(id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "product", product)
}

// Create creates a product under an existing cabinet
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, http.StatusBadRequest, err)
		return
	}

	product, err := h.service.Create(service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		CabinetID:   req.CabinetID,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "product", product)
}

// Update rewrites the editable fields of a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, http.StatusBadRequest, err)
		return
	}

	product, err := h.service.Update(id, service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "product", product)
}

// Delete removes a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Product deleted")
}

func (h *ProductHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidParent):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"errors":  gin.H{"cabinet_id": "exists"},
			"status":  http.StatusBadRequest,
		})
	case errors.Is(err, repository.ErrProductNotFound):
		respondMessage(c, http.StatusNotFound, "Product not found")
	default:
		h.logger.Error("internal server error", "error", err)
		respondMessage(c, http.StatusInternalServerError, "Internal server error")
	}
}
