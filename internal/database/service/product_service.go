package service

import (
	"errors"
	"log/slog"

	"github.com/gonzalcbar02/store-controller-web/internal/database/models"
	"github.com/gonzalcbar02/store-controller-web/internal/database/repository"
)

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name        string
	Description *string
	Image       *string
	CabinetID   uint
}

// ProductService defines the interface for product business logic
type ProductService interface {
	ListByCabinet(cabinetID uint) ([]models.Product, error)
	Get(id uint) (*models.Product, error)
	Create(input ProductInput) (*models.Product, error)
	Update(id uint, input ProductInput) (*models.Product, error)
	Delete(id uint) error
}

type productService struct {
	productRepo repository.ProductRepository
	cabinetRepo repository.CabinetRepository
	logger      *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(
	productRepo repository.ProductRepository,
	cabinetRepo repository.CabinetRepository,
	logger *slog.Logger,
) ProductService {
	return &productService{
		productRepo: productRepo,
		cabinetRepo: cabinetRepo,
		logger:      logger,
	}
}

func (s *productService) ListByCabinet(cabinetID uint) ([]models.Product, error) {
	return s.productRepo.FindByCabinet(cabinetID)
}

func (s *productService) Get(id uint) (*models.Product, error) {
	return s.productRepo.FindByID(id)
}

func (s *productService) Create(input ProductInput) (*models.Product, error) {
	if _, err := s.cabinetRepo.FindByID(input.CabinetID); err != nil {
		if errors.Is(err, repository.ErrCabinetNotFound) {
			return nil, ErrInvalidParent
		}
		return nil, err
	}

	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		CabinetID:   input.CabinetID,
	}

	if err := s.productRepo.Create(product); err != nil {
		s.logger.Error("failed to create product", "error", err)
		return nil, err
	}

	s.logger.Info("product created", "product_id", product.ID, "cabinet_id", product.CabinetID)
	return product, nil
}

func (s *productService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Image = input.Image

	if err := s.productRepo.Update(product); err != nil {
		s.logger.Error("failed to update product", "product_id", id, "error", err)
		return nil, err
	}

	return product, nil
}

func (s *productService) Delete(id uint) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		return err
	}

	if err := s.productRepo.Delete(id); err != nil {
		s.logger.Error("failed to delete product", "product_id", id, "error", err)
		return err
	}

	s.logger.Info("product deleted", "product_id", id)
	return nil
}
