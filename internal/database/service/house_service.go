package service

import (
	"errors"
	"log/slog"

	"github.com/gonzalcbar02/store-controller-web/internal/database/models"
	"github.com/gonzalcbar02/store-controller-web/internal/database/repository"
)

// HouseInput carries the writable fields of a house. The owner is set
// at creation and never changes on update.
type HouseInput struct {
	Name        string
	Description *string
	Image       *string
	UserID      uint
}

// HouseService defines the interface for house business logic
type HouseService interface {
	ListByUser(userID uint) ([]models.House, error)
	Get(id uint) (*models.House, error)
	Create(input HouseInput) (*models.House, error)
	Update(id uint, input HouseInput) (*models.House, error)
	Delete(id uint) error
}

type houseService struct {
	houseRepo repository.HouseRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// NewHouseService creates a new house service instance
func NewHouseService(
	houseRepo repository.HouseRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) HouseService {
	return &houseService{
		houseRepo: houseRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (s *houseService) ListByUser(userID uint) ([]models.House, error) {
	// An unknown owner simply yields an empty list.
	return s.houseRepo.FindByUser(userID)
}

func (s *houseService) Get(id uint) (*models.House, error) {
	return s.houseRepo.FindByID(id)
}

func (s *houseService) Create(input HouseInput) (*models.House, error) {
	if _, err := s.userRepo.FindByID(input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidParent
		}
		return nil, err
	}

	house := &models.House{
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		UserID:      input.UserID,
	}

	if err := s.houseRepo.Create(house); err != nil {
		s.logger.Error("failed to create house", "error", err)
		return nil, err
	}

	s.logger.Info("house created", "house_id", house.ID, "user_id", house.UserID)
	return house, nil
}

func (s *houseService) Update(id uint, input HouseInput) (*models.House, error) {
	house, err := s.houseRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	house.Name = input.Name
	house.Description = input.Description
	house.Image = input.Image

	if err := s.houseRepo.Update(house); err != nil {
		s.logger.Error("failed to update house", "house_id", id, "error", err)
		return nil, err
	}

	return house, nil
}

func (s *houseService) Delete(id uint) error {
	if _, err := s.houseRepo.FindByID(id); err != nil {
		return err
	}

	// Cabinets and products go with it via the FK cascade.
	if err := s.houseRepo.Delete(id); err != nil {
		s.logger.Error("failed to delete house", "house_id", id, "error", err)
		return err
	}

	s.logger.Info("house deleted", "house_id", id)
	return nil
}

// ErrInvalidParent marks a create request whose parent id references
// nothing; handlers report it as a validation failure, not a 404.
var ErrInvalidParent = errors.New("referenced parent does not exist")
