package service

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gonzalcbar02/store-controller-web/internal/database/models"
	"github.com/gonzalcbar02/store-controller-web/internal/database/repository"
)

// CabinetInput carries the writable fields of a cabinet.
type CabinetInput struct {
	Name        string
	Description *string
	HouseID     uint
}

// CabinetService defines the interface for cabinet business logic
type CabinetService interface {
	ListByHouse(houseID uint) ([]models.Cabinet, error)
	Get(id uint) (*models.Cabinet, error)
	GetByQRCode(code string) (*models.Cabinet, error)
	Create(input CabinetInput) (*models.Cabinet, error)
	Update(id uint, input CabinetInput) (*models.Cabinet, error)
	Delete(id uint) error
}

type cabinetService struct {
	cabinetRepo repository.CabinetRepository
	houseRepo   repository.HouseRepository
	logger      *slog.Logger
}

// NewCabinetService creates a new cabinet service instance
func NewCabinetService(
	cabinetRepo repository.CabinetRepository,
	houseRepo repository.HouseRepository,
	logger *slog.Logger,
) CabinetService {
	return &cabinetService{
		cabinetRepo: cabinetRepo,
		houseRepo:   houseRepo,
		logger:      logger,
	}
}

func (s *cabinetService) ListByHouse(houseID uint) ([]models.Cabinet, error) {
	return s.cabinetRepo.FindByHouse(houseID)
}

func (s *cabinetService) Get(id uint) (*models.Cabinet, error) {
	return s.cabinetRepo.FindByID(id)
}

func (s *cabinetService) GetByQRCode(code string) (*models.Cabinet, error) {
	parsed, err := uuid.Parse(code)
	if err != nil {
		return nil, repository.ErrCabinetNotFound
	}
	return s.cabinetRepo.FindByQRCode(parsed)
}

func (s *cabinetService) Create(input CabinetInput) (*models.Cabinet, error) {
	if _, err := s.houseRepo.FindByID(input.HouseID); err != nil {
		if errors.Is(err, repository.ErrHouseNotFound) {
			return nil, ErrInvalidParent
		}
		return nil, err
	}

	cabinet := &models.Cabinet{
		Name:        input.Name,
		Description: input.Description,
		HouseID:     input.HouseID,
		QRCode:      uuid.New(),
	}

	if err := s.cabinetRepo.Create(cabinet); err != nil {
		s.logger.Error("failed to create cabinet", "error", err)
		return nil, err
	}

	s.logger.Info("cabinet created", "cabinet_id", cabinet.ID, "house_id", cabinet.HouseID)
	return cabinet, nil
}

func (s *cabinetService) Update(id uint, input CabinetInput) (*models.Cabinet, error) {
	cabinet, err := s.cabinetRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	cabinet.Name = input.Name
	cabinet.Description = input.Description

	if err := s.cabinetRepo.Update(cabinet); err != nil {
		s.logger.Error("failed to update cabinet", "cabinet_id", id, "error", err)
		return nil, err
	}

	return cabinet, nil
}

func (s *cabinetService) Delete(id uint) error {
	if _, err := s.cabinetRepo.FindByID(id); err != nil {
		return err
	}

	if err := s.cabinetRepo.Delete(id); err != nil {
		s.logger.Error("failed to delete cabinet", "cabinet_id", id, "error", err)
		return err
	}

	s.logger.Info("cabinet deleted", "cabinet_id", id)
	return nil
}
