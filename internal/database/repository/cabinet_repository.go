package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gonzalcbar02/store-controller-web/internal/database/models"
)

// CabinetRepository defines the interface for cabinet data operations
type CabinetRepository interface {
	Create(cabinet *models.Cabinet) error
	FindByID(id uint) (*models.Cabinet, error)
	FindByQRCode(code uuid.UUID) (*models.Cabinet, error)
	FindByHouse(houseID uint) ([]models.Cabinet, error)
	Update(cabinet *models.Cabinet) error
	Delete(id uint) error
}

type cabinetRepository struct {
	db *gorm.DB
}

// NewCabinetRepository creates a new cabinet repository instance
func NewCabinetRepository(db *gorm.DB) CabinetRepository {
	return &cabinetRepository{db: db}
}

func (r *cabinetRepository) Create(cabinet *models.Cabinet) error {
	return r.db.Create(cabinet).Error
}

func (r *cabinetRepository) FindByID(id uint) (*models.Cabinet, error) {
	var cabinet models.Cabinet
	err := r.db.First(&cabinet, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCabinetNotFound
		}
		return nil, err
	}
	return &cabinet, nil
}

func (r *cabinetRepository) FindByQRCode(code uuid.UUID) (*models.Cabinet, error) {
	var cabinet models.Cabinet
	err := r.db.Where("qr_code = ?", code).First(&cabinet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCabinetNotFound
		}
		return nil, err
	}
	return &cabinet, nil
}

func (r *cabinetRepository) FindByHouse(houseID uint) ([]models.Cabinet, error) {
	var cabinets []models.Cabinet
	if err := r.db.Where("house_id = ?", houseID).Order("id ASC").Find(&cabinets).Error; err != nil {
		return nil, err
	}
	return cabinets, nil
}

func (r *cabinetRepository) Update(cabinet *models.Cabinet) error {
	return r.db.Save(cabinet).Error
}

func (r *cabinetRepository) Delete(id uint) error {
	return r.db.Delete(&models.Cabinet{}, id).Error
}

// Repository errors
var (
	ErrCabinetNotFound = errors.New("cabinet not found")
)
