package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gonzalcbar02/store-controller-web/internal/database/models"
)

// HouseRepository defines the interface for house data operations
type HouseRepository interface {
	Create(house *models.House) error
	FindByID(id uint) (*models.House, error)
	FindByUser(userID uint) ([]models.House, error)
	Update(house *models.House) error
	Delete(id uint) error
}

type houseRepository struct {
	db *gorm.DB
}

// NewHouseRepository creates a new house repository instance
func NewHouseRepository(db *gorm.DB) HouseRepository {
	return &houseRepository{db: db}
}

func (r *houseRepository) Create(house *models.House) error {
	return r.db.Create(house).Error
}

func (r *houseRepository) FindByID(id uint) (*models.House, error) {
	var house models.House
	err := r.db.First(&house, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHouseNotFound
		}
		return nil, err
	}
	return &house, nil
}

func (r *houseRepository) FindByUser(userID uint) ([]models.House, error) {
	var houses []models.House
	if err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&houses).Error; err != nil {
		return nil, err
	}
	return houses, nil
}

func (r *houseRepository) Update(house *models.House) error {
	return r.db.Save(house).Error
}

func (r *houseRepository) Delete(id uint) error {
	return r.db.Delete(&models.House{}, id).Error
}

// Repository errors
var (
	ErrHouseNotFound = errors.New("house not found")
)
