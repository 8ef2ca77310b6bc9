package service

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/gonzalcbar02/store-controller-web/internal/database/models"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByNickname(nickname string) (*models.User, error) {
	args := m.Called(nickname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockSessionTokenRepository is a mock implementation of repository.SessionTokenRepository
type MockSessionTokenRepository struct {
	mock.Mock
}

func (m *MockSessionTokenRepository) Create(token *models.SessionToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockSessionTokenRepository) FindByToken(token string) (*models.SessionToken, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionToken), args.Error(1)
}

func (m *MockSessionTokenRepository) RevokeToken(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockSessionTokenRepository) RevokeAllUserTokens(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockSessionTokenRepository) DeleteExpiredTokens() error {
	args := m.Called()
	return args.Error(0)
}

// MockHouseRepository is a mock implementation of repository.HouseRepository
type MockHouseRepository struct {
	mock.Mock
}

func (m *MockHouseRepository) Create(house *models.House) error {
	args := m.Called(house)
	return args.Error(0)
}

func (m *MockHouseRepository) FindByID(id uint) (*models.House, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.House), args.Error(1)
}

func (m *MockHouseRepository) FindByUser(userID uint) ([]models.House, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.House), args.Error(1)
}

func (m *MockHouseRepository) Update(house *models.House) error {
	args := m.Called(house)
	return args.Error(0)
}

func (m *MockHouseRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCabinetRepository is a mock implementation of repository.CabinetRepository
type MockCabinetRepository struct {
	mock.Mock
}

func (m *MockCabinetRepository) Create(cabinet *models.Cabinet) error {
	args := m.Called(cabinet)
	return args.Error(0)
}

func (m *MockCabinetRepository) FindByID(id uint) (*models.Cabinet, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cabinet), args.Error(1)
}

func (m *MockCabinetRepository) FindByQRCode(code uuid.UUID) (*models.Cabinet, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cabinet), args.Error(1)
}

func (m *MockCabinetRepository) FindByHouse(houseID uint) ([]models.Cabinet, error) {
	args := m.Called(houseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Cabinet), args.Error(1)
}

func (m *MockCabinetRepository) Update(cabinet *models.Cabinet) error {
	args := m.Called(cabinet)
	return args.Error(0)
}

func (m *MockCabinetRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of repository.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCabinet(cabinetID uint) ([]models.Product, error) {
	args := m.Called(cabinetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
