package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gonzalcbar02/store-controller-web/internal/database/models"
	"github.com/gonzalcbar02/store-controller-web/internal/database/repository"
)

func TestHouseService_Create(t *testing.T) {
	tests := []struct {
		name      string
		input     HouseInput
		setupMock func(houseRepo *MockHouseRepository, userRepo *MockUserRepository)
		wantErr   error
	}{
		{
			name:  "success",
			input: HouseInput{Name: "Home", UserID: 1},
			setupMock: func(houseRepo *MockHouseRepository, userRepo *MockUserRepository) {
				userRepo.On("FindByID", uint(1)).Return(&models.User{ID: 1}, nil)
				houseRepo.On("Create", mock.AnythingOfType("*models.House")).Run(func(args mock.Arguments) {
					args.Get(0).(*models.House).ID = 10
				}).Return(nil)
			},
		},
		{
			name:  "unknown owner",
			input: HouseInput{Name: "Home", UserID: 99},
			setupMock: func(houseRepo *MockHouseRepository, userRepo *MockUserRepository) {
				userRepo.On("FindByID", uint(99)).Return(nil, repository.ErrUserNotFound)
			},
			wantErr: ErrInvalidParent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			houseRepo := new(MockHouseRepository)
			userRepo := new(MockUserRepository)
			tt.setupMock(houseRepo, userRepo)

			svc := NewHouseService(houseRepo, userRepo, testLogger())
			house, err := svc.Create(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, house)
			} else {
				require.NoError(t, err)
				require.NotNil(t, house)
				assert.Equal(t, tt.input.Name, house.Name)
				assert.Equal(t, tt.input.UserID, house.UserID)
			}
			houseRepo.AssertExpectations(t)
			userRepo.AssertExpectations(t)
		})
	}
}

func TestHouseService_Update_KeepsOwner(t *testing.T) {
	houseRepo := new(MockHouseRepository)
	userRepo := new(MockUserRepository)

	houseRepo.On("FindByID", uint(10)).Return(&models.House{ID: 10, Name: "Home", UserID: 1}, nil)
	houseRepo.On("Update", mock.AnythingOfType("*models.House")).Return(nil)

	svc := NewHouseService(houseRepo, userRepo, testLogger())

	// UserID in the input is ignored; houses never change owner.
	updated, err := svc.Update(10, HouseInput{Name: "Renamed", UserID: 42})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, uint(1), updated.UserID)
}

func TestHouseService_Delete_NotFound(t *testing.T) {
	houseRepo := new(MockHouseRepository)
	userRepo := new(MockUserRepository)

	houseRepo.On("FindByID", uint(99)).Return(nil, repository.ErrHouseNotFound)

	svc := NewHouseService(houseRepo, userRepo, testLogger())
	err := svc.Delete(99)
	assert.ErrorIs(t, err, repository.ErrHouseNotFound)
	houseRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestCabinetService_Create(t *testing.T) {
	tests := []struct {
		name      string
		input     CabinetInput
		setupMock func(cabinetRepo *MockCabinetRepository, houseRepo *MockHouseRepository)
		wantErr   error
	}{
		{
			name:  "success assigns a qr code",
			input: CabinetInput{Name: "Pantry", HouseID: 10},
			setupMock: func(cabinetRepo *MockCabinetRepository, houseRepo *MockHouseRepository) {
				houseRepo.On("FindByID", uint(10)).Return(&models.House{ID: 10}, nil)
				cabinetRepo.On("Create", mock.AnythingOfType("*models.Cabinet")).Return(nil)
			},
		},
		{
			name:  "unknown house",
			input: CabinetInput{Name: "Pantry", HouseID: 99},
			setupMock: func(cabinetRepo *MockCabinetRepository, houseRepo *MockHouseRepository) {
				houseRepo.On("FindByID", uint(99)).Return(nil, repository.ErrHouseNotFound)
			},
			wantErr: ErrInvalidParent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cabinetRepo := new(MockCabinetRepository)
			houseRepo := new(MockHouseRepository)
			tt.setupMock(cabinetRepo, houseRepo)

			svc := NewCabinetService(cabinetRepo, houseRepo, testLogger())
			cabinet, err := svc.Create(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, cabinet)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cabinet)
				assert.NotEqual(t, uuid.Nil, cabinet.QRCode)
			}
			cabinetRepo.AssertExpectations(t)
			houseRepo.AssertExpectations(t)
		})
	}
}

func TestCabinetService_GetByQRCode(t *testing.T) {
	code := uuid.New()

	tests := []struct {
		name      string
		code      string
		setupMock func(cabinetRepo *MockCabinetRepository)
		wantErr   error
	}{
		{
			name: "known code",
			code: code.String(),
			setupMock: func(cabinetRepo *MockCabinetRepository) {
				cabinetRepo.On("FindByQRCode", code).Return(&models.Cabinet{ID: 3, QRCode: code}, nil)
			},
		},
		{
			name:      "malformed code never hits the database",
			code:      "not-a-uuid",
			setupMock: func(cabinetRepo *MockCabinetRepository) {},
			wantErr:   repository.ErrCabinetNotFound,
		},
		{
			name: "unknown code",
			code: code.String(),
			setupMock: func(cabinetRepo *MockCabinetRepository) {
				cabinetRepo.On("FindByQRCode", code).Return(nil, repository.ErrCabinetNotFound)
			},
			wantErr: repository.ErrCabinetNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cabinetRepo := new(MockCabinetRepository)
			houseRepo := new(MockHouseRepository)
			tt.setupMock(cabinetRepo)

			svc := NewCabinetService(cabinetRepo, houseRepo, testLogger())
			cabinet, err := svc.GetByQRCode(tt.code)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, cabinet)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint(3), cabinet.ID)
			}
			cabinetRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_Create(t *testing.T) {
	tests := []struct {
		name      string
		input     ProductInput
		setupMock func(productRepo *MockProductRepository, cabinetRepo *MockCabinetRepository)
		wantErr   error
	}{
		{
			name:  "success",
			input: ProductInput{Name: "Rice", CabinetID: 3},
			setupMock: func(productRepo *MockProductRepository, cabinetRepo *MockCabinetRepository) {
				cabinetRepo.On("FindByID", uint(3)).Return(&models.Cabinet{ID: 3}, nil)
				productRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil)
			},
		},
		{
			name:  "unknown cabinet",
			input: ProductInput{Name: "Rice", CabinetID: 99},
			setupMock: func(productRepo *MockProductRepository, cabinetRepo *MockCabinetRepository) {
				cabinetRepo.On("FindByID", uint(99)).Return(nil, repository.ErrCabinetNotFound)
			},
			wantErr: ErrInvalidParent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := new(MockProductRepository)
			cabinetRepo := new(MockCabinetRepository)
			tt.setupMock(productRepo, cabinetRepo)

			svc := NewProductService(productRepo, cabinetRepo, testLogger())
			product, err := svc.Create(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, product)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.input.CabinetID, product.CabinetID)
			}
			productRepo.AssertExpectations(t)
			cabinetRepo.AssertExpectations(t)
		})
	}
}
