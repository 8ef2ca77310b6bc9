package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gonzalcbar02/store-controller-web/internal/database/models"
)

// setupTestDB creates a new in-memory SQLite database for testing.
// Foreign keys are switched on so cascade deletes behave like the
// Postgres schema.
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.House{},
		&models.Cabinet{},
		&models.Product{},
		&models.SessionToken{},
	)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, nickname, email string) *models.User {
	user := &models.User{Nickname: nickname, Email: email, Password: "hashedpassword"}
	require.NoError(t, NewUserRepository(db).Create(user))
	return user
}

func createTestHouse(t *testing.T, db *gorm.DB, userID uint, name string) *models.House {
	house := &models.House{Name: name, UserID: userID}
	require.NoError(t, NewHouseRepository(db).Create(house))
	return house
}

func createTestCabinet(t *testing.T, db *gorm.DB, houseID uint, name string) *models.Cabinet {
	cabinet := &models.Cabinet{Name: name, HouseID: houseID, QRCode: uuid.New()}
	require.NoError(t, NewCabinetRepository(db).Create(cabinet))
	return cabinet
}

// ==================== USER REPOSITORY TESTS ====================

func TestUserRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	tests := []struct {
		name    string
		user    *models.User
		wantErr bool
	}{
		{
			name:    "success",
			user:    &models.User{Nickname: "bob", Email: "b@x.com", Password: "hash"},
			wantErr: false,
		},
		{
			name:    "duplicate email",
			user:    &models.User{Nickname: "other", Email: "b@x.com", Password: "hash"},
			wantErr: true,
		},
		{
			name:    "duplicate nickname",
			user:    &models.User{Nickname: "bob", Email: "c@x.com", Password: "hash"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(tt.user)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotZero(t, tt.user.ID)
			}
		})
	}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	created := createTestUser(t, db, "finder", "find@example.com")

	found, err := repo.FindByEmail("find@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "finder", found.Nickname)

	_, err = repo.FindByEmail("missing@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_DeleteThenFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := createTestUser(t, db, "gone", "gone@example.com")

	require.NoError(t, repo.Delete(user.ID))

	_, err := repo.FindByID(user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	// A never-created id behaves the same.
	_, err = repo.FindByID(99999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// ==================== HOUSE REPOSITORY TESTS ====================

func TestHouseRepository_FindByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHouseRepository(db)

	owner := createTestUser(t, db, "owner", "owner@example.com")
	other := createTestUser(t, db, "other", "other@example.com")

	first := createTestHouse(t, db, owner.ID, "Home")
	second := createTestHouse(t, db, owner.ID, "Cottage")
	createTestHouse(t, db, other.ID, "Elsewhere")

	houses, err := repo.FindByUser(owner.ID)
	require.NoError(t, err)
	require.Len(t, houses, 2)
	// Insertion order by id.
	assert.Equal(t, first.ID, houses[0].ID)
	assert.Equal(t, second.ID, houses[1].ID)

	// Unknown owner yields an empty list, not an error.
	houses, err = repo.FindByUser(99999)
	require.NoError(t, err)
	assert.Empty(t, houses)
}

func TestHouseRepository_CreateRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHouseRepository(db)

	owner := createTestUser(t, db, "owner", "owner@example.com")

	description := "ground floor"
	image := "https://example.com/house.jpg"
	house := &models.House{
		Name:        "Home",
		Description: &description,
		Image:       &image,
		UserID:      owner.ID,
	}
	require.NoError(t, repo.Create(house))
	require.NotZero(t, house.ID)

	found, err := repo.FindByID(house.ID)
	require.NoError(t, err)
	assert.Equal(t, "Home", found.Name)
	require.NotNil(t, found.Description)
	assert.Equal(t, description, *found.Description)
	require.NotNil(t, found.Image)
	assert.Equal(t, image, *found.Image)
	assert.Equal(t, owner.ID, found.UserID)
}

// ==================== CABINET REPOSITORY TESTS ====================

func TestCabinetRepository_FindByQRCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCabinetRepository(db)

	owner := createTestUser(t, db, "owner", "owner@example.com")
	house := createTestHouse(t, db, owner.ID, "Home")
	cabinet := createTestCabinet(t, db, house.ID, "Pantry")

	found, err := repo.FindByQRCode(cabinet.QRCode)
	require.NoError(t, err)
	assert.Equal(t, cabinet.ID, found.ID)

	_, err = repo.FindByQRCode(uuid.New())
	assert.ErrorIs(t, err, ErrCabinetNotFound)
}

// ==================== CASCADE TESTS ====================

func TestCascade_DeleteHouseRemovesCabinetsAndProducts(t *testing.T) {
	db := setupTestDB(t)

	houseRepo := NewHouseRepository(db)
	cabinetRepo := NewCabinetRepository(db)
	productRepo := NewProductRepository(db)

	owner := createTestUser(t, db, "owner", "owner@example.com")

	tests := []struct {
		name     string
		cabinets int
	}{
		{name: "zero cabinets", cabinets: 0},
		{name: "one cabinet", cabinets: 1},
		{name: "three cabinets", cabinets: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			house := createTestHouse(t, db, owner.ID, "Home")

			var cabinetIDs []uint
			var productIDs []uint
			for i := 0; i < tt.cabinets; i++ {
				cabinet := createTestCabinet(t, db, house.ID, "Cabinet")
				cabinetIDs = append(cabinetIDs, cabinet.ID)

				product := &models.Product{Name: "Thing", CabinetID: cabinet.ID}
				require.NoError(t, productRepo.Create(product))
				productIDs = append(productIDs, product.ID)
			}

			require.NoError(t, houseRepo.Delete(house.ID))

			_, err := houseRepo.FindByID(house.ID)
			assert.ErrorIs(t, err, ErrHouseNotFound)

			for _, id := range cabinetIDs {
				_, err := cabinetRepo.FindByID(id)
				assert.ErrorIs(t, err, ErrCabinetNotFound)
			}
			for _, id := range productIDs {
				_, err := productRepo.FindByID(id)
				assert.ErrorIs(t, err, ErrProductNotFound)
			}
		})
	}
}

// ==================== SESSION TOKEN REPOSITORY TESTS ====================

func TestSessionTokenRepository_FindByToken(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionTokenRepository(db)

	user := createTestUser(t, db, "bob", "bob@example.com")

	valid := &models.SessionToken{
		UserID:    user.ID,
		Token:     "valid-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(valid))

	expired := &models.SessionToken{
		UserID:    user.ID,
		Token:     "expired-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.Create(expired))

	found, err := repo.FindByToken("valid-token")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)

	_, err = repo.FindByToken("expired-token")
	assert.ErrorIs(t, err, ErrTokenExpired)

	_, err = repo.FindByToken("no-such-token")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestSessionTokenRepository_RevokeToken(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionTokenRepository(db)

	user := createTestUser(t, db, "bob", "bob@example.com")

	token := &models.SessionToken{
		UserID:    user.ID,
		Token:     "session",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(token))

	require.NoError(t, repo.RevokeToken("session"))

	_, err := repo.FindByToken("session")
	assert.ErrorIs(t, err, ErrTokenNotFound)

	assert.ErrorIs(t, repo.RevokeToken("absent"), ErrTokenNotFound)
}
