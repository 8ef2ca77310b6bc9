package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gonzalcbar02/store-controller-web/internal/database/models"
)

// SessionTokenRepository defines the interface for session token operations
type SessionTokenRepository interface {
	Create(token *models.SessionToken) error
	FindByToken(token string) (*models.SessionToken, error)
	RevokeToken(token string) error
	RevokeAllUserTokens(userID uint) error
	DeleteExpiredTokens() error
}

type sessionTokenRepository struct {
	db *gorm.DB
}

// NewSessionTokenRepository creates a new session token repository instance
func NewSessionTokenRepository(db *gorm.DB) SessionTokenRepository {
	return &sessionTokenRepository{db: db}
}

func (r *sessionTokenRepository) Create(token *models.SessionToken) error {
	return r.db.Create(token).Error
}

func (r *sessionTokenRepository) FindByToken(token string) (*models.SessionToken, error) {
	var sessionToken models.SessionToken
	err := r.db.Where("token = ? AND is_revoked = false", token).
		First(&sessionToken).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}

	if time.Now().After(sessionToken.ExpiresAt) {
		return nil, ErrTokenExpired
	}

	return &sessionToken, nil
}

func (r *sessionTokenRepository) RevokeToken(token string) error {
	result := r.db.Model(&models.SessionToken{}).
		Where("token = ?", token).
		Update("is_revoked", true)

	if result.RowsAffected == 0 {
		return ErrTokenNotFound
	}

	return result.Error
}

func (r *sessionTokenRepository) RevokeAllUserTokens(userID uint) error {
	return r.db.Model(&models.SessionToken{}).
		Where("user_id = ?", userID).
		Update("is_revoked", true).Error
}

func (r *sessionTokenRepository) DeleteExpiredTokens() error {
	return r.db.Where("expires_at < ?", time.Now()).
		Delete(&models.SessionToken{}).Error
}

// Repository errors
var (
	ErrTokenNotFound = errors.New("token not found")
	ErrTokenExpired  = errors.New("token expired")
)
