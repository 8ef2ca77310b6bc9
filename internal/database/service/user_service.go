package service

import (
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/gonzalcbar02/store-controller-web/internal/database/models"
	"github.com/gonzalcbar02/store-controller-web/internal/database/repository"
)

// UserInput carries the writable fields of a user profile. Password is
// optional on update; when empty the stored hash is kept.
type UserInput struct {
	Nickname string
	Email    string
	Password string
}

// UserService defines the interface for user business logic
type UserService interface {
	List() ([]models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(id uint, input UserInput) (*models.User, error)
	Delete(id uint) error
}

type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *userService) List() ([]models.User, error) {
	return s.userRepo.FindAll()
}

func (s *userService) GetByEmail(email string) (*models.User, error) {
	return s.userRepo.FindByEmail(email)
}

func (s *userService) Update(id uint, input UserInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	// Uniqueness checks skip the user being updated.
	if other, err := s.userRepo.FindByEmail(input.Email); err == nil && other.ID != id {
		return nil, ErrEmailAlreadyExists
	} else if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	if other, err := s.userRepo.FindByNickname(input.Nickname); err == nil && other.ID != id {
		return nil, ErrNicknameAlreadyExists
	} else if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	user.Nickname = input.Nickname
	user.Email = input.Email

	if input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashedPassword)
	}

	if err := s.userRepo.Update(user); err != nil {
		s.logger.Error("failed to update user", "user_id", id, "error", err)
		return nil, err
	}

	return user, nil
}

func (s *userService) Delete(id uint) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		return err
	}

	// Houses, cabinets and products of the user fall with the cascade.
	if err := s.userRepo.Delete(id); err != nil {
		s.logger.Error("failed to delete user", "user_id", id, "error", err)
		return err
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}
