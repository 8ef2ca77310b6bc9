package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/gonzalcbar02/store-controller-web/internal/config"
	"github.com/gonzalcbar02/store-controller-web/internal/database"
	"github.com/gonzalcbar02/store-controller-web/internal/database/models"
	"github.com/gonzalcbar02/store-controller-web/internal/database/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(nickname, email, password string) (*models.User, error)
	Login(email, password string) (*models.User, string, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (uint, error)
	ForgotPassword(email string) (string, error)
	ResetPassword(email, password, confirmation, resetToken string) error
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionTokenRepository
	cache       *database.SessionCache
	cfg         *config.Config
	logger      *slog.Logger
}

// NewAuthService creates a new authentication service instance. The
// session cache may be nil; every code path falls back to Postgres.
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionTokenRepository,
	cache *database.SessionCache,
	cfg *config.Config,
	logger *slog.Logger,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cache:       cache,
		cfg:         cfg,
		logger:      logger,
	}
}

func (s *authService) Register(nickname, email, password string) (*models.User, error) {
	s.logger.Info("registration attempt", "email", email, "nickname", nickname)

	existing, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Error("database error checking email", "error", err)
		return nil, err
	}
	if existing != nil {
		s.logger.Warn("email already registered", "email", email)
		return nil, ErrEmailAlreadyExists
	}

	existing, err = s.userRepo.FindByNickname(nickname)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Error("database error checking nickname", "error", err)
		return nil, err
	}
	if existing != nil {
		s.logger.Warn("nickname already taken", "nickname", nickname)
		return nil, ErrNicknameAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		Nickname: nickname,
		Email:    email,
		Password: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		s.logger.Error("failed to create user", "error", err)
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

func (s *authService) Login(email, password string) (*models.User, string, error) {
	s.logger.Info("login attempt", "email", email)

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a wrong password so the response never
			// reveals whether the account exists.
			return nil, "", ErrInvalidCredentials
		}
		s.logger.Error("database error", "error", err)
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Warn("invalid password", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueSessionToken(user.ID)
	if err != nil {
		s.logger.Error("failed to issue session token", "error", err)
		return nil, "", err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return user, token, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.sessionRepo.RevokeToken(token); err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			s.logger.Warn("token not found for logout")
			return repository.ErrTokenNotFound
		}
		return err
	}

	if s.cache != nil {
		if err := s.cache.DeleteSession(ctx, token); err != nil {
			s.logger.Warn("failed to evict session from cache", "error", err)
		}
	}

	s.logger.Info("user logged out")
	return nil
}

// Authenticate resolves a bearer token to a user id: cache first, then
// the session_tokens table, re-priming the cache on a hit.
func (s *authService) Authenticate(ctx context.Context, token string) (uint, error) {
	if s.cache != nil {
		if userID, ok, err := s.cache.GetSession(ctx, token); err == nil && ok {
			return userID, nil
		}
	}

	session, err := s.sessionRepo.FindByToken(token)
	if err != nil {
		return 0, ErrInvalidToken
	}

	if s.cache != nil {
		if err := s.cache.SetSession(ctx, token, session.UserID); err != nil {
			s.logger.Warn("failed to cache session", "error", err)
		}
	}

	return session.UserID, nil
}

func (s *authService) ForgotPassword(email string) (string, error) {
	s.logger.Info("password reset requested", "email", email)

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", repository.ErrUserNotFound
		}
		return "", err
	}

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"type":  "password_reset",
		"exp":   time.Now().Add(time.Duration(s.cfg.ResetTokenTTL) * time.Second).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		s.logger.Error("failed to sign reset token", "error", err)
		return "", err
	}

	s.logger.Info("reset token issued", "user_id", user.ID)
	return signed, nil
}

func (s *authService) ResetPassword(email, password, confirmation, resetToken string) error {
	s.logger.Info("password reset attempt", "email", email)

	if password != confirmation {
		return ErrPasswordMismatch
	}

	// The token is validated only when the caller presents one;
	// callers without one follow the plain email-based flow.
	if resetToken != "" {
		if err := s.validateResetToken(resetToken, email); err != nil {
			return err
		}
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.ErrUserNotFound
		}
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashedPassword)
	if err := s.userRepo.Update(user); err != nil {
		s.logger.Error("failed to update password", "error", err)
		return err
	}

	// Existing sessions die with the old password.
	if err := s.sessionRepo.RevokeAllUserTokens(user.ID); err != nil {
		s.logger.Warn("failed to revoke sessions after reset", "error", err)
	}

	s.logger.Info("password reset", "user_id", user.ID)
	return nil
}

func (s *authService) validateResetToken(tokenString, email string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidResetToken
		}
		return []byte(s.cfg.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return ErrInvalidResetToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidResetToken
	}

	if claims["type"] != "password_reset" || claims["email"] != email {
		return ErrInvalidResetToken
	}

	return nil
}

// issueSessionToken creates an opaque random token, stores it and
// primes the cache.
func (s *authService) issueSessionToken(userID uint) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	tokenString := base64.URLEncoding.EncodeToString(tokenBytes)

	session := &models.SessionToken{
		UserID:    userID,
		Token:     tokenString,
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.SessionExpiration) * time.Second),
		IsRevoked: false,
	}

	if err := s.sessionRepo.Create(session); err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.SetSession(context.Background(), tokenString, userID); err != nil {
			s.logger.Warn("failed to cache new session", "error", err)
		}
	}

	return tokenString, nil
}

// Service errors
var (
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrNicknameAlreadyExists = errors.New("nickname already taken")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrInvalidToken          = errors.New("invalid or expired token")
	ErrPasswordMismatch      = errors.New("password confirmation does not match")
	ErrInvalidResetToken     = errors.New("invalid or expired reset token")
)
