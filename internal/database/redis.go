package database

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gonzalcbar02/store-controller-web/internal/config"
)

// SessionCache keeps a token -> user id mapping in Redis so that the
// auth middleware can skip the database on repeat requests. Postgres
// stays the source of truth; every entry here expires on its own.
type SessionCache struct {
	client *redis.Client
	logger *slog.Logger
	cfg    *config.Config
}

// NewSessionCache creates a new session cache instance
func NewSessionCache(cfg *config.Config, logger *slog.Logger) (*SessionCache, error) {
	logger.Info("connecting to Redis",
		"host", cfg.RedisHost,
		"port", cfg.RedisPort,
		"db", cfg.RedisDatabase,
	)

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       int(cfg.RedisDatabase),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established")

	return &SessionCache{
		client: client,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// NewSessionCacheForTesting creates a SessionCache with a provided redis.Client (for testing)
func NewSessionCacheForTesting(client *redis.Client, cfg *config.Config, logger *slog.Logger) *SessionCache {
	return &SessionCache{
		client: client,
		logger: logger,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *SessionCache) Close() error {
	return s.client.Close()
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// GetSession returns the user id cached for the token. The second
// return value reports whether the token was present.
func (s *SessionCache) GetSession(ctx context.Context, token string) (uint, bool, error) {
	val, err := s.client.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, false, nil
		}
		s.logger.Error("failed to read session from cache", "error", err)
		return 0, false, err
	}

	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		// Corrupt value, drop it and treat as a miss.
		s.client.Del(ctx, sessionKey(token))
		return 0, false, nil
	}

	return uint(userID), true, nil
}

// SetSession caches a token -> user id mapping with the configured TTL.
func (s *SessionCache) SetSession(ctx context.Context, token string, userID uint) error {
	ttl := time.Duration(s.cfg.SessionCacheTTL) * time.Second

	if err := s.client.Set(ctx, sessionKey(token), strconv.FormatUint(uint64(userID), 10), ttl).Err(); err != nil {
		s.logger.Error("failed to cache session", "error", err)
		return err
	}

	s.logger.Debug("cached session", "user_id", userID, "ttl", ttl)
	return nil
}

// DeleteSession removes a token from the cache (on logout).
func (s *SessionCache) DeleteSession(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		s.logger.Error("failed to delete session from cache", "error", err)
		return err
	}
	return nil
}
