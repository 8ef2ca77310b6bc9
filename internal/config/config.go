package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv             string
	LogLevel           slog.Level
	ApiServicePort     string
	PostgreSQLHost     string
	PostgreSQLPort     int64
	PostgreSQLUser     string
	PostgreSQLPassword string
	PostgreSQLDatabase string
	RedisHost          string
	RedisPort          int64
	RedisPassword      string
	RedisDatabase      int64
	JWTSecret          string
	SessionExpiration  int64 // Session token lifetime in seconds
	SessionCacheTTL    int64 // Redis cache TTL for sessions in seconds
	ResetTokenTTL      int64 // Signed reset token lifetime in seconds
	DefaultImageURL    string
}

func LoadConfig() *Config {
	return &Config{
		AppEnv:             getEnv("APP_ENV", "development"),                // Default development
		LogLevel:           getLogLevel(),                                   // Default INFO
		ApiServicePort:     getEnv("API_SERVICE_PORT", "8000"),              // Default 8000
		PostgreSQLHost:     getEnv("POSTGRESQL_HOST", "db"),                 // Default db
		PostgreSQLPort:     getEnvAsInt64("POSTGRESQL_PORT", 5432),          // Default 5432
		PostgreSQLUser:     getEnv("POSTGRESQL_USER", "store_user"),         // Default user
		PostgreSQLPassword: getEnv("POSTGRESQL_PASSWORD", "store_pass"),     // Default password
		PostgreSQLDatabase: getEnv("POSTGRESQL_DATABASE", "store_db"),       // Default database name
		RedisHost:          getEnv("REDIS_HOST", "redis"),                   // Default redis
		RedisPort:          getEnvAsInt64("REDIS_PORT", 6379),               // Default 6379
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),                    // Default empty
		RedisDatabase:      getEnvAsInt64("REDIS_DATABASE", 0),              // Default 0
		JWTSecret:          getEnv("JWT_SECRET", "store_controller_secret"), // Default secret key
		SessionExpiration:  getEnvAsInt64("SESSION_EXPIRATION", 604800),     // Default 7 days
		SessionCacheTTL:    getEnvAsInt64("SESSION_CACHE_TTL", 900),         // Default 15 minutes
		ResetTokenTTL:      getEnvAsInt64("RESET_TOKEN_TTL", 900),           // Default 15 minutes
		DefaultImageURL: getEnv("DEFAULT_IMAGE_URL",
			"https://res.cloudinary.com/duqjf1fuh/image/upload/v1686761853/imagen_default_byg0nb.jpg"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
			return value
		}
	}
	return fallback
}

func getLogLevel() slog.Level {
	levelStr := getEnv("LOG_LEVEL", "INFO")

	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
