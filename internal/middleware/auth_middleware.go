package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gonzalcbar02/store-controller-web/internal/database/service"
)

const bearerTokenKey = "bearerToken"

// AuthMiddleware resolves opaque bearer tokens to user ids
type AuthMiddleware struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware instance
func NewAuthMiddleware(service service.AuthService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		service: service,
		logger:  logger,
	}
}

// RequireAuth validates the bearer token and sets userID in context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.logger.Warn("missing Authorization header")
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization header required", "status": http.StatusUnauthorized})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			m.logger.Warn("invalid Authorization header format")
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header format", "status": http.StatusUnauthorized})
			c.Abort()
			return
		}

		token := parts[1]

		userID, err := m.service.Authenticate(c.Request.Context(), token)
		if err != nil {
			m.logger.Warn("invalid session token", "error", err)
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token", "status": http.StatusUnauthorized})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Set(bearerTokenKey, token)
		m.logger.Debug("session validated", "user_id", userID)

		c.Next()
	}
}

// BearerToken returns the token the current request authenticated
// with, or the empty string on unauthenticated routes.
func BearerToken(c *gin.Context) string {
	return c.GetString(bearerTokenKey)
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) uint {
	return c.GetUint("userID")
}
