package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fahs/internal/service"
)

const (
	ContextKeySessionID = "session_id"
	ContextKeyClaims    = "claims"
)

// SessionMiddleware returns Gin middleware that validates wizard session
// tokens and injects the session ID. Every /sessions/current route resolves
// the session from the token, never from the URL.
func SessionMiddleware(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing or invalid authorization header"},
			})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "invalid or expired session token"},
			})
			return
		}

		c.Set(ContextKeySessionID, claims.SessionID)
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// GetSessionID extracts the wizard session ID from the request context.
func GetSessionID(c *gin.Context) (uuid.UUID, error) {
	v, exists := c.Get(ContextKeySessionID)
	if !exists {
		return uuid.Nil, errors.New("session_id not found in context")
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("session_id has unexpected type")
	}
	return id, nil
}
