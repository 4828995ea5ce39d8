package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fahs/internal/config"
	"fahs/internal/middleware"
	"fahs/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testTokenService() service.TokenService {
	return service.NewTokenService(config.SessionConfig{
		Secret: "test-secret",
		Expiry: 2 * time.Hour,
		Issuer: "fahs-test",
	})
}

func sessionRouter(tokens service.TokenService) *gin.Engine {
	r := gin.New()
	r.Use(middleware.SessionMiddleware(tokens))
	r.GET("/test", func(c *gin.Context) {
		id, err := middleware.GetSessionID(c)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"session_id": id})
	})
	return r
}

func TestSessionMiddleware_ValidToken(t *testing.T) {
	tokens := testTokenService()
	sessionID := uuid.New()
	token, err := tokens.Issue(sessionID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+token.Token)
	sessionRouter(tokens).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), sessionID.String())
}

func TestSessionMiddleware_MissingHeader(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	sessionRouter(testTokenService()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestSessionMiddleware_MalformedHeader(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Token abc123")
	sessionRouter(testTokenService()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionMiddleware_InvalidToken(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	sessionRouter(testTokenService()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionMiddleware_TokenFromDifferentSecret(t *testing.T) {
	other := service.NewTokenService(config.SessionConfig{
		Secret: "other-secret",
		Expiry: 2 * time.Hour,
		Issuer: "fahs-test",
	})
	token, err := other.Issue(uuid.New())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+token.Token)
	sessionRouter(testTokenService()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
