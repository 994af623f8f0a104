package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Epik-Whale463/CollegeConnect/internal/pkg/auth"
)

func setupProtectedRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	authMiddleware := NewAuthMiddleware(jwtService)
	router.GET("/protected", authMiddleware.RequireAuth(), func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return router
}

func newMiddlewareTestJWT(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    exp,
		TokenIssuer: "collegeconnect.test",
	})
}

func TestRequireAuth_ValidToken(t *testing.T) {
	jwtService := newMiddlewareTestJWT(time.Hour)
	router := setupProtectedRouter(jwtService)

	token, _, err := jwtService.GenerateToken(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(42), body["userId"])
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	router := setupProtectedRouter(newMiddlewareTestJWT(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_007")
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	router := setupProtectedRouter(newMiddlewareTestJWT(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.valid.token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_005")
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	jwtService := newMiddlewareTestJWT(-time.Minute)
	router := setupProtectedRouter(jwtService)

	token, _, err := jwtService.GenerateToken(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_006")
}

func TestRequireAuth_TokenSignedWithOtherSecret(t *testing.T) {
	router := setupProtectedRouter(newMiddlewareTestJWT(time.Hour))

	other := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "a-different-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "collegeconnect.test",
	})
	token, _, err := other.GenerateToken(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_005")
}
