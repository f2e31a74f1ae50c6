package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medikit/dispenser-backend/internal/config"
	"github.com/medikit/dispenser-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := service.NewAuthService(&config.Config{
		JWTSecret:  "middleware-test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: 4,
	})

	r := gin.New()
	r.GET("/protegido", RequireJWT(auth), func(c *gin.Context) {
		id, ok := GetAdminID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "sem id"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"admin_id": id})
	})
	return r, auth
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireJWT(t *testing.T) {
	r, auth := newTestRouter(t)

	token, err := auth.GenerateToken(42)
	require.NoError(t, err)

	t.Run("valid token reaches the handler with the admin id", func(t *testing.T) {
		w := doRequest(r, "Bearer "+token)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]int
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 42, body["admin_id"])
	})

	t.Run("scheme is case-insensitive", func(t *testing.T) {
		w := doRequest(r, "bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	rejections := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic " + token},
		{"bare token without scheme", token},
		{"malformed token", "Bearer not.a.jwt"},
		{"tampered token", "Bearer " + token + "xx"},
	}

	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, tt.header)
			require.Equal(t, http.StatusUnauthorized, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, true, body["error"])
			assert.Equal(t, "Não autorizado", body["message"])
		})
	}
}

func TestGetAdminIDWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetAdminID(c)
	assert.False(t, ok)
}
