package validator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/medikit/dispenser-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindJSON(t *testing.T, body string, dst interface{}) map[string]string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Setup()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return Bind(c, dst)
}

func TestBind(t *testing.T) {
	t.Run("minimal credentials are accepted", func(t *testing.T) {
		// Presence is the only requirement on nome and senha; a
		// single-character password must reach the service layer.
		var req model.RegisterRequest
		fields := bindJSON(t, `{"nome":"ana","senha":"x"}`, &req)
		require.Nil(t, fields)
		assert.Equal(t, "ana", req.Nome)
		assert.Equal(t, "x", req.Senha)
	})

	t.Run("profile update accepts the same minimal payload", func(t *testing.T) {
		var req model.UpdatePerfilRequest
		fields := bindJSON(t, `{"nome":"ana","senha":"x"}`, &req)
		assert.Nil(t, fields)
	})

	t.Run("missing field maps to its json tag name", func(t *testing.T) {
		var req model.RegisterRequest
		fields := bindJSON(t, `{"nome":"ana"}`, &req)
		require.NotNil(t, fields)
		assert.Contains(t, fields, "senha")
		assert.NotContains(t, fields, "Senha")
	})

	t.Run("length cap is still enforced", func(t *testing.T) {
		var req model.RegisterRequest
		fields := bindJSON(t, `{"nome":"`+strings.Repeat("a", 101)+`","senha":"x"}`, &req)
		require.NotNil(t, fields)
		assert.Contains(t, fields, "nome")
	})

	t.Run("malformed JSON yields a detail entry", func(t *testing.T) {
		var req model.RegisterRequest
		fields := bindJSON(t, `{not json`, &req)
		require.NotNil(t, fields)
		assert.Contains(t, fields, "detail")
	})
}
