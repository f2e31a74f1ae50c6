package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestSuccess(t *testing.T) {
	t.Run("merges extra keys into the envelope", func(t *testing.T) {
		c, w := testContext()
		Success(c, http.StatusCreated, "Cadastro realizado com sucesso", gin.H{"token": "abc"})

		require.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{
			"success": true,
			"error": false,
			"message": "Cadastro realizado com sucesso",
			"token": "abc"
		}`, w.Body.String())
	})

	t.Run("omits empty message", func(t *testing.T) {
		c, w := testContext()
		Success(c, http.StatusOK, "", nil)

		assert.JSONEq(t, `{"success": true, "error": false}`, w.Body.String())
	})
}

func TestFail(t *testing.T) {
	c, w := testContext()
	Fail(c, http.StatusNotFound, "Aluno não encontrado")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{
		"success": false,
		"error": true,
		"message": "Aluno não encontrado"
	}`, w.Body.String())
}

func TestError(t *testing.T) {
	t.Run("StatusError keeps its status and message", func(t *testing.T) {
		c, w := testContext()
		Error(c, Conflict("Remédio já existente"))

		require.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Remédio já existente")
	})

	t.Run("wrapped StatusError is still unwrapped", func(t *testing.T) {
		c, w := testContext()
		Error(c, errors.Join(errors.New("context"), NotFound("Conta não encontrada!")))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown errors degrade to generic 500", func(t *testing.T) {
		c, w := testContext()
		Error(c, errors.New("pq: connection reset"))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), MsgInternal)
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}

func TestBareError(t *testing.T) {
	t.Run("StatusError becomes a bare erro object", func(t *testing.T) {
		c, w := testContext()
		BareError(c, NotFound("Aluno não encontrado"), "Erro interno no servidor")

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"erro": "Aluno não encontrado"}`, w.Body.String())
	})

	t.Run("unknown errors use the route fallback", func(t *testing.T) {
		c, w := testContext()
		BareError(c, errors.New("boom"), "Erro interno no servidor")

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"erro": "Erro interno no servidor"}`, w.Body.String())
	})
}
