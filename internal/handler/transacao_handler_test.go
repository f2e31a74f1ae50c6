package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/medikit/dispenser-backend/internal/model"
	"github.com/medikit/dispenser-backend/internal/repository"
	"github.com/medikit/dispenser-backend/internal/service"
	"github.com/medikit/dispenser-backend/internal/validator"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAlunoLookup struct{}

func (stubAlunoLookup) GetByIDCard(_ context.Context, idCard string) (*model.Aluno, error) {
	if idCard != "CARD-0001" {
		return nil, repository.ErrNotFound
	}
	return &model.Aluno{ID: 11, Nome: "Maria Souza", IDCard: "CARD-0001"}, nil
}

type stubRemedioLookup struct{}

func (stubRemedioLookup) GetByNome(_ context.Context, nome string) (*model.Remedio, error) {
	if nome != "Dipirona" {
		return nil, repository.ErrNotFound
	}
	return &model.Remedio{ID: 7, Nome: "Dipirona", Quantidade: 30}, nil
}

type stubTransacaoStore struct {
	created int
	listErr error
}

func (s *stubTransacaoStore) Create(_ context.Context, t *model.Transacao) error {
	s.created++
	t.ID = s.created
	return nil
}

func (s *stubTransacaoStore) ListWithDetails(_ context.Context) ([]model.TransacaoDetalhe, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return []model.TransacaoDetalhe{}, nil
}

func newTransacaoRouter(store *stubTransacaoStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validator.Setup()

	svc := service.NewTransacaoService(stubAlunoLookup{}, stubRemedioLookup{}, store, nil, zerolog.Nop())
	h := NewTransacaoHandler(svc)

	r := gin.New()
	r.POST("/transacao", h.Ingest)
	r.GET("/transacao", h.List)
	return r
}

func postTransacao(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/transacao", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTransacaoIngest(t *testing.T) {
	validBody := `{
		"hora": "01/01/1970 00:00:00",
		"medicamento": "Dipirona",
		"quantidade": 1,
		"slot": 2,
		"usuario": "CARD-0001",
		"status": "ok"
	}`

	t.Run("valid submission is created", func(t *testing.T) {
		store := &stubTransacaoStore{}
		r := newTransacaoRouter(store)

		w := postTransacao(r, validBody)
		require.Equal(t, http.StatusCreated, w.Code)

		var body struct {
			Mensagem  string          `json:"mensagem"`
			Transacao model.Transacao `json:"transacao"`
			Aluno     struct {
				ID   int    `json:"id"`
				Nome string `json:"nome"`
			} `json:"aluno"`
			Remedio struct {
				ID   int    `json:"id"`
				Nome string `json:"nome"`
			} `json:"remedio"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

		assert.Equal(t, "Transação registrada com sucesso", body.Mensagem)
		assert.Equal(t, 11, body.Transacao.AlunoID)
		assert.Equal(t, 7, body.Transacao.RemedioID)
		assert.Equal(t, "Maria Souza", body.Aluno.Nome)
		assert.Equal(t, "Dipirona", body.Remedio.Nome)
		assert.Equal(t, 1, store.created)
	})

	t.Run("missing required fields", func(t *testing.T) {
		store := &stubTransacaoStore{}
		r := newTransacaoRouter(store)

		w := postTransacao(r, `{"quantidade": 1}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Dados da transação inválidos", body["erro"])
		assert.Zero(t, store.created)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		r := newTransacaoRouter(&stubTransacaoStore{})

		w := postTransacao(r, `{not json`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown badge", func(t *testing.T) {
		store := &stubTransacaoStore{}
		r := newTransacaoRouter(store)

		w := postTransacao(r, strings.Replace(validBody, "CARD-0001", "CARD-9999", 1))
		require.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Aluno não encontrado", body["erro"])
		assert.Zero(t, store.created)
	})

	t.Run("unknown medicine", func(t *testing.T) {
		store := &stubTransacaoStore{}
		r := newTransacaoRouter(store)

		w := postTransacao(r, strings.Replace(validBody, "Dipirona", "Placebo", 1))
		require.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Remédio não encontrado", body["erro"])
	})
}

func TestTransacaoList(t *testing.T) {
	t.Run("empty listing is a bare array", func(t *testing.T) {
		r := newTransacaoRouter(&stubTransacaoStore{})

		req := httptest.NewRequest(http.MethodGet, "/transacao", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}
