package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medikit/dispenser-backend/internal/model"
	"github.com/medikit/dispenser-backend/internal/response"
	"github.com/medikit/dispenser-backend/internal/service"
	"github.com/medikit/dispenser-backend/internal/validator"
)

// TransacaoHandler handles the device ingestion and listing routes. Both
// are unauthenticated: the ESP32 has no session, and the kiosk dashboard
// polls the listing. Responses are bare objects, not the envelope.
type TransacaoHandler struct {
	transacaoService *service.TransacaoService
}

// NewTransacaoHandler creates a new TransacaoHandler.
func NewTransacaoHandler(transacaoService *service.TransacaoService) *TransacaoHandler {
	return &TransacaoHandler{transacaoService: transacaoService}
}

// Ingest godoc
// POST /transacao
// Receives a dispensing report from the ESP32, resolves the badge id and
// medicine name to internal records and stores the event.
func (h *TransacaoHandler) Ingest(c *gin.Context) {
	var req model.IngestTransacaoRequest
	if fields := validator.Bind(c, &req); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Dados da transação inválidos"})
		return
	}

	resultado, err := h.transacaoService.Ingest(c.Request.Context(), &req)
	if err != nil {
		response.BareError(c, err, "Erro interno no servidor")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"mensagem":  "Transação registrada com sucesso",
		"transacao": resultado.Transacao,
		"aluno":     resultado.Aluno,
		"remedio":   resultado.Remedio,
	})
}

// List godoc
// GET /transacao
// Returns all transactions, newest first, as a bare array.
func (h *TransacaoHandler) List(c *gin.Context) {
	detalhes, err := h.transacaoService.List(c.Request.Context())
	if err != nil {
		response.BareError(c, err, "Erro interno ao buscar transações")
		return
	}

	c.JSON(http.StatusOK, detalhes)
}
