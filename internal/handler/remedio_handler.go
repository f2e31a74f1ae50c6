package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/medikit/dispenser-backend/internal/model"
	"github.com/medikit/dispenser-backend/internal/response"
	"github.com/medikit/dispenser-backend/internal/service"
	"github.com/medikit/dispenser-backend/internal/validator"
)

// RemedioHandler handles medicine stock management.
type RemedioHandler struct {
	remedioService *service.RemedioService
}

// NewRemedioHandler creates a new RemedioHandler.
func NewRemedioHandler(remedioService *service.RemedioService) *RemedioHandler {
	return &RemedioHandler{remedioService: remedioService}
}

// List godoc
// GET /remedios
// An empty stock is a success with an empty list and an advisory message.
func (h *RemedioHandler) List(c *gin.Context) {
	remedios, err := h.remedioService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	if len(remedios) == 0 {
		response.Success(c, http.StatusOK, "Nenhum remédio encontrado", gin.H{"data": remedios})
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"data": remedios})
}

// Create godoc
// POST /remedio
func (h *RemedioHandler) Create(c *gin.Context) {
	var req model.CreateRemedioRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.MsgValidation, fields)
		return
	}

	remedio, err := h.remedioService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Remédio adicionado com sucesso!", gin.H{"remedio": remedio})
}

// Update godoc
// PUT /remedio/:id
func (h *RemedioHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.MsgValidation)
		return
	}

	var req model.UpdateRemedioRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.MsgValidation, fields)
		return
	}

	remedio, err := h.remedioService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Remédio atualizado com sucesso!", gin.H{"remedio": remedio})
}

// Delete godoc
// DELETE /remedio/:id
func (h *RemedioHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.MsgValidation)
		return
	}

	remedio, err := h.remedioService.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Remédio removido com sucesso!", gin.H{"remedio": remedio})
}
