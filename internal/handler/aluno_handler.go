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

// AlunoHandler handles student record management.
type AlunoHandler struct {
	alunoService *service.AlunoService
}

// NewAlunoHandler creates a new AlunoHandler.
func NewAlunoHandler(alunoService *service.AlunoService) *AlunoHandler {
	return &AlunoHandler{alunoService: alunoService}
}

// List godoc
// GET /alunos
func (h *AlunoHandler) List(c *gin.Context) {
	alunos, err := h.alunoService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"data": alunos})
}

// Create godoc
// POST /aluno
func (h *AlunoHandler) Create(c *gin.Context) {
	var req model.CreateAlunoRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.MsgValidation, fields)
		return
	}

	aluno, err := h.alunoService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Aluno cadastrado com sucesso", gin.H{"aluno": aluno})
}

// Update godoc
// PUT /aluno/:id
func (h *AlunoHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.MsgValidation)
		return
	}

	var req model.UpdateAlunoRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.MsgValidation, fields)
		return
	}

	aluno, err := h.alunoService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Aluno atualizado com sucesso", gin.H{"aluno": aluno})
}

// Delete godoc
// DELETE /aluno/:id
func (h *AlunoHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.MsgValidation)
		return
	}

	aluno, err := h.alunoService.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Aluno removido com sucesso", gin.H{"aluno": aluno})
}
