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

// AdministradorHandler handles administrator listing and profile mutation.
type AdministradorHandler struct {
	adminService *service.AdministradorService
}

// NewAdministradorHandler creates a new AdministradorHandler.
func NewAdministradorHandler(adminService *service.AdministradorService) *AdministradorHandler {
	return &AdministradorHandler{adminService: adminService}
}

// List godoc
// GET /administradores
func (h *AdministradorHandler) List(c *gin.Context) {
	admins, err := h.adminService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"data": admins})
}

// UpdatePerfil godoc
// PUT /perfil/:id
// Any authenticated administrator may edit any profile by id.
func (h *AdministradorHandler) UpdatePerfil(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.MsgValidation)
		return
	}

	var req model.UpdatePerfilRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.MsgValidation, fields)
		return
	}

	admin, err := h.adminService.UpdatePerfil(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Conta atualizada com sucesso", gin.H{"admin": admin})
}

// DeletePerfil godoc
// DELETE /perfil/:id
func (h *AdministradorHandler) DeletePerfil(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.MsgValidation)
		return
	}

	admin, err := h.adminService.DeletePerfil(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Conta removida com sucesso!", gin.H{"admin": admin})
}
