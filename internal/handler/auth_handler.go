package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medikit/dispenser-backend/internal/middleware"
	"github.com/medikit/dispenser-backend/internal/model"
	"github.com/medikit/dispenser-backend/internal/response"
	"github.com/medikit/dispenser-backend/internal/service"
	"github.com/medikit/dispenser-backend/internal/validator"
)

// AuthHandler handles registration, login and the current-profile route.
type AuthHandler struct {
	adminService *service.AdministradorService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(adminService *service.AdministradorService) *AuthHandler {
	return &AuthHandler{adminService: adminService}
}

// Register godoc
// POST /register
// Creates an administrator account and returns a session token. The hashed
// password is never part of the response.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, "Nome e senha são obrigatórios", fields)
		return
	}

	token, err := h.adminService.Register(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Cadastro realizado com sucesso", gin.H{"token": token})
}

// Login godoc
// POST /login
// Authenticates by nome + senha and returns a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, "Nome e senha são obrigatórios", fields)
		return
	}

	token, err := h.adminService.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login efetuado com sucesso", gin.H{"token": token})
}

// GetMe godoc
// GET /admin/me
// Returns the profile of the authenticated administrator as a bare object.
func (h *AuthHandler) GetMe(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "Não autorizado")
		return
	}

	admin, err := h.adminService.GetByID(c.Request.Context(), adminID)
	if err != nil {
		// This route predates the envelope and answers with bare
		// {message} objects; the frontend depends on that shape.
		status := http.StatusInternalServerError
		msg := "Erro interno do servidor"
		var se *response.StatusError
		if errors.As(err, &se) {
			status, msg = se.Status, se.Message
		}
		c.JSON(status, gin.H{"message": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      admin.ID,
		"nome":    admin.Nome,
		"id_card": admin.IDCard,
	})
}
