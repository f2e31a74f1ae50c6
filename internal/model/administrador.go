package model

import "time"

// Administrador represents an operator account managing students and stock.
type Administrador struct {
	ID        int       `json:"id"`
	Nome      string    `json:"nome"`
	Senha     string    `json:"-"`
	IDCard    *string   `json:"id_card"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterRequest is the payload for creating an administrator account.
// id_card is optional: operators without a physical badge can still register.
type RegisterRequest struct {
	Nome   string  `json:"nome" binding:"required,max=100"`
	Senha  string  `json:"senha" binding:"required,max=128"`
	IDCard *string `json:"id_card" binding:"omitempty,max=64"`
}

// LoginRequest is the payload for administrator authentication.
type LoginRequest struct {
	Nome  string `json:"nome" binding:"required,max=100"`
	Senha string `json:"senha" binding:"required,max=128"`
}

// UpdatePerfilRequest is the payload for updating an administrator profile.
// The password is always re-hashed before being stored.
type UpdatePerfilRequest struct {
	Nome  string `json:"nome" binding:"required,max=100"`
	Senha string `json:"senha" binding:"required,max=128"`
}
