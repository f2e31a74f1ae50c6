package model

import "time"

// Aluno represents a student eligible to receive dispensed medicine.
// IDCard is the badge id the dispenser reads and reports as "usuario".
type Aluno struct {
	ID        int       `json:"id"`
	Nome      string    `json:"nome"`
	Telefone  int64     `json:"telefone"`
	Sala      int       `json:"sala"`
	Turno     string    `json:"turno"`
	IDCard    string    `json:"id_card"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateAlunoRequest is the payload for registering a student.
type CreateAlunoRequest struct {
	Nome     string `json:"nome" binding:"required,max=100"`
	Telefone int64  `json:"telefone" binding:"required"`
	Sala     int    `json:"sala" binding:"required"`
	Turno    string `json:"turno" binding:"required,max=20"`
	IDCard   string `json:"id_card" binding:"required,max=64"`
}

// UpdateAlunoRequest is the payload for updating an existing student.
type UpdateAlunoRequest struct {
	Nome     string `json:"nome" binding:"required,max=100"`
	Telefone int64  `json:"telefone" binding:"required"`
	Sala     int    `json:"sala" binding:"required"`
	Turno    string `json:"turno" binding:"required,max=20"`
	IDCard   string `json:"id_card" binding:"required,max=64"`
}
