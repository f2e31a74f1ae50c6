package model

import (
	"fmt"
	"time"
)

// Remedio represents a stocked medicine with quantity and expiry tracking.
type Remedio struct {
	ID         int       `json:"id"`
	Nome       string    `json:"nome"`
	Categoria  string    `json:"categoria"`
	Quantidade int       `json:"quantidade"`
	Validade   time.Time `json:"validade"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateRemedioRequest is the payload for adding a medicine to stock.
// Validade accepts either a plain date or an RFC 3339 timestamp.
type CreateRemedioRequest struct {
	Nome       string `json:"nome" binding:"required,max=100"`
	Categoria  string `json:"categoria" binding:"required,max=100"`
	Quantidade int    `json:"quantidade" binding:"min=0"`
	Validade   string `json:"validade" binding:"required"`
}

// UpdateRemedioRequest is the payload for updating a medicine.
// The expiry date is fixed at creation time and not editable here.
type UpdateRemedioRequest struct {
	Nome       string `json:"nome" binding:"required,max=100"`
	Categoria  string `json:"categoria" binding:"required,max=100"`
	Quantidade int    `json:"quantidade" binding:"min=0"`
}

// validadeLayouts are the accepted wire formats for expiry dates.
var validadeLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseValidade parses an expiry date from its wire representation.
func ParseValidade(raw string) (time.Time, error) {
	for _, layout := range validadeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid validade %q", raw)
}
