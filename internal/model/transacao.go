package model

import "time"

// Transacao records a single dispensing event. Rows are immutable once
// created: there is no update or delete surface for transactions.
type Transacao struct {
	ID         int       `json:"id"`
	Hora       time.Time `json:"hora"`
	Quantidade int       `json:"quantidade"`
	Slot       int       `json:"slot"`
	Status     string    `json:"status"`
	AlunoID    int       `json:"alunoId"`
	RemedioID  int       `json:"remedioId"`
}

// IngestTransacaoRequest is the payload posted by the ESP32 dispenser.
// The device sends its own clock reading in Hora, but the server clock is
// authoritative: the field is accepted and ignored.
type IngestTransacaoRequest struct {
	Hora        string `json:"hora" binding:"omitempty"`
	Medicamento string `json:"medicamento" binding:"required,max=100"`
	Quantidade  int    `json:"quantidade" binding:"required,min=1"`
	Slot        int    `json:"slot" binding:"min=0"`
	Usuario     string `json:"usuario" binding:"required,max=64"`
	Status      string `json:"status" binding:"omitempty,max=40"`
}

// TransacaoDetalhe is a transaction flattened with the student and medicine
// it references, as served on the listing route and the live feed.
type TransacaoDetalhe struct {
	ID          int    `json:"id"`
	Hora        string `json:"hora"`
	Quantidade  int    `json:"quantidade"`
	Slot        int    `json:"slot"`
	Status      string `json:"status"`
	Usuario     string `json:"usuario"`
	IDCard      string `json:"id_card"`
	Medicamento string `json:"medicamento"`
}

// AlunoResumo is the denormalized student summary returned to the device.
type AlunoResumo struct {
	ID     int    `json:"id"`
	Nome   string `json:"nome"`
	IDCard string `json:"id_card"`
}

// RemedioResumo is the denormalized medicine summary returned to the device.
type RemedioResumo struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}

// TransacaoResultado is the confirmation payload for a device submission.
type TransacaoResultado struct {
	Transacao Transacao     `json:"transacao"`
	Aluno     AlunoResumo   `json:"aluno"`
	Remedio   RemedioResumo `json:"remedio"`
}

// horaLayout is the pt-BR display format used on the listing route and feed.
const horaLayout = "02/01/2006 15:04:05"

// FormatHora renders a timestamp the way the dispenser dashboard expects.
func FormatHora(t time.Time) string {
	return t.Format(horaLayout)
}
