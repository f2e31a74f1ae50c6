package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medikit/dispenser-backend/internal/model"
)

// TransacaoRepository handles dispensing transaction data access.
// Transactions are append-only: there is no update or delete.
type TransacaoRepository struct {
	pool *pgxpool.Pool
}

// NewTransacaoRepository creates a new TransacaoRepository.
func NewTransacaoRepository(pool *pgxpool.Pool) *TransacaoRepository {
	return &TransacaoRepository{pool: pool}
}

// Create inserts a dispensing event with already-resolved foreign keys.
func (r *TransacaoRepository) Create(ctx context.Context, t *model.Transacao) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO transacoes (hora, quantidade, slot, status, aluno_id, remedio_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		t.Hora, t.Quantidade, t.Slot, t.Status, t.AlunoID, t.RemedioID,
	).Scan(&t.ID)
}

// ListWithDetails retrieves all transactions, newest first, joined with the
// student and medicine they reference.
func (r *TransacaoRepository) ListWithDetails(ctx context.Context) ([]model.TransacaoDetalhe, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.id, t.hora, t.quantidade, t.slot, t.status,
		        a.nome, a.id_card, m.nome
		 FROM transacoes t
		 JOIN alunos a ON a.id = t.aluno_id
		 JOIN remedios m ON m.id = t.remedio_id
		 ORDER BY t.hora DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var detalhes []model.TransacaoDetalhe
	for rows.Next() {
		var d model.TransacaoDetalhe
		var hora time.Time
		if err := rows.Scan(&d.ID, &hora, &d.Quantidade, &d.Slot, &d.Status, &d.Usuario, &d.IDCard, &d.Medicamento); err != nil {
			return nil, err
		}
		d.Hora = model.FormatHora(hora)
		detalhes = append(detalhes, d)
	}
	if detalhes == nil {
		detalhes = []model.TransacaoDetalhe{}
	}
	return detalhes, rows.Err()
}
