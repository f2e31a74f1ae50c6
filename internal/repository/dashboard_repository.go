package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medikit/dispenser-backend/internal/model"
)

// DashboardRepository handles the kiosk dashboard aggregation queries.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// GetSummary computes the dashboard counts in a single round trip plus the
// recent-students query. lowStockThreshold is the quantidade below which a
// medicine counts as low stock.
func (r *DashboardRepository) GetSummary(ctx context.Context, lowStockThreshold int) (*model.DashboardSummary, error) {
	s := &model.DashboardSummary{}
	err := r.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM remedios),
			(SELECT COUNT(*) FROM remedios WHERE validade < NOW()),
			(SELECT COUNT(*) FROM transacoes),
			(SELECT COUNT(*) FROM remedios WHERE quantidade < $1),
			(SELECT COUNT(*) FROM alunos)`,
		lowStockThreshold,
	).Scan(&s.TotalRemedios, &s.RemediosVencidos, &s.TotalTransacoes, &s.RemediosBaixoEstoque, &s.TotalAlunos)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, nome, telefone, sala, turno, id_card, created_at, updated_at
		 FROM alunos ORDER BY created_at DESC LIMIT 5`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var a model.Aluno
		if err := rows.Scan(&a.ID, &a.Nome, &a.Telefone, &a.Sala, &a.Turno, &a.IDCard, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		s.AlunosRecentes = append(s.AlunosRecentes, a)
	}
	if s.AlunosRecentes == nil {
		s.AlunosRecentes = []model.Aluno{}
	}
	return s, rows.Err()
}
