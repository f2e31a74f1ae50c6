package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medikit/dispenser-backend/internal/model"
)

// RemedioRepository handles medicine stock data access.
type RemedioRepository struct {
	pool *pgxpool.Pool
}

// NewRemedioRepository creates a new RemedioRepository.
func NewRemedioRepository(pool *pgxpool.Pool) *RemedioRepository {
	return &RemedioRepository{pool: pool}
}

// GetByID retrieves a medicine by ID.
func (r *RemedioRepository) GetByID(ctx context.Context, id int) (*model.Remedio, error) {
	m := &model.Remedio{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, nome, categoria, quantidade, validade, created_at, updated_at
		 FROM remedios WHERE id = $1`, id,
	).Scan(&m.ID, &m.Nome, &m.Categoria, &m.Quantidade, &m.Validade, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// GetByNome retrieves a medicine by exact name. The dispenser reports
// medicines by name, so this is the device-side resolution path.
func (r *RemedioRepository) GetByNome(ctx context.Context, nome string) (*model.Remedio, error) {
	m := &model.Remedio{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, nome, categoria, quantidade, validade, created_at, updated_at
		 FROM remedios WHERE nome = $1`, nome,
	).Scan(&m.ID, &m.Nome, &m.Categoria, &m.Quantidade, &m.Validade, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// List retrieves all medicines ordered by name.
func (r *RemedioRepository) List(ctx context.Context) ([]model.Remedio, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, nome, categoria, quantidade, validade, created_at, updated_at
		 FROM remedios ORDER BY nome ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var remedios []model.Remedio
	for rows.Next() {
		var m model.Remedio
		if err := rows.Scan(&m.ID, &m.Nome, &m.Categoria, &m.Quantidade, &m.Validade, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		remedios = append(remedios, m)
	}
	return remedios, rows.Err()
}

// ListCriticos retrieves medicines that are expired or below the stock
// threshold, for the stock worker's replenishment warnings.
func (r *RemedioRepository) ListCriticos(ctx context.Context, threshold int) ([]model.Remedio, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, nome, categoria, quantidade, validade, created_at, updated_at
		 FROM remedios
		 WHERE validade < NOW() OR quantidade < $1
		 ORDER BY validade ASC`, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var remedios []model.Remedio
	for rows.Next() {
		var m model.Remedio
		if err := rows.Scan(&m.ID, &m.Nome, &m.Categoria, &m.Quantidade, &m.Validade, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		remedios = append(remedios, m)
	}
	return remedios, rows.Err()
}

// ExistsConflicting reports whether a medicine already matches the name or
// the category. Advisory check; the unique constraint on nome is the final
// arbiter. Categoria intentionally has no constraint (see migrations).
func (r *RemedioRepository) ExistsConflicting(ctx context.Context, nome, categoria string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM remedios WHERE nome = $1 OR categoria = $2
		 )`, nome, categoria,
	).Scan(&exists)
	return exists, err
}

// Create inserts a new medicine.
func (r *RemedioRepository) Create(ctx context.Context, m *model.Remedio) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO remedios (nome, categoria, quantidade, validade)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		m.Nome, m.Categoria, m.Quantidade, m.Validade,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Update overwrites a medicine's name, category and stock count. The expiry
// date is immutable after creation.
func (r *RemedioRepository) Update(ctx context.Context, m *model.Remedio) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE remedios SET nome = $1, categoria = $2, quantidade = $3, updated_at = NOW()
		 WHERE id = $4
		 RETURNING validade, created_at, updated_at`,
		m.Nome, m.Categoria, m.Quantidade, m.ID,
	).Scan(&m.Validade, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Delete removes a medicine and returns the row as it existed.
func (r *RemedioRepository) Delete(ctx context.Context, id int) (*model.Remedio, error) {
	m := &model.Remedio{}
	err := r.pool.QueryRow(ctx,
		`DELETE FROM remedios WHERE id = $1
		 RETURNING id, nome, categoria, quantidade, validade, created_at, updated_at`, id,
	).Scan(&m.ID, &m.Nome, &m.Categoria, &m.Quantidade, &m.Validade, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}
