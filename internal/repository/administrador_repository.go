package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medikit/dispenser-backend/internal/model"
)

// AdministradorRepository handles administrator data access.
type AdministradorRepository struct {
	pool *pgxpool.Pool
}

// NewAdministradorRepository creates a new AdministradorRepository.
func NewAdministradorRepository(pool *pgxpool.Pool) *AdministradorRepository {
	return &AdministradorRepository{pool: pool}
}

// GetByID retrieves an administrator by ID.
func (r *AdministradorRepository) GetByID(ctx context.Context, id int) (*model.Administrador, error) {
	a := &model.Administrador{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, nome, senha, id_card, created_at, updated_at
		 FROM administradores WHERE id = $1`, id,
	).Scan(&a.ID, &a.Nome, &a.Senha, &a.IDCard, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// GetByNome retrieves an administrator by their unique display name.
func (r *AdministradorRepository) GetByNome(ctx context.Context, nome string) (*model.Administrador, error) {
	a := &model.Administrador{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, nome, senha, id_card, created_at, updated_at
		 FROM administradores WHERE nome = $1`, nome,
	).Scan(&a.ID, &a.Nome, &a.Senha, &a.IDCard, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// List retrieves all administrators ordered by name.
func (r *AdministradorRepository) List(ctx context.Context) ([]model.Administrador, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, nome, senha, id_card, created_at, updated_at
		 FROM administradores ORDER BY nome ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []model.Administrador
	for rows.Next() {
		var a model.Administrador
		if err := rows.Scan(&a.ID, &a.Nome, &a.Senha, &a.IDCard, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

// Create inserts a new administrator. Senha must already be hashed.
func (r *AdministradorRepository) Create(ctx context.Context, a *model.Administrador) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO administradores (nome, senha, id_card)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		a.Nome, a.Senha, a.IDCard,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Update overwrites an administrator's name and password hash.
func (r *AdministradorRepository) Update(ctx context.Context, a *model.Administrador) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE administradores SET nome = $1, senha = $2, updated_at = NOW()
		 WHERE id = $3
		 RETURNING created_at, updated_at`,
		a.Nome, a.Senha, a.ID,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
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

// Delete removes an administrator and returns the row as it existed.
func (r *AdministradorRepository) Delete(ctx context.Context, id int) (*model.Administrador, error) {
	a := &model.Administrador{}
	err := r.pool.QueryRow(ctx,
		`DELETE FROM administradores WHERE id = $1
		 RETURNING id, nome, senha, id_card, created_at, updated_at`, id,
	).Scan(&a.ID, &a.Nome, &a.Senha, &a.IDCard, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}
