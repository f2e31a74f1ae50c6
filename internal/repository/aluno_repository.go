package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medikit/dispenser-backend/internal/model"
)

// AlunoRepository handles student data access.
type AlunoRepository struct {
	pool *pgxpool.Pool
}

// NewAlunoRepository creates a new AlunoRepository.
func NewAlunoRepository(pool *pgxpool.Pool) *AlunoRepository {
	return &AlunoRepository{pool: pool}
}

// GetByID retrieves a student by ID.
func (r *AlunoRepository) GetByID(ctx context.Context, id int) (*model.Aluno, error) {
	a := &model.Aluno{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, nome, telefone, sala, turno, id_card, created_at, updated_at
		 FROM alunos WHERE id = $1`, id,
	).Scan(&a.ID, &a.Nome, &a.Telefone, &a.Sala, &a.Turno, &a.IDCard, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// GetByIDCard retrieves a student by the badge id the dispenser reads.
func (r *AlunoRepository) GetByIDCard(ctx context.Context, idCard string) (*model.Aluno, error) {
	a := &model.Aluno{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, nome, telefone, sala, turno, id_card, created_at, updated_at
		 FROM alunos WHERE id_card = $1`, idCard,
	).Scan(&a.ID, &a.Nome, &a.Telefone, &a.Sala, &a.Turno, &a.IDCard, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// List retrieves all students ordered by name.
func (r *AlunoRepository) List(ctx context.Context) ([]model.Aluno, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, nome, telefone, sala, turno, id_card, created_at, updated_at
		 FROM alunos ORDER BY nome ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alunos []model.Aluno
	for rows.Next() {
		var a model.Aluno
		if err := rows.Scan(&a.ID, &a.Nome, &a.Telefone, &a.Sala, &a.Turno, &a.IDCard, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		alunos = append(alunos, a)
	}
	return alunos, rows.Err()
}

// ExistsConflicting reports whether a student already matches any of the
// natural-key fields (nome, telefone or id_card). The check is advisory:
// the unique constraint on id_card is what actually prevents duplicate
// commits under concurrency.
func (r *AlunoRepository) ExistsConflicting(ctx context.Context, nome string, telefone int64, idCard string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM alunos WHERE nome = $1 OR telefone = $2 OR id_card = $3
		 )`, nome, telefone, idCard,
	).Scan(&exists)
	return exists, err
}

// Create inserts a new student.
func (r *AlunoRepository) Create(ctx context.Context, a *model.Aluno) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO alunos (nome, telefone, sala, turno, id_card)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		a.Nome, a.Telefone, a.Sala, a.Turno, a.IDCard,
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

// Update overwrites a student's fields.
func (r *AlunoRepository) Update(ctx context.Context, a *model.Aluno) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE alunos SET nome = $1, telefone = $2, sala = $3, turno = $4, id_card = $5, updated_at = NOW()
		 WHERE id = $6
		 RETURNING created_at, updated_at`,
		a.Nome, a.Telefone, a.Sala, a.Turno, a.IDCard, a.ID,
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

// Delete removes a student and returns the row as it existed.
func (r *AlunoRepository) Delete(ctx context.Context, id int) (*model.Aluno, error) {
	a := &model.Aluno{}
	err := r.pool.QueryRow(ctx,
		`DELETE FROM alunos WHERE id = $1
		 RETURNING id, nome, telefone, sala, turno, id_card, created_at, updated_at`, id,
	).Scan(&a.ID, &a.Nome, &a.Telefone, &a.Sala, &a.Turno, &a.IDCard, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}
