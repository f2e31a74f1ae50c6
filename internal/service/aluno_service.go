package service

import (
	"context"
	"errors"

	"github.com/medikit/dispenser-backend/internal/model"
	"github.com/medikit/dispenser-backend/internal/repository"
	"github.com/medikit/dispenser-backend/internal/response"
	"github.com/rs/zerolog"
)

// AlunoService covers student record management.
type AlunoService struct {
	repo *repository.AlunoRepository
	log  zerolog.Logger
}

// NewAlunoService creates a new AlunoService.
func NewAlunoService(repo *repository.AlunoRepository, log zerolog.Logger) *AlunoService {
	return &AlunoService{
		repo: repo,
		log:  log.With().Str("component", "aluno_service").Logger(),
	}
}

// List retrieves all students. An empty store is a not-found condition on
// this route.
func (s *AlunoService) List(ctx context.Context) ([]model.Aluno, error) {
	alunos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(alunos) == 0 {
		return nil, response.NotFound("Nenhum aluno encontrado")
	}
	return alunos, nil
}

// Create registers a student. A student matching any of nome, telefone or
// id_card already exists is a conflict.
func (s *AlunoService) Create(ctx context.Context, req *model.CreateAlunoRequest) (*model.Aluno, error) {
	exists, err := s.repo.ExistsConflicting(ctx, req.Nome, req.Telefone, req.IDCard)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, response.Conflict("Aluno já cadastrado")
	}

	aluno := &model.Aluno{
		Nome:     req.Nome,
		Telefone: req.Telefone,
		Sala:     req.Sala,
		Turno:    req.Turno,
		IDCard:   req.IDCard,
	}
	if err := s.repo.Create(ctx, aluno); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, response.Conflict("Aluno já cadastrado")
		}
		return nil, err
	}

	s.log.Info().Int("aluno_id", aluno.ID).Str("id_card", aluno.IDCard).Msg("Student registered")
	return aluno, nil
}

// Update overwrites a student's fields.
func (s *AlunoService) Update(ctx context.Context, id int, req *model.UpdateAlunoRequest) (*model.Aluno, error) {
	aluno, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, response.NotFound("Aluno não encontrado")
		}
		return nil, err
	}

	aluno.Nome = req.Nome
	aluno.Telefone = req.Telefone
	aluno.Sala = req.Sala
	aluno.Turno = req.Turno
	aluno.IDCard = req.IDCard
	if err := s.repo.Update(ctx, aluno); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, response.NotFound("Aluno não encontrado")
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, response.Conflict("Aluno já cadastrado")
		}
		return nil, err
	}
	return aluno, nil
}

// Delete removes a student and returns the removed record.
func (s *AlunoService) Delete(ctx context.Context, id int) (*model.Aluno, error) {
	aluno, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, response.NotFound("Aluno não encontrado")
		}
		return nil, err
	}
	return aluno, nil
}
