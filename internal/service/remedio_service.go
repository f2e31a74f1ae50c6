package service

import (
	"context"
	"errors"

	"github.com/medikit/dispenser-backend/internal/model"
	"github.com/medikit/dispenser-backend/internal/repository"
	"github.com/medikit/dispenser-backend/internal/response"
	"github.com/rs/zerolog"
)

// RemedioService covers medicine stock management.
type RemedioService struct {
	repo *repository.RemedioRepository
	log  zerolog.Logger
}

// NewRemedioService creates a new RemedioService.
func NewRemedioService(repo *repository.RemedioRepository, log zerolog.Logger) *RemedioService {
	return &RemedioService{
		repo: repo,
		log:  log.With().Str("component", "remedio_service").Logger(),
	}
}

// List retrieves all medicines. Unlike students and administrators, an
// empty stock is a success with an empty list on this route.
func (s *RemedioService) List(ctx context.Context) ([]model.Remedio, error) {
	remedios, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if remedios == nil {
		remedios = []model.Remedio{}
	}
	return remedios, nil
}

// Create adds a medicine to stock. A medicine matching the name or the
// category already exists is a conflict.
func (s *RemedioService) Create(ctx context.Context, req *model.CreateRemedioRequest) (*model.Remedio, error) {
	validade, err := model.ParseValidade(req.Validade)
	if err != nil {
		return nil, response.BadRequest("Data de validade inválida")
	}

	exists, err := s.repo.ExistsConflicting(ctx, req.Nome, req.Categoria)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, response.Conflict("Remédio já existente")
	}

	remedio := &model.Remedio{
		Nome:       req.Nome,
		Categoria:  req.Categoria,
		Quantidade: req.Quantidade,
		Validade:   validade,
	}
	if err := s.repo.Create(ctx, remedio); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, response.Conflict("Remédio já existente")
		}
		return nil, err
	}

	s.log.Info().Int("remedio_id", remedio.ID).Str("nome", remedio.Nome).Msg("Medicine added to stock")
	return remedio, nil
}

// Update overwrites a medicine's name, category and stock count.
func (s *RemedioService) Update(ctx context.Context, id int, req *model.UpdateRemedioRequest) (*model.Remedio, error) {
	remedio, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, response.NotFound("Remédio não encontrado")
		}
		return nil, err
	}

	remedio.Nome = req.Nome
	remedio.Categoria = req.Categoria
	remedio.Quantidade = req.Quantidade
	if err := s.repo.Update(ctx, remedio); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, response.NotFound("Remédio não encontrado")
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, response.Conflict("Remédio já existente")
		}
		return nil, err
	}
	return remedio, nil
}

// Delete removes a medicine and returns the removed record.
func (s *RemedioService) Delete(ctx context.Context, id int) (*model.Remedio, error) {
	remedio, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, response.NotFound("Remédio não encontrado")
		}
		return nil, err
	}
	return remedio, nil
}
