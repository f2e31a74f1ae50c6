package service

import (
	"context"
	"errors"

	"github.com/medikit/dispenser-backend/internal/model"
	"github.com/medikit/dispenser-backend/internal/repository"
	"github.com/medikit/dispenser-backend/internal/response"
	"github.com/rs/zerolog"
)

// AdministradorService covers registration, login and profile management.
type AdministradorService struct {
	repo   *repository.AdministradorRepository
	hasher Hasher
	tokens TokenService
	log    zerolog.Logger
}

// NewAdministradorService creates a new AdministradorService.
func NewAdministradorService(repo *repository.AdministradorRepository, hasher Hasher, tokens TokenService, log zerolog.Logger) *AdministradorService {
	return &AdministradorService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		log:    log.With().Str("component", "administrador_service").Logger(),
	}
}

// Register creates an administrator account and issues a session token.
// The display name must be unique; the plaintext password is hashed before
// it ever reaches the repository.
func (s *AdministradorService) Register(ctx context.Context, req *model.RegisterRequest) (string, error) {
	_, err := s.repo.GetByNome(ctx, req.Nome)
	if err == nil {
		return "", response.Conflict("Usuário já existente")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	hash, err := s.hasher.HashPassword(req.Senha)
	if err != nil {
		return "", err
	}

	admin := &model.Administrador{Nome: req.Nome, Senha: hash, IDCard: req.IDCard}
	if err := s.repo.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost the race against a concurrent registration with the
			// same nome; the unique constraint is the arbiter.
			return "", response.Conflict("Usuário já existente")
		}
		return "", err
	}

	s.log.Info().Int("admin_id", admin.ID).Str("nome", admin.Nome).Msg("Administrator registered")
	return s.tokens.GenerateToken(admin.ID)
}

// Login authenticates by display name and password and issues a token.
// Unknown user and wrong password are distinct statuses on the wire; that
// is the established contract with the frontend.
func (s *AdministradorService) Login(ctx context.Context, req *model.LoginRequest) (string, error) {
	admin, err := s.repo.GetByNome(ctx, req.Nome)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", response.NotFound("Usuário não encontrado")
		}
		return "", err
	}

	if err := s.hasher.CheckPassword(admin.Senha, req.Senha); err != nil {
		return "", response.Unauthorized("Usuário ou senha incorreta!")
	}

	return s.tokens.GenerateToken(admin.ID)
}

// GetByID retrieves an administrator profile.
func (s *AdministradorService) GetByID(ctx context.Context, id int) (*model.Administrador, error) {
	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, response.NotFound("Administrador não encontrado")
		}
		return nil, err
	}
	return admin, nil
}

// List retrieves all administrators. An empty store is a not-found
// condition on this route.
func (s *AdministradorService) List(ctx context.Context) ([]model.Administrador, error) {
	admins, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(admins) == 0 {
		return nil, response.NotFound("Nenhum administrador encontrado")
	}
	return admins, nil
}

// UpdatePerfil overwrites an administrator's name and password. Any valid
// session may edit any profile; there is no ownership check.
func (s *AdministradorService) UpdatePerfil(ctx context.Context, id int, req *model.UpdatePerfilRequest) (*model.Administrador, error) {
	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, response.NotFound("Conta não encontrada!")
		}
		return nil, err
	}

	hash, err := s.hasher.HashPassword(req.Senha)
	if err != nil {
		return nil, err
	}

	admin.Nome = req.Nome
	admin.Senha = hash
	if err := s.repo.Update(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, response.NotFound("Conta não encontrada!")
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, response.Conflict("Usuário já existente")
		}
		return nil, err
	}
	return admin, nil
}

// DeletePerfil removes an administrator and returns the removed record.
func (s *AdministradorService) DeletePerfil(ctx context.Context, id int) (*model.Administrador, error) {
	admin, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, response.NotFound("Conta não encontrada!")
		}
		return nil, err
	}
	s.log.Info().Int("admin_id", id).Msg("Administrator removed")
	return admin, nil
}
