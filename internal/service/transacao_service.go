package service

import (
	"context"
	"errors"
	"time"

	"github.com/medikit/dispenser-backend/internal/model"
	"github.com/medikit/dispenser-backend/internal/repository"
	"github.com/medikit/dispenser-backend/internal/response"
	"github.com/rs/zerolog"
)

// AlunoLookup resolves a badge id to a student record.
type AlunoLookup interface {
	GetByIDCard(ctx context.Context, idCard string) (*model.Aluno, error)
}

// RemedioLookup resolves a medicine name to a stock record.
type RemedioLookup interface {
	GetByNome(ctx context.Context, nome string) (*model.Remedio, error)
}

// TransacaoStore persists and lists dispensing events.
type TransacaoStore interface {
	Create(ctx context.Context, t *model.Transacao) error
	ListWithDetails(ctx context.Context) ([]model.TransacaoDetalhe, error)
}

// FeedPublisher pushes a newly ingested transaction to the live feed.
// Publishing is best effort: a feed failure never fails the ingestion.
type FeedPublisher interface {
	PublishTransacao(ctx context.Context, d model.TransacaoDetalhe) error
}

// TransacaoService reconciles device submissions against student and
// medicine records. The dispenser only knows a badge id and a medicine
// name; internal ids are resolved here and never trusted from the payload.
type TransacaoService struct {
	alunos   AlunoLookup
	remedios RemedioLookup
	store    TransacaoStore
	feed     FeedPublisher
	log      zerolog.Logger
	now      func() time.Time
}

// NewTransacaoService creates a new TransacaoService. feed may be nil to
// disable the live stream.
func NewTransacaoService(alunos AlunoLookup, remedios RemedioLookup, store TransacaoStore, feed FeedPublisher, log zerolog.Logger) *TransacaoService {
	return &TransacaoService{
		alunos:   alunos,
		remedios: remedios,
		store:    store,
		feed:     feed,
		log:      log.With().Str("component", "transacao_service").Logger(),
		now:      time.Now,
	}
}

// Ingest records a dispensing event submitted by the device. The device
// clock reading in the payload is ignored; the row gets the server clock.
// There is no duplicate-submission guard: a device retry inserts a second
// row.
func (s *TransacaoService) Ingest(ctx context.Context, req *model.IngestTransacaoRequest) (*model.TransacaoResultado, error) {
	aluno, err := s.alunos.GetByIDCard(ctx, req.Usuario)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, response.NotFound("Aluno não encontrado")
		}
		return nil, err
	}

	remedio, err := s.remedios.GetByNome(ctx, req.Medicamento)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, response.NotFound("Remédio não encontrado")
		}
		return nil, err
	}

	transacao := &model.Transacao{
		Hora:       s.now(),
		Quantidade: req.Quantidade,
		Slot:       req.Slot,
		Status:     req.Status,
		AlunoID:    aluno.ID,
		RemedioID:  remedio.ID,
	}
	if err := s.store.Create(ctx, transacao); err != nil {
		return nil, err
	}

	s.log.Info().
		Int("transacao_id", transacao.ID).
		Int("aluno_id", aluno.ID).
		Int("remedio_id", remedio.ID).
		Int("quantidade", transacao.Quantidade).
		Msg("Dispensing recorded")

	if s.feed != nil {
		detalhe := model.TransacaoDetalhe{
			ID:          transacao.ID,
			Hora:        model.FormatHora(transacao.Hora),
			Quantidade:  transacao.Quantidade,
			Slot:        transacao.Slot,
			Status:      transacao.Status,
			Usuario:     aluno.Nome,
			IDCard:      aluno.IDCard,
			Medicamento: remedio.Nome,
		}
		if err := s.feed.PublishTransacao(ctx, detalhe); err != nil {
			s.log.Warn().Err(err).Int("transacao_id", transacao.ID).Msg("Feed publish failed")
		}
	}

	return &model.TransacaoResultado{
		Transacao: *transacao,
		Aluno:     model.AlunoResumo{ID: aluno.ID, Nome: aluno.Nome, IDCard: aluno.IDCard},
		Remedio:   model.RemedioResumo{ID: remedio.ID, Nome: remedio.Nome},
	}, nil
}

// List retrieves all transactions, newest first, with the student and
// medicine denormalized for display.
func (s *TransacaoService) List(ctx context.Context) ([]model.TransacaoDetalhe, error) {
	return s.store.ListWithDetails(ctx)
}
