package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medikit/dispenser-backend/internal/model"
	"github.com/medikit/dispenser-backend/internal/repository"
	"github.com/medikit/dispenser-backend/internal/response"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAlunoLookup struct {
	alunos map[string]*model.Aluno
}

func (f *fakeAlunoLookup) GetByIDCard(_ context.Context, idCard string) (*model.Aluno, error) {
	if a, ok := f.alunos[idCard]; ok {
		return a, nil
	}
	return nil, repository.ErrNotFound
}

type fakeRemedioLookup struct {
	remedios map[string]*model.Remedio
}

func (f *fakeRemedioLookup) GetByNome(_ context.Context, nome string) (*model.Remedio, error) {
	if r, ok := f.remedios[nome]; ok {
		return r, nil
	}
	return nil, repository.ErrNotFound
}

type fakeTransacaoStore struct {
	created []model.Transacao
	nextID  int
}

func (f *fakeTransacaoStore) Create(_ context.Context, t *model.Transacao) error {
	f.nextID++
	t.ID = f.nextID
	f.created = append(f.created, *t)
	return nil
}

func (f *fakeTransacaoStore) ListWithDetails(_ context.Context) ([]model.TransacaoDetalhe, error) {
	return []model.TransacaoDetalhe{}, nil
}

type fakeFeed struct {
	published []model.TransacaoDetalhe
	err       error
}

func (f *fakeFeed) PublishTransacao(_ context.Context, d model.TransacaoDetalhe) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, d)
	return nil
}

func newIngestFixture() (*TransacaoService, *fakeTransacaoStore, *fakeFeed) {
	alunos := &fakeAlunoLookup{alunos: map[string]*model.Aluno{
		"CARD-0001": {ID: 11, Nome: "Maria Souza", IDCard: "CARD-0001"},
	}}
	remedios := &fakeRemedioLookup{remedios: map[string]*model.Remedio{
		"Dipirona": {ID: 7, Nome: "Dipirona", Quantidade: 30},
	}}
	store := &fakeTransacaoStore{}
	feed := &fakeFeed{}

	svc := NewTransacaoService(alunos, remedios, store, feed, zerolog.Nop())
	svc.now = func() time.Time {
		return time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC)
	}
	return svc, store, feed
}

func validIngestRequest() *model.IngestTransacaoRequest {
	return &model.IngestTransacaoRequest{
		Hora:        "01/01/1970 00:00:00", // stale device clock, must be ignored
		Medicamento: "Dipirona",
		Quantidade:  1,
		Slot:        2,
		Usuario:     "CARD-0001",
		Status:      "ok",
	}
}

func TestIngest(t *testing.T) {
	t.Run("resolves badge and medicine to internal ids", func(t *testing.T) {
		svc, store, feed := newIngestFixture()

		res, err := svc.Ingest(context.Background(), validIngestRequest())
		require.NoError(t, err)

		assert.Equal(t, 11, res.Transacao.AlunoID)
		assert.Equal(t, 7, res.Transacao.RemedioID)
		assert.Equal(t, 11, res.Aluno.ID)
		assert.Equal(t, "Maria Souza", res.Aluno.Nome)
		assert.Equal(t, "CARD-0001", res.Aluno.IDCard)
		assert.Equal(t, 7, res.Remedio.ID)
		assert.Equal(t, "Dipirona", res.Remedio.Nome)

		require.Len(t, store.created, 1)
		require.Len(t, feed.published, 1)
		assert.Equal(t, "Maria Souza", feed.published[0].Usuario)
		assert.Equal(t, "Dipirona", feed.published[0].Medicamento)
	})

	t.Run("stamps the server clock, not the device clock", func(t *testing.T) {
		svc, store, _ := newIngestFixture()

		res, err := svc.Ingest(context.Background(), validIngestRequest())
		require.NoError(t, err)

		want := time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC)
		assert.True(t, res.Transacao.Hora.Equal(want))
		assert.True(t, store.created[0].Hora.Equal(want))
	})

	t.Run("unknown badge is rejected before any write", func(t *testing.T) {
		svc, store, feed := newIngestFixture()

		req := validIngestRequest()
		req.Usuario = "CARD-9999"

		res, err := svc.Ingest(context.Background(), req)
		assert.Nil(t, res)

		var se *response.StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, 404, se.Status)
		assert.Equal(t, "Aluno não encontrado", se.Message)

		assert.Empty(t, store.created)
		assert.Empty(t, feed.published)
	})

	t.Run("unknown medicine is rejected before any write", func(t *testing.T) {
		svc, store, _ := newIngestFixture()

		req := validIngestRequest()
		req.Medicamento = "Placebo"

		res, err := svc.Ingest(context.Background(), req)
		assert.Nil(t, res)

		var se *response.StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, 404, se.Status)
		assert.Equal(t, "Remédio não encontrado", se.Message)

		assert.Empty(t, store.created)
	})

	t.Run("a device retry inserts a second row", func(t *testing.T) {
		svc, store, _ := newIngestFixture()

		_, err := svc.Ingest(context.Background(), validIngestRequest())
		require.NoError(t, err)
		_, err = svc.Ingest(context.Background(), validIngestRequest())
		require.NoError(t, err)

		assert.Len(t, store.created, 2)
		assert.NotEqual(t, store.created[0].ID, store.created[1].ID)
	})

	t.Run("a feed failure does not fail the ingestion", func(t *testing.T) {
		svc, store, feed := newIngestFixture()
		feed.err = errors.New("redis down")

		res, err := svc.Ingest(context.Background(), validIngestRequest())
		require.NoError(t, err)
		assert.NotNil(t, res)
		assert.Len(t, store.created, 1)
	})

	t.Run("nil feed disables publishing", func(t *testing.T) {
		svc, store, _ := newIngestFixture()
		svc.feed = nil

		_, err := svc.Ingest(context.Background(), validIngestRequest())
		require.NoError(t, err)
		assert.Len(t, store.created, 1)
	})
}
