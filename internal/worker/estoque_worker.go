package worker

import (
	"context"
	"time"

	"github.com/medikit/dispenser-backend/internal/config"
	"github.com/medikit/dispenser-backend/internal/repository"
	"github.com/medikit/dispenser-backend/internal/service"
	"github.com/rs/zerolog"
)

// EstoqueWorker periodically refreshes the dashboard cache and logs
// replenishment warnings for expired or low-stock medicines, so operators
// notice problems without polling the API.
type EstoqueWorker struct {
	remedioRepo      *repository.RemedioRepository
	dashboardService *service.DashboardService
	cfg              *config.Config
	log              zerolog.Logger
}

// NewEstoqueWorker creates a new EstoqueWorker.
func NewEstoqueWorker(remedioRepo *repository.RemedioRepository, dashboardService *service.DashboardService, cfg *config.Config, log zerolog.Logger) *EstoqueWorker {
	return &EstoqueWorker{
		remedioRepo:      remedioRepo,
		dashboardService: dashboardService,
		cfg:              cfg,
		log:              log.With().Str("component", "estoque_worker").Logger(),
	}
}

// Start begins the periodic loop. Call in a goroutine; returns when ctx is
// cancelled. Runs one pass immediately so the cache is warm before the
// server accepts traffic.
func (w *EstoqueWorker) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.cfg.EstoqueInterval).Msg("Worker started")

	w.run(ctx)

	ticker := time.NewTicker(w.cfg.EstoqueInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			w.run(ctx)
		}
	}
}

func (w *EstoqueWorker) run(ctx context.Context) {
	if _, err := w.dashboardService.Refresh(ctx); err != nil {
		w.log.Error().Err(err).Msg("Dashboard refresh failed")
	}

	criticos, err := w.remedioRepo.ListCriticos(ctx, w.cfg.LowStockThreshold)
	if err != nil {
		w.log.Error().Err(err).Msg("Critical stock scan failed")
		return
	}

	now := time.Now()
	for _, m := range criticos {
		evt := w.log.Warn().
			Int("remedio_id", m.ID).
			Str("nome", m.Nome).
			Int("quantidade", m.Quantidade).
			Time("validade", m.Validade)
		switch {
		case m.Validade.Before(now):
			evt.Msg("Medicine expired")
		default:
			evt.Msg("Medicine low on stock")
		}
	}
}
