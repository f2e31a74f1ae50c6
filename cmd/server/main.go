package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/medikit/dispenser-backend/internal/config"
	"github.com/medikit/dispenser-backend/internal/database"
	"github.com/medikit/dispenser-backend/internal/handler"
	"github.com/medikit/dispenser-backend/internal/logger"
	"github.com/medikit/dispenser-backend/internal/repository"
	"github.com/medikit/dispenser-backend/internal/router"
	"github.com/medikit/dispenser-backend/internal/service"
	"github.com/medikit/dispenser-backend/internal/validator"
	"github.com/medikit/dispenser-backend/internal/worker"
	"github.com/medikit/dispenser-backend/internal/ws"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Dispenser Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	adminRepo := repository.NewAdministradorRepository(pool)
	alunoRepo := repository.NewAlunoRepository(pool)
	remedioRepo := repository.NewRemedioRepository(pool)
	transacaoRepo := repository.NewTransacaoRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	// ─── Initialize Services ───────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	adminService := service.NewAdministradorService(adminRepo, authService, authService, log)
	alunoService := service.NewAlunoService(alunoRepo, log)
	remedioService := service.NewRemedioService(remedioRepo, log)
	feed := ws.NewFeed(rdb)
	transacaoService := service.NewTransacaoService(alunoRepo, remedioRepo, transacaoRepo, feed, log)
	dashboardService := service.NewDashboardService(dashboardRepo, rdb, cfg, log)

	// ─── Initialize Handlers ───────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:          handler.NewAuthHandler(adminService),
		Administrador: handler.NewAdministradorHandler(adminService),
		Aluno:         handler.NewAlunoHandler(alunoService),
		Remedio:       handler.NewRemedioHandler(remedioService),
		Transacao:     handler.NewTransacaoHandler(transacaoService),
		Dashboard:     handler.NewDashboardHandler(dashboardService),
		WS:            handler.NewWSHandler(feed, log, cfg.AllowedOrigins),
	}

	// ─── Start Stock Worker ────────────────────────────────────────────
	// Its first pass warms the dashboard cache before traffic arrives.
	workerCtx, workerCancel := context.WithCancel(context.Background())
	estoqueWorker := worker.NewEstoqueWorker(remedioRepo, dashboardService, cfg, log)
	go estoqueWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
