package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/medikit/dispenser-backend/internal/config"
	"github.com/medikit/dispenser-backend/internal/database"
	"github.com/medikit/dispenser-backend/internal/logger"
	"github.com/medikit/dispenser-backend/internal/model"
	"github.com/medikit/dispenser-backend/internal/repository"
)

// Seeds demo students and medicines for local development, so the
// dispenser firmware has badge ids and medicine names to report against.
func main() {
	var count int
	flag.IntVar(&count, "count", 10, "Number of demo students to create")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	alunoRepo := repository.NewAlunoRepository(pool)
	remedioRepo := repository.NewRemedioRepository(pool)

	created := 0
	for i := 1; i <= count; i++ {
		aluno := &model.Aluno{
			Nome:     fmt.Sprintf("Aluno Demo %02d", i),
			Telefone: 11900000000 + int64(i),
			Sala:     100 + i%10,
			Turno:    []string{"manhã", "tarde", "noite"}[i%3],
			IDCard:   fmt.Sprintf("CARD-%04d", i),
		}
		if err := alunoRepo.Create(ctx, aluno); err != nil {
			if err == repository.ErrDuplicate {
				continue // Already seeded on a previous run.
			}
			log.Fatal().Err(err).Str("nome", aluno.Nome).Msg("Failed to seed student")
		}
		created++
	}
	log.Info().Int("created", created).Msg("Students seeded")

	remedios := []model.Remedio{
		{Nome: "Paracetamol 500mg", Categoria: "Analgésico", Quantidade: 20, Validade: time.Now().AddDate(1, 0, 0)},
		{Nome: "Ibuprofeno 400mg", Categoria: "Anti-inflamatório", Quantidade: 15, Validade: time.Now().AddDate(0, 6, 0)},
		{Nome: "Loratadina 10mg", Categoria: "Antialérgico", Quantidade: 4, Validade: time.Now().AddDate(0, 3, 0)},
	}
	seeded := 0
	for i := range remedios {
		if err := remedioRepo.Create(ctx, &remedios[i]); err != nil {
			if err == repository.ErrDuplicate {
				continue
			}
			log.Fatal().Err(err).Str("nome", remedios[i].Nome).Msg("Failed to seed medicine")
		}
		seeded++
	}
	log.Info().Int("created", seeded).Msg("Medicines seeded")
}
