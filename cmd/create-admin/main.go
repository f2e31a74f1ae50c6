package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/medikit/dispenser-backend/internal/config"
	"github.com/medikit/dispenser-backend/internal/database"
	"github.com/medikit/dispenser-backend/internal/logger"
	"github.com/medikit/dispenser-backend/internal/model"
	"github.com/medikit/dispenser-backend/internal/repository"
	"github.com/medikit/dispenser-backend/internal/service"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	adminRepo := repository.NewAdministradorRepository(pool)
	authService := service.NewAuthService(cfg)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Administrator ===")

	fmt.Print("Enter Nome: ")
	nome, _ := reader.ReadString('\n')
	nome = strings.TrimSpace(nome)
	if nome == "" {
		fmt.Println("Error: Nome is required")
		return
	}

	fmt.Print("Enter Senha: ")
	byteSenha, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	senha := string(byteSenha)
	fmt.Println() // Newline after password input
	if senha == "" {
		fmt.Println("Error: Senha is required")
		return
	}

	fmt.Print("Enter ID Card (optional): ")
	idCard, _ := reader.ReadString('\n')
	idCard = strings.TrimSpace(idCard)

	// ─── Create Administrator ──────────────────────────────────────────
	hash, err := authService.HashPassword(senha)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	admin := &model.Administrador{Nome: nome, Senha: hash}
	if idCard != "" {
		admin.IDCard = &idCard
	}

	if err := adminRepo.Create(ctx, admin); err != nil {
		if err == repository.ErrDuplicate {
			fmt.Printf("Error: administrator %q already exists\n", nome)
			return
		}
		log.Fatal().Err(err).Msg("Failed to create administrator")
	}

	fmt.Printf("Administrator created with id %d\n", admin.ID)
}
