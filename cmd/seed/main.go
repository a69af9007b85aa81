package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/gaienhofen/user-onboarding/config"
	"github.com/gaienhofen/user-onboarding/internal/container"
	"github.com/gaienhofen/user-onboarding/internal/domain/entity"
	"github.com/gaienhofen/user-onboarding/internal/domain/repository"
	pginfra "github.com/gaienhofen/user-onboarding/internal/infrastructure/postgres"
	"github.com/gaienhofen/user-onboarding/pkg/helpers"
)

// Seeds a demo user through the onboarding service so the stored digest
// matches what the API would produce.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()
	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	c := &container.Container{Config: cfg, Logger: logger, PGPool: pool}
	svc, err := c.UserService()
	if err != nil {
		log.Fatalf("failed to build service: %v", err)
	}

	demo := &entity.User{
		FirstName: "Demo",
		Name:      "User",
		Email:     "demo.user@example.com",
		Password:  "password123",
	}
	u, err := svc.AddNewUser(ctx, demo)
	switch {
	case errors.Is(err, repository.ErrEmailTaken):
		fmt.Printf("seed user %s already exists\n", demo.Email)
	case err != nil:
		log.Fatalf("failed to seed user: %v", err)
	default:
		fmt.Printf("seeded user: id=%s email=%s password=%s\n", u.ID, u.Email, demo.Password)
	}
}
