package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/taskhub/go-task-manager/config"
	"github.com/taskhub/go-task-manager/internal/application"
	pginfra "github.com/taskhub/go-task-manager/internal/infrastructure/postgres"
	"github.com/taskhub/go-task-manager/pkg/helpers"
)

// Seeds the administrator account. The server performs the same idempotent
// reconciliation at startup; this command exists for environments where the
// database is prepared before the API boots.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	jwtManager := helpers.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL)
	svc := application.NewUserService(pginfra.NewUserRepository(pool), jwtManager, logger, cfg.BcryptCost)

	if err := svc.EnsureAdmin(ctx, application.AdminSeed{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	}); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	logger.WithField("email", cfg.AdminEmail).Info("admin account ensured")
}
