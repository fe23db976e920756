package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-course-marketplace/config"
	"github.com/oksasatya/go-course-marketplace/internal/application"
	pginfra "github.com/oksasatya/go-course-marketplace/internal/infrastructure/postgres"
	"github.com/oksasatya/go-course-marketplace/internal/infrastructure/security"
	"github.com/oksasatya/go-course-marketplace/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, pginfra.PoolConfig{DSN: cfg.PostgresDSN(), MaxConns: 2})
	if err != nil {
		logger.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	clock := helpers.SystemClock{}
	ids := helpers.ULIDGenerator{}
	loader := application.NewFixtureLoader(
		application.NewRoleCreator(pginfra.NewRoleRepository(pool), clock, ids),
		pginfra.NewUserRepository(pool),
		security.NewBcryptHasher(cfg.BcryptCost),
		clock,
		ids,
		logger,
	)

	admin, err := loader.Load(ctx, application.AdminFixture{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Name:     cfg.AdminName,
	})
	if err != nil {
		helpers.LogError(logger, "failed to load fixtures", err, logrus.Fields{"admin_email": cfg.AdminEmail})
		os.Exit(1)
	}
	logger.WithFields(logrus.Fields{
		"user_id": admin.ID().String(),
		"email":   admin.Email().String(),
	}).Info("admin seeded")
}
