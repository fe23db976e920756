package router

import (
	"github.com/oksasatya/go-course-marketplace/internal/application"
	"github.com/oksasatya/go-course-marketplace/internal/container"
	domainsvc "github.com/oksasatya/go-course-marketplace/internal/domain/service"
	pginfra "github.com/oksasatya/go-course-marketplace/internal/infrastructure/postgres"
	"github.com/oksasatya/go-course-marketplace/internal/infrastructure/security"
	handlers "github.com/oksasatya/go-course-marketplace/internal/interface/http"
	"github.com/oksasatya/go-course-marketplace/internal/interface/middleware"
	"github.com/oksasatya/go-course-marketplace/internal/router/modules"
	"github.com/oksasatya/go-course-marketplace/pkg/helpers"
)

type UserModuleDeps struct {
	Creator   *application.UserCreator
	Confirmer *application.UserConfirmer
	Handler   *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	clock := helpers.SystemClock{}

	repo := pginfra.NewUserRepository(container.GetPGPool())
	tokens := security.NewConfirmationTokens(cfg.EmailSecret, cfg.ConfirmTokenTTL, cfg.ConfirmUserURL, clock)

	creator := application.NewUserCreator(
		repo,
		security.NewBcryptHasher(cfg.BcryptCost),
		domainsvc.NewUserEmailUniquenessChecker(repo),
		container.GetEventBus(),
		clock,
		helpers.ULIDGenerator{},
		logger,
	)
	confirmer := application.NewUserConfirmer(repo, tokens, clock, logger)

	return UserModuleDeps{
		Creator:   creator,
		Confirmer: confirmer,
		Handler:   handlers.NewUserHandler(creator, confirmer, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	rdb := container.GetRedis()

	limiterRedis := rdb
	if !cfg.RateLimitEnabled {
		limiterRedis = nil
	}
	var allow middleware.AllowFunc
	if cfg.RateLimitTrustPrivate {
		allow = middleware.AllowPrivateIP()
	}

	userDeps := buildUserDeps()
	r.Add(modules.NewUserModule(userDeps.Handler, limiterRedis, allow))
	r.Add(modules.NewHealthModule(container.GetPGPool(), rdb))
}
