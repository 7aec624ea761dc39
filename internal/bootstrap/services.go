package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/mergington/activities-ui/config"
	backendclient "github.com/mergington/activities-ui/internal/adapters/backend"
	redisadapter "github.com/mergington/activities-ui/internal/adapters/redis"
	"github.com/mergington/activities-ui/internal/service"
)

// ServiceContainer holds the wired application services.
type ServiceContainer struct {
	Sessions   *service.SessionService
	Auth       *service.AuthService
	Dispatcher *service.DispatcherService
}

// ServiceDeps groups dependencies for constructing services.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices wires adapters and services from shared dependencies.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	backend, err := backendclient.NewClient(backendclient.Config{
		BaseURL: deps.Config.Backend.BaseURL,
		Timeout: deps.Config.Backend.Timeout,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build backend client: %w", err)
	}

	tokens := redisadapter.NewTokenStoreWithOptions(deps.RedisClient, redisadapter.Options{
		TTL: deps.Config.Session.TokenTTL,
	})

	sessions := service.NewSessionService(service.SessionServiceOptions{
		Tokens: tokens,
		Logger: logger,
	})

	auth := service.NewAuthService(service.AuthServiceOptions{
		Backend:  backend,
		Sessions: sessions,
		Logger:   logger,
	})

	dispatcher := service.NewDispatcherService(service.DispatcherServiceOptions{
		Backend:  backend,
		Sessions: sessions,
		Logger:   logger,
	})

	return ServiceContainer{
		Sessions:   sessions,
		Auth:       auth,
		Dispatcher: dispatcher,
	}, nil
}
