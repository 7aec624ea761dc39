package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// RunConfig groups dependencies for running the service until shutdown.
type RunConfig struct {
	Server *http.Server
	Logger *slog.Logger
}

// WaitForShutdown blocks until a shutdown signal is received, then
// gracefully stops the HTTP server.
func WaitForShutdown(cfg RunConfig) error {
	if cfg.Server == nil {
		return errors.New("http server is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.Info("shutting down...")

	return ShutdownHTTPServer(context.Background(), cfg.Server, logger)
}
