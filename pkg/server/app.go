package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"StationPulse/pkg/config"
	apphttp "StationPulse/pkg/http"
	applogger "StationPulse/pkg/logger"
)

// Preloader warms application state before the server accepts traffic.
type Preloader interface {
	Preload(ctx context.Context) error
}

// App ties together configuration, the HTTP server and application
// resources, and drives the startup/shutdown lifecycle.
type App struct {
	config    *config.Config
	logger    *applogger.Logger
	server    *apphttp.Server
	preloader Preloader
	closers   []io.Closer
}

func NewApp(cfg *config.Config, logger *applogger.Logger, srv *apphttp.Server, preloader Preloader, closers ...io.Closer) *App {
	return &App{
		config:    cfg,
		logger:    logger,
		server:    srv,
		preloader: preloader,
		closers:   closers,
	}
}

// Run starts the application and blocks until SIGINT/SIGTERM, then shuts
// down gracefully. A failed preload aborts startup: serving requests
// against a dataset that never loaded is useless.
func (a *App) Run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if a.preloader != nil {
		loadCtx, loadCancel := context.WithTimeout(ctx, 2*time.Minute)
		err := a.preloader.Preload(loadCtx)
		loadCancel()
		if err != nil {
			return fmt.Errorf("preload dataset: %w", err)
		}
	}

	if err := a.server.Start(); err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	a.logger.Info("server started",
		applogger.String("environment", a.config.Environment),
		applogger.Int("port", a.config.Server.Port),
	)

	<-ctx.Done()
	a.logger.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := a.server.Stop(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", applogger.Error(err))
	}

	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn("resource close failed", applogger.Error(err))
		}
	}

	a.logger.Info("server stopped")
	return nil
}
