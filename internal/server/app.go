// Package server wires the storefront process: it opens the store selected
// by the DSN, runs migrations, builds the services and runs the gRPC and
// HTTP transports until a shutdown signal arrives.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/server/config"
	"github.com/dmitrijs2005/storefront/internal/server/gateway"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/storefront/internal/server/services"

	gs "github.com/dmitrijs2005/storefront/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	repos    repomanager.RepositoryManager
	services *services.Services
}

// newRepositoryManager is a seam for tests.
var newRepositoryManager = repomanager.NewRepositoryManager

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	rm, err := newRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx); err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	return &App{
		config:   c,
		logger:   logger,
		repos:    rm,
		services: services.New(rm, c),
	}, nil
}

// NewDefaultLogger writes JSON lines to stdout at the configured level. An
// unknown level logs at info; NewApp rejects it afterwards.
func NewDefaultLogger(c *config.Config) logging.Logger {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return logging.NewJSONLogger(os.Stdout, level)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.services)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "gRPC server", "error", err)
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gateway.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.services, app.config.CORSAllowOrigins)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "HTTP server", "error", err)
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a shutdown signal arrives or a server
// fails, then closes the store.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "closing store", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
}
