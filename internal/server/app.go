// Package server initializes and runs the expense tracker server: it opens
// the storage backend, wires the services, handles graceful shutdown, and
// starts the HTTP API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"spenttribe/internal/logging"
	"spenttribe/internal/server/analytics"
	"spenttribe/internal/server/config"
	"spenttribe/internal/server/expenses"
	"spenttribe/internal/server/httpapi"
	"spenttribe/internal/server/receipts"
	"spenttribe/internal/server/shared/db"
	"spenttribe/internal/server/users"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager db.RepositoryManager
	api     *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	manager, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(manager.Users(), cfg)
	es := expenses.NewService(manager.Expenses())
	as := analytics.NewService(manager.Expenses())
	rs := receipts.NewService(manager.Expenses(), cfg)

	api := httpapi.NewServer(cfg, logger, us, es, as, rs)

	return &App{config: cfg, logger: logger, manager: manager, api: api}, nil
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

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "env", app.config.Env)

	app.initSignalHandler(cancelFunc)

	if err := app.api.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
