// Package app wires configuration, storage, SMS delivery, services, the
// background scheduler and the interactive CLI into one runnable application.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/stockkeeper/internal/cli"
	"github.com/dmitrijs2005/stockkeeper/internal/config"
	"github.com/dmitrijs2005/stockkeeper/internal/filex"
	"github.com/dmitrijs2005/stockkeeper/internal/jobs"
	"github.com/dmitrijs2005/stockkeeper/internal/logging"
	"github.com/dmitrijs2005/stockkeeper/internal/services"
	"github.com/dmitrijs2005/stockkeeper/internal/sms"
	"github.com/dmitrijs2005/stockkeeper/internal/store"
)

// shutdownTimeout bounds how long Run waits for a running scheduled job.
const shutdownTimeout = 5 * time.Second

type App struct {
	config    *config.Config
	logger    logging.Logger
	store     *store.Store
	alerts    services.AlertService
	scheduler *jobs.Scheduler
	cli       interface{ Run(ctx context.Context) }
}

// NewApp validates c and builds every component. Logs go to stderr so they
// do not interleave with the REPL on stdout.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(c.LogLevel, c.LogFormat, os.Stderr)
	if err != nil {
		return nil, err
	}

	if c.DatabaseDriver == config.DriverSQLite {
		if err := filex.EnsureParentDir(c.DatabaseDSN); err != nil {
			return nil, err
		}
	}

	st, err := store.Open(ctx, store.Options{
		Driver:   c.DatabaseDriver,
		DSN:      c.DatabaseDSN,
		Strategy: c.MigrationStrategy,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	a, err := build(ctx, c, logger, st)
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	return a, nil
}

func build(ctx context.Context, c *config.Config, logger logging.Logger, st *store.Store) (*App, error) {
	encoder, err := services.NewPasswordEncoder(c.PasswordEncoding, c.PasswordPepper)
	if err != nil {
		return nil, err
	}

	transport, err := sms.New(ctx, c, logger)
	if err != nil {
		return nil, fmt.Errorf("sms init error: %w", err)
	}

	auth := services.NewAuthService(st, encoder)
	inventory := services.NewInventoryService(st)
	alerts := services.NewAlertService(st, st, transport, c.SendTimeout, logger)

	a := &App{
		config: c,
		logger: logger,
		store:  st,
		alerts: alerts,
		cli:    cli.NewApp(auth, inventory, alerts, logger),
	}

	if c.AlertSchedule != "" {
		a.scheduler = jobs.NewScheduler()
		if err := a.scheduler.Add(c.AlertSchedule, jobs.NewLowStockJob(alerts, c.SendTimeout, logger)); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run blocks until the user leaves the REPL or a termination signal arrives,
// then stops the scheduler and closes the database.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	if app.scheduler != nil {
		app.logger.Info(ctx, "low stock alerts scheduled",
			"schedule", app.config.AlertSchedule, "jobs", app.scheduler.Entries())
		app.scheduler.Start()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		app.cli.Run(ctx)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		app.logger.Info(ctx, "interrupted, shutting down")
	}

	app.shutdown()
}

func (app *App) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if app.scheduler != nil {
		app.scheduler.Stop(ctx)
	}
	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
