package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"indicators/internal/adapters"
	"indicators/internal/adapters/cache"
	"indicators/internal/adapters/mindicador"
	"indicators/internal/adapters/pdf"
	"indicators/internal/adapters/postgres"
	"indicators/internal/adapters/s3"
	"indicators/internal/api"
	"indicators/internal/config"
	"indicators/internal/indicator"
	"indicators/internal/indicator/handler"
	"indicators/internal/platform/db"
	httpserver "indicators/internal/platform/http"
)

const seriesCacheItems = 64

// App holds the wired components shared by every entry point.
type App struct {
	Config     *config.AppConfig
	Location   *time.Location
	Operations *indicator.Operations

	pool    *pgxpool.Pool
	closers []func()
}

// SetupLogging configures the global logger once per process.
func SetupLogging(cfg config.Logging) {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if parsedLvl, parseErr := logrus.ParseLevel(cfg.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
}

// Build connects to the record store and wires the operations.
func Build(ctx context.Context, cfg *config.AppConfig) (*App, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Timezone, err)
	}

	// Bounded context for startup operations (DB connect, AWS config)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	a := &App{Config: cfg, Location: location}

	pool, err := db.CreatePoolAndPing(startupCtx, cfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return nil, err
	}
	a.pool = pool
	a.closers = append(a.closers, pool.Close)
	logrus.Info("✅ Postgres connection successful")

	archive, err := s3.NewArchive(startupCtx, cfg.ObjectStore, cfg.Offline)
	if err != nil {
		a.Close()
		return nil, err
	}

	client, err := newIndicatorClient(cfg.Mindicador, location, a)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Operations = indicator.NewOperations(
		client,
		postgres.NewIndicatorRepository(pool, cfg.Store.Table),
		archive,
		pdf.NewRenderer(),
		location,
	)
	return a, nil
}

func newIndicatorClient(cfg config.Mindicador, location *time.Location, a *App) (adapters.IndicatorClient, error) {
	client := mindicador.NewClient(cfg.BaseURL, mindicador.Options{
		Timeout:           time.Duration(cfg.TimeoutSeconds) * time.Second,
		RetryCount:        cfg.RetryCount,
		RequestsPerSecond: cfg.RequestsPerSecond,
	})
	a.closers = append(a.closers, func() { _ = client.Close() })

	if cfg.CacheTTLSeconds <= 0 {
		return client, nil
	}
	cached, err := cache.NewSeriesCache(client, seriesCacheItems, time.Duration(cfg.CacheTTLSeconds)*time.Second, location)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, cached.Close)
	return cached, nil
}

// Migrate applies the record table migrations.
func (a *App) Migrate(ctx context.Context) error {
	if err := db.Migrate(ctx, a.pool, a.Config.Store.Table); err != nil {
		logrus.WithError(err).Error("Failed to migrate record store")
		return err
	}
	logrus.Info("✅ Record store migrations applied")
	return nil
}

// Serve starts the scheduler and the HTTP server and blocks until ctx is canceled.
func (a *App) Serve(ctx context.Context) error {
	if a.Config.Store.AutoMigrate {
		if err := a.Migrate(ctx); err != nil {
			return err
		}
	}

	if a.Config.Scheduler.Enabled {
		scheduler := indicator.NewScheduler(a.Operations, a.Config.Scheduler, a.Location)
		// Ensure scheduler stops before DB pool closes
		defer func() {
			if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
				logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
			}
		}()
		if startErr := scheduler.Start(ctx); startErr != nil {
			logrus.WithError(startErr).Error("Failed to start scheduler")
			return startErr
		}
		logrus.Info("✅ Scheduler activation successful")
	}

	router := api.NewRouter(handler.NewIndicatorHandler(a.Operations))

	logrus.Info("Starting http server")
	if serverErr := httpserver.Start(ctx, a.Config.HTTPServer, router); serverErr != nil {
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
