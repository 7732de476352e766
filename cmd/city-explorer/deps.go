package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/i474232898/city-explorer/internal/config"
	"github.com/i474232898/city-explorer/internal/explorer"
	"github.com/i474232898/city-explorer/internal/explorer/providers"
	"github.com/i474232898/city-explorer/internal/logging"
	"github.com/i474232898/city-explorer/internal/store"
)

// deps owns the process-wide resources: the logger and the store handle.
type deps struct {
	cfg     *config.AppConfig
	logger  *zap.Logger
	store   explorer.LocationStore
	service *explorer.Service
	closers []func() error
}

func buildDeps(ctx context.Context) (*deps, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	d := &deps{cfg: cfg, logger: logger}
	d.closers = append(d.closers, func() error {
		_ = logger.Sync()
		return nil
	})

	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL is not set; locations are cached in memory only")
		d.store = store.NewMemoryStore()
	} else {
		db, err := store.Open(cfg.DatabaseURL, cfg.DBMaxOpenConns)
		if err != nil {
			d.Close()
			return nil, err
		}
		pg := store.NewPostgresStore(db)
		// Prepend so the handle is closed before the logger is flushed.
		d.closers = append([]func() error{pg.Close}, d.closers...)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := pg.Ping(pingCtx); err != nil {
			logger.Error("database connection failed; continuing", zap.Error(err))
		} else {
			logger.Info("database connected")
		}
		cancel()

		d.store = pg
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := providers.NewHTTPClient(cfg.HTTPTimeout)

	resolver := explorer.NewResolver(d.store, providers.NewGoogleGeocoder(httpClient, cfg.GoogleMapsAPIKey), logger)
	d.service = explorer.NewService(
		resolver,
		providers.NewDarkSkyProvider(httpClient, cfg.DarkSkyAPIKey),
		providers.NewMeetupProvider(httpClient, cfg.MeetupAPIKey),
		logger,
	)

	return d, nil
}

// Close releases resources in order.
func (d *deps) Close() {
	for _, c := range d.closers {
		if err := c(); err != nil && d.logger != nil {
			d.logger.Error("close", zap.Error(err))
		}
	}
}
