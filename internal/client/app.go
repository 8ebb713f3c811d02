package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-run-watch/internal/adapter"
	"github.com/MKhiriev/go-run-watch/internal/config"
	"github.com/MKhiriev/go-run-watch/internal/logger"
	"github.com/MKhiriev/go-run-watch/internal/service"
	"github.com/MKhiriev/go-run-watch/internal/store"
)

// App holds the runtime dependencies shared by all commands.
type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	services *service.ClientServices
	logger   *logger.Logger
}

// NewApp opens the local store and builds the transports and services.
// buildToken is the credential embedded at build time; a configured default
// token takes precedence over it.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildToken string, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	runAdapter, err := adapter.NewHTTPRunAdapter(cfg.Adapter, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create run adapter: %w", err)
	}

	dialer, err := adapter.NewWebSocketDialer(cfg.Adapter, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create push dialer: %w", err)
	}

	defaultToken := cfg.App.DefaultToken
	if defaultToken == "" {
		defaultToken = buildToken
	}

	services := service.NewClientServices(storages, runAdapter, dialer, defaultToken, cfg.Workers.PollInterval, log)

	return &App{
		cfg:      cfg,
		storages: storages,
		services: services,
		logger:   log,
	}, nil
}

// Close releases the local store.
func (a *App) Close() error {
	return a.storages.Close()
}
