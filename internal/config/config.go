// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the runwatch
// client. It is populated by merging built-in defaults, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the fallback credential and the
	// log destination.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the local credential database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the backend HTTP and WebSocket addresses and the
	// outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for the polling worker.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DefaultToken is the build-time/default bearer credential used when the
	// local store holds none. Empty means "no credential" which is a valid
	// state (polling-only mode).
	// Env: APP_DEFAULT_TOKEN
	DefaultToken string `env:"DEFAULT_TOKEN"`

	// LogFile is the path the client logger appends to. The TUI owns stdout,
	// so logs never go there.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the local sqlite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local sqlite database.
type DB struct {
	// DSN is the sqlite database file path (e.g. "runwatch.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration for the backend transport.
type Adapter struct {
	// HTTPAddress is the base URL of the backend REST API
	// (e.g. "http://localhost:8000/dashboard").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// WSAddress is the base URL of the push endpoint (e.g. "ws://localhost:8000").
	// When empty it is derived from HTTPAddress.
	// Env: ADAPTER_WS_ADDRESS
	WSAddress string `env:"WS_ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PollInterval is the fixed re-fetch interval used in polling mode.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Defaults returns the built-in configuration every other source is merged
// on top of.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogFile: defaultLogFile,
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			PollInterval: defaultPollInterval,
		},
	}
}

const (
	defaultHTTPAddress    = "http://localhost:8000/dashboard"
	defaultRequestTimeout = 15 * time.Second
	defaultPollInterval   = 5 * time.Second
	defaultDSN            = "runwatch.db"
	defaultLogFile        = "runwatch.log"
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (nil flags are skipped)
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
