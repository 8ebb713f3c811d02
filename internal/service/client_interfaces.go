package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-run-watch/models"
)

// RunSyncClient keeps an in-memory snapshot of one run and its steps current.
//
// After Start the client performs an initial fetch and then follows the run
// either over the push channel (when a credential is available) or by
// re-fetching every poll interval. A push channel that errors, closes or
// delivers an unparseable frame is replaced by polling for the rest of the
// session; there is no in-band reconnection.
type RunSyncClient interface {
	// Start tears down any previous session and begins following runID.
	// A non-positive runID marks the snapshot unavailable and returns
	// [ErrInvalidRunID]; nothing is fetched or retried for it.
	Start(ctx context.Context, runID int64) error

	// Refresh requests an immediate re-fetch. It is skipped when a fetch is
	// already in flight. Returns [ErrNotStarted] without an active session.
	Refresh(ctx context.Context) error

	// Snapshot returns the current published state.
	Snapshot() RunSnapshot

	// Subscribe returns a channel receiving a ping after every published
	// change. The channel is closed by Unsubscribe or Close.
	Subscribe() chan struct{}

	// Unsubscribe releases a channel returned by Subscribe.
	Unsubscribe(ch chan struct{})

	// Close stops the poll timer, closes the push channel and waits for all
	// session goroutines. Safe to call more than once.
	Close()
}

// CredentialProvider resolves the bearer credential used for backend calls.
// The credential is opaque; its absence is a valid state.
type CredentialProvider interface {
	// Credential returns the stored token, falling back to the configured
	// default. ok is false when neither is set.
	Credential(ctx context.Context) (token string, ok bool)

	// Save persists token in the local store.
	Save(ctx context.Context, token string) error

	// Clear removes the stored token. The configured default, if any, stays
	// in effect.
	Clear(ctx context.Context) error

	// Describe resolves the credential and decodes its claims, without
	// verification, for display.
	Describe(ctx context.Context) (models.CredentialInfo, error)
}

// ClientPollJob defines the contract for the background worker that drives
// polling ticks of a sync session.
type ClientPollJob interface {
	// Start launches the ticker goroutine. It ticks every interval,
	// defaulting to [DefaultPollInterval] if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// Running reports whether the ticker goroutine is active.
	Running() bool
}

// RunQueryService serves one-shot reads of runs.
type RunQueryService interface {
	// Details fetches the run and its steps concurrently and returns them as
	// a snapshot with steps sorted by ID. A non-positive runID returns an
	// unavailable snapshot and [ErrInvalidRunID].
	Details(ctx context.Context, runID int64) (RunSnapshot, error)

	// List returns up to limit most recent runs.
	List(ctx context.Context, limit int) ([]models.Run, error)
}
