// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the compliance backend.
//
// [RunAdapter] is the read-only REST side (run, steps, run list) implemented
// over resty by [NewHTTPRunAdapter]. [PushDialer] opens the per-run push
// channel implemented over golang.org/x/net/websocket by [NewWebSocketDialer].
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-run-watch/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RunAdapter defines read access to the run resources of the backend.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type RunAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	// An empty token removes the Authorization header.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none is set.
	Token() string

	// GetRun fetches GET /runs/{id}.
	GetRun(ctx context.Context, runID int64) (models.Run, error)

	// GetRunSteps fetches GET /runs/{id}/steps. The returned order is the
	// backend's; callers must sort.
	GetRunSteps(ctx context.Context, runID int64) ([]models.Step, error)

	// ListRuns fetches GET /runs?limit=N, most recent first.
	ListRuns(ctx context.Context, limit int) ([]models.Run, error)
}

// PushChannel is an open, read-only stream of run update frames.
type PushChannel interface {
	// Receive blocks until the next text frame arrives. It returns an error
	// (io.EOF or [ErrChannelClosed] on orderly close) once the channel is
	// unusable; no further frames follow.
	Receive() ([]byte, error)

	// Close closes the underlying connection and unblocks Receive. Safe to
	// call more than once.
	Close() error
}

// PushDialer opens push channels scoped to a single run.
type PushDialer interface {
	// Dial connects to the push endpoint of runID, passing token as a query
	// parameter. Returns [ErrMalformedURL] or [ErrDisallowedScheme] (wrapped)
	// when the endpoint URL cannot be built, or the handshake error.
	Dial(ctx context.Context, runID int64, token string) (PushChannel, error)
}
