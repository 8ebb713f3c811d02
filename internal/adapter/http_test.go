// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-run-watch/internal/config"
	"github.com/MKhiriev/go-run-watch/internal/logger"
	"github.com/MKhiriev/go-run-watch/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpRunAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpRunAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPRunAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpRunAdapter)
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

// ── NewHTTPRunAdapter ────────────────────────────────────────────────────────

func TestNewHTTPRunAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPRunAdapter(config.ClientAdapter{HTTPAddress: "   "}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "scheme defaulted", in: "localhost:8000", want: "http://localhost:8000"},
		{name: "trailing slash trimmed", in: "http://localhost:8000/dashboard/", want: "http://localhost:8000/dashboard"},
		{name: "https kept", in: "https://api.example.com", want: "https://api.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── GetRun ───────────────────────────────────────────────────────────────────

func TestGetRun_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/dashboard/runs/{runID}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "123", chi.URLParam(req, "runID"))
		assert.NotEmpty(t, req.Header.Get(traceIDHeader))
		assert.Empty(t, req.Header.Get("Authorization"))
		writeJSON(w, `{
			"id": 123, "raw_id": 9, "status": "failed",
			"error": "429 RESOURCE_EXHAUSTED", "error_code": null,
			"updated_at": "2024-05-01T10:00:00.123456",
			"duration_seconds": 125
		}`)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL+"/dashboard")
	run, err := a.GetRun(context.Background(), 123)

	require.NoError(t, err)
	assert.Equal(t, int64(123), run.ID)
	assert.Equal(t, int64(9), run.RawID)
	assert.Equal(t, models.RunStatusFailed, run.Status)
	require.NotNil(t, run.Error)
	assert.Equal(t, "429 RESOURCE_EXHAUSTED", *run.Error)
	assert.Nil(t, run.ErrorCode)
	require.NotNil(t, run.UpdatedAt)
	assert.Equal(t, 2024, run.UpdatedAt.Year())
	require.NotNil(t, run.DurationSeconds)
	assert.InDelta(t, 125.0, *run.DurationSeconds, 0.001)
}

func TestGetRun_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		writeJSON(w, `{"id": 1, "raw_id": 1, "status": "queued"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("  secret ")
	assert.Equal(t, "secret", a.Token())

	_, err := a.GetRun(context.Background(), 1)
	require.NoError(t, err)
}

func TestGetRun_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "bad request", status: http.StatusBadRequest, want: ErrBadRequest},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, want: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, want: ErrForbidden},
		{name: "not found", status: http.StatusNotFound, want: ErrNotFound},
		{name: "internal", status: http.StatusInternalServerError, want: ErrInternalServerError},
		{name: "bad gateway", status: http.StatusBadGateway, want: ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"detail":"nope"}`))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.GetRun(context.Background(), 5)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestGetRun_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetRun(context.Background(), 5)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 503")
}

func TestGetRun_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"id": "oops"`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetRun(context.Background(), 5)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode run response")
}

func TestGetRun_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"id": 1}`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetRun(ctx, 1)
	require.Error(t, err)
}

// ── GetRunSteps ──────────────────────────────────────────────────────────────

func TestGetRunSteps_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/runs/{runID}/steps", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "123", chi.URLParam(req, "runID"))
		writeJSON(w, `[
			{"id": 2, "run_id": 123, "step": "fallback", "status": "success", "data": {"source": "manual_fallback"}},
			{"id": 1, "run_id": 123, "step": "google_adk", "status": "failed", "data": null}
		]`)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	steps, err := a.GetRunSteps(context.Background(), 123)

	require.NoError(t, err)
	require.Len(t, steps, 2)
	// порядок сервера сохраняется, сортирует вызывающий
	assert.Equal(t, int64(2), steps[0].ID)
	assert.True(t, steps[0].HasData())
	assert.Equal(t, models.StepStatusFailed, steps[1].Status)
	assert.False(t, steps[1].HasData())
}

func TestGetRunSteps_NullBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `null`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	steps, err := a.GetRunSteps(context.Background(), 1)

	require.NoError(t, err)
	assert.NotNil(t, steps)
	assert.Empty(t, steps)
}

func TestGetRunSteps_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetRunSteps(context.Background(), 1)

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── ListRuns ─────────────────────────────────────────────────────────────────

func TestListRuns_WithLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/runs", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		writeJSON(w, `[{"id": 3, "status": "completed"}, {"id": 2, "status": "started"}]`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	runs, err := a.ListRuns(context.Background(), 20)

	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, models.RunStatusCompleted, runs[0].Status)
}

func TestListRuns_NoLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("limit"))
		writeJSON(w, `[]`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	runs, err := a.ListRuns(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, runs)
}
