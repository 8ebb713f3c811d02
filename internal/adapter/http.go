package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-run-watch/internal/config"
	"github.com/MKhiriev/go-run-watch/internal/logger"
	"github.com/MKhiriev/go-run-watch/internal/utils"
	"github.com/MKhiriev/go-run-watch/models"
	"github.com/go-resty/resty/v2"
)

const traceIDHeader = "X-Trace-ID"

type httpRunAdapter struct {
	client  *utils.HTTPClient
	traceID *utils.UUIDGenerator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRunAdapter constructs an HTTP/REST implementation of [RunAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRunAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (RunAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().WithTimeout(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpRunAdapter{
		client:  client,
		traceID: utils.NewUUIDGenerator(),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RunAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpRunAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [RunAdapter].
func (h *httpRunAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// GetRun implements [RunAdapter]. It GETs /runs/{id} and decodes the run.
func (h *httpRunAdapter) GetRun(ctx context.Context, runID int64) (models.Run, error) {
	resp, err := h.request(ctx).
		SetPathParam("runID", strconv.FormatInt(runID, 10)).
		Get("/runs/{runID}")
	if err != nil {
		return models.Run{}, fmt.Errorf("get run request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Run{}, err
	}

	var run models.Run
	if err = json.Unmarshal(resp.Body(), &run); err != nil {
		return models.Run{}, fmt.Errorf("decode run response: %w", err)
	}

	return run, nil
}

// GetRunSteps implements [RunAdapter]. It GETs /runs/{id}/steps. A JSON null
// body is returned as an empty slice.
func (h *httpRunAdapter) GetRunSteps(ctx context.Context, runID int64) ([]models.Step, error) {
	resp, err := h.request(ctx).
		SetPathParam("runID", strconv.FormatInt(runID, 10)).
		Get("/runs/{runID}/steps")
	if err != nil {
		return nil, fmt.Errorf("get run steps request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var steps []models.Step
	if err = json.Unmarshal(resp.Body(), &steps); err != nil {
		return nil, fmt.Errorf("decode run steps response: %w", err)
	}

	if steps == nil {
		steps = []models.Step{}
	}
	return steps, nil
}

// ListRuns implements [RunAdapter]. Non-positive limits are left to the
// backend default.
func (h *httpRunAdapter) ListRuns(ctx context.Context, limit int) ([]models.Run, error) {
	req := h.request(ctx)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/runs")
	if err != nil {
		return nil, fmt.Errorf("list runs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var runs []models.Run
	if err = json.Unmarshal(resp.Body(), &runs); err != nil {
		return nil, fmt.Errorf("decode run list response: %w", err)
	}

	return runs, nil
}

func (h *httpRunAdapter) request(ctx context.Context) *resty.Request {
	traceID := h.traceID.Generate()
	token := h.Token()

	req := h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, traceID)
	if token != "" {
		req.SetAuthToken(token)
	}

	h.logger.Debug().
		Str("trace_id", traceID).
		Bool("authorized", token != "").
		Msg("backend request")

	return req
}
