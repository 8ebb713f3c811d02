package tui

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-run-watch/internal/adapter"
	"github.com/MKhiriev/go-run-watch/internal/service"
	"github.com/MKhiriev/go-run-watch/models"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestRenderHeader(t *testing.T) {
	snap := sampleSnapshot()

	header := renderHeader(snap, "*")
	assert.Contains(t, header, "Run #123")
	assert.Contains(t, header, "[processing]")
	assert.Contains(t, header, "[live]")
	assert.NotContains(t, header, "loading")

	snap.Loading = true
	snap.Mode = service.ModePolling
	header = renderHeader(snap, "*")
	assert.Contains(t, header, "[polling]")
	assert.Contains(t, header, "* loading")
}

func TestRenderSummary(t *testing.T) {
	t.Run("failure reason and durations", func(t *testing.T) {
		snap := service.RunSnapshot{
			RunID: 7,
			Run: &models.Run{
				ID:              7,
				Status:          models.RunStatusFailed,
				Error:           ptr("429 RESOURCE_EXHAUSTED quota"),
				ProcessedID:     ptr(int64(42)),
				DurationSeconds: ptr(125.0),
			},
		}

		out := renderSummary(snap)
		assert.Contains(t, out, service.QuotaExceededReason)
		assert.Contains(t, out, "42")
		assert.Contains(t, out, "2m 5s")
		assert.Contains(t, out, "N/A")
	})

	t.Run("fetch error is shown inline", func(t *testing.T) {
		snap := service.RunSnapshot{
			RunID: 7,
			Run:   &models.Run{ID: 7},
			Err:   fmt.Errorf("fetch run: %w", adapter.ErrUnauthorized),
		}
		assert.Contains(t, renderSummary(snap), "Access denied")
	})

	t.Run("no data after load", func(t *testing.T) {
		assert.Contains(t, renderSummary(service.RunSnapshot{RunID: 7}), "No run data yet")
		assert.Empty(t, renderSummary(service.RunSnapshot{RunID: 7, Loading: true}))
	})
}

func TestRenderSteps(t *testing.T) {
	assert.Equal(t, "No steps yet\n", renderSteps(nil, 0, 80))

	steps := sampleSnapshot().Steps
	out := renderSteps(steps, 1, 120)
	assert.Contains(t, out, "  #1")
	assert.Contains(t, out, "> #2")
	assert.Contains(t, out, "[failed]")
	assert.Contains(t, out, "source: manual")

	narrow := renderSteps([]models.Step{{ID: 3, Step: "very_long_step_name_for_narrow"}}, 0, 40)
	assert.Contains(t, narrow, "very_long...")
}

func TestRenderStepDetail(t *testing.T) {
	step := models.Step{
		ID:        2,
		Step:      "ocr",
		Error:     ptr("boom\ntrace"),
		ErrorCode: ptr("OCR_FAILED"),
		Data:      json.RawMessage(`{"pages":[1,2]}`),
	}

	out := renderStepDetail(step)
	assert.Contains(t, out, "Step #2 ocr")
	assert.Contains(t, out, "OCR_FAILED")
	assert.Contains(t, out, "\"pages\": [")

	assert.Contains(t, renderStepDetail(models.Step{ID: 1}), "no payload")
}

func TestPrettyPayload(t *testing.T) {
	_, ok := prettyPayload(models.Step{Data: json.RawMessage(`null`)})
	assert.False(t, ok)

	raw, ok := prettyPayload(models.Step{Data: json.RawMessage(`not-json`)})
	assert.True(t, ok)
	assert.Equal(t, "not-json", raw)
}

func TestHumanizeFetchError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"not found", fmt.Errorf("fetch run: %w", adapter.ErrNotFound), "Run not found yet"},
		{"forbidden", adapter.ErrForbidden, "Access denied: check the token (runwatch token show)"},
		{"network", errors.New("dial tcp 127.0.0.1:8000: connect: connection refused"), "Network is down or the server is unreachable"},
		{"other", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeFetchError(tt.err))
		})
	}
}

func TestRenderUnavailable(t *testing.T) {
	out := renderUnavailable(-3)
	assert.Contains(t, out, "RUN UNAVAILABLE")
	assert.Contains(t, out, "Run id -3")
	assert.Contains(t, out, "runwatch runs")
}
