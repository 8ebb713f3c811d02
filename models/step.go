package models

import "encoding/json"

// StepStatus is a lifecycle label of a [Step]; independent from [RunStatus].
type StepStatus string

const (
	StepStatusStarted StepStatus = "started"
	StepStatusSuccess StepStatus = "success"
	StepStatusFailed  StepStatus = "failed"
	StepStatusSkipped StepStatus = "skipped"
)

// Rank orders step statuses along their lifecycle: unknown < started <
// terminal. A step never moves to a lower rank.
func (s StepStatus) Rank() int {
	switch s {
	case StepStatusStarted:
		return 1
	case StepStatusSuccess, StepStatusFailed, StepStatusSkipped:
		return 2
	default:
		return 0
	}
}

// Well-known step names and payload sources used by fallback detection.
const (
	StepNameGoogleADK = "google_adk"
	StepNameFallback  = "fallback"

	SourceManualFallback = "manual_fallback"
	SourceManualAgents   = "manual_agents"
)

// Step is one discrete stage of a [Run]. ID is assigned by the backend and is
// both the merge key and the display order.
type Step struct {
	ID     int64      `json:"id"`
	RunID  *int64     `json:"run_id,omitempty"`
	Step   string     `json:"step,omitempty"`
	Status StepStatus `json:"status,omitempty"`

	// Data is an opaque diagnostic payload. It is kept raw so it can be shown
	// and copied verbatim.
	Data json.RawMessage `json:"data,omitempty"`

	Error     *string `json:"error,omitempty"`
	ErrorCode *string `json:"error_code,omitempty"`

	CreatedAt  *Timestamp `json:"created_at,omitempty"`
	FinishedAt *Timestamp `json:"finished_at,omitempty"`

	DurationSeconds *float64 `json:"duration_seconds,omitempty"`
}

// HasData reports whether the step carries a non-null payload.
func (s Step) HasData() bool {
	return len(s.Data) > 0 && string(s.Data) != "null"
}

// MergeFrom overwrites the fields present on update and keeps the rest.
// The ID is never changed.
func (s Step) MergeFrom(update Step) Step {
	merged := s
	if update.RunID != nil {
		merged.RunID = update.RunID
	}
	if update.Step != "" {
		merged.Step = update.Step
	}
	if update.Status != "" {
		merged.Status = update.Status
	}
	if update.HasData() {
		merged.Data = update.Data
	}
	if update.Error != nil {
		merged.Error = update.Error
	}
	if update.ErrorCode != nil {
		merged.ErrorCode = update.ErrorCode
	}
	if update.CreatedAt != nil {
		merged.CreatedAt = update.CreatedAt
	}
	if update.FinishedAt != nil {
		merged.FinishedAt = update.FinishedAt
	}
	if update.DurationSeconds != nil {
		merged.DurationSeconds = update.DurationSeconds
	}
	return merged
}
