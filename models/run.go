// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RunStatus is a lifecycle label of a [Run].
type RunStatus string

const (
	RunStatusQueued     RunStatus = "queued"
	RunStatusProcessing RunStatus = "processing"
	RunStatusStarted    RunStatus = "started"
	RunStatusCompleted  RunStatus = "completed"
	RunStatusFailed     RunStatus = "failed"
)

// IsTerminal reports whether the run has reached its final status.
func (s RunStatus) IsTerminal() bool {
	return s == RunStatusCompleted || s == RunStatusFailed
}

// Run is one end-to-end execution of the compliance workflow for an uploaded
// artifact, as returned by GET /runs/{id}.
//
// Optional columns are pointers: a nil value means the backend did not send
// the field (or sent null).
type Run struct {
	ID     int64     `json:"id"`
	RawID  int64     `json:"raw_id"`
	Status RunStatus `json:"status"`

	Error     *string `json:"error,omitempty"`
	ErrorCode *string `json:"error_code,omitempty"`

	ProcessedID *int64 `json:"processed_id,omitempty"`
	ReportID    *int64 `json:"report_id,omitempty"`

	CreatedAt    *Timestamp `json:"created_at,omitempty"`
	QueuedAt     *Timestamp `json:"queued_at,omitempty"`
	ProcessingAt *Timestamp `json:"processing_at,omitempty"`
	UpdatedAt    *Timestamp `json:"updated_at,omitempty"`
	CompletedAt  *Timestamp `json:"completed_at,omitempty"`

	DurationSeconds *float64 `json:"duration_seconds,omitempty"`
}

// IsOlderThan reports whether r is known to describe an earlier state than
// other. Both runs must carry updated_at for the comparison to hold; when
// either lacks it the ordering is unknown and false is returned.
func (r Run) IsOlderThan(other Run) bool {
	return r.UpdatedAt.Before(other.UpdatedAt)
}
