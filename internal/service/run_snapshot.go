package service

import "github.com/MKhiriev/go-run-watch/models"

// RunSnapshot is an immutable copy of the sync state of one run. Observers
// must not modify Steps.
type RunSnapshot struct {
	RunID int64
	Run   *models.Run
	Steps []models.Step

	// Err is the last fetch failure, cleared by the next successful fetch.
	Err error
	// Loading is true until the first fetch of the session completes.
	Loading bool
	// Unavailable marks a run id that can never be loaded; nothing is retried.
	Unavailable bool

	Mode SyncMode
}

// FailureReason derives the display failure reason of the run.
func (s RunSnapshot) FailureReason() (string, bool) {
	if s.Run == nil {
		return "", false
	}
	return FailureReason(s.Run.Error, s.Run.ErrorCode)
}

// FallbackUsed reports whether the run fell back to manual agents.
func (s RunSnapshot) FallbackUsed() bool {
	return HasManualFallback(s.Steps)
}

// Terminal reports whether the run has reached a final status.
func (s RunSnapshot) Terminal() bool {
	return s.Run != nil && s.Run.Status.IsTerminal()
}

// ErrText returns the last fetch error message, or "".
func (s RunSnapshot) ErrText() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}
