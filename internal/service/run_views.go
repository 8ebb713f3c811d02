// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-run-watch/models"
)

// QuotaExceededReason replaces provider rate-limit errors in failure reasons.
const QuotaExceededReason = "Model quota exceeded (429)"

const notAvailable = "N/A"

// FailureReason condenses an error text and code into one display line.
// Rate-limit errors win over the code, the code wins over the text, and only
// the first line of the text is kept. ok is false when there is nothing to
// show.
func FailureReason(errText, errCode *string) (reason string, ok bool) {
	var text string
	if errText != nil {
		text = *errText
	}

	if strings.Contains(text, "429") || strings.Contains(text, "RESOURCE_EXHAUSTED") {
		return QuotaExceededReason, true
	}
	if errCode != nil && *errCode != "" {
		return *errCode, true
	}
	if text == "" {
		return "", false
	}

	first, _, _ := strings.Cut(text, "\n")
	return first, true
}

// StepSource returns the "source" member of a step payload, or "" when the
// payload is absent or not a JSON object.
func StepSource(step models.Step) string {
	if !step.HasData() {
		return ""
	}

	var payload struct {
		Source any `json:"source"`
	}
	if err := json.Unmarshal(step.Data, &payload); err != nil {
		return ""
	}
	source, _ := payload.Source.(string)
	return source
}

// HasManualFallback reports whether the run fell back to the manual agent
// pipeline: either a step payload is tagged with a manual source, or a step
// named "fallback" follows the first failed "google_adk" step. steps must be
// in display order.
func HasManualFallback(steps []models.Step) bool {
	for _, step := range steps {
		if SourceLabel(StepSource(step)) == SourceManual {
			return true
		}
	}

	failedAt := -1
	for i, step := range steps {
		if step.Step == models.StepNameGoogleADK && step.Status == models.StepStatusFailed {
			failedAt = i
			break
		}
	}
	if failedAt < 0 {
		return false
	}

	for _, step := range steps[failedAt+1:] {
		if step.Step == models.StepNameFallback {
			return true
		}
	}
	return false
}

// FormatDuration renders a duration in seconds: "45.0s" under a minute,
// "2m 5s" otherwise. The seconds part is rounded, so 119.6 renders as
// "1m 60s".
func FormatDuration(seconds *float64) string {
	if seconds == nil {
		return notAvailable
	}

	s := *seconds
	if s < 60 {
		return fmt.Sprintf("%.1fs", s)
	}

	minutes := math.Floor(s / 60)
	rest := math.Round(math.Mod(s, 60))
	return fmt.Sprintf("%dm %ds", int64(minutes), int64(rest))
}

// FormatTimestamp renders t as "YYYY-MM-DD HH:MM:SS" without zone conversion.
func FormatTimestamp(t *models.Timestamp) string {
	if t == nil || t.IsZero() {
		return notAvailable
	}
	return t.Format("2006-01-02 15:04:05")
}

// FormatOptionalInt renders an optional identifier.
func FormatOptionalInt(v *int64) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%d", *v)
}

// Tone is a display color class of a status badge.
type Tone string

const (
	ToneGray   Tone = "gray"
	ToneBlue   Tone = "blue"
	ToneGreen  Tone = "green"
	ToneRed    Tone = "red"
	ToneYellow Tone = "yellow"
)

func RunStatusTone(status models.RunStatus) Tone {
	switch status {
	case models.RunStatusProcessing, models.RunStatusStarted:
		return ToneBlue
	case models.RunStatusCompleted:
		return ToneGreen
	case models.RunStatusFailed:
		return ToneRed
	default:
		return ToneGray
	}
}

func StepStatusTone(status models.StepStatus) Tone {
	switch status {
	case models.StepStatusStarted:
		return ToneBlue
	case models.StepStatusSuccess:
		return ToneGreen
	case models.StepStatusFailed:
		return ToneRed
	default:
		return ToneGray
	}
}

// Source labels.
const (
	SourceManual  = "manual"
	SourceUnknown = "unknown"
)

// SourceLabel classifies a step payload source.
func SourceLabel(source string) string {
	switch source {
	case models.SourceManualFallback, models.SourceManualAgents:
		return SourceManual
	default:
		return SourceUnknown
	}
}
