package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-run-watch/internal/service"
	"github.com/MKhiriev/go-run-watch/models"
)

const helpLine = "j/k: select step  r: refresh  c: copy payload  v: about  q: quit"

func modeLabel(mode service.SyncMode) string {
	switch mode {
	case service.ModeLive:
		return badge("live", service.ToneGreen)
	case service.ModePolling:
		return badge("polling", service.ToneYellow)
	case service.ModeConnecting:
		return badge("connecting", service.ToneGray)
	default:
		return ""
	}
}

func renderHeader(snap service.RunSnapshot, spin string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Run #%d", snap.RunID)))
	if snap.Run != nil && snap.Run.Status != "" {
		b.WriteString("  ")
		b.WriteString(badge(string(snap.Run.Status), service.RunStatusTone(snap.Run.Status)))
	}
	if label := modeLabel(snap.Mode); label != "" {
		b.WriteString("  ")
		b.WriteString(label)
	}
	if snap.Loading {
		b.WriteString("  ")
		b.WriteString(spin)
		b.WriteString(" loading")
	}
	return b.String()
}

func renderSummary(snap service.RunSnapshot) string {
	var b strings.Builder

	if msg := humanizeFetchError(snap.Err); msg != "" {
		b.WriteString(errorStyle.Render("Refresh failed: " + msg))
		b.WriteString("\n\n")
	}

	run := snap.Run
	if run == nil {
		if !snap.Loading {
			b.WriteString("No run data yet\n")
		}
		return b.String()
	}

	if reason, ok := snap.FailureReason(); ok {
		b.WriteString(field("Failure", errorStyle.Render(reason)))
		b.WriteString("\n")
	}

	fallback := "no"
	if snap.FallbackUsed() {
		fallback = badge("manual fallback used", service.ToneYellow)
	}

	lines := []string{
		field("Fallback", fallback),
		field("Raw ID", fmt.Sprintf("%d", run.RawID)),
		field("Processed ID", service.FormatOptionalInt(run.ProcessedID)),
		field("Report ID", service.FormatOptionalInt(run.ReportID)),
		field("Created", service.FormatTimestamp(run.CreatedAt)),
		field("Queued", service.FormatTimestamp(run.QueuedAt)),
		field("Processing", service.FormatTimestamp(run.ProcessingAt)),
		field("Updated", service.FormatTimestamp(run.UpdatedAt)),
		field("Completed", service.FormatTimestamp(run.CompletedAt)),
		field("Duration", service.FormatDuration(run.DurationSeconds)),
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	return b.String()
}

func renderSteps(steps []models.Step, selected, width int) string {
	if len(steps) == 0 {
		return "No steps yet\n"
	}

	nameWidth := 24
	if width > 0 && width < 72 {
		nameWidth = 12
	}

	var b strings.Builder
	for i, step := range steps {
		cursor := "  "
		if i == selected {
			cursor = "> "
		}

		name := step.Step
		if name == "" {
			name = "-"
		}
		line := fmt.Sprintf("%s#%-4d %-*s %s  %s", cursor, step.ID, nameWidth, fitText(name, nameWidth),
			badge(stepStatusLabel(step.Status), service.StepStatusTone(step.Status)),
			service.FormatDuration(step.DurationSeconds))

		if source := service.StepSource(step); source != "" {
			line += "  source: " + service.SourceLabel(source)
		}
		if i == selected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func stepStatusLabel(status models.StepStatus) string {
	if status == "" {
		return "unknown"
	}
	return string(status)
}

func renderStepDetail(step models.Step) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Step #%d %s", step.ID, step.Step)))
	b.WriteString("\n")
	if reason, ok := service.FailureReason(step.Error, step.ErrorCode); ok {
		b.WriteString(field("Failure", reason))
		b.WriteString("\n")
	}
	b.WriteString(field("Error code", valueOrDash(step.ErrorCode)))
	b.WriteString("\n")
	b.WriteString(field("Created", service.FormatTimestamp(step.CreatedAt)))
	b.WriteString("\n")
	b.WriteString(field("Finished", service.FormatTimestamp(step.FinishedAt)))
	b.WriteString("\n\n")

	payload, ok := prettyPayload(step)
	if !ok {
		b.WriteString(helpStyle.Render("no payload"))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(payload)
	b.WriteString("\n")
	return b.String()
}

// prettyPayload indents the step payload. Payloads that are not valid JSON
// are returned verbatim.
func prettyPayload(step models.Step) (string, bool) {
	if !step.HasData() {
		return "", false
	}

	var out bytes.Buffer
	if err := json.Indent(&out, step.Data, "", "  "); err != nil {
		return string(step.Data), true
	}
	return out.String(), true
}

// renderRunBody is the scrollable part of the run view.
func renderRunBody(snap service.RunSnapshot, selected, width int) string {
	var b strings.Builder

	b.WriteString(renderSummary(snap))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Steps"))
	b.WriteString("\n")
	b.WriteString(renderSteps(snap.Steps, selected, width))

	if selected >= 0 && selected < len(snap.Steps) {
		b.WriteString("\n")
		b.WriteString(renderStepDetail(snap.Steps[selected]))
	}
	return b.String()
}

func renderUnavailable(runID int64) string {
	data := fmt.Sprintf("Run id %d is not valid and cannot be loaded.\nUse `runwatch runs` to list recent runs.", runID)
	return renderPage("RUN UNAVAILABLE", data, "")
}
