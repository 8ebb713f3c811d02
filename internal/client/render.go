package client

import (
	"fmt"
	"io"

	"github.com/MKhiriev/go-run-watch/internal/service"
	"github.com/MKhiriev/go-run-watch/models"
	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func failureOrDash(errText, errCode *string) string {
	if reason, ok := service.FailureReason(errText, errCode); ok {
		return reason
	}
	return "-"
}

func renderRunDetails(w io.Writer, snap service.RunSnapshot) {
	run := snap.Run
	if run == nil {
		run = &models.Run{ID: snap.RunID}
	}

	t := newTable(w)
	t.SetTitle("Run #%d", snap.RunID)
	t.AppendRows([]table.Row{
		{"Status", string(run.Status)},
		{"Failure reason", failureOrDash(run.Error, run.ErrorCode)},
		{"Fallback used", yesNo(snap.FallbackUsed())},
		{"Raw ID", run.RawID},
		{"Processed ID", service.FormatOptionalInt(run.ProcessedID)},
		{"Report ID", service.FormatOptionalInt(run.ReportID)},
		{"Created", service.FormatTimestamp(run.CreatedAt)},
		{"Queued", service.FormatTimestamp(run.QueuedAt)},
		{"Processing", service.FormatTimestamp(run.ProcessingAt)},
		{"Updated", service.FormatTimestamp(run.UpdatedAt)},
		{"Completed", service.FormatTimestamp(run.CompletedAt)},
		{"Duration", service.FormatDuration(run.DurationSeconds)},
	})
	t.Render()

	if len(snap.Steps) == 0 {
		_, _ = fmt.Fprintln(w, "(no steps)")
		return
	}

	steps := newTable(w)
	steps.AppendHeader(table.Row{"ID", "Step", "Status", "Source", "Duration", "Finished", "Failure"})
	for _, step := range snap.Steps {
		source := "-"
		if s := service.StepSource(step); s != "" {
			source = service.SourceLabel(s)
		}
		steps.AppendRow(table.Row{
			step.ID,
			step.Step,
			string(step.Status),
			source,
			service.FormatDuration(step.DurationSeconds),
			service.FormatTimestamp(step.FinishedAt),
			failureOrDash(step.Error, step.ErrorCode),
		})
	}
	steps.Render()
}

func renderRunList(w io.Writer, runs []models.Run) {
	if len(runs) == 0 {
		_, _ = fmt.Fprintln(w, "(0 runs)")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Raw ID", "Status", "Failure", "Created", "Updated", "Duration"})
	for _, run := range runs {
		t.AppendRow(table.Row{
			run.ID,
			run.RawID,
			string(run.Status),
			failureOrDash(run.Error, run.ErrorCode),
			service.FormatTimestamp(run.CreatedAt),
			service.FormatTimestamp(run.UpdatedAt),
			service.FormatDuration(run.DurationSeconds),
		})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d runs)\n", len(runs))
}

func renderCredential(w io.Writer, token string, info models.CredentialInfo) {
	t := newTable(w)
	t.AppendRows([]table.Row{
		{"Source", string(info.Source)},
		{"Token", maskToken(token)},
		{"Subject", orDash(info.Subject)},
		{"Issuer", orDash(info.Issuer)},
		{"Expires", credentialExpiry(info)},
	})
	t.Render()
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
