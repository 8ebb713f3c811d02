// Package tui renders a live view of one run in the terminal.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-run-watch/internal/logger"
	"github.com/MKhiriev/go-run-watch/internal/service"
	"github.com/MKhiriev/go-run-watch/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	client    service.RunSyncClient
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(client service.RunSyncClient, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{client: client, buildInfo: buildInfo, logger: logger}
}

// Watch starts following runID and blocks until the user quits or ctx is
// cancelled. An invalid run id is not an error here: the viewer shows the
// unavailable state instead.
func (t *TUI) Watch(ctx context.Context, runID int64) error {
	if err := t.client.Start(ctx, runID); err != nil && !errors.Is(err, service.ErrInvalidRunID) {
		return err
	}

	model := newRunModel(ctx, t.client, t.buildInfo)
	defer t.client.Unsubscribe(model.updates)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Debug().Msg("viewer stopped by context")
		return nil
	}
	return err
}
