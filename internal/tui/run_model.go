package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-run-watch/internal/service"
	"github.com/MKhiriev/go-run-watch/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// header, blank line, status line and help line
const chromeHeight = 4

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// runModel follows the snapshots published by a RunSyncClient. It never
// mutates sync state itself; refreshes go through the client.
type runModel struct {
	ctx       context.Context
	client    service.RunSyncClient
	updates   chan struct{}
	buildInfo models.AppBuildInfo

	snap     service.RunSnapshot
	idx      int
	spinner  spinner.Model
	viewport viewport.Model
	ready    bool
	width    int

	status        string
	showBuildInfo bool
}

func newRunModel(ctx context.Context, client service.RunSyncClient, buildInfo models.AppBuildInfo) runModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return runModel{
		ctx:       ctx,
		client:    client,
		updates:   client.Subscribe(),
		buildInfo: buildInfo,
		snap:      client.Snapshot(),
		spinner:   s,
	}
}

func (m runModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForSnapshot(m.client, m.updates))
}

// waitForSnapshot blocks until the client publishes a change.
func waitForSnapshot(client service.RunSyncClient, updates chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return updatesClosedMsg{}
		}
		return snapshotMsg{snap: client.Snapshot()}
	}
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := max(msg.Height-chromeHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.syncContent()
		return m, nil

	case snapshotMsg:
		m.snap = msg.snap
		if m.idx >= len(m.snap.Steps) {
			m.idx = len(m.snap.Steps) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		m.syncContent()
		return m, waitForSnapshot(m.client, m.updates)

	case updatesClosedMsg:
		return m, nil

	case spinner.TickMsg:
		if !m.snap.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case refreshDoneMsg:
		if msg.err != nil {
			m.status = "Refresh failed: " + msg.err.Error()
			return m, cmdClearStatus()
		}
		return m, nil

	case copiedMsg:
		m.status = "Payload copied"
		return m, cmdClearStatus()

	case copyFailedMsg:
		m.status = msg.err.Error()
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m runModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if key.Matches(msg, keys.buildInfo) {
		m.showBuildInfo = true
		return m, nil
	}

	if m.snap.Unavailable {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
			m.syncContent()
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.snap.Steps)-1 {
			m.idx++
			m.syncContent()
		}
	case key.Matches(msg, keys.refresh):
		m.status = "Refreshing..."
		return m, tea.Batch(m.cmdRefresh(), cmdClearStatus())
	case key.Matches(msg, keys.copy):
		step, ok := m.selectedStep()
		if !ok {
			m.status = "No step selected"
			return m, cmdClearStatus()
		}
		payload, ok := prettyPayload(step)
		if !ok {
			m.status = "Step has no payload"
			return m, cmdClearStatus()
		}
		return m, cmdCopyToClipboard(payload)
	case key.Matches(msg, keys.pageUp), key.Matches(msg, keys.pageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m runModel) selectedStep() (models.Step, bool) {
	if m.idx < 0 || m.idx >= len(m.snap.Steps) {
		return models.Step{}, false
	}
	return m.snap.Steps[m.idx], true
}

func (m *runModel) syncContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(renderRunBody(m.snap, m.idx, m.width))
}

func (m runModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}
	if m.snap.Unavailable {
		return appStyle.Render(renderUnavailable(m.snap.RunID))
	}

	var b strings.Builder
	b.WriteString(renderHeader(m.snap, m.spinner.View()))
	b.WriteString("\n\n")

	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(renderRunBody(m.snap, m.idx, m.width))
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpLine))
	return b.String()
}

func (m runModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	client := m.client
	return func() tea.Msg {
		return refreshDoneMsg{err: client.Refresh(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := copyToClipboard(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
