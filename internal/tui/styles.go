package tui

import (
	"github.com/MKhiriev/go-run-watch/internal/service"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160"))
	selectedStyle   = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

var toneColors = map[service.Tone]lipgloss.Color{
	service.ToneGray:   lipgloss.Color("245"),
	service.ToneBlue:   lipgloss.Color("33"),
	service.ToneGreen:  lipgloss.Color("42"),
	service.ToneRed:    lipgloss.Color("160"),
	service.ToneYellow: lipgloss.Color("214"),
}

// badge renders label as a colored status badge.
func badge(label string, tone service.Tone) string {
	color, ok := toneColors[tone]
	if !ok {
		color = toneColors[service.ToneGray]
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render("[" + label + "]")
}
