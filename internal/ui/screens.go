package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderLoading renders the spinner shown while a fetch is in flight.
func (m Model) renderLoading() string {
	styles := m.theme.Styles()
	body := m.spinner.View() + " " + styles.Text.Render("Loading launches…")
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, body)
}

// renderError renders the failure screen with its recovery actions.
func (m Model) renderError() string {
	styles := m.theme.Styles()
	width := m.width - 8
	if width > 72 {
		width = 72
	}
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Error Loading Launches"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Render(styles.Text.Render(m.snapshot.Message)))
	b.WriteString("\n\n")
	b.WriteString(styles.AccentText.Render(m.keys.Refresh.Help().Key))
	b.WriteString(styles.MutedText.Render(" Try Again   "))
	b.WriteString(styles.AccentText.Render(m.keys.Reload.Help().Key))
	b.WriteString(styles.MutedText.Render(" Reload"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(1, 2).
		Render(b.String())
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, box)
}
