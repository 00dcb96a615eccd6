package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/liftoff/internal/logtail"
)

// renderDiagnostics renders the tail of liftoff's own log.
func (m Model) renderDiagnostics() string {
	styles := m.theme.Styles()
	width := m.width - 6
	if width < 20 {
		width = 20
	}
	bodyHeight := m.height - 6
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var lines []string
	switch {
	case m.diagnosticsErr != nil:
		lines = []string{styles.DangerText.Render(m.diagnosticsErr.Error())}
	case len(m.diagnostics) == 0:
		lines = []string{styles.MutedText.Render("No log entries yet.")}
	default:
		entries := m.diagnostics
		if len(entries) > bodyHeight {
			entries = entries[len(entries)-bodyHeight:]
		}
		for _, e := range entries {
			lines = append(lines, ansi.Truncate(m.formatEntry(e, styles), width, "…"))
		}
	}

	title := styles.Text.Bold(true).Render("Diagnostics") + "  " +
		styles.FaintText.Render(truncateMiddle(m.svc.LogPath, width-14))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(0, 1).
		Width(width + 2).
		Render(title + "\n" + strings.Join(lines, "\n"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

// formatEntry colors one parsed log line.
func (m Model) formatEntry(e logtail.Entry, styles Styles) string {
	if e.Level == "" {
		return styles.Text.Render(e.Message)
	}
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(styles.FaintText.Render(e.Time.Local().Format("15:04:05")))
		b.WriteString(" ")
	}
	b.WriteString(levelStyle(e.Level, styles).Bold(true).Render(padRight(e.Level, 5)))
	b.WriteString(" ")
	b.WriteString(styles.Text.Render(e.Message))
	for _, a := range e.Attrs {
		b.WriteString(" ")
		b.WriteString(styles.MutedText.Render(a.Key + "="))
		b.WriteString(styles.Text.Render(a.Value))
	}
	return b.String()
}

func levelStyle(level string, styles Styles) lipgloss.Style {
	switch level {
	case "INFO":
		return styles.SuccessText
	case "WARN":
		return styles.WarningText
	case "ERROR":
		return styles.DangerText
	case "DEBUG":
		return styles.InfoText
	default:
		return styles.Text
	}
}
