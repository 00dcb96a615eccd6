package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/liftoff/internal/launch"
)

// columns returns how many cards fit side by side.
func (m Model) columns() int {
	if m.width < CardMinWidth {
		return 1
	}
	return m.width / CardMinWidth
}

func (m Model) cardWidth() int {
	w := m.width / m.columns()
	if w < CardMinWidth {
		w = CardMinWidth
	}
	return w
}

// visibleRows returns how many card rows fit below the chrome.
func (m Model) visibleRows() int {
	rows := m.contentHeight() / CardHeight
	if rows < 1 {
		return 1
	}
	return rows
}

func (m Model) cursorLaunch() (launch.Launch, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snapshot.Launches) {
		return launch.Launch{}, false
	}
	return m.snapshot.Launches[m.cursor], true
}

// clampGrid keeps the cursor inside the collection and its row on screen.
func (m *Model) clampGrid() {
	n := len(m.snapshot.Launches)
	if n == 0 {
		m.cursor = 0
		m.rowOffset = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	cols := m.columns()
	row := m.cursor / cols
	visible := m.visibleRows()
	if row < m.rowOffset {
		m.rowOffset = row
	}
	if row >= m.rowOffset+visible {
		m.rowOffset = row - visible + 1
	}
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Refresh) || key.Matches(msg, m.keys.Reload) {
		return m.handleCommonKey(msg)
	}

	n := len(m.snapshot.Launches)
	if n == 0 {
		return m, nil
	}
	cols := m.columns()
	prev := m.cursor

	switch {
	case key.Matches(msg, m.keys.Select):
		l, ok := m.cursorLaunch()
		if !ok || !m.machine.Select(l.ID) {
			return m, nil
		}
		m.sync()
		m.detailViewport.GotoTop()
		return m, m.probeCursor()
	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursor < n-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor-cols >= 0 {
			m.cursor -= cols
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor+cols < n {
			m.cursor += cols
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = n - 1
	}

	m.clampGrid()
	if m.cursor == prev {
		return m, nil
	}
	return m, m.probeCursor()
}

// renderGrid lays the collection out as rows of cards.
func (m Model) renderGrid() string {
	launches := m.snapshot.Launches
	if len(launches) == 0 {
		styles := m.theme.Styles()
		return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("No launches returned."))
	}

	cols := m.columns()
	width := m.cardWidth()
	visible := m.visibleRows()

	var rows []string
	for r := m.rowOffset; r < m.rowOffset+visible; r++ {
		start := r * cols
		if start >= len(launches) {
			break
		}
		end := start + cols
		if end > len(launches) {
			end = len(launches)
		}
		cards := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(launches[i], width, i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard renders one launch summary.
func (m Model) renderCard(l launch.Launch, width int, selected bool) string {
	bgColor := m.theme.SurfaceAlt
	borderColor := m.theme.Border
	if selected {
		bgColor = m.theme.FocusBg
		borderColor = m.theme.BorderFocus
	}
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	inner := width - 4 // border and padding
	lines := make([]string, 0, CardHeight-2)

	status := l.Status()
	top := styles.Badge(status).Render(status.Label())
	if cd := l.CountdownAt(m.now); cd != "" {
		top += bg.Space() + bg.Render("T-"+cd, styles.WarningText)
	}
	lines = append(lines, top)
	lines = append(lines, bg.Render(truncate(l.DisplayName(), inner), styles.Text.Bold(true)))
	lines = append(lines,
		bg.Render(truncate(l.FormattedDate, inner/2+4), styles.MutedText)+
			bg.Spaces(2)+
			bg.Render(fmt.Sprintf("Flight #%d", l.FlightNumber), styles.FaintText))

	for _, row := range cardRows(l) {
		label := padRight(row.label, 10)
		lines = append(lines, bg.Render(label, styles.MutedText)+bg.Render(truncate(row.value, inner-10), styles.Text))
	}

	if details := l.ShortDetails(CardDetailsLimit); details != "" {
		wrapped := lipgloss.NewStyle().Width(inner).Render(details)
		for _, line := range strings.Split(wrapped, "\n") {
			lines = append(lines, bg.Render(line, styles.FaintText))
		}
	}

	// Keep the image indicator on the last content line.
	maxLines := CardHeight - 2
	if len(lines) > maxLines-1 {
		lines = lines[:maxLines-1]
	}
	for len(lines) < maxLines-1 {
		lines = append(lines, bg.FillLine("", inner))
	}
	lines = append(lines, bg.Render(m.imageLine(l, launch.ListView, inner), styles.AccentText))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		BorderBackground(lipgloss.Color(bgColor)).
		Background(lipgloss.Color(bgColor)).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

type cardRow struct {
	label string
	value string
}

// cardRows returns the rocket, launchpad and payload rows that carry real
// values; fallback text is not shown on cards.
func cardRows(l launch.Launch) []cardRow {
	var rows []cardRow
	if l.RocketName != launch.UnknownRocket {
		rows = append(rows, cardRow{"Rocket", l.RocketName})
	}
	if l.LaunchpadName != launch.UnknownLaunchpad {
		rows = append(rows, cardRow{"Launchpad", l.LaunchpadName})
	}
	if l.PayloadSummary != launch.NoPayloadInfo {
		rows = append(rows, cardRow{"Payload", l.PayloadSummary})
	}
	return rows
}
