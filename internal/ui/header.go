package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/dustin/go-humanize"

	"github.com/five82/liftoff/internal/state"
)

const logo = "🚀 liftoff"

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render(logo, styles.Logo)}

	switch m.snapshot.Phase {
	case state.PhaseLoading:
		parts = append(parts, bg.Render("Fetching launches...", styles.WarningText))
	case state.PhaseError:
		parts = append(parts, bg.Render("ERROR", styles.DangerText))
	default:
		count := fmt.Sprintf("%d", len(m.snapshot.Launches))
		if compact {
			parts = append(parts, bg.Render(count, styles.Text))
		} else {
			parts = append(parts,
				bg.Render("Launches:", styles.MutedText)+bg.Space()+bg.Render(count, styles.Text))
		}
	}

	if ts := m.formatTimestamp(); ts != "" {
		parts = append(parts, bg.Render(ts, styles.MutedText))
	}

	parts = append(parts,
		bg.Render(m.keys.Refresh.Help().Key, styles.AccentText)+bg.Render(":", styles.MutedText)+
			bg.Render(m.keys.Refresh.Help().Desc, styles.MutedText))

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// formatTimestamp renders the last successful fetch time and its age.
func (m Model) formatTimestamp() string {
	if !m.snapshot.HasLastUpdated() {
		return ""
	}
	at := m.snapshot.LastUpdated
	now := m.now
	if now.Before(at) {
		now = at
	}
	return fmt.Sprintf("Updated %s (%s)", at.Format("15:04:05"), humanize.RelTime(at, now, "ago", "from now"))
}

// renderCommandBar renders the key hints for the current phase.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var bindings []key.Binding
	switch m.snapshot.Phase {
	case state.PhaseLoading:
		bindings = []key.Binding{m.keys.Help, m.keys.Quit}
	case state.PhaseError:
		bindings = []key.Binding{m.keys.Refresh, m.keys.Reload, m.keys.Diagnostics, m.keys.Help, m.keys.Quit}
	case state.PhaseDetail:
		bindings = []key.Binding{m.keys.Back, m.keys.PageDown, m.keys.Refresh, m.keys.Help, m.keys.Quit}
	default:
		bindings = []key.Binding{m.keys.Select, m.keys.Down, m.keys.Refresh, m.keys.Diagnostics, m.keys.Help, m.keys.Quit}
	}

	colon := bg.Render(":", styles.MutedText)
	segments := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		segments = append(segments, bg.Render(h.Key, styles.AccentText)+colon+bg.Render(h.Desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}
