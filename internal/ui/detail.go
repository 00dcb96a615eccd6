package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/liftoff/internal/launch"
	"github.com/five82/liftoff/internal/state"
)

// updateDetailViewport re-renders the selected launch into the viewport,
// preserving the scroll position.
func (m *Model) updateDetailViewport() {
	if !m.ready || m.snapshot.Phase != state.PhaseDetail || !m.snapshot.HasSelected {
		return
	}
	offset := m.detailViewport.YOffset
	m.detailViewport.SetContent(m.renderDetailContent(m.snapshot.Selected))
	m.detailViewport.SetYOffset(offset)
}

// renderDetailContent renders every section of the detail view.
func (m Model) renderDetailContent(l launch.Launch) string {
	styles := m.theme.Styles()
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	section := func(title string) {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Bold(true).Render(title))
		b.WriteString("\n")
	}
	field := func(label, value string) {
		b.WriteString(styles.MutedText.Render(padRight(label, 16)))
		b.WriteString(styles.Text.Render(value))
		b.WriteString("\n")
	}

	status := l.Status()
	b.WriteString(styles.Text.Bold(true).Render(l.DisplayName()))
	b.WriteString("  ")
	b.WriteString(styles.Badge(status).Render(status.Label()))
	b.WriteString("\n")

	if details := strings.TrimSpace(l.Details); details != "" {
		b.WriteString("\n")
		b.WriteString(wrap.Render(styles.Text.Render(details)))
		b.WriteString("\n")
	}

	section("Launch")
	field("Date", m.svc.Enricher.LongDate(l))
	field("Flight Number", fmt.Sprintf("#%d", l.FlightNumber))
	if l.Upcoming {
		field("Time Until", l.CountdownAt(m.now))
	}

	// Sections whose value is only the fallback text are left out.
	if l.RocketName != launch.UnknownRocket {
		section("Rocket")
		rocket := l.RocketName
		if l.Rocket != nil && strings.TrimSpace(l.Rocket.Type) != "" {
			rocket += " (" + l.Rocket.Type + ")"
		}
		field("Vehicle", rocket)
	}

	if l.LaunchpadName != launch.UnknownLaunchpad {
		section("Launch Site")
		field("Pad", l.LaunchpadName)
		if pad := l.Launchpad; pad != nil {
			if full := strings.TrimSpace(pad.FullName); full != "" {
				field("Name", full)
			}
			if where := joinNonEmpty(", ", pad.Locality, pad.Region); where != "" {
				field("Location", where)
			}
		}
	}

	if l.PayloadSummary != launch.NoPayloadInfo {
		section("Payloads")
		field("Summary", l.PayloadSummary)
		for _, p := range l.Payloads {
			name := strings.TrimSpace(p.Name)
			if name == "" {
				continue
			}
			var facts []string
			if t := strings.TrimSpace(p.Type); t != "" {
				facts = append(facts, t)
			}
			if p.MassKg != nil {
				facts = append(facts, m.svc.Enricher.Format.Mass(*p.MassKg))
			}
			line := "• " + name
			if len(facts) > 0 {
				line += "  " + styles.MutedText.Render(strings.Join(facts, " · "))
			}
			b.WriteString(styles.Text.Render(line))
			b.WriteString("\n")
		}
	}

	section("Mission Image")
	b.WriteString(styles.Text.Render(m.imageLine(l, launch.DetailView, width)))
	b.WriteString("\n")

	if links := missionLinks(l); len(links) > 0 {
		section("Mission Links")
		for _, link := range links {
			field(link.label, truncateMiddle(link.url, width-16))
		}
	}

	return b.String()
}

type missionLink struct {
	label string
	url   string
}

func missionLinks(l launch.Launch) []missionLink {
	var links []missionLink
	add := func(label, url string) {
		if url = strings.TrimSpace(url); url != "" {
			links = append(links, missionLink{label, url})
		}
	}
	if l.Links != nil {
		add("Watch Webcast", l.Links.Webcast)
		add("Read Article", l.Links.Article)
		add("Wikipedia", l.Links.Wikipedia)
	}
	if l.Rocket != nil {
		add("Rocket Info", l.Rocket.Wikipedia)
	}
	return links
}

func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}
