package launch

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/five82/liftoff/internal/spacex"
)

// Fallback strings used when the raw record lacks a value.
const (
	DateTBD          = "Date TBD"
	UnknownRocket    = "Unknown Rocket"
	UnknownLaunchpad = "Unknown Launchpad"
	NoPayloadInfo    = "No payload info"
	UnnamedMission   = "Unnamed Mission"
)

// Launch is a raw record plus display fields derived from it.
type Launch struct {
	spacex.Launch

	FormattedDate  string `json:"formatted_date"`
	Countdown      string `json:"countdown,omitempty"`
	RocketName     string `json:"rocket_name"`
	LaunchpadName  string `json:"launchpad_name"`
	PayloadSummary string `json:"payload_summary"`

	LaunchTime time.Time `json:"-"`
	HasDate    bool      `json:"-"`
}

// Status is derived from the raw flags on every call.
func (l Launch) Status() Status {
	return DeriveStatus(l.Upcoming, l.Success)
}

// DisplayName returns the mission name or a placeholder.
func (l Launch) DisplayName() string {
	if name := strings.TrimSpace(l.Name); name != "" {
		return name
	}
	return UnnamedMission
}

// CountdownAt recomputes the countdown against now. It is empty for launches
// that are not upcoming.
func (l Launch) CountdownAt(now time.Time) string {
	if !l.Upcoming {
		return ""
	}
	if !l.HasDate {
		return DateTBD
	}
	return TimeUntil(l.LaunchTime, now)
}

// Image resolves the mission image for view.
func (l Launch) Image(view View) (string, bool) {
	return ResolveImage(l.Links, view)
}

// ShortDetails truncates the mission description to limit runes.
func (l Launch) ShortDetails(limit int) string {
	details := strings.TrimSpace(l.Details)
	runes := []rune(details)
	if limit <= 0 || len(runes) <= limit {
		return details
	}
	return string(runes[:limit]) + "..."
}

// MarshalJSON includes the derived status alongside the stored fields.
func (l Launch) MarshalJSON() ([]byte, error) {
	type plain Launch
	return json.Marshal(struct {
		plain
		Status Status `json:"status"`
	}{plain(l), l.Status()})
}

// Enricher derives display fields using a fixed Formatter.
type Enricher struct {
	Format Formatter
}

// NewEnricher returns an Enricher that formats dates with f.
func NewEnricher(f Formatter) Enricher {
	return Enricher{Format: f}
}

// Enrich derives every display field of raw relative to now. It never fails:
// missing values degrade to the fallback strings.
func (e Enricher) Enrich(raw spacex.Launch, now time.Time) Launch {
	out := Launch{
		Launch:         raw,
		FormattedDate:  DateTBD,
		RocketName:     UnknownRocket,
		LaunchpadName:  UnknownLaunchpad,
		PayloadSummary: payloadSummary(raw.Payloads),
	}

	if t, ok := raw.ParsedDate(); ok {
		out.LaunchTime = t
		out.HasDate = true
		out.FormattedDate = e.Format.Short(t)
	}
	out.Countdown = out.CountdownAt(now)

	if raw.Rocket != nil && strings.TrimSpace(raw.Rocket.Name) != "" {
		out.RocketName = raw.Rocket.Name
	}
	if raw.Launchpad != nil && strings.TrimSpace(raw.Launchpad.Name) != "" {
		out.LaunchpadName = raw.Launchpad.Name
	}
	return out
}

// EnrichAll enriches raws in order against a single now.
func (e Enricher) EnrichAll(raws []spacex.Launch, now time.Time) []Launch {
	out := make([]Launch, len(raws))
	for i, raw := range raws {
		out[i] = e.Enrich(raw, now)
	}
	return out
}

// LongDate renders the launch date for the detail view.
func (e Enricher) LongDate(l Launch) string {
	if !l.HasDate {
		return DateTBD
	}
	return e.Format.Long(l.LaunchTime)
}

func payloadSummary(payloads []spacex.Payload) string {
	names := make([]string, 0, len(payloads))
	for _, p := range payloads {
		if name := strings.TrimSpace(p.Name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return NoPayloadInfo
	}
	return strings.Join(names, ", ")
}
