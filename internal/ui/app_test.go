package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/liftoff/internal/launch"
	"github.com/five82/liftoff/internal/prefs"
	"github.com/five82/liftoff/internal/spacex"
	"github.com/five82/liftoff/internal/state"
)

type fakeFetcher struct {
	launches []launch.Launch
	err      error
	calls    int
}

func (f *fakeFetcher) FetchLaunches(context.Context) ([]launch.Launch, error) {
	f.calls++
	return f.launches, f.err
}

type fakeProber struct {
	missing map[string]bool
}

func (p fakeProber) ProbeImage(_ context.Context, url string) error {
	if p.missing[url] {
		return errors.New("404")
	}
	return nil
}

var testEnricher = launch.NewEnricher(launch.NewFormatter("en-US", time.UTC))

func sampleLaunches(n int) []launch.Launch {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	out := make([]launch.Launch, n)
	for i := range out {
		out[i] = testEnricher.Enrich(spacex.Launch{
			ID:           string(rune('a' + i)),
			Name:         "Mission " + string(rune('A'+i)),
			FlightNumber: 100 - i,
			DateUTC:      "2024-03-03T15:30:00Z",
			Upcoming:     i == 0,
			Rocket:       &spacex.Rocket{Name: "Falcon 9", Type: "rocket", Wikipedia: "https://en.wikipedia.org/wiki/Falcon_9"},
			Links: &spacex.Links{
				Patch:   spacex.Patch{Small: "https://img/" + string(rune('a'+i)) + "-small.png"},
				Webcast: "https://youtu.be/demo",
			},
		}, now)
	}
	return out
}

func newTestModel(t *testing.T, fetcher LaunchFetcher) (Model, *state.Machine) {
	t.Helper()
	machine := state.NewMachine()
	m := New(Options{
		Machine:  machine,
		Services: Services{Fetcher: fetcher, Prober: fakeProber{}, Enricher: testEnricher},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, machine
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return out, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loaded drives a model through one successful fetch.
func loaded(t *testing.T, launches []launch.Launch) (Model, *state.Machine, *fakeFetcher) {
	t.Helper()
	f := &fakeFetcher{launches: launches}
	m, machine := newTestModel(t, f)
	cmd := m.beginFetch()
	require.NotNil(t, cmd)
	m, _ = step(t, m, cmd())
	require.Equal(t, state.PhaseBrowsing, m.snapshot.Phase)
	return m, machine, f
}

func TestModel_FetchSuccessShowsGrid(t *testing.T) {
	m, _, f := loaded(t, sampleLaunches(4))

	assert.Equal(t, 1, f.calls)
	view := m.View()
	assert.Contains(t, view, "Launches:")
	assert.Contains(t, view, "Mission A")
	assert.Contains(t, view, "Flight #100")
	assert.Contains(t, view, "Updated ")
}

func TestModel_FetchErrorShowsErrorScreen(t *testing.T) {
	f := &fakeFetcher{err: &spacex.FetchError{Kind: spacex.KindHTTPStatus, StatusCode: 500}}
	m, _ := newTestModel(t, f)

	m, _ = step(t, m, m.beginFetch()())

	require.Equal(t, state.PhaseError, m.snapshot.Phase)
	assert.Empty(t, m.snapshot.Launches)
	view := m.View()
	assert.Contains(t, view, "Error Loading Launches")
	assert.Contains(t, view, "HTTP error! status: 500")
	assert.Contains(t, view, "Try Again")
}

func TestModel_SelectAndBackKeepsCollection(t *testing.T) {
	m, _, f := loaded(t, sampleLaunches(3))

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, state.PhaseDetail, m.snapshot.Phase)
	assert.Equal(t, "a", m.snapshot.Selected.ID)
	view := m.View()
	assert.Contains(t, view, "Mission A")
	assert.Contains(t, view, "Sunday, March 3, 2024 at 03:30 PM UTC")
	assert.Contains(t, view, "Watch Webcast")
	assert.Contains(t, view, "Rocket Info")

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, state.PhaseBrowsing, m.snapshot.Phase)
	assert.Len(t, m.snapshot.Launches, 3)
	assert.Equal(t, 1, f.calls, "back must not refetch")
}

func TestModel_RefreshFromDetailEntersLoading(t *testing.T) {
	m, machine, _ := loaded(t, sampleLaunches(2))
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	before := machine.Snapshot().Seq

	m, cmd := step(t, m, runes("r"))

	assert.NotNil(t, cmd)
	assert.Equal(t, state.PhaseLoading, m.snapshot.Phase)
	assert.False(t, m.snapshot.HasSelected)
	assert.Equal(t, before+1, machine.Snapshot().Seq)
	assert.Contains(t, m.View(), "Loading launches")
}

func TestModel_LoadingIgnoresRefresh(t *testing.T) {
	m, machine := newTestModel(t, &fakeFetcher{})
	m.beginFetch()
	m.sync()
	seq := machine.Snapshot().Seq

	m, cmd := step(t, m, runes("r"))

	assert.Nil(t, cmd)
	assert.Equal(t, seq, machine.Snapshot().Seq)
}

func TestModel_StaleResultIgnored(t *testing.T) {
	m, machine := newTestModel(t, &fakeFetcher{})
	first := machine.BeginFetch()
	second := machine.BeginFetch()
	m.sync()

	m, _ = step(t, m, launchesMsg{seq: first, launches: sampleLaunches(1)})
	assert.Equal(t, state.PhaseLoading, m.snapshot.Phase)

	m, _ = step(t, m, launchesMsg{seq: second, launches: sampleLaunches(2)})
	assert.Equal(t, state.PhaseBrowsing, m.snapshot.Phase)
	assert.Len(t, m.snapshot.Launches, 2)
}

func TestModel_GridNavigation(t *testing.T) {
	m, _, _ := loaded(t, sampleLaunches(7))
	require.Equal(t, 3, m.columns())

	m, _ = step(t, m, runes("j"))
	assert.Equal(t, 3, m.cursor)
	m, _ = step(t, m, runes("l"))
	assert.Equal(t, 4, m.cursor)
	m, _ = step(t, m, runes("G"))
	assert.Equal(t, 6, m.cursor)
	m, _ = step(t, m, runes("j"))
	assert.Equal(t, 6, m.cursor, "no row below")
	m, _ = step(t, m, runes("g"))
	assert.Equal(t, 0, m.cursor)
	m, _ = step(t, m, runes("h"))
	assert.Equal(t, 0, m.cursor)
}

func TestModel_ImageFailureDegradesToPlaceholder(t *testing.T) {
	m, _, _ := loaded(t, sampleLaunches(1))
	l := m.snapshot.Launches[0]
	url, ok := l.Image(launch.ListView)
	require.True(t, ok)

	assert.Equal(t, imagePending, m.images.get(url), "cursor card is probed after fetch")

	m, _ = step(t, m, imageMsg{url: url, err: errors.New("404")})

	assert.Equal(t, PlaceholderImage, m.imageLine(l, launch.ListView, 60))
	assert.Equal(t, state.PhaseBrowsing, m.snapshot.Phase)
}

func TestModel_ImageLoadedShowsURL(t *testing.T) {
	m, _, _ := loaded(t, sampleLaunches(1))
	l := m.snapshot.Launches[0]
	url, _ := l.Image(launch.ListView)

	m, _ = step(t, m, imageMsg{url: url})

	assert.Contains(t, m.imageLine(l, launch.ListView, 80), url)
}

func TestModel_ReloadRebuildsServices(t *testing.T) {
	m, machine, old := loaded(t, sampleLaunches(1))
	fresh := &fakeFetcher{launches: sampleLaunches(5)}
	m.reload = func() (Services, error) {
		return Services{Fetcher: fresh, Enricher: testEnricher}, nil
	}

	m, cmd := step(t, m, runes("R"))
	require.NotNil(t, cmd)
	assert.Equal(t, state.PhaseLoading, m.snapshot.Phase)
	assert.False(t, m.snapshot.HasLastUpdated())

	m, fetch := step(t, m, reloadCmd(m.reload, machine.Snapshot().Seq)())
	require.NotNil(t, fetch)
	m, _ = step(t, m, fetch())

	assert.Equal(t, state.PhaseBrowsing, m.snapshot.Phase)
	assert.Len(t, m.snapshot.Launches, 5)
	assert.Equal(t, 1, old.calls)
	assert.Equal(t, 1, fresh.calls)
}

func TestModel_ReloadKeepsLogPath(t *testing.T) {
	m, machine, _ := loaded(t, sampleLaunches(1))
	m.svc.LogPath = "/var/log/liftoff-old.log"
	m.reload = func() (Services, error) {
		return Services{Fetcher: &fakeFetcher{launches: sampleLaunches(2)}, Enricher: testEnricher, LogPath: "/var/log/liftoff-new.log"}, nil
	}

	m, _ = step(t, m, runes("R"))
	m, fetch := step(t, m, reloadCmd(m.reload, machine.Snapshot().Seq)())
	require.NotNil(t, fetch)
	m, _ = step(t, m, fetch())

	require.Equal(t, state.PhaseBrowsing, m.snapshot.Phase)
	assert.Equal(t, "/var/log/liftoff-old.log", m.svc.LogPath)
}

func TestModel_ReloadFailureShowsError(t *testing.T) {
	m, machine, _ := loaded(t, sampleLaunches(1))
	m.reload = func() (Services, error) {
		return Services{}, errors.New("parse config: bad")
	}

	m, _ = step(t, m, runes("R"))
	m, _ = step(t, m, reloadCmd(m.reload, machine.Snapshot().Seq)())

	require.Equal(t, state.PhaseError, m.snapshot.Phase)
	assert.Contains(t, m.snapshot.Message, "reload config: parse config: bad")
}

func TestModel_ThemeCyclePersists(t *testing.T) {
	m, _ := newTestModel(t, &fakeFetcher{})
	m.prefsPath = filepath.Join(t.TempDir(), "prefs.toml")

	m, _ = step(t, m, runes("T"))

	assert.Equal(t, "Slate", m.theme.Name)
	p, err := prefs.Load(m.prefsPath)
	require.NoError(t, err)
	assert.Equal(t, "Slate", p.Theme)
}

func TestModel_HelpOverlayClosesOnAnyKey(t *testing.T) {
	m, _ := newTestModel(t, &fakeFetcher{})

	m, _ = step(t, m, runes("?"))
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	m, _ = step(t, m, runes("x"))
	assert.False(t, m.showHelp)
}

func TestModel_DiagnosticsOverlay(t *testing.T) {
	m, _ := newTestModel(t, &fakeFetcher{})

	m, cmd := step(t, m, runes("L"))
	require.NotNil(t, cmd)
	assert.True(t, m.showDiagnostics)

	m, _ = step(t, m, diagnosticsMsg{})
	assert.Contains(t, m.View(), "No log entries yet.")
}

func TestFormatTimestamp(t *testing.T) {
	m, machine, _ := loaded(t, sampleLaunches(1))
	m.now = machine.Snapshot().LastUpdated.Add(2 * time.Minute)

	got := m.formatTimestamp()
	assert.True(t, strings.HasPrefix(got, "Updated "), got)
	assert.True(t, strings.HasSuffix(got, "(2 minutes ago)"), got)
}

func TestDetailContent_HidesFallbackSections(t *testing.T) {
	m, _ := newTestModel(t, &fakeFetcher{})
	bare := testEnricher.Enrich(spacex.Launch{ID: "x", Name: "Bare"}, time.Now())

	content := m.renderDetailContent(bare)

	for _, hidden := range []string{launch.UnknownRocket, launch.UnknownLaunchpad, launch.NoPayloadInfo, "Launch Site", "Payloads"} {
		assert.NotContains(t, content, hidden)
	}

	full := sampleLaunches(1)[0]
	content = m.renderDetailContent(full)
	assert.Contains(t, content, "Falcon 9 (rocket)")
}

func TestCardRows_HidesFallbacks(t *testing.T) {
	l := testEnricher.Enrich(spacex.Launch{Rocket: &spacex.Rocket{Name: "Falcon Heavy"}}, time.Now())

	rows := cardRows(l)

	require.Len(t, rows, 1)
	assert.Equal(t, "Rocket", rows[0].label)
	assert.Equal(t, "Falcon Heavy", rows[0].value)
}
