package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/liftoff/internal/launch"
	"github.com/five82/liftoff/internal/logtail"
	"github.com/five82/liftoff/internal/prefs"
	"github.com/five82/liftoff/internal/spacex"
	"github.com/five82/liftoff/internal/state"
)

// LaunchFetcher loads one batch of enriched launches.
type LaunchFetcher interface {
	FetchLaunches(ctx context.Context) ([]launch.Launch, error)
}

// ImageProber checks that an image URL is reachable.
type ImageProber interface {
	ProbeImage(ctx context.Context, url string) error
}

// Services are the collaborators rebuilt on a full reload.
type Services struct {
	Fetcher  LaunchFetcher
	Prober   ImageProber
	Enricher launch.Enricher
	LogPath  string
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Machine   *state.Machine
	Services  Services
	Reload    func() (Services, error)
	Logger    *slog.Logger
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	machine   *state.Machine
	svc       Services
	reload    func() (Services, error)
	logger    *slog.Logger
	prefsPath string
	keys      keyMap

	theme  Theme
	width  int
	height int
	ready  bool
	now    time.Time

	snapshot state.Snapshot

	// Grid state
	cursor    int
	rowOffset int

	spinner        spinner.Model
	detailViewport viewport.Model
	images         imageStates

	showHelp        bool
	showDiagnostics bool
	diagnostics     []logtail.Entry
	diagnosticsErr  error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	machine := opts.Machine
	if machine == nil {
		machine = state.NewMachine()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))

	return Model{
		ctx:       ctx,
		machine:   machine,
		svc:       opts.Services,
		reload:    opts.Reload,
		logger:    logger,
		prefsPath: opts.PrefsPath,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		now:       time.Now(),
		snapshot:  machine.Snapshot(),
		spinner:   sp,
		images:    make(imageStates),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		tickCmd(TickInterval),
		m.beginFetch(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(msg.Width, m.contentHeight())
			m.ready = true
		}
		m.detailViewport.Width = msg.Width
		m.detailViewport.Height = m.contentHeight()
		m.clampGrid()
		m.updateDetailViewport()
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		m.updateDetailViewport()
		return m, tickCmd(TickInterval)

	case spinner.TickMsg:
		if m.snapshot.Phase != state.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case launchesMsg:
		return m.handleLaunches(msg)

	case reloadMsg:
		return m.handleReload(msg)

	case imageMsg:
		m.images.finish(msg.url, msg.err)
		if msg.err != nil {
			m.logger.Debug("image unavailable", "url", msg.url, "error", msg.err)
		}
		m.updateDetailViewport()
		return m, nil

	case diagnosticsMsg:
		m.diagnostics = msg.entries
		m.diagnosticsErr = msg.err
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showDiagnostics {
		return m.renderDiagnostics()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

func (m Model) renderContent() string {
	switch m.snapshot.Phase {
	case state.PhaseLoading:
		return m.renderLoading()
	case state.PhaseError:
		return m.renderError()
	case state.PhaseDetail:
		return m.detailViewport.View()
	default:
		return m.renderGrid()
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.showDiagnostics {
		if key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.showDiagnostics = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Diagnostics):
		m.showDiagnostics = true
		return m, loadDiagnosticsCmd(m.svc.LogPath)
	}

	switch m.snapshot.Phase {
	case state.PhaseLoading:
		return m, nil
	case state.PhaseError:
		return m.handleCommonKey(msg)
	case state.PhaseDetail:
		return m.handleDetailKey(msg)
	default:
		return m.handleGridKey(msg)
	}
}

// handleCommonKey covers keys shared by every settled phase.
func (m Model) handleCommonKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Refresh):
		return m, tea.Batch(m.beginFetch(), m.spinner.Tick)
	case key.Matches(msg, m.keys.Reload):
		return m, tea.Batch(m.beginReload(), m.spinner.Tick)
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.machine.Back()
		m.sync()
		return m, m.probeCursor()
	case key.Matches(msg, m.keys.Refresh), key.Matches(msg, m.keys.Reload):
		return m.handleCommonKey(msg)
	case key.Matches(msg, m.keys.PageUp):
		m.detailViewport.HalfPageUp()
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.detailViewport.HalfPageDown()
		return m, nil
	}
	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

// beginFetch moves the machine to Loading and returns the command that
// performs the request.
func (m *Model) beginFetch() tea.Cmd {
	seq := m.machine.BeginFetch()
	m.sync()
	if m.svc.Fetcher == nil {
		m.machine.Complete(seq, nil, fmt.Errorf("no launch source configured"))
		m.sync()
		return nil
	}
	m.logger.Info("fetch started", "seq", seq)
	return fetchCmd(m.ctx, m.svc.Fetcher, seq)
}

// beginReload discards everything and rebuilds the services before fetching.
func (m *Model) beginReload() tea.Cmd {
	m.machine.Reset()
	m.images = make(imageStates)
	if m.reload == nil {
		return m.beginFetch()
	}
	seq := m.machine.BeginFetch()
	m.sync()
	m.logger.Info("reload started", "seq", seq)
	return reloadCmd(m.reload, seq)
}

func (m Model) handleLaunches(msg launchesMsg) (tea.Model, tea.Cmd) {
	if !m.machine.Complete(msg.seq, msg.launches, msg.err) {
		m.logger.Debug("stale fetch result discarded", "seq", msg.seq)
		return m, nil
	}
	if msg.err != nil {
		m.logger.Warn("fetch failed", "seq", msg.seq, "kind", spacex.KindOf(msg.err), "error", msg.err)
	} else {
		m.logger.Info("fetch complete", "seq", msg.seq, "count", len(msg.launches))
	}
	m.sync()
	m.cursor = 0
	m.rowOffset = 0
	return m, m.probeCursor()
}

func (m Model) handleReload(msg reloadMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if m.machine.Complete(msg.seq, nil, fmt.Errorf("reload config: %w", msg.err)) {
			m.logger.Warn("reload failed", "seq", msg.seq, "error", msg.err)
		}
		m.sync()
		return m, nil
	}
	if m.machine.Snapshot().Seq != msg.seq {
		return m, nil
	}
	if msg.svc.Fetcher == nil {
		m.machine.Complete(msg.seq, nil, fmt.Errorf("reload config: no launch source configured"))
		m.sync()
		return m, nil
	}
	// The logger stays on the file it was opened with.
	msg.svc.LogPath = m.svc.LogPath
	m.svc = msg.svc
	m.logger.Info("fetch started", "seq", msg.seq)
	return m, fetchCmd(m.ctx, m.svc.Fetcher, msg.seq)
}

// sync refreshes the cached snapshot after a machine transition.
func (m *Model) sync() {
	m.snapshot = m.machine.Snapshot()
	m.clampGrid()
	m.updateDetailViewport()
}

func (m Model) contentHeight() int {
	h := m.height - Chrome
	if h < 1 {
		return 1
	}
	return h
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	_, err := tea.NewProgram(m, programOpts...).Run()
	if err != nil && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
