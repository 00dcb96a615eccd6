package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/liftoff/internal/launch"
	"github.com/five82/liftoff/internal/logtail"
)

// Messages

type tickMsg time.Time

type launchesMsg struct {
	seq      uint64
	launches []launch.Launch
	err      error
}

type reloadMsg struct {
	seq uint64
	svc Services
	err error
}

type imageMsg struct {
	url string
	err error
}

type diagnosticsMsg struct {
	entries []logtail.Entry
	err     error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchCmd(ctx context.Context, fetcher LaunchFetcher, seq uint64) tea.Cmd {
	return func() tea.Msg {
		launches, err := fetcher.FetchLaunches(ctx)
		return launchesMsg{seq: seq, launches: launches, err: err}
	}
}

func reloadCmd(reload func() (Services, error), seq uint64) tea.Cmd {
	return func() tea.Msg {
		svc, err := reload()
		return reloadMsg{seq: seq, svc: svc, err: err}
	}
}

func probeCmd(ctx context.Context, prober ImageProber, url string) tea.Cmd {
	return func() tea.Msg {
		return imageMsg{url: url, err: prober.ProbeImage(ctx, url)}
	}
}

func loadDiagnosticsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return diagnosticsMsg{}
		}
		entries, err := logtail.ReadEntries(path, DiagnosticsLines)
		return diagnosticsMsg{entries: entries, err: err}
	}
}
