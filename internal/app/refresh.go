package app

import (
	"context"
	"log/slog"

	"github.com/five82/liftoff/internal/launch"
	"github.com/five82/liftoff/internal/spacex"
	"github.com/five82/liftoff/internal/state"
)

// LaunchFetcher is the fetch side of launch.Fetcher.
type LaunchFetcher interface {
	FetchLaunches(ctx context.Context) ([]launch.Launch, error)
}

var _ LaunchFetcher = (*launch.Fetcher)(nil)

// Refresh runs one fetch through machine and returns the settled snapshot.
// The returned error is the fetch error, if any; the machine has already
// recorded it.
func Refresh(ctx context.Context, machine *state.Machine, fetcher LaunchFetcher) (state.Snapshot, error) {
	seq := machine.BeginFetch()
	slog.Info("fetch started", "seq", seq)

	launches, err := fetcher.FetchLaunches(ctx)
	if !machine.Complete(seq, launches, err) {
		slog.Debug("stale fetch result discarded", "seq", seq)
	}
	if err != nil {
		slog.Warn("fetch failed", "seq", seq, "kind", spacex.KindOf(err), "error", err)
	} else {
		slog.Info("fetch complete", "seq", seq, "count", len(launches))
	}
	return machine.Snapshot(), err
}
