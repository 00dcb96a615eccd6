package launch

import (
	"context"
	"time"

	"github.com/five82/liftoff/internal/spacex"
)

// Querier is the part of the API client the fetcher needs.
type Querier interface {
	QueryLaunches(ctx context.Context, query spacex.Query) ([]spacex.Launch, error)
}

// Fetcher issues the launch query and enriches the result.
type Fetcher struct {
	source   Querier
	enricher Enricher
	now      func() time.Time
}

// NewFetcher builds a Fetcher over source.
func NewFetcher(source Querier, enricher Enricher) *Fetcher {
	return &Fetcher{source: source, enricher: enricher, now: time.Now}
}

// FetchLaunches performs one query and returns the enriched launches in API
// order. Errors from the source are returned unchanged.
func (f *Fetcher) FetchLaunches(ctx context.Context) ([]Launch, error) {
	raws, err := f.source.QueryLaunches(ctx, spacex.LaunchQuery())
	if err != nil {
		return nil, err
	}
	return f.enricher.EnrichAll(raws, f.now()), nil
}
