package launch

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/liftoff/internal/spacex"
)

func boolPtr(v bool) *bool { return &v }

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name     string
		upcoming bool
		success  *bool
		want     Status
	}{
		{"upcoming wins over success flag", true, boolPtr(false), StatusUpcoming},
		{"upcoming without flag", true, nil, StatusUpcoming},
		{"success", false, boolPtr(true), StatusSuccess},
		{"failed", false, boolPtr(false), StatusFailed},
		{"unknown", false, nil, StatusUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.upcoming, tt.success))
		})
	}
	assert.Equal(t, "Failed", StatusFailed.Label())
	assert.Equal(t, "Unknown", Status("").Label())
}

func TestTimeUntil(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"exactly two days three hours", 2*24*time.Hour + 3*time.Hour, "2d 3h"},
		{"days and hours drop minutes", 2*24*time.Hour + 3*time.Hour + 10*time.Minute, "2d 3h"},
		{"hours and minutes", time.Hour + 30*time.Minute, "1h 30m"},
		{"minutes only", 30 * time.Minute, "30m"},
		{"under a minute", 30 * time.Second, "0m"},
		{"exactly now", 0, LaunchingSoon},
		{"past", -time.Minute, LaunchingSoon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeUntil(now.Add(tt.in), now))
		})
	}
}

func TestResolveImage(t *testing.T) {
	onlyFlickrSmall := &spacex.Links{Flickr: spacex.Flickr{Small: []string{"fs"}}}
	for _, view := range []View{ListView, DetailView} {
		url, ok := ResolveImage(onlyFlickrSmall, view)
		require.True(t, ok)
		assert.Equal(t, "fs", url)
	}

	both := &spacex.Links{
		Patch:  spacex.Patch{Small: "ps"},
		Flickr: spacex.Flickr{Small: []string{"fs"}},
	}
	url, _ := ResolveImage(both, ListView)
	assert.Equal(t, "ps", url)
	url, _ = ResolveImage(both, DetailView)
	assert.Equal(t, "ps", url)

	large := &spacex.Links{
		Patch:  spacex.Patch{Large: "pl"},
		Flickr: spacex.Flickr{Original: []string{"fo"}},
	}
	url, _ = ResolveImage(large, ListView)
	assert.Equal(t, "pl", url)

	full := &spacex.Links{
		Patch:  spacex.Patch{Small: "ps", Large: "pl"},
		Flickr: spacex.Flickr{Small: []string{"fs"}, Original: []string{"fo"}},
	}
	url, _ = ResolveImage(full, ListView)
	assert.Equal(t, "ps", url)
	url, _ = ResolveImage(full, DetailView)
	assert.Equal(t, "pl", url)

	_, ok := ResolveImage(nil, ListView)
	assert.False(t, ok)
	_, ok = ResolveImage(&spacex.Links{Patch: spacex.Patch{Small: "  "}}, DetailView)
	assert.False(t, ok, "blank strings are absent")
}

func TestEnrich_Sentinels(t *testing.T) {
	e := NewEnricher(NewFormatter("en-US", time.UTC))
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	got := e.Enrich(spacex.Launch{ID: "a", Upcoming: true}, now)

	assert.Equal(t, DateTBD, got.FormattedDate)
	assert.Equal(t, DateTBD, got.Countdown)
	assert.Equal(t, UnknownRocket, got.RocketName)
	assert.Equal(t, UnknownLaunchpad, got.LaunchpadName)
	assert.Equal(t, NoPayloadInfo, got.PayloadSummary)
	assert.Equal(t, UnnamedMission, got.DisplayName())
	assert.Equal(t, StatusUpcoming, got.Status())
	assert.False(t, got.HasDate)
}

func TestEnrich_PopulatedRecord(t *testing.T) {
	e := NewEnricher(NewFormatter("en-US", time.UTC))
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	raw := spacex.Launch{
		ID:        "b",
		Name:      "Starlink 4-1",
		DateUTC:   "2024-03-03T15:30:00.000Z",
		Upcoming:  true,
		Rocket:    &spacex.Rocket{Name: "Falcon 9"},
		Launchpad: &spacex.Launchpad{Name: "KSC LC 39A"},
		Payloads:  []spacex.Payload{{Name: "Starlink"}, {Name: " "}, {Name: "Rideshare"}},
	}

	got := e.Enrich(raw, now)

	assert.Equal(t, "Mar 3, 2024, 03:30 PM", got.FormattedDate)
	assert.Equal(t, "2d 3h", got.Countdown)
	assert.Equal(t, "Falcon 9", got.RocketName)
	assert.Equal(t, "KSC LC 39A", got.LaunchpadName)
	assert.Equal(t, "Starlink, Rideshare", got.PayloadSummary)
	assert.Equal(t, "1h 0m", got.CountdownAt(got.LaunchTime.Add(-time.Hour)))
	assert.Equal(t, "Sunday, March 3, 2024 at 03:30 PM UTC", e.LongDate(got))
}

func TestEnrich_PastLaunchHasNoCountdown(t *testing.T) {
	e := NewEnricher(Formatter{})
	got := e.Enrich(spacex.Launch{DateUTC: "2020-05-30T19:22:00Z", Success: boolPtr(true)}, time.Now())
	assert.Empty(t, got.Countdown)
	assert.Empty(t, got.CountdownAt(time.Now()))
	assert.Equal(t, StatusSuccess, got.Status())
}

func TestLaunch_StatusFollowsRawFlags(t *testing.T) {
	e := NewEnricher(Formatter{})
	got := e.Enrich(spacex.Launch{Upcoming: true}, time.Now())
	got.Upcoming = false
	got.Success = boolPtr(false)
	assert.Equal(t, StatusFailed, got.Status())
}

func TestLaunch_ShortDetails(t *testing.T) {
	long := ""
	for i := 0; i < 15; i++ {
		long += "abcdefghij"
	}
	l := Launch{Launch: spacex.Launch{Details: long}}
	short := l.ShortDetails(100)
	assert.Len(t, short, 103)
	assert.Equal(t, long[:100]+"...", short)

	l.Details = "short"
	assert.Equal(t, "short", l.ShortDetails(100))
}

func TestLaunch_MarshalJSONIncludesStatus(t *testing.T) {
	l := NewEnricher(Formatter{}).Enrich(spacex.Launch{ID: "x", Name: "Demo", Success: boolPtr(false)}, time.Now())

	data, err := json.Marshal(l)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "failed", decoded["status"])
	assert.Equal(t, "Demo", decoded["name"])
	assert.Equal(t, DateTBD, decoded["formatted_date"])
	assert.NotContains(t, decoded, "countdown")
	assert.NotContains(t, decoded, "LaunchTime")
}

func TestFormatter_Locales(t *testing.T) {
	at := time.Date(2024, 3, 3, 15, 30, 0, 0, time.UTC)

	en := NewFormatter("en-US", time.UTC)
	assert.Equal(t, "en-US", en.Locale())
	assert.Equal(t, "15,600 kg", en.Mass(15600))

	de := NewFormatter("de-DE", time.UTC)
	assert.Equal(t, "de", de.Locale())
	assert.Equal(t, "03.03.2024, 15:30", de.Short(at))
	assert.Equal(t, "Sonntag, 03.03.2024, 15:30 UTC", de.Long(at))
	assert.Equal(t, "15.600 kg", de.Mass(15600))

	gb := NewFormatter("en-GB", time.UTC)
	assert.Equal(t, "3 Mar 2024, 15:30", gb.Short(at))

	fallback := NewFormatter("not a locale!", time.UTC)
	assert.Equal(t, "en-US", fallback.Locale())
}

type fakeQuerier struct {
	launches []spacex.Launch
	err      error
	got      spacex.Query
}

func (f *fakeQuerier) QueryLaunches(_ context.Context, q spacex.Query) ([]spacex.Launch, error) {
	f.got = q
	return f.launches, f.err
}

func TestFetcher_PreservesOrder(t *testing.T) {
	src := &fakeQuerier{launches: []spacex.Launch{{ID: "3"}, {ID: "1"}, {ID: "2"}}}
	f := NewFetcher(src, NewEnricher(Formatter{}))

	got, err := f.FetchLaunches(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "1", got[1].ID)
	assert.Equal(t, "2", got[2].ID)
	assert.Equal(t, spacex.DefaultLimit, src.got.Options.Limit)
}

func TestFetcher_PassesErrorsThrough(t *testing.T) {
	want := &spacex.FetchError{Kind: spacex.KindHTTPStatus, StatusCode: 500}
	f := NewFetcher(&fakeQuerier{err: want}, NewEnricher(Formatter{}))

	got, err := f.FetchLaunches(context.Background())
	assert.Nil(t, got)

	var fe *spacex.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "HTTP error! status: 500", err.Error())
}
