package spacex

import (
	"encoding/json"
	"testing"
	"time"
)

func TestLaunch_ParsedDate(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		want   time.Time
		wantOK bool
	}{
		{"millis", "2022-12-05T22:00:00.000Z", time.Date(2022, 12, 5, 22, 0, 0, 0, time.UTC), true},
		{"plain", "2022-12-05T22:00:00Z", time.Date(2022, 12, 5, 22, 0, 0, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"garbage", "next tuesday", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Launch{DateUTC: tt.value}.ParsedDate()
			if ok != tt.wantOK || !got.Equal(tt.want) {
				t.Fatalf("ParsedDate(%q) = %v, %v; want %v, %v", tt.value, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLaunch_DecodesNullsAndReferences(t *testing.T) {
	raw := `{
		"id": "x",
		"name": "Mixed",
		"date_utc": null,
		"success": null,
		"details": null,
		"rocket": null,
		"launchpad": {"name": "SLC 40", "full_name": "Space Launch Complex 40", "locality": "Cape Canaveral", "region": "Florida"},
		"payloads": ["5eb0e4d0b6c3bb0006eeb253", {"name": "CRS-20", "mass_kg": null, "customers": ["NASA"]}],
		"links": {"patch": {"small": null, "large": "https://img/large.png"}, "flickr": {"small": [], "original": ["https://img/o.jpg"]}}
	}`

	var l Launch
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if l.DateUTC != "" || l.Success != nil || l.Details != "" || l.Rocket != nil {
		t.Fatalf("nulls not zeroed: %#v", l)
	}
	if l.Launchpad == nil || l.Launchpad.FullName != "Space Launch Complex 40" {
		t.Fatalf("launchpad = %#v", l.Launchpad)
	}
	if len(l.Payloads) != 2 {
		t.Fatalf("payloads = %#v, want 2", l.Payloads)
	}
	if l.Payloads[0].ID != "5eb0e4d0b6c3bb0006eeb253" || l.Payloads[0].Name != "" {
		t.Fatalf("payload ref = %#v", l.Payloads[0])
	}
	if l.Payloads[1].Name != "CRS-20" || l.Payloads[1].MassKg != nil {
		t.Fatalf("payload = %#v", l.Payloads[1])
	}
	if l.Links == nil || l.Links.Patch.Small != "" || l.Links.Patch.Large != "https://img/large.png" {
		t.Fatalf("links = %#v", l.Links)
	}
	if len(l.Links.Flickr.Original) != 1 {
		t.Fatalf("flickr = %#v", l.Links.Flickr)
	}
}

func TestLaunchQuery_FixedShape(t *testing.T) {
	q := LaunchQuery()
	if q.Options.Limit != 30 {
		t.Fatalf("limit = %d, want 30", q.Options.Limit)
	}
	if q.Options.Sort["date_utc"] != "desc" {
		t.Fatalf("sort = %v, want date_utc desc", q.Options.Sort)
	}
	paths := map[string]map[string]int{}
	for _, p := range q.Options.Populate {
		paths[p.Path] = p.Select
	}
	if paths["rocket"]["wikipedia"] != 1 || paths["launchpad"]["full_name"] != 1 || paths["payloads"]["mass_kg"] != 1 {
		t.Fatalf("populate = %#v", q.Options.Populate)
	}
	body, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if filter, ok := decoded["query"].(map[string]any); !ok || len(filter) != 0 {
		t.Fatalf("query = %v, want empty object", decoded["query"])
	}
}

func TestFetchError_Messages(t *testing.T) {
	if got := (&FetchError{Kind: KindHTTPStatus, StatusCode: 404}).Error(); got != "HTTP error! status: 404" {
		t.Fatalf("http message = %q", got)
	}
	if got := KindOf(nil); got != KindFailure {
		t.Fatalf("KindOf(nil) = %v, want failure", got)
	}
	if KindNetwork.String() != "network" || KindHTTPStatus.String() != "http_status" || KindFailure.String() != "failure" {
		t.Fatalf("kind strings wrong")
	}
}
