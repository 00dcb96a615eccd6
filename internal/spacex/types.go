package spacex

import (
	"bytes"
	"encoding/json"
	"slices"
	"time"
)

// QueryResponse mirrors the paginated envelope returned by /v4/launches/query.
type QueryResponse struct {
	Docs        []Launch `json:"docs"`
	TotalDocs   int      `json:"totalDocs"`
	Limit       int      `json:"limit"`
	Page        int      `json:"page"`
	HasNextPage bool     `json:"hasNextPage"`
}

// Launch is a raw launch record as delivered by the API.
type Launch struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	DateUTC      string     `json:"date_utc"`
	Upcoming     bool       `json:"upcoming"`
	Success      *bool      `json:"success"`
	FlightNumber int        `json:"flight_number"`
	Details      string     `json:"details"`
	Rocket       *Rocket    `json:"rocket"`
	Launchpad    *Launchpad `json:"launchpad"`
	Payloads     []Payload  `json:"payloads"`
	Links        *Links     `json:"links"`
}

// ParsedDate returns the launch date when present and well formed.
func (l Launch) ParsedDate() (time.Time, bool) {
	if l.DateUTC == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, l.DateUTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Clone returns a copy of l that shares no pointers or slices with it.
func (l Launch) Clone() Launch {
	if l.Success != nil {
		v := *l.Success
		l.Success = &v
	}
	if l.Rocket != nil {
		v := *l.Rocket
		l.Rocket = &v
	}
	if l.Launchpad != nil {
		v := *l.Launchpad
		l.Launchpad = &v
	}
	if l.Payloads != nil {
		payloads := make([]Payload, len(l.Payloads))
		for i, p := range l.Payloads {
			if p.MassKg != nil {
				v := *p.MassKg
				p.MassKg = &v
			}
			p.Customers = slices.Clone(p.Customers)
			payloads[i] = p
		}
		l.Payloads = payloads
	}
	if l.Links != nil {
		v := *l.Links
		v.Flickr.Small = slices.Clone(v.Flickr.Small)
		v.Flickr.Original = slices.Clone(v.Flickr.Original)
		l.Links = &v
	}
	return l
}

// Rocket is the populated rocket projection.
type Rocket struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Company   string `json:"company"`
	Country   string `json:"country"`
	Wikipedia string `json:"wikipedia"`
}

// UnmarshalJSON accepts either a populated object or a bare id string.
func (r *Rocket) UnmarshalJSON(data []byte) error {
	type plain Rocket
	id, isRef, err := decodeRef(data)
	if err != nil {
		return err
	}
	if isRef {
		*r = Rocket{ID: id}
		return nil
	}
	return json.Unmarshal(data, (*plain)(r))
}

// Launchpad is the populated launchpad projection.
type Launchpad struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Locality string `json:"locality"`
	Region   string `json:"region"`
	Country  string `json:"country"`
}

// UnmarshalJSON accepts either a populated object or a bare id string.
func (p *Launchpad) UnmarshalJSON(data []byte) error {
	type plain Launchpad
	id, isRef, err := decodeRef(data)
	if err != nil {
		return err
	}
	if isRef {
		*p = Launchpad{ID: id}
		return nil
	}
	return json.Unmarshal(data, (*plain)(p))
}

// Payload is the populated payload projection.
type Payload struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	MassKg    *float64 `json:"mass_kg"`
	Customers []string `json:"customers"`
}

// UnmarshalJSON accepts either a populated object or a bare id string.
func (p *Payload) UnmarshalJSON(data []byte) error {
	type plain Payload
	id, isRef, err := decodeRef(data)
	if err != nil {
		return err
	}
	if isRef {
		*p = Payload{ID: id}
		return nil
	}
	return json.Unmarshal(data, (*plain)(p))
}

// Links groups the media and reference links of a launch.
type Links struct {
	Patch     Patch  `json:"patch"`
	Flickr    Flickr `json:"flickr"`
	Webcast   string `json:"webcast"`
	Article   string `json:"article"`
	Wikipedia string `json:"wikipedia"`
}

// Patch holds the mission patch image URLs.
type Patch struct {
	Small string `json:"small"`
	Large string `json:"large"`
}

// Flickr holds the mission photo URLs.
type Flickr struct {
	Small    []string `json:"small"`
	Original []string `json:"original"`
}

func decodeRef(data []byte) (string, bool, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", false, nil
	}
	var id string
	if err := json.Unmarshal(trimmed, &id); err != nil {
		return "", false, err
	}
	return id, true, nil
}
