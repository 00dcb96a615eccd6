package spacex

// DefaultLimit is the fixed batch size requested per fetch.
const DefaultLimit = 30

// Query is the request body accepted by /v4/launches/query.
type Query struct {
	Filter  map[string]any `json:"query"`
	Options QueryOptions   `json:"options"`
}

// QueryOptions controls paging, ordering and joins.
type QueryOptions struct {
	Limit    int               `json:"limit"`
	Sort     map[string]string `json:"sort"`
	Populate []Populate        `json:"populate,omitempty"`
}

// Populate joins a related collection with a field projection.
type Populate struct {
	Path   string         `json:"path"`
	Select map[string]int `json:"select"`
}

// LaunchQuery returns the single query liftoff issues: the latest launches,
// newest first, with rocket, launchpad and payload summaries joined in.
func LaunchQuery() Query {
	return Query{
		Filter: map[string]any{},
		Options: QueryOptions{
			Limit: DefaultLimit,
			Sort:  map[string]string{"date_utc": "desc"},
			Populate: []Populate{
				{Path: "rocket", Select: projection("name", "type", "company", "country", "wikipedia")},
				{Path: "launchpad", Select: projection("name", "full_name", "locality", "region", "country")},
				{Path: "payloads", Select: projection("name", "type", "mass_kg", "customers")},
			},
		},
	}
}

func projection(fields ...string) map[string]int {
	out := make(map[string]int, len(fields))
	for _, f := range fields {
		out[f] = 1
	}
	return out
}
