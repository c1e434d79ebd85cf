package models

// TableResponse is a projected entity listing: fixed named columns and
// one row per entity. List views render this directly and the CSV
// exporter serializes it verbatim.
type TableResponse struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Count   int        `json:"count"`
}

// ZoneSummary is a brief zone description.
type ZoneSummary struct {
	Name string `json:"name"`
	Kind string `json:"kind,omitempty"`
}

// ZoneListResponse contains the managed zones.
type ZoneListResponse struct {
	Zones []ZoneSummary `json:"zones"`
	Count int           `json:"count"`
}
