// Package model defines the data types shared across pipeline stages.
package model

// Coordinates is a geographic point in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NearbyCity is a reference to a city within driving distance.
type NearbyCity struct {
	Name     string  `json:"name"`
	State    string  `json:"state"`
	Slug     string  `json:"slug"`
	Distance float64 `json:"distance"` // miles, one decimal
}

// City is an enriched city record keyed by slug.
// Slugs are unique across the dataset; NearbyCities is sorted ascending by
// distance and never contains the city itself.
type City struct {
	Name         string       `json:"name"`
	State        string       `json:"state"`
	Population   int          `json:"population"`
	Slug         string       `json:"slug"`
	NearbyCities []NearbyCity `json:"nearby_cities"`
	AvgCost      int          `json:"avg_cost"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
}

// CityRow is a raw city record as read from the input file, before
// enrichment. Lat/Lng are optional; zero values mean unknown.
type CityRow struct {
	Name       string
	State      string
	Population int
	Slug       string
	Lat        float64
	Lng        float64
	HasCoords  bool
}

// IndexEntry is the projection of a city used by search and autocomplete.
type IndexEntry struct {
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	State      string `json:"state"`
	URL        string `json:"url"`
	Population int    `json:"population"`
}
