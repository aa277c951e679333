package model

// CityMeta holds derived flags for a combined city record. The counts and
// flags are recomputed from the attached data at combine time, never copied
// from upstream files.
type CityMeta struct {
	FacilityCount   int    `json:"facility_count"`
	HasCostData     bool   `json:"has_cost_data"`
	HasNearbyCities bool   `json:"has_nearby_cities"`
	LastUpdated     string `json:"last_updated"`
}

// SEOTitles holds the per-page title strings for a city.
type SEOTitles struct {
	Main       string `json:"main"`
	Cost       string `json:"cost"`
	Facilities string `json:"facilities"`
	Nearby     string `json:"nearby"`
}

// SEODescriptions holds the per-page meta description strings for a city.
type SEODescriptions struct {
	Main       string `json:"main"`
	Cost       string `json:"cost"`
	Facilities string `json:"facilities"`
	Nearby     string `json:"nearby"`
}

// LocationInfo classifies a city for region targeting.
type LocationInfo struct {
	City   string `json:"city"`
	State  string `json:"state"`
	Region string `json:"region"`
}

// SEOData is the derived search metadata for a city. It is a pure function
// of city name, state, and the assisted living monthly average.
type SEOData struct {
	Keywords     []string        `json:"keywords"`
	Titles       SEOTitles       `json:"titles"`
	Descriptions SEODescriptions `json:"descriptions"`
	CareTypes    []string        `json:"care_types"`
	LocationInfo LocationInfo    `json:"location_info"`
}

// CombinedCity is the canonical per-city unit consumed by page generation.
// It is created once per pipeline run and read-only afterwards.
type CombinedCity struct {
	CityInfo   City       `json:"city_info"`
	Costs      CityCosts  `json:"costs"`
	Facilities []Facility `json:"facilities"`
	Meta       CityMeta   `json:"meta"`
	SEO        SEOData    `json:"seo"`
}

// GlobalMeta holds dataset-wide counters and attribution.
type GlobalMeta struct {
	TotalCities     int      `json:"total_cities"`
	TotalFacilities int      `json:"total_facilities"`
	CareTypes       []string `json:"care_types"`
	LastUpdated     string   `json:"last_updated"`
	Sources         []string `json:"sources"`
}

// CombinedData is the combiner output file.
type CombinedData struct {
	Cities map[string]CombinedCity `json:"cities"`
	Meta   GlobalMeta              `json:"meta"`
}
