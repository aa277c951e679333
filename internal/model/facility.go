package model

// Ratings holds the five review dimensions plus the review count.
// Each dimension is in [3.5, 5.0] with one decimal of precision.
type Ratings struct {
	Overall     float64 `json:"overall"`
	CareQuality float64 `json:"care_quality"`
	Facilities  float64 `json:"facilities"`
	Staff       float64 `json:"staff"`
	Value       float64 `json:"value"`
	ReviewCount int     `json:"review_count"`
}

// Facility is a single senior-care facility record. IDs follow
// fac_<city-slug>_<3-digit-sequence> and are unique within a city;
// CitySlug always references an existing City.
type Facility struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Address      string      `json:"address"`
	City         string      `json:"city"`
	State        string      `json:"state"`
	ZipCode      string      `json:"zip_code"`
	Phone        string      `json:"phone"`
	Website      string      `json:"website"`
	Coordinates  Coordinates `json:"coordinates"`
	FacilityType []string    `json:"facility_type"`
	Features     []string    `json:"features"`
	Capacity     int         `json:"capacity"`
	Ratings      Ratings     `json:"ratings"`
	CitySlug     string      `json:"city_slug"`
}

// FacilityMeta summarizes a facility synthesis run.
type FacilityMeta struct {
	TotalCount    int    `json:"total_count"`
	CitiesCovered int    `json:"cities_covered"`
	LastUpdated   string `json:"last_updated"`
}

// FacilityData is the facilities output file: a flat list plus meta.
type FacilityData struct {
	Facilities []Facility   `json:"facilities"`
	Meta       FacilityMeta `json:"meta"`
}
