// Package catalog loads the fixed reference tables the pipeline depends on:
// cost factors, region membership, facility catalogues, and coordinates.
// The tables are embedded at build time, parsed once, and passed by
// reference into each stage.
package catalog

import (
	_ "embed"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/directory-cli/internal/model"
)

//go:embed data.yaml
var rawData []byte

// CostBand is an inclusive [low, high] dollar band.
type CostBand struct {
	Low  int `yaml:"low"`
	High int `yaml:"high"`
}

// Catalog holds every fixed lookup table. Treat as immutable after Load.
type Catalog struct {
	NationalAverages   map[model.CareType]model.CareAverage `yaml:"national_averages"`
	StateCostFactors   map[string]float64                   `yaml:"state_cost_factors"`
	CityCostFactors    map[string]float64                   `yaml:"city_cost_factors"`
	CostFactorText     map[string][]string                  `yaml:"cost_factor_text"`
	HighEndCities      []string                             `yaml:"high_end_cities"`
	AffordableCities   []string                             `yaml:"affordable_cities"`
	Regions            map[string][]string                  `yaml:"regions"`
	StateBaselineCosts map[string]int                       `yaml:"state_baseline_costs"`
	DefaultBaseline    int                                  `yaml:"default_baseline_cost"`
	RegionCostBands    map[string]CostBand                  `yaml:"region_cost_bands"`
	HighCostStates     []string                             `yaml:"high_cost_states"`
	CompanyNames       []string                             `yaml:"company_names"`
	Features           []string                             `yaml:"features"`
	CareTypeTags       []string                             `yaml:"care_type_tags"`
	StreetNames        []string                             `yaml:"street_names"`
	CityCoordinates    map[string]model.Coordinates         `yaml:"city_coordinates"`
	AppendCostFactors  []string                             `yaml:"append_cost_factors"`
	Sources            []string                             `yaml:"sources"`
	CareTypeLabels     []string                             `yaml:"care_type_labels"`

	regionByState map[string]string
}

// Load parses the embedded reference data.
func Load() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(rawData, &c); err != nil {
		return nil, eris.Wrap(err, "catalog: parse embedded data")
	}

	if len(c.NationalAverages) != len(model.CareTypes) {
		return nil, eris.Errorf("catalog: expected %d national averages, got %d",
			len(model.CareTypes), len(c.NationalAverages))
	}
	if len(c.CompanyNames) == 0 || len(c.Features) == 0 || len(c.CareTypeTags) == 0 {
		return nil, eris.New("catalog: facility catalogues must not be empty")
	}

	c.regionByState = make(map[string]string, 51)
	for region, states := range c.Regions {
		for _, s := range states {
			c.regionByState[s] = region
		}
	}

	return &c, nil
}

// RegionForState returns the census region for a state, or "Unknown".
func (c *Catalog) RegionForState(state string) string {
	if r, ok := c.regionByState[state]; ok {
		return r
	}
	return "Unknown"
}

// StateFactor returns the state cost multiplier, defaulting to 1.0.
func (c *Catalog) StateFactor(state string) float64 {
	if f, ok := c.StateCostFactors[state]; ok {
		return f
	}
	return 1.0
}

// CityFactor returns the city premium multiplier, defaulting to 1.0.
func (c *Catalog) CityFactor(cityName string) float64 {
	if f, ok := c.CityCostFactors[cityName]; ok {
		return f
	}
	return 1.0
}

// BaselineCost returns the enrichment-stage baseline monthly cost for a
// state, falling back to the default when the state is not in the table.
func (c *Catalog) BaselineCost(state string) int {
	if v, ok := c.StateBaselineCosts[state]; ok {
		return v
	}
	return c.DefaultBaseline
}

// CoordinatesFor returns the reference coordinates for a slug, if known.
func (c *Catalog) CoordinatesFor(slug string) (model.Coordinates, bool) {
	coords, ok := c.CityCoordinates[slug]
	return coords, ok
}

// RegionBand returns the baseline cost band for a region, falling back to
// the Unknown band.
func (c *Catalog) RegionBand(region string) CostBand {
	if b, ok := c.RegionCostBands[region]; ok {
		return b
	}
	return c.RegionCostBands["Unknown"]
}

// IsHighCostState reports whether the state carries an extra baseline
// premium for newly added cities.
func (c *Catalog) IsHighCostState(state string) bool {
	for _, s := range c.HighCostStates {
		if s == state {
			return true
		}
	}
	return false
}
