// Package combine implements the final pipeline stage: joining the city,
// facility, and cost datasets into the combined per-city records every
// downstream page consumes, plus the dataset-wide meta.
package combine

import (
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/directory-cli/internal/catalog"
	"github.com/sells-group/directory-cli/internal/facility"
	"github.com/sells-group/directory-cli/internal/model"
	"github.com/sells-group/directory-cli/internal/seo"
)

// Combiner owns the merge step. Records it produces are never mutated by
// any other stage.
type Combiner struct {
	cat *catalog.Catalog
	now func() time.Time
}

// NewCombiner creates a Combiner. The clock is overridable for tests.
func NewCombiner(cat *catalog.Catalog) *Combiner {
	return &Combiner{cat: cat, now: time.Now}
}

// WithClock replaces the combiner's clock.
func (c *Combiner) WithClock(now func() time.Time) *Combiner {
	c.now = now
	return c
}

// Combine merges the three stage outputs into the combined dataset. A
// facility referencing a slug absent from the city map is a contract
// violation and fails the merge; a city missing costs or facilities is a
// valid degraded state reflected in its meta flags. Re-running on
// unchanged inputs changes only the last_updated fields.
func (c *Combiner) Combine(cities map[string]model.City, facilities model.FacilityData, costData model.CostData) (model.CombinedData, error) {
	byCity := make(map[string][]model.Facility, len(cities))
	for _, f := range facilities.Facilities {
		if _, ok := cities[f.CitySlug]; !ok {
			return model.CombinedData{}, eris.Errorf("combine: facility %s references unknown city %q", f.ID, f.CitySlug)
		}
		byCity[f.CitySlug] = append(byCity[f.CitySlug], f)
	}

	today := c.now().Format("2006-01-02")

	combined := make(map[string]model.CombinedCity, len(cities))
	for slug, city := range cities {
		cityCosts, hasCosts := costData.Cities[slug]
		if !hasCosts {
			cityCosts = model.CityCosts{City: city.Name, State: city.State, CostFactors: []string{}}
		}

		cityFacilities := byCity[slug]
		if cityFacilities == nil {
			cityFacilities = []model.Facility{}
		}
		facility.SortByRating(cityFacilities)

		combined[slug] = model.CombinedCity{
			CityInfo:   city,
			Costs:      cityCosts,
			Facilities: cityFacilities,
			Meta: model.CityMeta{
				FacilityCount:   len(cityFacilities),
				HasCostData:     hasCosts,
				HasNearbyCities: len(city.NearbyCities) > 0,
				LastUpdated:     today,
			},
			SEO: seo.ForCity(c.cat, city.Name, city.State, cityCosts.AssistedLiving.MonthlyAvg),
		}
	}

	zap.L().Info("combined data",
		zap.Int("cities", len(combined)),
		zap.Int("facilities", len(facilities.Facilities)),
	)

	return model.CombinedData{
		Cities: combined,
		Meta: model.GlobalMeta{
			TotalCities:     len(combined),
			TotalFacilities: len(facilities.Facilities),
			CareTypes:       c.cat.CareTypeLabels,
			LastUpdated:     today,
			Sources:         costData.Meta.Sources,
		},
	}, nil
}
