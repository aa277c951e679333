package combine

import (
	"context"
	"math/rand"
	"sort"

	"go.uber.org/zap"

	"github.com/sells-group/directory-cli/internal/costs"
	"github.com/sells-group/directory-cli/internal/facility"
	"github.com/sells-group/directory-cli/internal/model"
	"github.com/sells-group/directory-cli/internal/seo"
)

// AppendOptions bounds an incremental city addition.
type AppendOptions struct {
	MaxCities int   // cap on new cities per run
	Seed      int64 // seed for baseline cost and factor sampling
}

// DefaultAppendOptions returns the standard addition bounds.
func DefaultAppendOptions() AppendOptions {
	return AppendOptions{MaxCities: 90, Seed: 1}
}

// AppendResult reports what an incremental addition changed.
type AppendResult struct {
	CitiesAdded     int
	FacilitiesAdded int
}

// Append adds newly discovered cities to an existing combined dataset in
// place. Slugs already present are skipped; candidates are ranked by
// population descending and capped at MaxCities. Global counters are
// updated by addition, never recomputed from a partial view.
func (c *Combiner) Append(ctx context.Context, data *model.CombinedData, rows []model.CityRow, provider facility.Provider, opts AppendOptions) (AppendResult, error) {
	if opts.MaxCities < 1 {
		opts.MaxCities = 1
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	var candidates []model.CityRow
	for _, row := range rows {
		if _, exists := data.Cities[row.Slug]; exists {
			continue
		}
		candidates = append(candidates, row)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Population != candidates[j].Population {
			return candidates[i].Population > candidates[j].Population
		}
		return candidates[i].Slug < candidates[j].Slug
	})
	if len(candidates) > opts.MaxCities {
		candidates = candidates[:opts.MaxCities]
	}

	today := c.now().Format("2006-01-02")
	var result AppendResult

	for _, row := range candidates {
		avgCost := c.baselineCost(rng, row.State)

		city := model.City{
			Name:         row.Name,
			State:        row.State,
			Population:   row.Population,
			Slug:         row.Slug,
			NearbyCities: []model.NearbyCity{},
			AvgCost:      avgCost,
		}

		cityFacilities, err := provider.FacilitiesFor(ctx, city)
		if err != nil {
			zap.L().Warn("facility fetch failed for added city, using empty list",
				zap.String("city", row.Slug),
				zap.Error(err),
			)
			cityFacilities = []model.Facility{}
		}
		facility.SortByRating(cityFacilities)

		cityCosts := c.appendCosts(rng, row.Name, row.State, avgCost)

		data.Cities[row.Slug] = model.CombinedCity{
			CityInfo:   city,
			Costs:      cityCosts,
			Facilities: cityFacilities,
			Meta: model.CityMeta{
				FacilityCount:   len(cityFacilities),
				HasCostData:     true,
				HasNearbyCities: false,
				LastUpdated:     today,
			},
			SEO: seo.ForCity(c.cat, row.Name, row.State, cityCosts.AssistedLiving.MonthlyAvg),
		}

		result.CitiesAdded++
		result.FacilitiesAdded += len(cityFacilities)
	}

	// Counters move by addition; total_cities reflects the merged map and
	// total_facilities grows by exactly what was generated here.
	data.Meta.TotalCities = len(data.Cities)
	data.Meta.TotalFacilities += result.FacilitiesAdded
	data.Meta.LastUpdated = today

	zap.L().Info("appended cities",
		zap.Int("added", result.CitiesAdded),
		zap.Int("facilities", result.FacilitiesAdded),
		zap.Int("total_cities", data.Meta.TotalCities),
		zap.Int("total_facilities", data.Meta.TotalFacilities),
	)

	return result, nil
}

// Care-type multipliers applied to the assisted living baseline for cities
// added without a full cost modeling pass.
const (
	memoryCareMultiplier        = 1.33
	independentLivingMultiplier = 0.71
	nursingHomeMultiplier       = 1.89
)

// baselineCost draws a regional baseline, adds the high-cost-state premium,
// and rounds to the nearest hundred.
func (c *Combiner) baselineCost(rng *rand.Rand, state string) int {
	band := c.cat.RegionBand(c.cat.RegionForState(state))
	base := band.Low + rng.Intn(band.High-band.Low+1)
	if c.cat.IsHighCostState(state) {
		base += 300 + rng.Intn(401)
	}
	return (base + 50) / 100 * 100
}

// appendCosts derives the four care-type records from the assisted living
// baseline via fixed multipliers. Annual stays exactly 12x monthly.
func (c *Combiner) appendCosts(rng *rand.Rand, cityName, state string, avgCost int) model.CityCosts {
	out := model.CityCosts{
		City:        cityName,
		State:       state,
		CostFactors: sampleFactors(rng, c.cat.AppendCostFactors, 4+rng.Intn(3)),
	}

	multipliers := map[model.CareType]float64{
		model.CareAssistedLiving:    1.0,
		model.CareMemoryCare:        memoryCareMultiplier,
		model.CareIndependentLiving: independentLivingMultiplier,
		model.CareNursingHome:       nursingHomeMultiplier,
	}
	for _, t := range model.CareTypes {
		monthly := int(float64(avgCost)*multipliers[t] + 0.5)
		*out.Care(t) = model.CareCost{
			MonthlyAvg:   monthly,
			AnnualAvg:    monthly * 12,
			MonthlyRange: costs.Band(t, monthly),
		}
	}
	return out
}

func sampleFactors(rng *rand.Rand, items []string, k int) []string {
	if k > len(items) {
		k = len(items)
	}
	out := make([]string, 0, k)
	for _, idx := range rng.Perm(len(items))[:k] {
		out = append(out, items[idx])
	}
	return out
}
