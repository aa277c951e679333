// Package costs implements the cost modeling stage: per-state and per-city
// cost profiles across the four care types, derived from national baselines,
// state multipliers, city premiums, and population tiers.
package costs

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/directory-cli/internal/catalog"
	"github.com/sells-group/directory-cli/internal/model"
)

// Tier classifies a city by population for explanatory pricing text.
// It never changes the numeric averages.
type Tier string

const (
	TierUrban    Tier = "urban"
	TierMid      Tier = "mid"
	TierSuburban Tier = "suburban"
	TierRural    Tier = "rural"
)

// TierForPopulation maps a population count to its cost tier.
func TierForPopulation(population int) Tier {
	switch {
	case population > 1_000_000:
		return TierUrban
	case population > 500_000:
		return TierMid
	case population > 100_000:
		return TierSuburban
	default:
		return TierRural
	}
}

// Estimator computes cost profiles from the fixed catalog tables.
type Estimator struct {
	cat *catalog.Catalog
	now func() time.Time
}

// NewEstimator creates an Estimator. The clock is overridable for tests.
func NewEstimator(cat *catalog.Catalog) *Estimator {
	return &Estimator{cat: cat, now: time.Now}
}

// WithClock replaces the estimator's clock.
func (e *Estimator) WithClock(now func() time.Time) *Estimator {
	e.now = now
	return e
}

// rangeLowPct and rangeHighPct are fixed per care type, not configurable.
func rangeLowPct(t model.CareType) float64 {
	if t == model.CareNursingHome {
		return 0.85
	}
	return 0.75
}

func rangeHighPct(t model.CareType) float64 {
	if t == model.CareIndependentLiving {
		return 1.25
	}
	return 1.45
}

func roundDollars(v float64) int {
	return int(math.Round(v))
}

// Band returns the fixed [low, high] monthly range for a care type around
// the given monthly average.
func Band(t model.CareType, monthly int) model.MonthlyRange {
	return model.MonthlyRange{
		Low:  roundDollars(float64(monthly) * rangeLowPct(t)),
		High: roundDollars(float64(monthly) * rangeHighPct(t)),
	}
}

// StateAverages derives the per-state averages for every state in the
// factor table: national monthly times the state factor, rounded, with
// annual exactly 12x monthly.
func (e *Estimator) StateAverages() map[string]map[model.CareType]model.CareAverage {
	states := make(map[string]map[model.CareType]model.CareAverage, len(e.cat.StateCostFactors))
	for state, factor := range e.cat.StateCostFactors {
		perCare := make(map[model.CareType]model.CareAverage, len(model.CareTypes))
		for _, t := range model.CareTypes {
			monthly := roundDollars(float64(e.cat.NationalAverages[t].Monthly) * factor)
			perCare[t] = model.CareAverage{Monthly: monthly, Annual: monthly * 12}
		}
		states[state] = perCare
	}
	return states
}

// CityCosts computes the profile for one city from the state averages.
// A state missing from the table falls back to the national baselines,
// which is the 1.0-multiplier case, not an error.
func (e *Estimator) CityCosts(city model.City, stateAvgs map[string]map[model.CareType]model.CareAverage) model.CityCosts {
	base, ok := stateAvgs[city.State]
	if !ok {
		base = e.cat.NationalAverages
	}

	cityFactor := e.cat.CityFactor(city.Name)

	out := model.CityCosts{
		City:        city.Name,
		State:       city.State,
		CostFactors: e.costFactors(city),
	}
	for _, t := range model.CareTypes {
		monthly := roundDollars(float64(base[t].Monthly) * cityFactor)
		*out.Care(t) = model.CareCost{
			MonthlyAvg:   monthly,
			AnnualAvg:    monthly * 12,
			MonthlyRange: Band(t, monthly),
		}
	}
	return out
}

// costFactors gathers the tier text plus any high_end/affordable flag text,
// dropping duplicates while preserving first-seen order.
func (e *Estimator) costFactors(city model.City) []string {
	factors := append([]string(nil), e.cat.CostFactorText[string(TierForPopulation(city.Population))]...)

	if flag := e.flagFor(city.Name); flag != "" {
		factors = append(factors, e.cat.CostFactorText[flag]...)
	}

	seen := make(map[string]struct{}, len(factors))
	deduped := factors[:0]
	for _, f := range factors {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		deduped = append(deduped, f)
	}
	return deduped
}

func (e *Estimator) flagFor(cityName string) string {
	for _, n := range e.cat.HighEndCities {
		if n == cityName {
			return "high_end"
		}
	}
	for _, n := range e.cat.AffordableCities {
		if n == cityName {
			return "affordable"
		}
	}
	return ""
}

// Generate produces the full cost data file contents for the given cities.
func (e *Estimator) Generate(cities map[string]model.City) model.CostData {
	stateAvgs := e.StateAverages()

	cityCosts := make(map[string]model.CityCosts, len(cities))
	for slug, city := range cities {
		cityCosts[slug] = e.CityCosts(city, stateAvgs)
	}

	zap.L().Info("generated cost data",
		zap.Int("cities", len(cityCosts)),
		zap.Int("states", len(stateAvgs)),
	)

	return model.CostData{
		NationalAverages: e.cat.NationalAverages,
		StateAverages:    stateAvgs,
		Cities:           cityCosts,
		Meta: model.CostMeta{
			LastUpdated:   e.now().Format("2006-01-02"),
			Sources:       e.cat.Sources,
			CitiesCovered: len(cityCosts),
			StatesCovered: len(stateAvgs),
		},
	}
}
