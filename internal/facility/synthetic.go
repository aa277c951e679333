package facility

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"strings"

	"github.com/sells-group/directory-cli/internal/catalog"
	"github.com/sells-group/directory-cli/internal/model"
)

// SyntheticProvider generates facility records from the fixed catalogues.
// It stands in for a live facility-data provider. Each city draws from its
// own RNG seeded by the provider seed and the city slug, so results for a
// given seed do not depend on worker scheduling.
type SyntheticProvider struct {
	cat  *catalog.Catalog
	seed int64
	min  int
	max  int
}

// NewSyntheticProvider creates a generator producing between min and max
// facilities per city for the given seed.
func NewSyntheticProvider(cat *catalog.Catalog, seed int64, min, max int) *SyntheticProvider {
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}
	return &SyntheticProvider{cat: cat, seed: seed, min: min, max: max}
}

// Name implements Provider.
func (p *SyntheticProvider) Name() string { return "synthetic" }

// FacilitiesFor implements Provider.
func (p *SyntheticProvider) FacilitiesFor(_ context.Context, city model.City) ([]model.Facility, error) {
	rng := rand.New(rand.NewSource(p.citySeed(city.Slug)))

	n := p.min + rng.Intn(p.max-p.min+1)
	facilities := make([]model.Facility, 0, n)
	for i := 1; i <= n; i++ {
		facilities = append(facilities, p.generate(rng, city, i))
	}
	return facilities, nil
}

func (p *SyntheticProvider) citySeed(slug string) int64 {
	h := fnv.New64a()
	h.Write([]byte(slug)) //nolint:errcheck
	return p.seed ^ int64(h.Sum64())
}

func (p *SyntheticProvider) generate(rng *rand.Rand, city model.City, seq int) model.Facility {
	company := p.cat.CompanyNames[rng.Intn(len(p.cat.CompanyNames))]

	return model.Facility{
		ID:           fmt.Sprintf("fac_%s_%03d", city.Slug, seq),
		Name:         fmt.Sprintf("%s of %s", company, city.Name),
		Address:      fmt.Sprintf("%d %s", 100+rng.Intn(9900), p.cat.StreetNames[rng.Intn(len(p.cat.StreetNames))]),
		City:         city.Name,
		State:        city.State,
		ZipCode:      fmt.Sprintf("%05d", 10000+rng.Intn(90000)),
		Phone:        fmt.Sprintf("(%d) 555-%04d", 200+rng.Intn(800), 1000+rng.Intn(9000)),
		Website:      websiteFor(company, city.Name),
		Coordinates:  p.coordinates(rng, city),
		FacilityType: sample(rng, p.cat.CareTypeTags, 1+rng.Intn(3)),
		Features:     sample(rng, p.cat.Features, 3+rng.Intn(5)),
		Capacity:     50 + rng.Intn(201),
		Ratings: model.Ratings{
			Overall:     rating(rng),
			CareQuality: rating(rng),
			Facilities:  rating(rng),
			Staff:       rating(rng),
			Value:       rating(rng),
			ReviewCount: 10 + rng.Intn(91),
		},
		CitySlug: city.Slug,
	}
}

// coordinates jitters the city center by up to 0.05 degrees, or picks a
// plausible continental-US point when the city location is unknown.
func (p *SyntheticProvider) coordinates(rng *rand.Rand, city model.City) model.Coordinates {
	if city.Coordinates != nil {
		return model.Coordinates{
			Lat: city.Coordinates.Lat + (rng.Float64()-0.5)*0.1,
			Lng: city.Coordinates.Lng + (rng.Float64()-0.5)*0.1,
		}
	}
	return model.Coordinates{
		Lat: 24 + rng.Float64()*25,
		Lng: -125 + rng.Float64()*59,
	}
}

func websiteFor(company, cityName string) string {
	clean := func(s string) string {
		return strings.ToLower(strings.ReplaceAll(s, " ", ""))
	}
	return fmt.Sprintf("https://www.%s%s.com", clean(company), clean(cityName))
}

// rating draws a value in [3.5, 5.0] with one decimal of precision.
func rating(rng *rand.Rand) float64 {
	return math.Round((3.5+rng.Float64()*1.5)*10) / 10
}

// sample picks k distinct items from the catalogue without replacement.
func sample(rng *rand.Rand, items []string, k int) []string {
	if k > len(items) {
		k = len(items)
	}
	out := make([]string, 0, k)
	for _, idx := range rng.Perm(len(items))[:k] {
		out = append(out, items[idx])
	}
	return out
}
