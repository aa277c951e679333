// Package enrich implements the first pipeline stage: it turns raw city
// rows into City records keyed by slug, computes nearby cities by
// great-circle distance, and attaches a baseline regional cost.
//
// This stage is fully deterministic: the same input rows and catalog
// produce byte-identical output.
package enrich

import (
	"math"
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/directory-cli/internal/catalog"
	"github.com/sells-group/directory-cli/internal/model"
)

// Options bounds the nearby-city computation.
type Options struct {
	MaxNearby      int     // max entries per city
	MaxRadiusMiles float64 // cutoff distance
}

// DefaultOptions returns the standard nearby-city bounds.
func DefaultOptions() Options {
	return Options{MaxNearby: 5, MaxRadiusMiles: 50}
}

// earthRadiusMiles is the mean Earth radius used for haversine distances.
const earthRadiusMiles = 3958.8

// Enrich builds the slug-keyed City map from raw rows. Duplicate slugs are
// a contract violation and fail the stage. Rows without coordinates (in the
// row or the catalog) get an empty nearby list, which is valid.
func Enrich(cat *catalog.Catalog, rows []model.CityRow, opts Options) (map[string]model.City, error) {
	cities := make(map[string]model.City, len(rows))
	coords := make(map[string]model.Coordinates, len(rows))

	for _, row := range rows {
		if _, exists := cities[row.Slug]; exists {
			return nil, eris.Errorf("enrich: duplicate slug %q", row.Slug)
		}

		city := model.City{
			Name:         row.Name,
			State:        row.State,
			Population:   row.Population,
			Slug:         row.Slug,
			NearbyCities: []model.NearbyCity{},
			AvgCost:      cat.BaselineCost(row.State),
		}

		if c, ok := resolveCoordinates(cat, row); ok {
			city.Coordinates = &c
			coords[row.Slug] = c
		}

		cities[row.Slug] = city
	}

	withCoords := 0
	for slug, origin := range coords {
		city := cities[slug]
		city.NearbyCities = nearbyCities(cities, coords, slug, origin, opts)
		cities[slug] = city
		withCoords++
	}

	zap.L().Info("enriched cities",
		zap.Int("total", len(cities)),
		zap.Int("with_coordinates", withCoords),
	)

	return cities, nil
}

// resolveCoordinates prefers coordinates on the row, then the catalog table.
func resolveCoordinates(cat *catalog.Catalog, row model.CityRow) (model.Coordinates, bool) {
	if row.HasCoords {
		return model.Coordinates{Lat: row.Lat, Lng: row.Lng}, true
	}
	return cat.CoordinatesFor(row.Slug)
}

// nearbyCities returns the closest cities to origin within the radius,
// ascending by distance, excluding the city itself. Ties break on slug so
// output is stable across runs.
func nearbyCities(cities map[string]model.City, coords map[string]model.Coordinates, slug string, origin model.Coordinates, opts Options) []model.NearbyCity {
	type candidate struct {
		slug     string
		distance float64
	}

	var candidates []candidate
	for otherSlug, other := range coords {
		if otherSlug == slug {
			continue
		}
		d := haversineMiles(origin, other)
		if d <= opts.MaxRadiusMiles {
			candidates = append(candidates, candidate{slug: otherSlug, distance: d})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].slug < candidates[j].slug
	})

	if len(candidates) > opts.MaxNearby {
		candidates = candidates[:opts.MaxNearby]
	}

	nearby := make([]model.NearbyCity, 0, len(candidates))
	for _, c := range candidates {
		near := cities[c.slug]
		nearby = append(nearby, model.NearbyCity{
			Name:     near.Name,
			State:    near.State,
			Slug:     c.slug,
			Distance: math.Round(c.distance*10) / 10,
		})
	}
	return nearby
}

// haversineMiles computes the great-circle distance between two points.
func haversineMiles(a, b model.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMiles * math.Asin(math.Sqrt(h))
}
