package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/directory-cli/internal/catalog"
	"github.com/sells-group/directory-cli/internal/model"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return cat
}

func TestHaversineMiles(t *testing.T) {
	nyc := model.Coordinates{Lat: 40.7128, Lng: -74.0060}
	la := model.Coordinates{Lat: 34.0522, Lng: -118.2437}

	// Known great-circle distance, about 2445 miles.
	assert.InDelta(t, 2445, haversineMiles(nyc, la), 15)
	assert.Zero(t, haversineMiles(nyc, nyc))
	assert.InDelta(t, haversineMiles(nyc, la), haversineMiles(la, nyc), 1e-9)
}

func TestEnrichNearbyCities(t *testing.T) {
	cat := loadCatalog(t)

	// Three cities in a line, roughly 35 miles apart at this latitude.
	rows := []model.CityRow{
		{Name: "Alpha", State: "Texas", Population: 500000, Slug: "alpha-tx", Lat: 30.0, Lng: -97.0, HasCoords: true},
		{Name: "Beta", State: "Texas", Population: 200000, Slug: "beta-tx", Lat: 30.0, Lng: -97.6, HasCoords: true},
		{Name: "Gamma", State: "Texas", Population: 100000, Slug: "gamma-tx", Lat: 30.0, Lng: -98.2, HasCoords: true},
	}

	cities, err := Enrich(cat, rows, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, cities, 3)

	alpha := cities["alpha-tx"]
	require.Len(t, alpha.NearbyCities, 1) // Gamma is past the 50-mile cutoff
	assert.Equal(t, "beta-tx", alpha.NearbyCities[0].Slug)
	assert.Equal(t, "Beta", alpha.NearbyCities[0].Name)
	assert.Greater(t, alpha.NearbyCities[0].Distance, 0.0)

	// Beta sits between the two and sees both, closest first.
	beta := cities["beta-tx"]
	require.Len(t, beta.NearbyCities, 2)
	assert.Equal(t, beta.NearbyCities[0].Distance, beta.NearbyCities[1].Distance)

	// Texas baseline from the state table.
	assert.Equal(t, 3800, alpha.AvgCost)
}

func TestEnrichMaxNearbyCap(t *testing.T) {
	cat := loadCatalog(t)

	rows := make([]model.CityRow, 0, 8)
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for i, n := range names {
		rows = append(rows, model.CityRow{
			Name: n, State: "Ohio", Population: 100000, Slug: n + "-oh",
			Lat: 40.0, Lng: -83.0 + float64(i)*0.05, HasCoords: true,
		})
	}

	cities, err := Enrich(cat, rows, Options{MaxNearby: 3, MaxRadiusMiles: 50})
	require.NoError(t, err)

	a := cities["a-oh"]
	require.Len(t, a.NearbyCities, 3)
	// Ascending by distance.
	assert.LessOrEqual(t, a.NearbyCities[0].Distance, a.NearbyCities[1].Distance)
	assert.LessOrEqual(t, a.NearbyCities[1].Distance, a.NearbyCities[2].Distance)
}

func TestEnrichNoCoordinates(t *testing.T) {
	cat := loadCatalog(t)

	rows := []model.CityRow{
		{Name: "Nowhere", State: "Kansas", Population: 5000, Slug: "nowhere-ks"},
	}

	cities, err := Enrich(cat, rows, DefaultOptions())
	require.NoError(t, err)

	city := cities["nowhere-ks"]
	assert.Nil(t, city.Coordinates)
	assert.NotNil(t, city.NearbyCities)
	assert.Empty(t, city.NearbyCities)
}

func TestEnrichCatalogCoordinateFallback(t *testing.T) {
	cat := loadCatalog(t)

	rows := []model.CityRow{
		{Name: "New York", State: "New York", Population: 8336817, Slug: "new-york-ny"},
	}

	cities, err := Enrich(cat, rows, DefaultOptions())
	require.NoError(t, err)

	city := cities["new-york-ny"]
	require.NotNil(t, city.Coordinates)
	assert.InDelta(t, 40.7128, city.Coordinates.Lat, 1e-9)
	assert.Equal(t, 5500, city.AvgCost)
}

func TestEnrichDuplicateSlug(t *testing.T) {
	cat := loadCatalog(t)

	rows := []model.CityRow{
		{Name: "Austin", State: "Texas", Population: 961855, Slug: "austin-tx"},
		{Name: "Austin", State: "Texas", Population: 961855, Slug: "austin-tx"},
	}

	_, err := Enrich(cat, rows, DefaultOptions())
	assert.ErrorContains(t, err, "duplicate slug")
}

func TestEnrichDistanceRounding(t *testing.T) {
	cat := loadCatalog(t)

	rows := []model.CityRow{
		{Name: "One", State: "Ohio", Population: 1000, Slug: "one-oh", Lat: 40.0, Lng: -83.0, HasCoords: true},
		{Name: "Two", State: "Ohio", Population: 1000, Slug: "two-oh", Lat: 40.1, Lng: -83.1, HasCoords: true},
	}

	cities, err := Enrich(cat, rows, DefaultOptions())
	require.NoError(t, err)

	d := cities["one-oh"].NearbyCities[0].Distance
	// One decimal of precision.
	assert.InDelta(t, d, float64(int(d*10+0.5))/10, 1e-9)
}
