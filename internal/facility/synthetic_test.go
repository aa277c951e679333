package facility

import (
	"context"
	"fmt"
	"regexp"
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

func testCity() model.City {
	return model.City{
		Name:        "Austin",
		State:       "Texas",
		Population:  961855,
		Slug:        "austin-tx",
		Coordinates: &model.Coordinates{Lat: 30.2672, Lng: -97.7431},
	}
}

func TestSyntheticFacilityShape(t *testing.T) {
	cat := loadCatalog(t)
	p := NewSyntheticProvider(cat, 42, 5, 10)

	facilities, err := p.FacilitiesFor(context.Background(), testCity())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(facilities), 5)
	require.LessOrEqual(t, len(facilities), 10)

	idPattern := regexp.MustCompile(`^fac_austin-tx_\d{3}$`)
	phonePattern := regexp.MustCompile(`^\(\d{3}\) 555-\d{4}$`)
	zipPattern := regexp.MustCompile(`^\d{5}$`)

	for i, f := range facilities {
		assert.Equal(t, fmt.Sprintf("fac_austin-tx_%03d", i+1), f.ID)
		assert.Regexp(t, idPattern, f.ID)
		assert.Contains(t, f.Name, " of Austin")
		assert.Equal(t, "Austin", f.City)
		assert.Equal(t, "Texas", f.State)
		assert.Equal(t, "austin-tx", f.CitySlug)
		assert.Regexp(t, zipPattern, f.ZipCode)
		assert.Regexp(t, phonePattern, f.Phone)
		assert.Contains(t, f.Website, "https://www.")
		assert.Contains(t, f.Website, "austin.com")

		require.NotEmpty(t, f.FacilityType)
		assert.LessOrEqual(t, len(f.FacilityType), 3)
		assert.GreaterOrEqual(t, len(f.Features), 3)
		assert.LessOrEqual(t, len(f.Features), 7)

		assert.GreaterOrEqual(t, f.Capacity, 50)
		assert.LessOrEqual(t, f.Capacity, 250)

		for _, r := range []float64{f.Ratings.Overall, f.Ratings.CareQuality, f.Ratings.Facilities, f.Ratings.Staff, f.Ratings.Value} {
			assert.GreaterOrEqual(t, r, 3.5)
			assert.LessOrEqual(t, r, 5.0)
		}
		assert.GreaterOrEqual(t, f.Ratings.ReviewCount, 10)
		assert.LessOrEqual(t, f.Ratings.ReviewCount, 100)

		// Jittered around the city center.
		assert.InDelta(t, 30.2672, f.Coordinates.Lat, 0.051)
		assert.InDelta(t, -97.7431, f.Coordinates.Lng, 0.051)
	}
}

func TestSyntheticDeterministicPerSeed(t *testing.T) {
	cat := loadCatalog(t)
	city := testCity()

	a, err := NewSyntheticProvider(cat, 7, 5, 10).FacilitiesFor(context.Background(), city)
	require.NoError(t, err)
	b, err := NewSyntheticProvider(cat, 7, 5, 10).FacilitiesFor(context.Background(), city)
	require.NoError(t, err)

	assert.Equal(t, a, b)

	c, err := NewSyntheticProvider(cat, 8, 5, 10).FacilitiesFor(context.Background(), city)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestSyntheticIndependentOfOtherCities(t *testing.T) {
	cat := loadCatalog(t)
	city := testCity()
	other := model.City{Name: "Dallas", State: "Texas", Population: 1304379, Slug: "dallas-tx"}

	p := NewSyntheticProvider(cat, 7, 5, 10)
	alone, err := p.FacilitiesFor(context.Background(), city)
	require.NoError(t, err)

	// Generating another city first must not shift this city's draw.
	p2 := NewSyntheticProvider(cat, 7, 5, 10)
	_, err = p2.FacilitiesFor(context.Background(), other)
	require.NoError(t, err)
	after, err := p2.FacilitiesFor(context.Background(), city)
	require.NoError(t, err)

	assert.Equal(t, alone, after)
}

func TestSyntheticNoCityCoordinates(t *testing.T) {
	cat := loadCatalog(t)
	city := model.City{Name: "Nowhere", State: "Kansas", Population: 5000, Slug: "nowhere-ks"}

	facilities, err := NewSyntheticProvider(cat, 1, 5, 10).FacilitiesFor(context.Background(), city)
	require.NoError(t, err)

	for _, f := range facilities {
		assert.GreaterOrEqual(t, f.Coordinates.Lat, 24.0)
		assert.LessOrEqual(t, f.Coordinates.Lat, 49.0)
		assert.GreaterOrEqual(t, f.Coordinates.Lng, -125.0)
		assert.LessOrEqual(t, f.Coordinates.Lng, -66.0)
	}
}

func TestSyntheticBoundsClamped(t *testing.T) {
	cat := loadCatalog(t)

	p := NewSyntheticProvider(cat, 1, 0, -3)
	facilities, err := p.FacilitiesFor(context.Background(), testCity())
	require.NoError(t, err)
	assert.Len(t, facilities, 1)
}
