package combine

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/directory-cli/internal/facility"
	"github.com/sells-group/directory-cli/internal/model"
)

func baseDataset(t *testing.T) model.CombinedData {
	t.Helper()
	cat := loadCatalog(t)
	cities, facilities, costData := testInputs(t, cat)

	data, err := NewCombiner(cat).WithClock(fixedClock()).Combine(cities, facilities, costData)
	require.NoError(t, err)
	return data
}

func TestAppend(t *testing.T) {
	cat := loadCatalog(t)
	data := baseDataset(t)
	provider := facility.NewSyntheticProvider(cat, 42, 5, 10)

	rows := []model.CityRow{
		{Name: "Austin", State: "Texas", Population: 961855, Slug: "austin-tx"}, // already present
		{Name: "Fresno", State: "California", Population: 542107, Slug: "fresno-ca"},
		{Name: "Erie", State: "Pennsylvania", Population: 94831, Slug: "erie-pa"},
	}

	result, err := NewCombiner(cat).WithClock(fixedClock()).Append(context.Background(), &data, rows, provider, DefaultAppendOptions())
	require.NoError(t, err)

	assert.Equal(t, 2, result.CitiesAdded)
	assert.Positive(t, result.FacilitiesAdded)
	assert.Len(t, data.Cities, 4)
	assert.Equal(t, 4, data.Meta.TotalCities)
	assert.Equal(t, 2+result.FacilitiesAdded, data.Meta.TotalFacilities)

	fresno := data.Cities["fresno-ca"]
	assert.Equal(t, "Fresno", fresno.CityInfo.Name)
	assert.True(t, fresno.Meta.HasCostData)
	assert.False(t, fresno.Meta.HasNearbyCities)
	assert.Equal(t, "2026-03-15", fresno.Meta.LastUpdated)
	assert.Empty(t, fresno.CityInfo.NearbyCities)
	assert.Contains(t, fresno.SEO.Titles.Main, "Fresno, California")
}

func TestAppendBaselineRoundedToHundred(t *testing.T) {
	cat := loadCatalog(t)
	data := baseDataset(t)
	provider := facility.NewSyntheticProvider(cat, 42, 5, 10)

	rows := []model.CityRow{
		{Name: "Fresno", State: "California", Population: 542107, Slug: "fresno-ca"},
	}

	_, err := NewCombiner(cat).WithClock(fixedClock()).Append(context.Background(), &data, rows, provider, DefaultAppendOptions())
	require.NoError(t, err)

	avg := data.Cities["fresno-ca"].CityInfo.AvgCost
	assert.Zero(t, avg%100)
	// West band plus the mandatory high-cost-state premium.
	assert.GreaterOrEqual(t, avg, 4800)
	assert.LessOrEqual(t, avg, 6200)
}

func TestAppendCostMultipliers(t *testing.T) {
	cat := loadCatalog(t)
	data := baseDataset(t)
	provider := facility.NewSyntheticProvider(cat, 42, 5, 10)

	rows := []model.CityRow{
		{Name: "Toledo", State: "Ohio", Population: 270871, Slug: "toledo-oh"},
	}

	_, err := NewCombiner(cat).WithClock(fixedClock()).Append(context.Background(), &data, rows, provider, DefaultAppendOptions())
	require.NoError(t, err)

	city := data.Cities["toledo-oh"]
	avg := city.CityInfo.AvgCost

	assert.Equal(t, avg, city.Costs.AssistedLiving.MonthlyAvg)
	assert.Equal(t, int(float64(avg)*1.33+0.5), city.Costs.MemoryCare.MonthlyAvg)
	assert.Equal(t, int(float64(avg)*0.71+0.5), city.Costs.IndependentLiving.MonthlyAvg)
	assert.Equal(t, int(float64(avg)*1.89+0.5), city.Costs.NursingHome.MonthlyAvg)

	for _, care := range model.CareTypes {
		cc := city.Costs.Care(care)
		assert.Equal(t, cc.MonthlyAvg*12, cc.AnnualAvg)
		assert.Less(t, cc.MonthlyRange.Low, cc.MonthlyAvg)
		assert.Greater(t, cc.MonthlyRange.High, cc.MonthlyAvg)
	}

	assert.GreaterOrEqual(t, len(city.Costs.CostFactors), 4)
	assert.LessOrEqual(t, len(city.Costs.CostFactors), 6)
}

func TestAppendCapAndRanking(t *testing.T) {
	cat := loadCatalog(t)
	data := baseDataset(t)
	provider := facility.NewSyntheticProvider(cat, 42, 5, 10)

	rows := make([]model.CityRow, 0, 5)
	for i := 0; i < 5; i++ {
		rows = append(rows, model.CityRow{
			Name:       fmt.Sprintf("City%d", i),
			State:      "Ohio",
			Population: 100000 * (i + 1),
			Slug:       fmt.Sprintf("city%d-oh", i),
		})
	}

	opts := AppendOptions{MaxCities: 2, Seed: 1}
	result, err := NewCombiner(cat).WithClock(fixedClock()).Append(context.Background(), &data, rows, provider, opts)
	require.NoError(t, err)

	// Only the two largest cities make the cut.
	assert.Equal(t, 2, result.CitiesAdded)
	assert.Contains(t, data.Cities, "city4-oh")
	assert.Contains(t, data.Cities, "city3-oh")
	assert.NotContains(t, data.Cities, "city0-oh")
}

func TestAppendProviderFailure(t *testing.T) {
	cat := loadCatalog(t)
	data := baseDataset(t)

	provider := &flakyAppendProvider{}

	rows := []model.CityRow{
		{Name: "Toledo", State: "Ohio", Population: 270871, Slug: "toledo-oh"},
	}

	before := data.Meta.TotalFacilities
	result, err := NewCombiner(cat).WithClock(fixedClock()).Append(context.Background(), &data, rows, provider, DefaultAppendOptions())
	require.NoError(t, err)

	// The city still lands, with an empty facility list.
	assert.Equal(t, 1, result.CitiesAdded)
	assert.Zero(t, result.FacilitiesAdded)
	assert.Equal(t, before, data.Meta.TotalFacilities)

	city := data.Cities["toledo-oh"]
	require.NotNil(t, city.Facilities)
	assert.Empty(t, city.Facilities)
	assert.Zero(t, city.Meta.FacilityCount)
}

func TestAppendDeterministic(t *testing.T) {
	cat := loadCatalog(t)
	provider := facility.NewSyntheticProvider(cat, 42, 5, 10)

	rows := []model.CityRow{
		{Name: "Fresno", State: "California", Population: 542107, Slug: "fresno-ca"},
		{Name: "Toledo", State: "Ohio", Population: 270871, Slug: "toledo-oh"},
	}

	a := baseDataset(t)
	_, err := NewCombiner(cat).WithClock(fixedClock()).Append(context.Background(), &a, rows, provider, DefaultAppendOptions())
	require.NoError(t, err)

	b := baseDataset(t)
	_, err = NewCombiner(cat).WithClock(fixedClock()).Append(context.Background(), &b, rows, provider, DefaultAppendOptions())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

type flakyAppendProvider struct{}

func (p *flakyAppendProvider) Name() string { return "flaky" }

func (p *flakyAppendProvider) FacilitiesFor(context.Context, model.City) ([]model.Facility, error) {
	return nil, fmt.Errorf("upstream unavailable")
}
