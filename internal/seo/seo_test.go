package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/directory-cli/internal/catalog"
)

func TestForCity(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	data := ForCity(cat, "Austin", "Texas", 4200)

	assert.Len(t, data.Keywords, 10)
	assert.Contains(t, data.Keywords, "Austin senior living")
	assert.Contains(t, data.Keywords, "cost of assisted living in Austin")

	assert.Equal(t, "Senior Living Options in Austin, Texas | Cost & Facility Guide", data.Titles.Main)
	assert.Equal(t, "Cost of Assisted Living in Austin, Texas (2025 Guide)", data.Titles.Cost)
	assert.Contains(t, data.Titles.Nearby, "Senior Living Near Austin")

	// Dollar amounts are comma-grouped in descriptions.
	assert.Contains(t, data.Descriptions.Cost, "$4,200/month")

	assert.Equal(t, []string{"assisted living", "memory care", "independent living", "nursing home"}, data.CareTypes)

	assert.Equal(t, "Austin", data.LocationInfo.City)
	assert.Equal(t, "Texas", data.LocationInfo.State)
	assert.Equal(t, "South", data.LocationInfo.Region)
}

func TestForCityUnknownState(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	data := ForCity(cat, "San Juan", "Puerto Rico", 3000)
	assert.Equal(t, "Unknown", data.LocationInfo.Region)
	assert.Contains(t, data.Descriptions.Cost, "$3,000/month")
}
