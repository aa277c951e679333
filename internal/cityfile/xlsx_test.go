package cityfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func writeXLSX(t *testing.T, rows [][]string) string {
	t.Helper()

	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Cities")
	require.NoError(t, err)

	for _, cells := range rows {
		row := sheet.AddRow()
		for _, v := range cells {
			row.AddCell().SetString(v)
		}
	}

	path := filepath.Join(t.TempDir(), "cities.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestReadXLSX(t *testing.T) {
	path := writeXLSX(t, [][]string{
		{"city", "state_name", "population", "slug", "lat", "lng"},
		{"Austin", "Texas", "961855", "austin-tx", "30.2672", "-97.7431"},
		{"", "", "", "", "", ""}, // blank rows are skipped
		{"Boise", "Idaho", "235684", "boise-id", "", ""},
	})

	rows, err := Read(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Austin", rows[0].Name)
	assert.Equal(t, 961855, rows[0].Population)
	assert.True(t, rows[0].HasCoords)
	assert.InDelta(t, 30.2672, rows[0].Lat, 1e-9)

	assert.Equal(t, "boise-id", rows[1].Slug)
	assert.False(t, rows[1].HasCoords)
}

func TestReadXLSXMissingColumns(t *testing.T) {
	path := writeXLSX(t, [][]string{
		{"city", "population"},
		{"Austin", "961855"},
	})

	_, err := Read(path)
	assert.Error(t, err)
}

func TestReadXLSXEmptySheet(t *testing.T) {
	f := xlsx.NewFile()
	_, err := f.AddSheet("Empty")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, f.Save(path))

	_, err = Read(path)
	assert.Error(t, err)
}
