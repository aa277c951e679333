// Package cityfile reads the raw city list that seeds the pipeline.
// CSV and XLSX inputs share the same column contract: city, state_name,
// population, slug, and optional lat/lng.
package cityfile

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/directory-cli/internal/model"
)

// Read loads city rows from path, dispatching on the file extension.
func Read(path string) ([]model.CityRow, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(path)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, eris.Errorf("cityfile: unsupported input format %q", filepath.Ext(path))
	}
}

// columns maps the header row to field indices. Lat/Lng are optional.
type columns struct {
	name, state, population, slug int
	lat, lng                      int
}

func mapColumns(header []string) (columns, error) {
	c := columns{name: -1, state: -1, population: -1, slug: -1, lat: -1, lng: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "city":
			c.name = i
		case "state_name", "state":
			c.state = i
		case "population":
			c.population = i
		case "slug":
			c.slug = i
		case "lat", "latitude":
			c.lat = i
		case "lng", "lon", "longitude":
			c.lng = i
		}
	}
	if c.name < 0 || c.state < 0 || c.population < 0 || c.slug < 0 {
		return c, eris.Errorf("cityfile: header missing required columns (have %v)", header)
	}
	return c, nil
}

func parseRow(cols columns, record []string, line int) (model.CityRow, error) {
	get := func(idx int) string {
		if idx < 0 || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	pop, err := strconv.Atoi(strings.ReplaceAll(get(cols.population), ",", ""))
	if err != nil {
		return model.CityRow{}, eris.Wrapf(err, "cityfile: row %d: bad population", line)
	}
	if pop < 0 {
		return model.CityRow{}, eris.Errorf("cityfile: row %d: negative population", line)
	}

	row := model.CityRow{
		Name:       get(cols.name),
		State:      get(cols.state),
		Population: pop,
		Slug:       get(cols.slug),
	}
	if row.Name == "" || row.State == "" || row.Slug == "" {
		return model.CityRow{}, eris.Errorf("cityfile: row %d: missing name, state, or slug", line)
	}

	latStr, lngStr := get(cols.lat), get(cols.lng)
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr == nil && lngErr == nil {
			row.Lat = lat
			row.Lng = lng
			row.HasCoords = true
		}
	}

	return row, nil
}
