package sitegen

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/sells-group/directory-cli/internal/datafile"
	"github.com/sells-group/directory-cli/internal/model"
)

// BuildIndex projects the combined dataset down to the fields search and
// autocomplete need, ordered by slug for stable output.
func BuildIndex(data model.CombinedData) []model.IndexEntry {
	entries := make([]model.IndexEntry, 0, len(data.Cities))
	for slug, city := range data.Cities {
		entries = append(entries, model.IndexEntry{
			Slug:       slug,
			Name:       city.CityInfo.Name,
			State:      city.CityInfo.State,
			URL:        fmt.Sprintf("/city/%s/", slug),
			Population: city.CityInfo.Population,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Slug < entries[j].Slug })
	return entries
}

// WriteIndex writes the city index under the output data directory.
func WriteIndex(data model.CombinedData, outDir string) error {
	return datafile.Write(filepath.Join(outDir, "data", "city-index.json"), BuildIndex(data))
}
