package main

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/directory-cli/internal/catalog"
	"github.com/sells-group/directory-cli/internal/datafile"
	"github.com/sells-group/directory-cli/internal/facility"
	"github.com/sells-group/directory-cli/internal/model"
	"github.com/sells-group/directory-cli/pkg/places"
)

func newFacilityProvider(cat *catalog.Catalog) (facility.Provider, error) {
	switch cfg.Facility.Provider {
	case "synthetic":
		return facility.NewSyntheticProvider(cat, cfg.Facility.Seed, cfg.Facility.MinPerCity, cfg.Facility.MaxPerCity), nil
	case "places":
		if cfg.Facility.PlacesAPIKey == "" {
			return nil, eris.New("cmd: facility.places_api_key is required for the places provider")
		}
		client := places.NewClient(cfg.Facility.PlacesAPIKey)
		return facility.NewPlacesProvider(client, cfg.Facility.PlacesQPS, cfg.Facility.PlacesRetries), nil
	default:
		return nil, eris.Errorf("cmd: unknown facility provider %q", cfg.Facility.Provider)
	}
}

func readProcessedCities() (map[string]model.City, error) {
	var cities map[string]model.City
	if err := datafile.Read(cfg.Paths.ProcessedCities(), &cities); err != nil {
		return nil, eris.Wrap(err, "cmd: read processed cities (run `directory-cli enrich` first)")
	}
	return cities, nil
}
