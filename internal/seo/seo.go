// Package seo derives search metadata for a city. It is the single
// canonical implementation used by both the combiner and the incremental
// city-addition path, and is a pure function of city name, state, and the
// assisted living monthly average.
package seo

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/directory-cli/internal/catalog"
	"github.com/sells-group/directory-cli/internal/model"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// ForCity builds the full SEO record for one city.
func ForCity(cat *catalog.Catalog, cityName, state string, assistedMonthlyAvg int) model.SEOData {
	careTypes := make([]string, 0, len(cat.CareTypeLabels))
	for _, label := range cat.CareTypeLabels {
		careTypes = append(careTypes, strings.ToLower(label))
	}

	return model.SEOData{
		Keywords: []string{
			fmt.Sprintf("%s senior living", cityName),
			fmt.Sprintf("senior living in %s", cityName),
			fmt.Sprintf("assisted living %s", cityName),
			fmt.Sprintf("%s %s assisted living", cityName, state),
			fmt.Sprintf("best senior homes in %s", cityName),
			fmt.Sprintf("retirement communities in %s", cityName),
			fmt.Sprintf("%s elder care", cityName),
			fmt.Sprintf("senior care options in %s %s", cityName, state),
			fmt.Sprintf("memory care in %s", cityName),
			fmt.Sprintf("cost of assisted living in %s", cityName),
		},
		Titles: model.SEOTitles{
			Main:       fmt.Sprintf("Senior Living Options in %s, %s | Cost & Facility Guide", cityName, state),
			Cost:       fmt.Sprintf("Cost of Assisted Living in %s, %s (2025 Guide)", cityName, state),
			Facilities: fmt.Sprintf("Top-Rated Senior Living Facilities in %s, %s", cityName, state),
			Nearby:     fmt.Sprintf("Senior Living Near %s | Nearby Cities & Options", cityName),
		},
		Descriptions: model.SEODescriptions{
			Main: fmt.Sprintf("Comprehensive guide to senior living options in %s, %s. "+
				"Compare costs, read reviews of top facilities, and find the right care level.", cityName, state),
			Cost: printer.Sprintf("Average cost of assisted living in %s is $%d/month. "+
				"Learn about pricing factors and compare costs across care types.", cityName, assistedMonthlyAvg),
			Facilities: fmt.Sprintf("Discover the top-rated senior living facilities in %s, %s. "+
				"Compare amenities, care levels, and reviews to find the perfect home.", cityName, state),
			Nearby: fmt.Sprintf("Explore senior living options in and around %s, %s. "+
				"Find nearby communities with our comprehensive directory.", cityName, state),
		},
		CareTypes: careTypes,
		LocationInfo: model.LocationInfo{
			City:   cityName,
			State:  state,
			Region: cat.RegionForState(state),
		},
	}
}
