package sitegen

import (
	"sort"

	"github.com/sells-group/directory-cli/internal/model"
)

// homePage feeds the home template: the largest cities plus totals.
type homePage struct {
	Featured []model.CombinedCity
	Meta     model.GlobalMeta
}

// statePage groups a state's cities for the browse template.
type statePage struct {
	State  string
	Cities []model.CombinedCity
}

type browsePage struct {
	States []statePage
	Meta   model.GlobalMeta
}

type cityPage struct {
	City model.CombinedCity
	Meta model.GlobalMeta
}

const featuredCount = 12

func (g *Generator) renderHome(slugs []string) error {
	cities := make([]model.CombinedCity, 0, len(slugs))
	for _, slug := range slugs {
		cities = append(cities, g.data.Cities[slug])
	}
	sort.SliceStable(cities, func(i, j int) bool {
		return cities[i].CityInfo.Population > cities[j].CityInfo.Population
	})
	if len(cities) > featuredCount {
		cities = cities[:featuredCount]
	}

	return g.renderPage("home.html.tmpl", "index.html", homePage{
		Featured: cities,
		Meta:     g.data.Meta,
	})
}

func (g *Generator) renderBrowse(slugs []string) error {
	byState := make(map[string][]model.CombinedCity)
	for _, slug := range slugs {
		city := g.data.Cities[slug]
		byState[city.CityInfo.State] = append(byState[city.CityInfo.State], city)
	}

	states := make([]statePage, 0, len(byState))
	for state, cities := range byState {
		sort.SliceStable(cities, func(i, j int) bool {
			return cities[i].CityInfo.Name < cities[j].CityInfo.Name
		})
		states = append(states, statePage{State: state, Cities: cities})
	}
	sort.Slice(states, func(i, j int) bool { return states[i].State < states[j].State })

	return g.renderPage("browse.html.tmpl", "browse/index.html", browsePage{
		States: states,
		Meta:   g.data.Meta,
	})
}

func (g *Generator) renderSearch() error {
	return g.renderPage("search.html.tmpl", "search/index.html", g.data.Meta)
}

func (g *Generator) renderAbout() error {
	return g.renderPage("about.html.tmpl", "about/index.html", g.data.Meta)
}
