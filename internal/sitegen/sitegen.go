// Package sitegen renders the static site from the combined dataset. It
// consumes only the combiner's output and the city-index projection; it
// has no knowledge of how upstream stages produced them.
package sitegen

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/directory-cli/internal/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	"usd": func(v int) string {
		return message.NewPrinter(language.AmericanEnglish).Sprintf("$%d", v)
	},
}

// Generator renders all pages and auxiliary artifacts into the output dir.
type Generator struct {
	data    model.CombinedData
	outDir  string
	baseURL string
	workers int
	now     func() time.Time
}

// New creates a Generator writing under outDir with absolute links rooted
// at baseURL (used in the sitemap).
func New(data model.CombinedData, outDir, baseURL string) *Generator {
	return &Generator{
		data:    data,
		outDir:  outDir,
		baseURL: baseURL,
		workers: 4,
		now:     time.Now,
	}
}

// Generate renders the whole site: home, browse, per-city pages, search,
// about, sitemap, and robots.
func (g *Generator) Generate(ctx context.Context) error {
	if err := g.ensureDirs(); err != nil {
		return err
	}

	slugs := g.sortedSlugs()

	if err := g.renderHome(slugs); err != nil {
		return err
	}
	if err := g.renderBrowse(slugs); err != nil {
		return err
	}
	if err := g.renderSearch(); err != nil {
		return err
	}
	if err := g.renderAbout(); err != nil {
		return err
	}
	if err := g.renderCityPages(ctx, slugs); err != nil {
		return err
	}
	if err := g.writeSitemap(slugs); err != nil {
		return err
	}
	if err := g.writeRobots(); err != nil {
		return err
	}

	zap.L().Info("site generated",
		zap.Int("city_pages", len(slugs)),
		zap.String("out_dir", g.outDir),
	)
	return nil
}

func (g *Generator) ensureDirs() error {
	for _, dir := range []string{"", "city", "browse", "search", "about", "data", "css", "js", "images"} {
		if err := os.MkdirAll(filepath.Join(g.outDir, dir), 0o755); err != nil {
			return eris.Wrapf(err, "sitegen: create dir %s", dir)
		}
	}
	return nil
}

func (g *Generator) sortedSlugs() []string {
	slugs := make([]string, 0, len(g.data.Cities))
	for slug := range g.data.Cities {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// renderPage parses the layout plus one content template and writes the
// result to path.
func (g *Generator) renderPage(contentTmpl, path string, data any) error {
	tmpl, err := template.New("layout.html.tmpl").Funcs(funcs).ParseFS(templateFS,
		"templates/layout.html.tmpl", "templates/"+contentTmpl)
	if err != nil {
		return eris.Wrapf(err, "sitegen: parse %s", contentTmpl)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return eris.Wrapf(err, "sitegen: render %s", contentTmpl)
	}

	full := filepath.Join(g.outDir, path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return eris.Wrapf(err, "sitegen: create dir for %s", path)
	}
	if err := os.WriteFile(full, buf.Bytes(), 0o644); err != nil {
		return eris.Wrapf(err, "sitegen: write %s", path)
	}
	return nil
}

func (g *Generator) renderCityPages(ctx context.Context, slugs []string) error {
	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)

	for _, slug := range slugs {
		slug := slug
		city := g.data.Cities[slug]
		eg.Go(func() error {
			return g.renderPage("city.html.tmpl", filepath.Join("city", slug, "index.html"), cityPage{
				City: city,
				Meta: g.data.Meta,
			})
		})
	}
	return eg.Wait()
}
