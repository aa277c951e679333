package sitegen

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// writeSitemap emits sitemap.xml covering the fixed pages and every city.
func (g *Generator) writeSitemap(slugs []string) error {
	base := strings.TrimRight(g.baseURL, "/")
	lastMod := g.now().Format("2006-01-02")

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, path := range []string{"/", "/browse/", "/search/", "/about/"} {
		set.URLs = append(set.URLs, sitemapURL{Loc: base + path, LastMod: lastMod})
	}
	for _, slug := range slugs {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     fmt.Sprintf("%s/city/%s/", base, slug),
			LastMod: lastMod,
		})
	}

	data, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return eris.Wrap(err, "sitegen: marshal sitemap")
	}
	data = append([]byte(xml.Header), data...)

	path := filepath.Join(g.outDir, "sitemap.xml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "sitegen: write %s", path)
	}
	return nil
}

// writeRobots emits a permissive robots.txt pointing at the sitemap.
func (g *Generator) writeRobots() error {
	content := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n",
		strings.TrimRight(g.baseURL, "/"))

	path := filepath.Join(g.outDir, "robots.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return eris.Wrapf(err, "sitegen: write %s", path)
	}
	return nil
}
