package website

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// SitemapNS is the sitemap protocol namespace.
const SitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// URLSet is a sitemap document.
type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	NS      string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapURL is one sitemap entry.
type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// lastModLayout matches JavaScript's Date.toISOString.
const lastModLayout = "2006-01-02T15:04:05.000Z"

// postsPage is the dynamic route whose sitemap settings apply to posts.
const postsPage = "/writings/:slug"

// Sitemap lists the static pages in registration order followed by every
// post. base is the absolute origin, without a trailing slash.
func (a *App) Sitemap(base string) ([]byte, error) {
	base = strings.TrimRight(base, "/")
	set := URLSet{NS: SitemapNS}

	for _, p := range a.registry.Pages() {
		if p.Dynamic() || !p.InSitemap {
			continue
		}
		set.URLs = append(set.URLs, SitemapURL{
			Loc:        base + p.Route,
			ChangeFreq: p.Meta.ChangeFreq,
			Priority:   formatPriority(p.Meta.Priority),
		})
	}

	freq, prio := "monthly", 0.7
	if p, ok := a.registry.Lookup(postsPage); ok && p.Meta.ChangeFreq != "" {
		freq, prio = p.Meta.ChangeFreq, p.Meta.Priority
	}
	for _, post := range a.library.Posts().All() {
		set.URLs = append(set.URLs, SitemapURL{
			Loc:        base + post.Path(),
			LastMod:    post.Meta.Date.UTC().Format(lastModLayout),
			ChangeFreq: freq,
			Priority:   formatPriority(prio),
		})
	}

	out, err := xml.MarshalIndent(set, "", "    ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

func formatPriority(p float64) string {
	if p <= 0 {
		return ""
	}
	return strconv.FormatFloat(p, 'f', 1, 64)
}
