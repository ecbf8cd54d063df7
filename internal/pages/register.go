package pages

import (
	"strings"

	"github.com/vedantk/website/internal/content"
	"github.com/vedantk/website/pkg/router"
)

// Deps are what the content-backed pages read from.
type Deps struct {
	Library *content.Library
}

func keywords(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Register adds every page to reg, in navigation order. It stops at the
// first registration error.
func Register(reg *router.Registry, deps Deps) error {
	lib := deps.Library
	if lib == nil {
		lib = content.StaticLibrary(nil, nil)
	}

	static := []struct {
		route, title string
		fn           router.RenderFunc
		opts         []router.PageOption
	}{
		{"/", "Me", Home, []router.PageOption{
			router.WithMeta(router.PageMeta{
				Description: "Founder and engineer building voice-first AI products.",
				Keywords:    keywords("Vedant Khanna, founder, AI, startups"),
			}),
			router.WithSitemap("monthly", 1.0),
		}},
		{"/blogs", "Blogs", Blogs, []router.PageOption{
			router.NoSitemap(),
		}},
		{"/writings", "Writings", WritingsPage(lib), []router.PageOption{
			router.WithMeta(router.PageMeta{
				Description: "Essays and notes on building products.",
				Keywords:    keywords("Vedant Khanna writings, blog, essays, startups"),
			}),
			router.WithSitemap("weekly", 0.9),
		}},
		{"/projects", "Projects", ProjectsPage, []router.PageOption{
			router.WithMeta(router.PageMeta{
				Description: "My portfolio of AI projects including Vmail (talk to your email), Co-scientist (AI research assistant), multilingual medical scribe, and more innovative applications.",
				Keywords:    keywords("Vedant Khanna projects, AI projects, portfolio, Vmail, Co-scientist, medical AI, startup projects, Stanford projects"),
			}),
			router.WithSitemap("monthly", 0.8),
		}},
		{"/experience", "Experience", ExperiencePage, []router.PageOption{
			router.WithMeta(router.PageMeta{
				Description: "My entrepreneurial journey - From founding Hazel and raising $2M at 19 to building voice-first AI applications for real estate.",
				Keywords:    keywords("Vedant Khanna experience, Hazel, startup founder, entrepreneur, AI applications, real estate tech, Stanford"),
			}),
			router.WithSitemap("monthly", 0.8),
		}},
		{"/books", "Books", BooksPage(lib), []router.PageOption{
			router.WithMeta(router.PageMeta{
				Description: "Highlights and notes from books I've read - automatically synced from Apple Books.",
				Keywords:    keywords("Vedant Khanna books, reading list, book highlights, book notes, Apple Books"),
			}),
			router.WithSitemap("monthly", 0.7),
		}},
	}
	for _, p := range static {
		if err := reg.Add(p.route, p.title, p.fn, p.opts...); err != nil {
			return err
		}
	}

	if err := reg.AddDynamic("/writings/:slug", "Writing", PostPage(lib), PostPaths(lib),
		router.WithSitemap("monthly", 0.7)); err != nil {
		return err
	}
	return reg.AddDynamic("/blogs/:slug", "Writing", PostPage(lib), PostPaths(lib))
}

// New builds and seals a registry holding every page.
func New(site Site, deps Deps) (*router.Registry, error) {
	reg := router.NewRegistry(Layout(site))
	if err := Register(reg, deps); err != nil {
		return nil, err
	}
	reg.Seal()
	return reg, nil
}
