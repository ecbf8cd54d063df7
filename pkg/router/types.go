package router

import (
	"strings"

	"github.com/vedantk/website/pkg/vdom"
)

// RenderFunc builds a page's component tree. It takes no input and must
// return a fresh tree on every call.
type RenderFunc func() *vdom.VNode

// Params holds the values bound to a route's :name segments.
type Params map[string]string

// View is what a parameterised page renders for one set of params.
type View struct {
	// Title overrides the registered title in the chrome and document.
	Title string

	// Meta overrides the registered metadata when non-zero.
	Meta PageMeta

	// Body is the page content, before the layout is applied.
	Body *vdom.VNode
}

// ParamRenderFunc builds a parameterised page. It returns an error wrapping
// errors.ErrNotFound when params name nothing that exists.
type ParamRenderFunc func(params Params) (View, error)

// PathLister enumerates the concrete params of a parameterised page, for
// static export.
type PathLister func() []Params

// NavItem is one entry in the site navigation.
type NavItem struct {
	Route string
	Title string
}

// Chrome is what the layout knows about the page it wraps.
type Chrome struct {
	// Route is the registered route pattern of the page.
	Route string

	// Path is the concrete path being rendered. It equals Route for
	// static pages.
	Path string

	// Title is the page title.
	Title string

	// Nav lists the navigable pages in registration order.
	Nav []NavItem
}

// Active reports whether item should be highlighted for this page. A
// section link stays active on the pages below it.
func (c Chrome) Active(item NavItem) bool {
	if item.Route == "/" {
		return c.Path == "/"
	}
	return c.Path == item.Route || strings.HasPrefix(c.Path, item.Route+"/")
}

// LayoutFunc wraps page content in shared chrome.
type LayoutFunc func(chrome Chrome, content *vdom.VNode) *vdom.VNode

// PageMeta contains page metadata for the document head and sitemap.
type PageMeta struct {
	Description string
	Keywords    []string
	Image       string

	// ChangeFreq and Priority feed the sitemap entry.
	ChangeFreq string
	Priority   float64
}

// IsZero reports whether no field is set.
func (m PageMeta) IsZero() bool {
	return m.Description == "" && len(m.Keywords) == 0 && m.Image == "" &&
		m.ChangeFreq == "" && m.Priority == 0
}

// PageOption configures a page at registration.
type PageOption func(*Page)

// WithMeta sets the page's metadata.
func WithMeta(meta PageMeta) PageOption {
	return func(p *Page) {
		p.Meta = meta
	}
}

// WithSitemap sets the sitemap change frequency and priority.
func WithSitemap(changeFreq string, priority float64) PageOption {
	return func(p *Page) {
		p.Meta.ChangeFreq = changeFreq
		p.Meta.Priority = priority
	}
}

// HideFromNav keeps the page out of the navigation menu.
func HideFromNav() PageOption {
	return func(p *Page) {
		p.InNav = false
	}
}

// NoSitemap keeps the page out of sitemap.xml.
func NoSitemap() PageOption {
	return func(p *Page) {
		p.InSitemap = false
	}
}

// Match is the result of dispatching a path.
type Match struct {
	Page   Page
	Params Params
}
