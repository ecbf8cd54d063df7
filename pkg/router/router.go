package router

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/vedantk/website/internal/errors"
	"github.com/vedantk/website/pkg/routepath"
	"github.com/vedantk/website/pkg/vdom"
)

// Page is a registered page descriptor. Pages are immutable once added.
type Page struct {
	Route string
	Title string
	Meta  PageMeta

	// InNav and InSitemap default to true for static pages and false for
	// parameterised ones.
	InNav     bool
	InSitemap bool

	reg    *Registry
	render RenderFunc
	param  ParamRenderFunc
	paths  PathLister
}

// Dynamic reports whether the route has parameters.
func (p Page) Dynamic() bool {
	return p.param != nil
}

// Render returns the page wrapped in the registry layout. It returns nil for
// parameterised pages; use RenderParams for those.
func (p Page) Render() *vdom.VNode {
	if p.render == nil {
		return nil
	}
	return Wrap(p.reg.layout, p.reg.chrome(p.Route, p.Route, p.Title), p.render)()
}

// RenderParams renders a page for concrete params. For static pages params
// are ignored. The returned View carries the resolved title and metadata,
// with Body already wrapped in the layout.
func (p Page) RenderParams(params Params) (View, error) {
	if p.param == nil {
		return View{Title: p.Title, Meta: p.Meta, Body: p.Render()}, nil
	}
	view, err := p.param(params)
	if err != nil {
		return View{}, err
	}
	if view.Title == "" {
		view.Title = p.Title
	}
	if view.Meta.IsZero() {
		view.Meta = p.Meta
	}
	content := view.Body
	view.Body = Wrap(p.reg.layout, p.reg.chrome(p.Route, p.Path(params), view.Title), func() *vdom.VNode {
		return content
	})()
	return view, nil
}

// Paths enumerates the concrete params for export. Static pages have exactly
// one empty set.
func (p Page) Paths() []Params {
	if p.param == nil {
		return []Params{{}}
	}
	if p.paths == nil {
		return nil
	}
	return p.paths()
}

// Path substitutes params into the route, escaping each value, so the
// result is the canonical form of any path the page matched.
func (p Page) Path(params Params) string {
	segments := routepath.Segments(p.Route)
	for i, seg := range segments {
		if name, ok := strings.CutPrefix(seg, ":"); ok {
			segments[i] = url.PathEscape(params[name])
		}
	}
	return "/" + strings.Join(segments, "/")
}

// Wrap composes a layout with a page render function, so the result renders
// layout(chrome, fn()). A nil layout returns fn unchanged.
func Wrap(layout LayoutFunc, chrome Chrome, fn RenderFunc) RenderFunc {
	if layout == nil {
		return fn
	}
	return func() *vdom.VNode {
		return layout(chrome, fn())
	}
}

// Registry is the write-once table of site pages. Pages are added during
// startup; Seal ends registration before the server begins serving.
type Registry struct {
	mu     sync.RWMutex
	layout LayoutFunc
	pages  []*Page
	root   *routeNode
	sealed bool
}

// NewRegistry creates a registry whose pages are all wrapped by layout.
func NewRegistry(layout LayoutFunc) *Registry {
	return &Registry{
		layout: layout,
		root:   newRouteNode(""),
	}
}

// Add registers a static page. It fails on an invalid or duplicate route, an
// empty title, or a sealed registry. Nothing is rendered at registration.
func (r *Registry) Add(route, title string, fn RenderFunc, opts ...PageOption) error {
	if fn == nil {
		return errors.New("E101").WithDetailf("route %q has no render function", route)
	}
	if strings.Contains(route, ":") {
		return errors.New("E101").
			WithDetailf("route %q has parameters", route).
			WithSuggestion("Use AddDynamic for routes with :name segments.")
	}
	return r.add(&Page{Route: route, Title: title, InNav: true, InSitemap: true, render: fn}, opts)
}

// AddDynamic registers a page whose route has :name segments. paths lists
// the concrete params to export and may be nil for pages served only live.
func (r *Registry) AddDynamic(route, title string, fn ParamRenderFunc, paths PathLister, opts ...PageOption) error {
	if fn == nil {
		return errors.New("E101").WithDetailf("route %q has no render function", route)
	}
	if !strings.Contains(route, ":") {
		return errors.New("E101").
			WithDetailf("route %q has no parameters", route).
			WithSuggestion("Use Add for static routes.")
	}
	return r.add(&Page{Route: route, Title: title, param: fn, paths: paths}, opts)
}

func (r *Registry) add(p *Page, opts []PageOption) error {
	if err := routepath.ValidateRoute(p.Route); err != nil {
		return errors.New("E101").WithDetailf("%q", p.Route).Wrap(err)
	}
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("E103").WithDetailf("route %q", p.Route)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return errors.New("E102").WithDetailf("cannot add %q", p.Route)
	}

	if existing := r.root.lookup(p.Route); existing != nil && existing.page >= 0 {
		return errors.New("E100").WithDetailf("route %q is already registered by %q",
			p.Route, r.pages[existing.page].Title)
	}
	node, other, ok := r.root.insert(p.Route)
	if !ok {
		return errors.New("E101").WithDetailf("route %q names a parameter that is already registered as :%s", p.Route, other)
	}

	p.reg = r
	for _, opt := range opts {
		opt(p)
	}
	node.page = len(r.pages)
	r.pages = append(r.pages, p)
	return nil
}

// Seal ends registration. Add calls after Seal fail with E102.
func (r *Registry) Seal() {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// Len returns the number of registered pages.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pages)
}

// Pages returns the registered pages in registration order.
func (r *Registry) Pages() []Page {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Page, len(r.pages))
	for i, p := range r.pages {
		out[i] = *p
	}
	return out
}

// Lookup returns the page registered at route.
func (r *Registry) Lookup(route string) (Page, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	node := r.root.lookup(route)
	if node == nil || node.page < 0 {
		return Page{}, false
	}
	return *r.pages[node.page], true
}

// Nav returns the navigation entries in registration order.
func (r *Registry) Nav() []NavItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []NavItem
	for _, p := range r.pages {
		if p.InNav && p.param == nil {
			items = append(items, NavItem{Route: p.Route, Title: p.Title})
		}
	}
	return items
}

// Match dispatches a canonical path. Static segments win over parameters.
func (r *Registry) Match(path string) (*Match, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	params := make(Params)
	idx, ok := r.root.match(routepath.Segments(path), params)
	if !ok {
		return nil, false
	}
	return &Match{Page: *r.pages[idx], Params: params}, true
}

// Wrap applies the registry layout to fn for a path that is not a
// registered page, such as the 404 page.
func (r *Registry) Wrap(path, title string, fn RenderFunc) RenderFunc {
	return Wrap(r.layout, r.chrome("", path, title), fn)
}

func (r *Registry) chrome(route, path, title string) Chrome {
	return Chrome{Route: route, Path: path, Title: title, Nav: r.Nav()}
}

// String lists the routes, one per line, for debugging.
func (r *Registry) String() string {
	var b strings.Builder
	for _, p := range r.Pages() {
		fmt.Fprintf(&b, "%-24s %s\n", p.Route, p.Title)
	}
	return b.String()
}
