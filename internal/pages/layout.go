package pages

import (
	"strconv"

	"github.com/vedantk/website/pkg/router"
	"github.com/vedantk/website/pkg/ui"
	"github.com/vedantk/website/pkg/vdom"
)

// Site is the shared information shown in the chrome.
type Site struct {
	Title  string
	Author string
	Year   int

	// Links are shown in the footer, such as GitHub or email.
	Links []FooterLink
}

// FooterLink is one footer entry.
type FooterLink struct {
	Label string
	Href  string
}

// Layout returns the chrome shared by every page: a header with the site
// title and navigation, the page content in main, and a footer.
func Layout(site Site) router.LayoutFunc {
	return func(c router.Chrome, content *vdom.VNode) *vdom.VNode {
		return vdom.Div(
			vdom.Class("site"),
			vdom.Header(
				vdom.Class("site-header"),
				vdom.A(vdom.Class("site-title"), vdom.Href("/"), site.Title),
				navigation(c),
			),
			vdom.Main(
				vdom.Class("site-main"),
				vdom.ID("main"),
				ui.Container(content),
			),
			footer(site),
		)
	}
}

func navigation(c router.Chrome) *vdom.VNode {
	return vdom.Nav(
		vdom.Class("site-nav"),
		vdom.AriaLabel("Main"),
		vdom.Ul(
			vdom.Range(c.Nav, func(item router.NavItem, _ int) *vdom.VNode {
				active := c.Active(item)
				var current vdom.Attr
				if active {
					current = vdom.AriaCurrent("page")
				}
				return vdom.Li(
					vdom.Key(item.Route),
					vdom.A(
						vdom.Href(item.Route),
						vdom.Class("nav-link", activeClass(active)),
						current,
						item.Title,
					),
				)
			}),
		),
	)
}

func activeClass(active bool) string {
	if active {
		return "active"
	}
	return ""
}

func footer(site Site) *vdom.VNode {
	copyright := "©"
	if site.Year > 0 {
		copyright += " " + strconv.Itoa(site.Year)
	}
	if site.Author != "" {
		copyright += " " + site.Author
	}
	return vdom.Footer(
		vdom.Class("site-footer"),
		vdom.Small(copyright),
		vdom.If(len(site.Links) > 0, ui.HStack(
			vdom.Range(site.Links, func(l FooterLink, _ int) *vdom.VNode {
				return ui.Link(l.Href, l.Label)
			}),
		)),
	)
}
