package pages

import (
	"fmt"

	"github.com/vedantk/website/internal/content"
	"github.com/vedantk/website/internal/errors"
	"github.com/vedantk/website/pkg/router"
	"github.com/vedantk/website/pkg/ui"
	"github.com/vedantk/website/pkg/vdom"
)

// DisplayDate is how post dates are shown.
const DisplayDate = "January 2, 2006"

// WritingsPage lists every post in lib, newest first.
func WritingsPage(lib *content.Library) router.RenderFunc {
	return func() *vdom.VNode {
		posts := lib.Posts().All()
		if len(posts) == 0 {
			return ui.VStack(
				vdom.Class("writings"),
				ui.Heading(8, "Writings"),
				ui.TextBlock(4, vdom.Class("empty"), "Nothing here yet."),
			)
		}
		return ui.VStack(
			vdom.Class("writings"),
			ui.Heading(8, "Writings"),
			vdom.Ul(
				vdom.Class("post-list"),
				vdom.Range(posts, func(p content.Post, _ int) *vdom.VNode {
					return vdom.Li(
						vdom.Key(p.Slug),
						vdom.Class("post-item"),
						ui.Link(p.Path(), vdom.Class("post-link"), p.Meta.Title),
						postByline(p),
						vdom.If(p.Meta.Description != "", ui.TextBlock(3, vdom.Class("post-description"), p.Meta.Description)),
					)
				}),
			),
		)
	}
}

// PostPage renders the post whose slug is params["slug"]. An unknown slug is
// a not-found error.
func PostPage(lib *content.Library) router.ParamRenderFunc {
	return func(params router.Params) (router.View, error) {
		slug := params["slug"]
		p, ok := lib.Posts().BySlug(slug)
		if !ok {
			return router.View{}, errors.New("E140").WithDetailf("no post %q", slug)
		}
		return router.View{
			Title: p.Meta.Title,
			Meta: router.PageMeta{
				Description: p.Meta.Description,
				Keywords:    p.Meta.Keywords,
				Image:       p.Meta.Image,
			},
			Body: vdom.Article(
				vdom.Class("post"),
				vdom.Header(
					vdom.Class("post-header"),
					ui.Heading(8, p.Meta.Title),
					postByline(p),
					vdom.If(p.Meta.Image != "", ui.Image(p.Meta.Image, p.ImageAlt(), vdom.Class("post-image"))),
				),
				vdom.Div(vdom.Class("prose"), vdom.Raw(p.HTML)),
			),
		}, nil
	}
}

// PostPaths lists the slug params of every post, for export. Hidden posts
// are included so a built site serves the same URLs as the live one.
func PostPaths(lib *content.Library) router.PathLister {
	return func() []router.Params {
		posts := lib.Posts().Every()
		out := make([]router.Params, 0, len(posts))
		for _, p := range posts {
			out = append(out, router.Params{"slug": p.Slug})
		}
		return out
	}
}

func postByline(p content.Post) *vdom.VNode {
	return vdom.Div(
		vdom.Class("post-meta"),
		vdom.Time(vdom.DateTime(p.Meta.Date.Format(content.DateLayout)), p.Meta.Date.Format(DisplayDate)),
		vdom.Span(vdom.Class("post-duration"), p.Duration()),
		vdom.Range([]string(p.Meta.Tags), func(tag string, _ int) *vdom.VNode {
			return ui.Badge(tag, vdom.Key(tag))
		}),
	)
}

// BooksPage lists the book highlights in lib.
func BooksPage(lib *content.Library) router.RenderFunc {
	return func() *vdom.VNode {
		books := lib.Books()
		if books.Empty() {
			return ui.VStack(
				vdom.Class("books"),
				ui.Heading(8, "Books"),
				ui.TextBlock(4, vdom.Class("empty"), "No highlights yet."),
			)
		}
		return ui.VStack(
			vdom.Class("books"),
			ui.Heading(8, "Books"),
			ui.TextBlock(3, vdom.Class("books-summary"),
				fmt.Sprintf("%d highlights from %d books", books.TotalHighlights, books.TotalBooks)),
			ui.Accordion(bookItems(books.Books), ui.AccordionOptions{Variant: "soft"}),
		)
	}
}

func bookItems(books []content.Book) []ui.AccordionItem {
	items := make([]ui.AccordionItem, 0, len(books))
	for _, b := range books {
		header := b.Title
		if b.Author != "" {
			header += " by " + b.Author
		}
		items = append(items, ui.AccordionItem{
			Header: header,
			Content: vdom.Ul(
				vdom.Class("highlights"),
				vdom.Range(b.Highlights, func(h content.Highlight, _ int) *vdom.VNode {
					return vdom.Li(
						vdom.Blockquote(h.Text),
						vdom.If(h.Note != "", vdom.P(vdom.Class("note"), h.Note)),
					)
				}),
			),
		})
	}
	return items
}

// NotFound is the body of the 404 page.
func NotFound(path string) *vdom.VNode {
	return ui.VStack(
		vdom.Class("not-found"),
		ui.Heading(8, "Page not found"),
		ui.TextBlock(4, "Nothing lives at ", vdom.Code(path), "."),
		ui.Link("/", "Back home"),
	)
}
