package website

import (
	"bytes"
	"context"
	stderrors "errors"

	"github.com/vedantk/website/internal/errors"
	"github.com/vedantk/website/internal/pages"
	"github.com/vedantk/website/pkg/middleware"
	"github.com/vedantk/website/pkg/render"
	"github.com/vedantk/website/pkg/router"
	"github.com/vedantk/website/pkg/vdom"
)

// Stylesheet is the asset linked from every page.
const Stylesheet = "styles.css"

// RenderPath renders the full document for a canonical path. An unmatched
// path or a post that does not exist returns an error matching
// errors.ErrNotFound.
func (a *App) RenderPath(ctx context.Context, path string) ([]byte, error) {
	m, ok := a.registry.Match(path)
	if !ok {
		return nil, errors.New("E140").WithDetailf("%s", path)
	}
	middleware.SetRoute(ctx, m.Page.Route)

	_, span := middleware.RenderSpan(ctx, m.Page.Route)
	view, err := m.Page.RenderParams(m.Params)
	middleware.EndSpan(span, err)
	if err != nil {
		if !stderrors.Is(err, errors.ErrNotFound) {
			a.metrics.RecordRender(m.Page.Route, err)
		}
		return nil, err
	}

	out, err := a.renderDocument(m.Page.Path(m.Params), view)
	a.metrics.RecordRender(m.Page.Route, err)
	return out, err
}

// RenderNotFound renders the 404 page for path inside the site chrome.
func (a *App) RenderNotFound(path string) ([]byte, error) {
	const title = "Page not found"
	body := a.registry.Wrap(path, title, func() *vdom.VNode { return pages.NotFound(path) })()
	return a.renderDocument(path, router.View{Title: title, Body: body})
}

func (a *App) renderDocument(path string, view router.View) ([]byte, error) {
	var buf bytes.Buffer
	if err := a.renderer.RenderPage(&buf, a.document(path, view)); err != nil {
		return nil, errors.New("E141").WithDetailf("%s", path).Wrap(err)
	}
	return buf.Bytes(), nil
}

// document fills the head for a rendered view.
func (a *App) document(path string, view router.View) render.Document {
	site := a.config.Site
	title := site.Title
	if path != "/" && view.Title != "" && view.Title != site.Title {
		title = view.Title + " | " + site.Title
	}
	description := view.Meta.Description
	if description == "" {
		description = site.Description
	}
	image := view.Meta.Image
	if image != "" && image[0] == '/' {
		image = a.config.AbsoluteURL(image)
	}

	doc := render.Document{
		Body:        view.Body,
		Title:       title,
		Lang:        site.Lang,
		Description: description,
		Keywords:    view.Meta.Keywords,
		Image:       image,
		StyleSheets: []string{a.assets.Asset(Stylesheet)},
		Links: []render.LinkTag{
			{Rel: "icon", Href: a.assets.Asset("favicon.svg"), Type: "image/svg+xml"},
		},
		Scripts: a.scripts,
	}
	if site.BaseURL != "" {
		doc.Canonical = a.config.AbsoluteURL(path)
	}
	if site.Author != "" {
		doc.Meta = append(doc.Meta, render.MetaTag{Name: "author", Content: site.Author})
	}
	return doc
}
