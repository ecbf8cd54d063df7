package render

import (
	"io"
	"strings"

	"github.com/vedantk/website/pkg/vdom"
)

// Document contains everything needed to render a complete HTML page.
type Document struct {
	// Body is the root VNode for the page content.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Description and Keywords become the matching meta tags and the
	// OpenGraph description.
	Description string
	Keywords    []string

	// Canonical is the absolute URL of the page, rendered as a canonical
	// link and og:url.
	Canonical string

	// Image is an absolute image URL for og:image.
	Image string

	// Meta contains additional meta tags.
	Meta []MetaTag

	// Links contains link tags (favicon, feeds, etc.).
	Links []LinkTag

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Scripts contains script tags. Deferred and async scripts go in the
	// head; the rest are placed at the end of the body.
	Scripts []ScriptTag
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name     string // name attribute
	Property string // property attribute (for OpenGraph)
	Content  string // content attribute
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel   string // rel attribute
	Href  string // href attribute
	Type  string // type attribute
	Sizes string // sizes attribute
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Module bool   // type="module"
	Defer  bool   // defer attribute
	Async  bool   // async attribute
	Inline string // inline script content
}

var defaultRenderer = NewRenderer(RendererConfig{})

// RenderPage renders doc with the default renderer.
func RenderPage(w io.Writer, doc Document) error {
	return defaultRenderer.RenderPage(w, doc)
}

// RenderPage writes doc as a complete HTML document. Deferred and async
// scripts go in the head; the rest close out the body.
func (r *Renderer) RenderPage(w io.Writer, doc Document) error {
	lang := doc.Lang
	if lang == "" {
		lang = "en"
	}

	hw := r.writer(w)
	hw.str("<!DOCTYPE html>\n<html lang=\"" + escapeAttr(lang) + "\">\n")
	writeHead(hw, doc)
	hw.str("<body>\n")
	hw.node(doc.Body, 0)
	hw.str("\n")
	for _, s := range doc.Scripts {
		if !s.Defer && !s.Async {
			writeScript(hw, s)
		}
	}
	hw.str("</body>\n</html>\n")
	return hw.err
}

// headMeta expands the document fields into the meta tags written to the head.
func headMeta(doc Document) []MetaTag {
	var tags []MetaTag
	if doc.Description != "" {
		tags = append(tags, MetaTag{Name: "description", Content: doc.Description})
	}
	if len(doc.Keywords) > 0 {
		tags = append(tags, MetaTag{Name: "keywords", Content: strings.Join(doc.Keywords, ", ")})
	}
	og := [][2]string{
		{"og:title", doc.Title},
		{"og:description", doc.Description},
		{"og:url", doc.Canonical},
		{"og:image", doc.Image},
	}
	for _, p := range og {
		if p[1] != "" {
			tags = append(tags, MetaTag{Property: p[0], Content: p[1]})
		}
	}
	return append(tags, doc.Meta...)
}

func writeHead(hw *htmlWriter, doc Document) {
	hw.str("<head>\n" +
		`  <meta charset="utf-8">` + "\n" +
		`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	if doc.Title != "" {
		hw.str("  <title>" + escapeHTML(doc.Title) + "</title>\n")
	}
	for _, m := range headMeta(doc) {
		hw.str("  <meta")
		hw.attr("name", m.Name)
		hw.attr("property", m.Property)
		hw.attr("content", m.Content)
		hw.str(">\n")
	}

	links := doc.Links
	if doc.Canonical != "" {
		links = append([]LinkTag{{Rel: "canonical", Href: doc.Canonical}}, links...)
	}
	for _, href := range doc.StyleSheets {
		links = append(links, LinkTag{Rel: "stylesheet", Href: href})
	}
	for _, l := range links {
		hw.str("  <link")
		hw.attr("rel", l.Rel)
		hw.attr("href", l.Href)
		hw.attr("type", l.Type)
		hw.attr("sizes", l.Sizes)
		hw.str(">\n")
	}

	for _, s := range doc.Scripts {
		if s.Defer || s.Async {
			writeScript(hw, s)
		}
	}
	hw.str("</head>\n")
}

func writeScript(hw *htmlWriter, s ScriptTag) {
	hw.str("  <script")
	hw.attr("src", s.Src)
	if s.Module {
		hw.str(` type="module"`)
	}
	if s.Defer {
		hw.str(" defer")
	}
	if s.Async {
		hw.str(" async")
	}
	hw.str(">" + s.Inline + "</script>\n")
}
