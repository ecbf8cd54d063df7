// Package render provides server-side rendering of VNode trees to HTML.
//
// The renderer converts component trees into HTML strings or streams:
//
//   - Text and attribute escaping
//   - Void element and boolean attribute handling
//   - Deterministic, sorted attribute output
//   - Full documents with head metadata through RenderPage
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Full Page Rendering
//
//	err := render.RenderPage(w, render.Document{
//	    Title:       "Blogs",
//	    Description: "Notes and essays",
//	    Canonical:   "https://example.com/blogs",
//	    StyleSheets: []string{"/static/styles.css"},
//	    Body:        body,
//	})
//
// # Security
//
// All text content is escaped by default. Raw HTML can be inserted using
// KindRaw nodes, which are reserved for sanitised post bodies.
package render
