// Package ui provides the layout primitives the site's pages are built from.
//
// Every primitive returns a plain *vdom.VNode and accepts the same variadic
// arguments as the vdom element constructors, so callers can pass extra
// attributes and children. Sizes and variants map to CSS classes in
// web/static/styles.css; no primitive emits inline styles.
package ui

import (
	"fmt"
	"net/url"

	"github.com/vedantk/website/pkg/vdom"
)

// Size is a type scale step. Valid steps are 1 (smallest) through 9.
type Size int

// class returns the CSS class for the size under prefix, clamped to 1..9.
func (s Size) class(prefix string) string {
	switch {
	case s <= 0:
		return ""
	case s > 9:
		s = 9
	}
	return fmt.Sprintf("%s-%d", prefix, int(s))
}

func with(base []any, args []any) []any {
	return append(base, args...)
}

// Box is a generic block wrapper.
func Box(args ...any) *vdom.VNode {
	return vdom.Div(with([]any{vdom.Class("box")}, args)...)
}

// Container centers its content with a maximum reading width.
func Container(args ...any) *vdom.VNode {
	return vdom.Div(with([]any{vdom.Class("container")}, args)...)
}

// VStack lays children out vertically with a uniform gap.
func VStack(args ...any) *vdom.VNode {
	return vdom.Div(with([]any{vdom.Class("stack", "stack-v")}, args)...)
}

// HStack lays children out horizontally with a uniform gap.
func HStack(args ...any) *vdom.VNode {
	return vdom.Div(with([]any{vdom.Class("stack", "stack-h")}, args)...)
}

// Spacer fills the remaining space in a stack.
func Spacer() *vdom.VNode {
	return vdom.Div(vdom.Class("spacer"), vdom.AriaHidden(true))
}

// Heading renders a heading. Size 8 and above use h1, 6 and 7 use h2,
// and anything smaller h3.
func Heading(size Size, args ...any) *vdom.VNode {
	args = with([]any{vdom.Class("heading", size.class("size"))}, args)
	switch {
	case size >= 8:
		return vdom.H1(args...)
	case size >= 6:
		return vdom.H2(args...)
	default:
		return vdom.H3(args...)
	}
}

// TextBlock renders a paragraph at the given size. Size 0 uses the body size.
func TextBlock(size Size, args ...any) *vdom.VNode {
	return vdom.P(with([]any{vdom.Class("text", size.class("size"))}, args)...)
}

// Image renders a lazily loaded image.
func Image(src, alt string, args ...any) *vdom.VNode {
	return vdom.Img(with([]any{
		vdom.Class("image"),
		vdom.Src(src),
		vdom.Alt(alt),
		vdom.Loading("lazy"),
	}, args)...)
}

// IsExternal reports whether href points off-site.
func IsExternal(href string) bool {
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	return u.Scheme != "" || u.Host != ""
}

// Link renders an anchor. Off-site links open in a new tab.
func Link(href string, args ...any) *vdom.VNode {
	base := []any{vdom.Class("link"), vdom.Href(href)}
	if IsExternal(href) {
		base = append(base, vdom.External())
	}
	return vdom.A(with(base, args)...)
}

// Card is a bordered content block with an optional title.
func Card(title string, args ...any) *vdom.VNode {
	return vdom.Article(with([]any{
		vdom.Class("card"),
		vdom.If(title != "", vdom.H3(vdom.Class("card-title"), title)),
	}, args)...)
}

// Badge renders a small inline label, used for post tags.
func Badge(label string, args ...any) *vdom.VNode {
	return vdom.Span(with([]any{vdom.Class("badge"), label}, args)...)
}

// AccordionItem is one collapsible section. Content is a string or *vdom.VNode.
type AccordionItem struct {
	Header  string
	Content any
}

// AccordionOptions controls accordion behavior.
type AccordionOptions struct {
	// Name groups the items into an exclusive accordion where opening one
	// closes the others. Leave empty to allow several open at once.
	Name string

	// Variant selects a style class ("outline", "soft").
	Variant string

	// OpenFirst renders the first item expanded.
	OpenFirst bool
}

// Accordion renders items as native details/summary disclosures.
func Accordion(items []AccordionItem, opts AccordionOptions) *vdom.VNode {
	variant := ""
	if opts.Variant != "" {
		variant = "accordion-" + opts.Variant
	}
	return vdom.Div(
		vdom.Class("accordion", variant),
		vdom.Range(items, func(item AccordionItem, i int) *vdom.VNode {
			return vdom.Details(
				vdom.Class("accordion-item"),
				vdom.Key(i),
				optional(opts.Name != "", vdom.Name(opts.Name)),
				optional(opts.OpenFirst && i == 0, vdom.Open()),
				vdom.Summary(vdom.Class("accordion-header"), item.Header),
				vdom.Div(vdom.Class("accordion-content"), item.Content),
			)
		}),
	)
}

// optional returns a when cond holds and the empty attribute otherwise.
func optional(cond bool, a vdom.Attr) vdom.Attr {
	if !cond {
		return vdom.Attr{}
	}
	return a
}
