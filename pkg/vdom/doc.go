// Package vdom provides the component tree used to describe pages.
//
// A page is a tree of VNode values: elements, text, fragments, nested
// components and (trusted) raw HTML. Trees are plain data. They are built
// fresh on every render, carry no identity, and can be compared with Equal.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// Arguments may be nil (ignored), Attr, []Attr, *VNode, []*VNode, Component
// or string (shorthand for a text node).
package vdom
