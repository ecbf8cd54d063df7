package vdom

import "fmt"

// Text creates an escaped text node.
func Text(s string) *VNode {
	return &VNode{Kind: KindText, Text: s}
}

// Raw inserts html without escaping. Callers pass sanitised post bodies only.
func Raw(html string) *VNode {
	return &VNode{Kind: KindRaw, Text: html}
}

// Fragment groups children without a wrapper element. It accepts the same
// child values as an element constructor.
func Fragment(children ...any) *VNode {
	n := &VNode{Kind: KindFragment}
	for _, c := range children {
		n.addChild(c)
	}
	return n
}

// If returns node when cond holds and nil otherwise.
func If(cond bool, node *VNode) *VNode {
	if !cond {
		return nil
	}
	return node
}

// Range maps items to nodes, dropping nil results.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	out := make([]*VNode, 0, len(items))
	for i, item := range items {
		if n := fn(item, i); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Key tags a list item so Equal and tests can tell siblings apart.
func Key(key any) Attr {
	return Attr{Key: "key", Value: fmt.Sprint(key)}
}
