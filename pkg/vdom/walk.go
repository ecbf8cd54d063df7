package vdom

import (
	"reflect"
	"strings"
)

// Equal reports whether two trees are structurally identical. Components are
// compared by the trees they render, so two independently built trees of the
// same page compare equal.
func Equal(a, b *VNode) bool {
	a, b = resolve(a), resolve(b)
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Tag != b.Tag || a.Key != b.Key || a.Text != b.Text {
		return false
	}
	if len(a.Props) != len(b.Props) {
		return false
	}
	for k, av := range a.Props {
		bv, ok := b.Props[k]
		if !ok || !reflect.DeepEqual(av, bv) {
			return false
		}
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// Walk visits every node depth-first, expanding components. Returning false
// from fn skips the node's children.
func Walk(root *VNode, fn func(*VNode) bool) {
	root = resolve(root)
	if root == nil {
		return
	}
	if !fn(root) {
		return
	}
	for _, child := range root.Children {
		Walk(child, fn)
	}
}

// Find returns the first node matching pred, or nil.
func Find(root *VNode, pred func(*VNode) bool) *VNode {
	var found *VNode
	Walk(root, func(n *VNode) bool {
		if found != nil {
			return false
		}
		if pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node matching pred in document order.
func FindAll(root *VNode, pred func(*VNode) bool) []*VNode {
	var out []*VNode
	Walk(root, func(n *VNode) bool {
		if pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// ByTag matches elements with the given tag.
func ByTag(tag string) func(*VNode) bool {
	return func(n *VNode) bool {
		return n.Kind == KindElement && n.Tag == tag
	}
}

// ByClass matches elements carrying the given class.
func ByClass(class string) func(*VNode) bool {
	return func(n *VNode) bool {
		return n.Kind == KindElement && n.HasClass(class)
	}
}

// TextContent concatenates all text below root.
func TextContent(root *VNode) string {
	var b strings.Builder
	Walk(root, func(n *VNode) bool {
		if n.Kind == KindText {
			b.WriteString(n.Text)
		}
		return true
	})
	return b.String()
}

// resolve expands component nodes to the tree they render.
func resolve(n *VNode) *VNode {
	for n != nil && n.Kind == KindComponent {
		if n.Comp == nil {
			return nil
		}
		n = n.Comp.Render()
	}
	return n
}
