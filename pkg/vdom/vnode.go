package vdom

import (
	"slices"
	"strings"
)

// VKind says what a VNode holds.
type VKind uint8

const (
	KindElement   VKind = iota // an HTML element with Tag, Props and Children
	KindText                   // escaped Text
	KindFragment               // Children without a wrapper
	KindComponent              // Comp, rendered lazily
	KindRaw                    // Text written verbatim
)

var kindNames = [...]string{"Element", "Text", "Fragment", "Component", "Raw"}

func (k VKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// VNode is a node of the component tree.
type VNode struct {
	Kind     VKind
	Tag      string
	Props    Props
	Children []*VNode
	Key      string // list identity, never rendered
	Text     string
	Comp     Component
}

// Props holds element attributes by name.
type Props map[string]any

// Attr is one attribute passed to an element constructor.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty reports whether a carries no attribute.
func (a Attr) IsEmpty() bool { return a.Key == "" }

// Attr returns the named attribute when it holds a string.
func (v *VNode) Attr(key string) string {
	if v == nil {
		return ""
	}
	s, _ := v.Props[key].(string)
	return s
}

// HasClass reports whether name is one of the element's classes.
func (v *VNode) HasClass(name string) bool {
	return slices.Contains(strings.Fields(v.Attr("class")), name)
}

// Component renders to a tree on demand.
type Component interface {
	Render() *VNode
}

// Func is a Component backed by a plain function.
type Func func() *VNode

// Render calls f.
func (f Func) Render() *VNode { return f() }
