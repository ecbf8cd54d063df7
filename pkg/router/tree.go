package router

import (
	"strings"

	"github.com/vedantk/website/pkg/routepath"
)

// routeNode is a node in the route tree.
type routeNode struct {
	// segment is the path segment this node matches
	segment string

	// paramName is set on parameter nodes (:slug), without the colon
	paramName string

	// page is the index into Registry.pages, or -1
	page int

	// children are static segment children
	children []*routeNode

	// paramChild is the dynamic parameter child
	paramChild *routeNode
}

func newRouteNode(segment string) *routeNode {
	return &routeNode{segment: segment, page: -1}
}

// findChild finds a child node with an exact segment match.
func (n *routeNode) findChild(segment string) *routeNode {
	for _, child := range n.children {
		if child.segment == segment {
			return child
		}
	}
	return nil
}

// insert walks the tree along route, creating nodes as needed, and returns
// the node for the full route. ok is false when a parameter at the same
// position was already registered under another name.
func (n *routeNode) insert(route string) (node *routeNode, conflict string, ok bool) {
	current := n
	for _, seg := range routepath.Segments(route) {
		if name, isParam := strings.CutPrefix(seg, ":"); isParam {
			if current.paramChild == nil {
				current.paramChild = newRouteNode("")
				current.paramChild.paramName = name
			} else if current.paramChild.paramName != name {
				return nil, current.paramChild.paramName, false
			}
			current = current.paramChild
			continue
		}
		child := current.findChild(seg)
		if child == nil {
			child = newRouteNode(seg)
			current.children = append(current.children, child)
		}
		current = child
	}
	return current, "", true
}

// lookup returns the node registered for route without creating anything.
func (n *routeNode) lookup(route string) *routeNode {
	current := n
	for _, seg := range routepath.Segments(route) {
		if strings.HasPrefix(seg, ":") {
			current = current.paramChild
		} else {
			current = current.findChild(seg)
		}
		if current == nil {
			return nil
		}
	}
	return current
}

// match finds the page for segments. Static children are tried before the
// parameter child, and matching backtracks when a static branch dead-ends.
func (n *routeNode) match(segments []string, params Params) (int, bool) {
	if len(segments) == 0 {
		return n.page, n.page >= 0
	}

	segment, remaining := segments[0], segments[1:]

	if child := n.findChild(segment); child != nil {
		if page, ok := child.match(remaining, params); ok {
			return page, true
		}
	}

	if n.paramChild != nil {
		value, err := routepath.DecodeSegment(segment)
		if err != nil {
			return -1, false
		}
		params[n.paramChild.paramName] = value
		if page, ok := n.paramChild.match(remaining, params); ok {
			return page, true
		}
		delete(params, n.paramChild.paramName)
	}

	return -1, false
}
