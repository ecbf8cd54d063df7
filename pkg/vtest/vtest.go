package vtest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vedantk/website/pkg/render"
	"github.com/vedantk/website/pkg/vdom"
)

var renderer = render.NewRenderer(render.RendererConfig{})

// RenderToString renders node to HTML, failing t on a render error.
//
//	html := vtest.RenderToString(t, pages.Blogs())
func RenderToString(t testing.TB, node *vdom.VNode) string {
	t.Helper()
	html, err := renderer.RenderToString(node)
	assert.NoError(t, err, "render")
	return html
}

// ExpectContains asserts that the rendered markup contains want.
func ExpectContains(t testing.TB, node *vdom.VNode, want string) bool {
	t.Helper()
	return assert.Contains(t, RenderToString(t, node), want)
}

// ExpectNotContains asserts that the rendered markup lacks unwanted.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unwanted string) bool {
	t.Helper()
	return assert.NotContains(t, RenderToString(t, node), unwanted)
}

// ExpectText asserts the text content of the first <tag> element.
//
//	vtest.ExpectText(t, pages.Blogs(), "h1", "Blogs")
func ExpectText(t testing.TB, node *vdom.VNode, tag, text string) bool {
	t.Helper()
	el := vdom.Find(node, vdom.ByTag(tag))
	if !assert.NotNil(t, el, "no <%s> element", tag) {
		return false
	}
	return assert.Equal(t, text, vdom.TextContent(el), "<%s> text", tag)
}

// ExpectCount asserts how many <tag> elements the tree holds.
func ExpectCount(t testing.TB, node *vdom.VNode, tag string, n int) bool {
	t.Helper()
	return assert.Len(t, vdom.FindAll(node, vdom.ByTag(tag)), n, "<%s> count", tag)
}

// ExpectAttribute asserts that some element renders attr="value".
//
//	vtest.ExpectAttribute(t, pages.Home(), "class", "avatar")
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) bool {
	t.Helper()
	return assert.Contains(t, RenderToString(t, node), attr+`="`+value+`"`)
}
