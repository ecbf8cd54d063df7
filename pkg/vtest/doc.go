// Package vtest provides assertions for rendered component trees.
//
// Components are plain functions returning *vdom.VNode, so tests render
// them and check the HTML or the tree directly:
//
//	func TestHome(t *testing.T) {
//	    page := pages.Home()
//	    vtest.ExpectContains(t, page, "Beliefs")
//	    vtest.ExpectAttribute(t, page, "class", "avatar")
//	    vtest.ExpectCount(t, page, "details", 3)
//	}
package vtest
