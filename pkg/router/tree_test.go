package router

import "testing"

func TestRouteNodeInsert(t *testing.T) {
	root := newRouteNode("")

	node, _, ok := root.insert("/writings/:slug")
	if !ok {
		t.Fatal("insert failed")
	}
	writings := root.findChild("writings")
	if writings == nil {
		t.Fatal("static child not created")
	}
	if writings.paramChild != node || node.paramName != "slug" {
		t.Errorf("param child = %+v", writings.paramChild)
	}

	again, _, ok := root.insert("/writings/:slug")
	if !ok || again != node {
		t.Error("inserting the same route should return the same node")
	}

	if _, other, ok := root.insert("/writings/:id"); ok || other != "slug" {
		t.Errorf("conflicting param name: ok=%v other=%q", ok, other)
	}
}

func TestRouteNodeLookup(t *testing.T) {
	root := newRouteNode("")
	root.insert("/blogs")
	root.insert("/writings/:slug")

	if root.lookup("/") != root {
		t.Error("root lookup")
	}
	if root.lookup("/blogs") == nil {
		t.Error("static lookup")
	}
	if root.lookup("/writings/:other") == nil {
		t.Error("lookup ignores param names")
	}
	if root.lookup("/missing") != nil {
		t.Error("missing lookup should be nil")
	}
}

func TestRouteNodeMatch(t *testing.T) {
	root := newRouteNode("")
	for i, route := range []string{"/", "/blogs", "/writings", "/writings/:slug", "/writings/archive"} {
		node, _, _ := root.insert(route)
		node.page = i
	}

	tests := []struct {
		path      string
		wantPage  int
		wantOK    bool
		wantParam string
	}{
		{"/", 0, true, ""},
		{"/blogs", 1, true, ""},
		{"/writings", 2, true, ""},
		{"/writings/hello", 3, true, "hello"},
		{"/writings/archive", 4, true, ""},
		{"/writings/caf%C3%A9", 3, true, "café"},
		{"/writings/a%2Fb", -1, false, ""},
		{"/writings/a/b", -1, false, ""},
		{"/nope", -1, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			params := make(Params)
			page, ok := root.match(splitForTest(tt.path), params)
			if ok != tt.wantOK || page != tt.wantPage {
				t.Fatalf("match(%q) = %d, %v; want %d, %v", tt.path, page, ok, tt.wantPage, tt.wantOK)
			}
			if params["slug"] != tt.wantParam {
				t.Errorf("slug = %q, want %q", params["slug"], tt.wantParam)
			}
		})
	}
}

func TestRouteNodeMatchBacktracks(t *testing.T) {
	root := newRouteNode("")
	a, _, _ := root.insert("/a/b/c")
	a.page = 0
	b, _, _ := root.insert("/a/:x/d")
	b.page = 1

	params := make(Params)
	page, ok := root.match(splitForTest("/a/b/d"), params)
	if !ok || page != 1 || params["x"] != "b" {
		t.Errorf("match = %d, %v, %v", page, ok, params)
	}
}
