package vdom

import "testing"

func samplePage() *VNode {
	return Div(Class("page"),
		Nav(A(Href("/"), "Me"), A(Href("/blogs"), "Blogs")),
		Main(Func(func() *VNode {
			return Article(H1("Title"), P("Body ", Strong("text")))
		})),
	)
}

func TestEqual(t *testing.T) {
	if !Equal(samplePage(), samplePage()) {
		t.Fatal("independently built trees should be equal")
	}
	if !Equal(nil, nil) {
		t.Error("nil trees should be equal")
	}
	if Equal(samplePage(), nil) {
		t.Error("tree should not equal nil")
	}

	tests := []struct {
		name string
		a, b *VNode
	}{
		{"tag", Div(), Span()},
		{"text", Text("a"), Text("b")},
		{"attribute value", A(Href("/a")), A(Href("/b"))},
		{"attribute set", A(Href("/a")), A(Href("/a"), ID("x"))},
		{"children count", Ul(Li()), Ul(Li(), Li())},
		{"nested", Div(P("a")), Div(P("b"))},
		{"key", Li(Key(1)), Li(Key(2))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Equal(tt.a, tt.b) {
				t.Errorf("Equal() = true, want false")
			}
		})
	}
}

func TestEqualExpandsComponents(t *testing.T) {
	direct := Div(Span("x"))
	wrapped := Div(Func(func() *VNode { return Span("x") }))
	if !Equal(direct, wrapped) {
		t.Error("component should compare by its rendered tree")
	}
}

func TestFind(t *testing.T) {
	page := samplePage()
	if got := Find(page, ByTag("h1")); got == nil || TextContent(got) != "Title" {
		t.Errorf("Find(h1) = %+v", got)
	}
	if got := Find(page, ByTag("table")); got != nil {
		t.Errorf("Find(table) = %+v, want nil", got)
	}
	links := FindAll(page, ByTag("a"))
	if len(links) != 2 || links[1].Attr("href") != "/blogs" {
		t.Errorf("FindAll(a) = %d links", len(links))
	}
	if Find(page, ByClass("page")) != page {
		t.Error("Find(ByClass) should return the root")
	}
}

func TestTextContent(t *testing.T) {
	if got := TextContent(samplePage()); got != "MeBlogsTitleBody text" {
		t.Errorf("TextContent() = %q", got)
	}
}
