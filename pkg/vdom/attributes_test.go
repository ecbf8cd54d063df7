package vdom

import "testing"

func TestAttributes(t *testing.T) {
	tests := []struct {
		name  string
		attr  Attr
		key   string
		value any
	}{
		{"ID", ID("main"), "id", "main"},
		{"Class single", Class("card"), "class", "card"},
		{"Class multiple", Class("card", "active"), "class", "card active"},
		{"Class drops empty", Class("", "card", ""), "class", "card"},
		{"Data", Data("route", "/blogs"), "data-route", "/blogs"},
		{"Role", Role("navigation"), "role", "navigation"},
		{"AriaLabel", AriaLabel("Primary"), "aria-label", "Primary"},
		{"AriaCurrent", AriaCurrent("page"), "aria-current", "page"},
		{"AriaHidden", AriaHidden(true), "aria-hidden", "true"},
		{"TitleAttr", TitleAttr("Tooltip"), "title", "Tooltip"},
		{"Href", Href("/blogs"), "href", "/blogs"},
		{"Target", Target("_blank"), "target", "_blank"},
		{"Rel", Rel("noopener"), "rel", "noopener"},
		{"Src", Src("/img.png"), "src", "/img.png"},
		{"Alt", Alt("portrait"), "alt", "portrait"},
		{"Width", Width(160), "width", 160},
		{"Height", Height(160), "height", 160},
		{"Loading", Loading("lazy"), "loading", "lazy"},
		{"Name", Name("description"), "name", "description"},
		{"Content", Content("hello"), "content", "hello"},
		{"DateTime", DateTime("2024-01-02"), "datetime", "2024-01-02"},
		{"Open", Open(), "open", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.key {
				t.Errorf("Key = %v, want %v", tt.attr.Key, tt.key)
			}
			if tt.attr.Value != tt.value {
				t.Errorf("Value = %v, want %v", tt.attr.Value, tt.value)
			}
		})
	}
}

func TestExternal(t *testing.T) {
	node := A(External(), Href("https://example.com"))
	if node.Attr("target") != "_blank" {
		t.Errorf("target = %q, want _blank", node.Attr("target"))
	}
	if node.Attr("rel") != "noopener noreferrer" {
		t.Errorf("rel = %q, want noopener noreferrer", node.Attr("rel"))
	}
}

func TestEmptyAttrIgnored(t *testing.T) {
	node := Div(Attr{})
	if len(node.Props) != 0 {
		t.Errorf("Props = %v, want empty", node.Props)
	}
}
