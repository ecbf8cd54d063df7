package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeAttr(t *testing.T) {
	var nilNode *VNode
	if nilNode.Attr("id") != "" {
		t.Error("nil node should have no attributes")
	}
	node := Div(ID("x"), Width(3), Class("nav active"))
	if node.Attr("id") != "x" {
		t.Errorf("Attr(id) = %q", node.Attr("id"))
	}
	if node.Attr("width") != "" {
		t.Errorf("non-string attribute should read as empty")
	}
	if !node.HasClass("active") || node.HasClass("act") {
		t.Error("HasClass mismatch")
	}
}

func TestFuncComponent(t *testing.T) {
	calls := 0
	comp := Func(func() *VNode {
		calls++
		return Div(Text("hi"))
	})
	node := comp.Render()
	if node.Tag != "div" || calls != 1 {
		t.Errorf("Render() = %+v, calls = %d", node, calls)
	}
}
