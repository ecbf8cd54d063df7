package vdom

// ElementFunc builds an element from a mix of attributes and children.
type ElementFunc func(args ...any) *VNode

// El returns the constructor for tag.
func El(tag string) ElementFunc {
	return func(args ...any) *VNode {
		n := &VNode{Kind: KindElement, Tag: tag, Props: Props{}}
		for _, arg := range args {
			n.add(arg)
		}
		return n
	}
}

// Void elements never have children or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// IsVoidElement reports whether tag has no closing tag.
func IsVoidElement(tag string) bool { return voidElements[tag] }

// add folds one constructor argument into n. Unrecognised values are ignored.
func (n *VNode) add(arg any) {
	switch v := arg.(type) {
	case Attr:
		n.setAttr(v)
	case []Attr:
		for _, a := range v {
			n.setAttr(a)
		}
	default:
		n.addChild(arg)
	}
}

// addChild appends arg as a child. Nil nodes are skipped so conditional
// helpers can be passed inline.
func (n *VNode) addChild(arg any) {
	switch v := arg.(type) {
	case *VNode:
		if v != nil {
			n.Children = append(n.Children, v)
		}
	case []*VNode:
		for _, c := range v {
			n.addChild(c)
		}
	case string:
		n.Children = append(n.Children, Text(v))
	case Component:
		n.Children = append(n.Children, &VNode{Kind: KindComponent, Comp: v})
	}
}

// setAttr stores a. Repeated classes accumulate so layout primitives can add
// theirs on top of the caller's; any other attribute keeps the last value.
func (n *VNode) setAttr(a Attr) {
	if a.IsEmpty() {
		return
	}
	if a.Key == "key" {
		n.Key, _ = a.Value.(string)
		return
	}
	if a.Key == "class" {
		s, _ := a.Value.(string)
		if s == "" {
			return
		}
		if prev := n.Attr("class"); prev != "" {
			s = prev + " " + s
		}
		n.Props["class"] = s
		return
	}
	n.Props[a.Key] = a.Value
}

// Page structure.
var (
	Head    = El("head")
	Meta    = El("meta")
	Link    = El("link")
	Script  = El("script")
	Header  = El("header")
	Main    = El("main")
	Footer  = El("footer")
	Nav     = El("nav")
	Section = El("section")
	Article = El("article")
)

// Headings and blocks.
var (
	H1         = El("h1")
	H2         = El("h2")
	H3         = El("h3")
	H4         = El("h4")
	H5         = El("h5")
	H6         = El("h6")
	Div        = El("div")
	P          = El("p")
	Blockquote = El("blockquote")
	Ul         = El("ul")
	Li         = El("li")
	Hr         = El("hr")
	Details    = El("details")
	Summary    = El("summary")
)

// Inline content.
var (
	A      = El("a")
	Span   = El("span")
	Strong = El("strong")
	Em     = El("em")
	Small  = El("small")
	Code   = El("code")
	Time   = El("time")
	Br     = El("br")
	Img    = El("img")
)
