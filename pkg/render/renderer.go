package render

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/vedantk/website/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty indents block elements. Inline elements and raw text stay on
	// one line so whitespace-sensitive content renders the same.
	Pretty bool

	// Indent is one level of indentation in pretty mode. Two spaces when empty.
	Indent string
}

// Renderer turns VNode trees into HTML. It holds no per-render state and is
// safe for concurrent use.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a Renderer.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders node to a string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var sb strings.Builder
	if err := r.RenderToWriter(&sb, node); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderToWriter streams node to w.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	hw := r.writer(w)
	hw.node(node, 0)
	return hw.err
}

func (r *Renderer) writer(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w, pretty: r.config.Pretty, indent: r.config.Indent}
}

// htmlWriter streams markup to w. After the first failure every write is a
// no-op and err holds the cause.
type htmlWriter struct {
	w      io.Writer
	pretty bool
	indent string
	err    error
}

func (hw *htmlWriter) str(s string) {
	if hw.err == nil {
		_, hw.err = io.WriteString(hw.w, s)
	}
}

func (hw *htmlWriter) fail(err error) {
	if hw.err == nil {
		hw.err = err
	}
}

func (hw *htmlWriter) newline() {
	if hw.pretty {
		hw.str("\n")
	}
}

func (hw *htmlWriter) pad(depth int) {
	if hw.pretty && depth > 0 {
		hw.str(strings.Repeat(hw.indent, depth))
	}
}

func (hw *htmlWriter) node(n *vdom.VNode, depth int) {
	if n == nil || hw.err != nil {
		return
	}
	switch n.Kind {
	case vdom.KindElement:
		hw.element(n, depth)
	case vdom.KindText:
		hw.str(escapeHTML(n.Text))
	case vdom.KindRaw:
		hw.str(n.Text)
	case vdom.KindFragment:
		for _, child := range n.Children {
			hw.node(child, depth)
		}
	case vdom.KindComponent:
		if n.Comp != nil {
			hw.node(n.Comp.Render(), depth)
		}
	default:
		hw.fail(fmt.Errorf("render: unknown node kind %d", n.Kind))
	}
}

func (hw *htmlWriter) element(n *vdom.VNode, depth int) {
	if n.Tag == "" {
		hw.fail(fmt.Errorf("render: element without tag at depth %d", depth))
		return
	}
	hw.pad(depth)
	hw.str("<" + n.Tag)
	hw.attrs(n.Props)
	hw.str(">")
	if vdom.IsVoidElement(n.Tag) {
		hw.newline()
		return
	}

	verbatim := rawTextElements.has(n.Tag)
	block := !verbatim && !inlineElements.has(n.Tag) && hasElementChild(n)
	if block {
		hw.newline()
	}
	for _, child := range n.Children {
		if verbatim && child != nil && child.Kind == vdom.KindText {
			hw.str(child.Text)
			continue
		}
		hw.node(child, depth+1)
	}
	if block {
		hw.pad(depth)
	}
	hw.str("</" + n.Tag + ">")
	hw.newline()
}

// attrs writes props in key order. The list key and "_"-prefixed props are
// internal and never reach the markup.
func (hw *htmlWriter) attrs(props vdom.Props) {
	keys := make([]string, 0, len(props))
	for k := range props {
		if k != "key" && !strings.HasPrefix(k, "_") {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	for _, k := range keys {
		v := props[k]
		if b, ok := v.(bool); ok && booleanAttrs.has(k) {
			if b {
				hw.str(" " + k)
			}
			continue
		}
		hw.attr(k, formatValue(v))
	}
}

// attr writes ` name="value"`, skipping empty values.
func (hw *htmlWriter) attr(name, value string) {
	if value != "" {
		hw.str(" " + name + `="` + escapeAttr(value) + `"`)
	}
}

func hasElementChild(n *vdom.VNode) bool {
	return slices.ContainsFunc(n.Children, func(c *vdom.VNode) bool {
		return c != nil && c.Kind == vdom.KindElement
	})
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
