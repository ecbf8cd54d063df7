package render

type tagSet map[string]struct{}

func newTagSet(names ...string) tagSet {
	s := make(tagSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s tagSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

// inlineElements keep their children on the same line in pretty output.
var inlineElements = newTagSet(
	"a", "abbr", "b", "br", "cite", "code", "em", "i", "kbd", "mark",
	"q", "s", "small", "span", "strong", "sub", "sup", "time", "u",
)

// booleanAttrs render as a bare name when true and are dropped when false.
var booleanAttrs = newTagSet(
	"async", "autofocus", "checked", "defer", "disabled", "hidden",
	"nomodule", "open", "readonly", "required", "reversed", "selected",
)

// rawTextElements write text children verbatim.
var rawTextElements = newTagSet("script", "style")
