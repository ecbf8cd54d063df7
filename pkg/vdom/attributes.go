package vdom

import (
	"strconv"
	"strings"
)

func stringAttr(key string) func(string) Attr {
	return func(v string) Attr { return Attr{Key: key, Value: v} }
}

func intAttr(key string) func(int) Attr {
	return func(v int) Attr { return Attr{Key: key, Value: v} }
}

func flagAttr(key string) func() Attr {
	return func() Attr { return Attr{Key: key, Value: true} }
}

var (
	ID          = stringAttr("id")
	Role        = stringAttr("role")
	AriaLabel   = stringAttr("aria-label")
	AriaCurrent = stringAttr("aria-current")
	TitleAttr   = stringAttr("title")

	Href   = stringAttr("href")
	Target = stringAttr("target")
	Rel    = stringAttr("rel")

	Src     = stringAttr("src")
	Alt     = stringAttr("alt")
	Loading = stringAttr("loading")
	Width   = intAttr("width")
	Height  = intAttr("height")

	Name     = stringAttr("name")
	Content  = stringAttr("content")
	DateTime = stringAttr("datetime")

	// Open expands a details element.
	Open = flagAttr("open")
)

// Class joins the non-empty names into one class attribute.
func Class(names ...string) Attr {
	kept := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			kept = append(kept, n)
		}
	}
	return Attr{Key: "class", Value: strings.Join(kept, " ")}
}

// Data sets data-<key>.
func Data(key, value string) Attr { return Attr{Key: "data-" + key, Value: value} }

// AriaHidden sets aria-hidden to "true" or "false".
func AriaHidden(hidden bool) Attr {
	return Attr{Key: "aria-hidden", Value: strconv.FormatBool(hidden)}
}

// External opens an anchor in a new tab without handing it the opener.
func External() []Attr {
	return []Attr{Target("_blank"), Rel("noopener noreferrer")}
}
