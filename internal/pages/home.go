package pages

import (
	"github.com/vedantk/website/pkg/ui"
	"github.com/vedantk/website/pkg/vdom"
)

// AvatarURL is the portrait on the home page.
const AvatarURL = "https://avatars.githubusercontent.com/u/77445964?v=4"

// Home is the "Me" page at /.
func Home() *vdom.VNode {
	return ui.VStack(
		vdom.Class("home"),
		ui.Image(AvatarURL, "Portrait of Vedant", vdom.Class("avatar")),
		ui.TextBlock(7, "Hi, I'm Vedant."),
		ui.TextBlock(7, "I build products, mostly with language models, and write about what I learn along the way."),
		ui.Spacer(),
		ui.Heading(6, "Beliefs"),
		ui.Accordion([]ui.AccordionItem{
			{Header: "First Item", Content: "Talk to people before building for them."},
			{Header: "Second Item", Content: "Small experiments beat long plans."},
			{Header: "Third Item", Content: "Write things down."},
		}, ui.AccordionOptions{Name: "beliefs", Variant: "outline"}),
	)
}

// Blogs is the blog index at /blogs.
func Blogs() *vdom.VNode {
	return ui.VStack(
		vdom.Class("blogs"),
		ui.Heading(8, "Blogs"),
		ui.TextBlock(5,
			"Longer pieces live in ",
			ui.Link("/writings", "writings"),
			", and notes from what I read live in ",
			ui.Link("/books", "books"),
			".",
		),
	)
}
