package pages

import (
	"github.com/vedantk/website/pkg/ui"
	"github.com/vedantk/website/pkg/vdom"
)

// Project is one entry on the projects page.
type Project struct {
	Name    string
	Summary string
	Href    string
	Tags    []string
}

// Projects lists the projects page entries, in display order.
var Projects = []Project{
	{Name: "Vmail", Summary: "Talk to your email.", Tags: []string{"voice", "ai"}},
	{Name: "Co-scientist", Summary: "A research assistant that reads papers with you.", Tags: []string{"ai", "research"}},
	{Name: "Medical scribe", Summary: "A multilingual scribe for clinic visits.", Tags: []string{"ai", "health"}},
}

// Role is one entry on the experience page.
type Role struct {
	Company string
	Title   string
	Period  string
	Summary string
}

// Experience lists the experience page entries, newest first.
var Experience = []Role{
	{Company: "Voice apps for real estate", Title: "Founder", Period: "Now", Summary: "Voice-first assistants for agents."},
	{Company: "Hazel", Title: "Co-founder", Period: "Earlier", Summary: "Raised a $2M seed round at 19."},
}

// ProjectsPage renders Projects.
func ProjectsPage() *vdom.VNode {
	return ui.VStack(
		vdom.Class("projects"),
		ui.Heading(8, "Projects"),
		vdom.Range(Projects, func(p Project, _ int) *vdom.VNode {
			title := vdom.Text(p.Name)
			if p.Href != "" {
				title = ui.Link(p.Href, p.Name)
			}
			return ui.Card("",
				vdom.Key(p.Name),
				vdom.H3(vdom.Class("card-title"), title),
				ui.TextBlock(4, p.Summary),
				ui.HStack(vdom.Range(p.Tags, func(tag string, _ int) *vdom.VNode {
					return ui.Badge(tag)
				})),
			)
		}),
	)
}

// ExperiencePage renders Experience.
func ExperiencePage() *vdom.VNode {
	return ui.VStack(
		vdom.Class("experience"),
		ui.Heading(8, "Experience"),
		vdom.Range(Experience, func(r Role, _ int) *vdom.VNode {
			return ui.Card(r.Company,
				vdom.Key(r.Company),
				ui.TextBlock(3, r.Title, " · ", r.Period),
				ui.TextBlock(4, r.Summary),
			)
		}),
	)
}
