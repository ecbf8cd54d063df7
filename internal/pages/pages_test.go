package pages

import (
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/vedantk/website/internal/content"
	"github.com/vedantk/website/internal/errors"
	"github.com/vedantk/website/pkg/render"
	"github.com/vedantk/website/pkg/router"
	"github.com/vedantk/website/pkg/vdom"
	"github.com/vedantk/website/pkg/vtest"
)

var testSite = Site{Title: "Vedant", Author: "Vedant Khanna", Year: 2024}

func testLibrary() *content.Library {
	date := func(s string) content.Date {
		t, _ := time.Parse(content.DateLayout, s)
		return content.Date{Time: t}
	}
	return content.StaticLibrary([]content.Post{
		{
			Slug:  "first",
			Meta:  content.Meta{Title: "First post", Date: date("2024-01-10"), Tags: content.StringList{"go"}, Description: "intro"},
			HTML:  "<p>Hello <em>there</em></p>",
			Words: 450,
		},
		{
			Slug: "second",
			Meta: content.Meta{Title: "Second post", Date: date("2024-02-01")},
			HTML: "<p>Later</p>",
		},
	}, &content.Books{
		TotalBooks:      1,
		TotalHighlights: 1,
		Books: []content.Book{{
			Title:      "Zero to One",
			Author:     "Peter Thiel",
			Highlights: []content.Highlight{{Text: "Competition is for losers.", Note: "ch. 3"}},
		}},
	})
}

func toHTML(t *testing.T, n *vdom.VNode) string {
	t.Helper()
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(n)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return html
}

func TestHomeAndBlogsRegistry(t *testing.T) {
	reg := router.NewRegistry(Layout(testSite))
	if err := reg.Add("/", "Me", Home); err != nil {
		t.Fatalf("Add(/): %v", err)
	}
	if err := reg.Add("/blogs", "Blogs", Blogs); err != nil {
		t.Fatalf("Add(/blogs): %v", err)
	}

	pages := reg.Pages()
	if len(pages) != 2 {
		t.Fatalf("len(Pages()) = %d, want 2", len(pages))
	}
	if pages[0].Route != "/" || pages[0].Title != "Me" {
		t.Errorf("pages[0] = %s %q", pages[0].Route, pages[0].Title)
	}
	if pages[1].Route != "/blogs" || pages[1].Title != "Blogs" {
		t.Errorf("pages[1] = %s %q", pages[1].Route, pages[1].Title)
	}
}

func TestDuplicateRouteFailsBeforeRender(t *testing.T) {
	reg := router.NewRegistry(Layout(testSite))
	calls := 0
	fn := func() *vdom.VNode {
		calls++
		return Home()
	}
	if err := reg.Add("/dup", "One", fn); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	err := reg.Add("/dup", "Two", fn)
	if !stderrors.Is(err, errors.ErrDuplicateRoute) {
		t.Fatalf("second Add = %v, want duplicate route", err)
	}
	if calls != 0 {
		t.Errorf("render called %d times during registration", calls)
	}
}

func TestRegister(t *testing.T) {
	reg, err := New(testSite, Deps{Library: testLibrary()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !reg.Sealed() {
		t.Error("registry not sealed")
	}

	var routes []string
	for _, p := range reg.Pages() {
		routes = append(routes, p.Route)
	}
	want := "/ /blogs /writings /projects /experience /books /writings/:slug /blogs/:slug"
	if got := strings.Join(routes, " "); got != want {
		t.Errorf("routes = %s\nwant     %s", got, want)
	}

	var nav []string
	for _, item := range reg.Nav() {
		nav = append(nav, item.Title)
	}
	if got := strings.Join(nav, ","); got != "Me,Blogs,Writings,Projects,Experience,Books" {
		t.Errorf("nav = %s", got)
	}
}

func TestRegisterTwiceFails(t *testing.T) {
	reg := router.NewRegistry(Layout(testSite))
	if err := Register(reg, Deps{}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := Register(reg, Deps{}); !stderrors.Is(err, errors.ErrDuplicateRoute) {
		t.Fatalf("second Register = %v, want duplicate route", err)
	}
}

func TestLayoutWrapsContent(t *testing.T) {
	reg, err := New(testSite, Deps{Library: testLibrary()})
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range reg.Pages() {
		if p.Dynamic() {
			continue
		}
		t.Run(p.Title, func(t *testing.T) {
			tree := p.Render()
			for _, tag := range []string{"header", "nav", "main", "footer"} {
				if vdom.Find(tree, vdom.ByTag(tag)) == nil {
					t.Errorf("missing <%s>", tag)
				}
			}
			main := vdom.Find(tree, vdom.ByTag("main"))
			if !strings.Contains(vdom.TextContent(main), p.Title) && p.Route != "/" {
				t.Errorf("main does not mention %q", p.Title)
			}
		})
	}
}

func TestActiveNavLink(t *testing.T) {
	reg, err := New(testSite, Deps{Library: testLibrary()})
	if err != nil {
		t.Fatal(err)
	}
	m, ok := reg.Match("/writings/first")
	if !ok {
		t.Fatal("no match for /writings/first")
	}
	view, err := m.Page.RenderParams(m.Params)
	if err != nil {
		t.Fatal(err)
	}
	current := vdom.FindAll(view.Body, func(n *vdom.VNode) bool {
		return n.Attr("aria-current") == "page"
	})
	if len(current) != 1 || current[0].Attr("href") != "/writings" {
		t.Fatalf("aria-current links = %v", current)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	reg, err := New(testSite, Deps{Library: testLibrary()})
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range reg.Pages() {
		for _, params := range p.Paths() {
			a, errA := p.RenderParams(params)
			b, errB := p.RenderParams(params)
			if errA != nil || errB != nil {
				t.Fatalf("%s %v: %v %v", p.Route, params, errA, errB)
			}
			if a.Body == b.Body {
				t.Errorf("%s: render returned the same tree twice", p.Route)
			}
			if !vdom.Equal(a.Body, b.Body) {
				t.Errorf("%s %v: renders differ", p.Route, params)
			}
		}
	}
}

func TestHome(t *testing.T) {
	home := Home()
	vtest.ExpectAttribute(t, home, "src", AvatarURL)
	vtest.ExpectContains(t, home, "Beliefs")
	vtest.ExpectContains(t, home, `<details class="accordion-item"`)
	vtest.ExpectCount(t, home, "details", 3)
	for _, item := range []string{"First Item", "Second Item", "Third Item"} {
		vtest.ExpectContains(t, home, item)
	}
}

func TestBlogs(t *testing.T) {
	tree := Blogs()
	vtest.ExpectText(t, tree, "h1", "Blogs")
	vtest.ExpectCount(t, tree, "a", 2)
	vtest.ExpectAttribute(t, tree, "href", "/writings")
	vtest.ExpectAttribute(t, tree, "href", "/books")
}

func TestWritingsPage(t *testing.T) {
	html := toHTML(t, WritingsPage(testLibrary())())
	second := strings.Index(html, "Second post")
	first := strings.Index(html, "First post")
	if first < 0 || second < 0 || second > first {
		t.Errorf("posts not newest first: first=%d second=%d", first, second)
	}
	for _, want := range []string{`href="/writings/first"`, "~ 3 min read", "January 10, 2024", `datetime="2024-01-10"`, "intro"} {
		if !strings.Contains(html, want) {
			t.Errorf("writings missing %q", want)
		}
	}
}

func TestWritingsPageEmpty(t *testing.T) {
	html := toHTML(t, WritingsPage(content.StaticLibrary(nil, nil))())
	if !strings.Contains(html, "Nothing here yet.") {
		t.Errorf("empty writings = %s", html)
	}
}

func TestPostPage(t *testing.T) {
	view, err := PostPage(testLibrary())(router.Params{"slug": "first"})
	if err != nil {
		t.Fatal(err)
	}
	if view.Title != "First post" {
		t.Errorf("Title = %q", view.Title)
	}
	if view.Meta.Description != "intro" {
		t.Errorf("Description = %q", view.Meta.Description)
	}
	html := toHTML(t, view.Body)
	if !strings.Contains(html, "<p>Hello <em>there</em></p>") {
		t.Errorf("post html = %s", html)
	}
}

func TestPostPageNotFound(t *testing.T) {
	_, err := PostPage(testLibrary())(router.Params{"slug": "missing"})
	if !stderrors.Is(err, errors.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestPostAlias(t *testing.T) {
	reg, err := New(testSite, Deps{Library: testLibrary()})
	if err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{"/writings/second", "/blogs/second"} {
		m, ok := reg.Match(path)
		if !ok {
			t.Fatalf("no match for %s", path)
		}
		view, err := m.Page.RenderParams(m.Params)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if view.Title != "Second post" {
			t.Errorf("%s title = %q", path, view.Title)
		}
	}
	alias, _ := reg.Lookup("/blogs/:slug")
	if alias.InNav || alias.InSitemap {
		t.Errorf("alias should stay out of nav and sitemap: %+v", alias)
	}
	if got := alias.Paths(); len(got) != 2 {
		t.Errorf("alias paths = %v, want one per post", got)
	}
}

func TestPostPaths(t *testing.T) {
	paths := PostPaths(testLibrary())()
	if len(paths) != 2 || paths[0]["slug"] != "second" || paths[1]["slug"] != "first" {
		t.Errorf("paths = %v", paths)
	}
}

func TestBooksPage(t *testing.T) {
	html := toHTML(t, BooksPage(testLibrary())())
	for _, want := range []string{"Zero to One by Peter Thiel", "Competition is for losers.", "ch. 3", "1 highlights from 1 books"} {
		if !strings.Contains(html, want) {
			t.Errorf("books missing %q", want)
		}
	}
	empty := toHTML(t, BooksPage(content.StaticLibrary(nil, nil))())
	if !strings.Contains(empty, "No highlights yet.") {
		t.Errorf("empty books = %s", empty)
	}
}

func TestPageMeta(t *testing.T) {
	reg, err := New(testSite, Deps{})
	if err != nil {
		t.Fatal(err)
	}
	projects, _ := reg.Lookup("/projects")
	if !strings.Contains(projects.Meta.Description, "Vmail") || len(projects.Meta.Keywords) != 8 {
		t.Errorf("projects meta = %+v", projects.Meta)
	}
	home, _ := reg.Lookup("/")
	if home.Meta.Priority != 1.0 || home.Meta.ChangeFreq != "monthly" {
		t.Errorf("home sitemap = %q %v", home.Meta.ChangeFreq, home.Meta.Priority)
	}
	blogs, _ := reg.Lookup("/blogs")
	if blogs.InSitemap {
		t.Error("/blogs should not be in the sitemap")
	}
}

func TestNotFound(t *testing.T) {
	html := toHTML(t, NotFound("/nope<x>"))
	if !strings.Contains(html, "<code>/nope&lt;x&gt;</code>") {
		t.Errorf("not found = %s", html)
	}
}

func TestFooter(t *testing.T) {
	site := testSite
	site.Links = []FooterLink{{Label: "GitHub", Href: "https://github.com/vedantk"}}
	tree := Layout(site)(router.Chrome{Path: "/"}, Home())
	f := vdom.Find(tree, vdom.ByTag("footer"))
	text := vdom.TextContent(f)
	if !strings.Contains(text, "© 2024 Vedant Khanna") || !strings.Contains(text, "GitHub") {
		t.Errorf("footer = %q", text)
	}
	a := vdom.Find(f, vdom.ByTag("a"))
	if a.Attr("rel") == "" {
		t.Error("external footer link has no rel")
	}
}
