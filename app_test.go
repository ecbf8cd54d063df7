package website

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vedantk/website/internal/config"
	"github.com/vedantk/website/internal/content"
	"github.com/vedantk/website/internal/logging"
	"github.com/vedantk/website/internal/pages"
	"github.com/vedantk/website/pkg/middleware"
	"github.com/vedantk/website/pkg/render"
	"github.com/vedantk/website/pkg/router"
	"github.com/vedantk/website/pkg/vdom"
)

func testLibrary() *content.Library {
	date := func(s string) content.Date {
		t, _ := time.Parse(content.DateLayout, s)
		return content.Date{Time: t}
	}
	return content.StaticLibrary([]content.Post{
		{Slug: "older", Meta: content.Meta{Title: "Older", Date: date("2023-05-01"), Tags: content.StringList{"go"}}, HTML: "<p>old</p>"},
		{Slug: "newer", Meta: content.Meta{Title: "Newer", Date: date("2024-07-15"), Description: "fresh"}, HTML: "<p>new</p>"},
		{Slug: "draft", Meta: content.Meta{Title: "Draft", Date: date("2025-01-01"), Tags: content.StringList{"wip"}, Hidden: true}, HTML: "<p>draft</p>"},
	}, nil)
}

func testConfig() *config.Config {
	cfg := config.New()
	cfg.Site.BaseURL = "https://example.com"
	cfg.Site.Author = "Vedant Khanna"
	return cfg
}

func newTestApp(t *testing.T, mutate ...func(*Options)) *App {
	t.Helper()
	cfg := testConfig()
	lib := testLibrary()
	reg, err := pages.New(pages.Site{Title: cfg.Site.Title, Author: cfg.Site.Author, Year: 2024}, pages.Deps{Library: lib})
	if err != nil {
		t.Fatalf("pages.New: %v", err)
	}
	opts := Options{
		Config:   cfg,
		Registry: reg,
		Library:  lib,
		Static: fstest.MapFS{
			"styles.css":          {Data: []byte("body{}")},
			"styles.0123abcd.css": {Data: []byte("body{}")},
			"img":                 {Mode: fs.ModeDir | 0o755},
		},
		Logger: logging.NewNop(),
	}
	for _, m := range mutate {
		m(&opts)
	}
	app, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return app
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "http://example.com"+target, nil))
	return rr
}

func TestNewRequiresConfigAndRegistry(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Error("New without config succeeded")
	}
	if _, err := New(Options{Config: config.New()}); err == nil {
		t.Error("New without registry succeeded")
	}
}

func TestNewSealsRegistry(t *testing.T) {
	app := newTestApp(t)
	if !app.Registry().Sealed() {
		t.Error("registry not sealed")
	}
}

func TestServePages(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		path  string
		title string
		body  string
	}{
		{"/", "<title>Vedant</title>", "Beliefs"},
		{"/blogs", "<title>Blogs | Vedant</title>", "Blogs"},
		{"/writings", "<title>Writings | Vedant</title>", `href="/writings/newer"`},
		{"/projects", "<title>Projects | Vedant</title>", "Vmail"},
		{"/experience", "<title>Experience | Vedant</title>", "Hazel"},
		{"/books", "<title>Books | Vedant</title>", "No highlights yet."},
		{"/writings/older", "<title>Older | Vedant</title>", "<p>old</p>"},
		{"/blogs/newer", "<title>Newer | Vedant</title>", "<p>new</p>"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := get(t, app, tt.path)
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rr.Code)
			}
			if ct := rr.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
				t.Errorf("Content-Type = %q", ct)
			}
			html := rr.Body.String()
			if !strings.HasPrefix(html, "<!DOCTYPE html>") {
				t.Errorf("missing doctype")
			}
			for _, want := range []string{tt.title, tt.body, "<nav", "<footer", `href="/static/styles.css"`} {
				if !strings.Contains(html, want) {
					t.Errorf("body missing %q", want)
				}
			}
		})
	}
}

func TestPageHead(t *testing.T) {
	rr := get(t, newTestApp(t), "/writings/newer")
	html := rr.Body.String()
	for _, want := range []string{
		`<meta name="description" content="fresh">`,
		`<link rel="canonical" href="https://example.com/writings/newer">`,
		`<meta name="author" content="Vedant Khanna">`,
		`<html lang="en">`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("head missing %s", want)
		}
	}
}

func TestCanonicalLinkIsUnescaped(t *testing.T) {
	app := newTestApp(t)
	for _, path := range []string{"/writings/new%65r", "/writings/%6Eewer"} {
		rr := get(t, app, path)
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want 200", path, rr.Code)
		}
		if want := `<link rel="canonical" href="https://example.com/writings/newer">`; !strings.Contains(rr.Body.String(), want) {
			t.Errorf("GET %s: head missing %s", path, want)
		}
	}
}

func TestHiddenPostIsUnlisted(t *testing.T) {
	app := newTestApp(t)

	rr := get(t, app, "/writings/draft")
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /writings/draft status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "<p>draft</p>") {
		t.Error("hidden post body not rendered")
	}

	for _, path := range []string{"/writings", "/api/posts", "/sitemap.xml"} {
		if body := get(t, app, path).Body.String(); strings.Contains(body, "/writings/draft") {
			t.Errorf("GET %s lists the hidden post", path)
		}
	}
	if body := get(t, app, "/writings").Body.String(); strings.Contains(body, "wip") {
		t.Error("tag of a hidden post is listed")
	}
}

func TestHeadRequest(t *testing.T) {
	app := newTestApp(t)
	rr := httptest.NewRecorder()
	app.ServeHTTP(rr, httptest.NewRequest(http.MethodHead, "/projects", nil))
	if rr.Code != http.StatusOK || rr.Body.Len() != 0 {
		t.Errorf("HEAD status=%d len=%d", rr.Code, rr.Body.Len())
	}
}

func TestNotFound(t *testing.T) {
	app := newTestApp(t)
	for _, path := range []string{"/nope", "/writings/missing", "/blogs/missing/extra"} {
		rr := get(t, app, path)
		if rr.Code != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want 404", path, rr.Code)
		}
		html := rr.Body.String()
		if !strings.Contains(html, "Page not found") || !strings.Contains(html, "<nav") {
			t.Errorf("GET %s: 404 page without chrome", path)
		}
	}
}

func TestCanonicalRedirects(t *testing.T) {
	app := newTestApp(t)
	tests := []struct {
		path         string
		wantLocation string
	}{
		{"/projects/", "/projects"},
		{"/writings//newer", "/writings/newer"},
		{"/a/./b", "/a/b"},
		{"/a/../blogs", "/blogs"},
		{"/writings/?tag=go", "/writings?tag=go"},
	}
	for _, tt := range tests {
		rr := get(t, app, tt.path)
		if rr.Code != http.StatusMovedPermanently {
			t.Fatalf("GET %s status = %d, want 301", tt.path, rr.Code)
		}
		if got := rr.Header().Get("Location"); got != tt.wantLocation {
			t.Errorf("GET %s Location = %q, want %q", tt.path, got, tt.wantLocation)
		}
	}
}

func TestInvalidPathIsBadRequest(t *testing.T) {
	app := newTestApp(t)
	for _, path := range []string{"/../secret", "/a%00b"} {
		if rr := get(t, app, path); rr.Code != http.StatusBadRequest {
			t.Errorf("GET %s status = %d, want 400", path, rr.Code)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	app := newTestApp(t)
	rr := httptest.NewRecorder()
	app.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST / status = %d, want 405", rr.Code)
	}
}

func TestPostsAPI(t *testing.T) {
	rr := get(t, newTestApp(t), "/api/posts")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var posts []content.PostSummary
	if err := json.Unmarshal(rr.Body.Bytes(), &posts); err != nil {
		t.Fatal(err)
	}
	if len(posts) != 2 || posts[0].Path != "/writings/newer" || posts[1].Path != "/writings/older" {
		t.Fatalf("posts = %+v", posts)
	}
	if posts[0].Meta.Date.Format(content.DateLayout) != "2024-07-15" {
		t.Errorf("date = %v", posts[0].Meta.Date)
	}
}

func TestSitemap(t *testing.T) {
	rr := get(t, newTestApp(t), "/sitemap.xml")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if got := rr.Header().Get("Cache-Control"); got != "max-age=3600" {
		t.Errorf("Cache-Control = %q", got)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/xml" {
		t.Errorf("Content-Type = %q", got)
	}

	var set URLSet
	if err := xml.Unmarshal(rr.Body.Bytes(), &set); err != nil {
		t.Fatal(err)
	}
	want := []SitemapURL{
		{Loc: "https://example.com/", ChangeFreq: "monthly", Priority: "1.0"},
		{Loc: "https://example.com/writings", ChangeFreq: "weekly", Priority: "0.9"},
		{Loc: "https://example.com/projects", ChangeFreq: "monthly", Priority: "0.8"},
		{Loc: "https://example.com/experience", ChangeFreq: "monthly", Priority: "0.8"},
		{Loc: "https://example.com/books", ChangeFreq: "monthly", Priority: "0.7"},
		{Loc: "https://example.com/writings/newer", LastMod: "2024-07-15T00:00:00.000Z", ChangeFreq: "monthly", Priority: "0.7"},
		{Loc: "https://example.com/writings/older", LastMod: "2023-05-01T00:00:00.000Z", ChangeFreq: "monthly", Priority: "0.7"},
	}
	if len(set.URLs) != len(want) {
		t.Fatalf("urls = %+v", set.URLs)
	}
	for i := range want {
		if set.URLs[i] != want[i] {
			t.Errorf("url[%d] = %+v, want %+v", i, set.URLs[i], want[i])
		}
	}
}

func TestSitemapUsesRequestOrigin(t *testing.T) {
	app := newTestApp(t, func(o *Options) { o.Config.Site.BaseURL = "" })
	rr := httptest.NewRecorder()
	app.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "http://localhost:8080/sitemap.xml", nil))
	if !strings.Contains(rr.Body.String(), "<loc>http://localhost:8080/</loc>") {
		t.Errorf("sitemap = %s", rr.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	rr := get(t, newTestApp(t), "/healthz")
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" || body["pages"] != float64(8) || body["posts"] != float64(2) {
		t.Errorf("healthz = %v", body)
	}
}

func TestPanicIsRecovered(t *testing.T) {
	reg := router.NewRegistry(nil)
	if err := reg.Add("/boom", "Boom", func() *vdom.VNode { panic("boom") }); err != nil {
		t.Fatal(err)
	}
	app, err := New(Options{Config: testConfig(), Registry: reg, Logger: logging.NewNop()})
	if err != nil {
		t.Fatal(err)
	}
	if rr := get(t, app, "/boom"); rr.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rr.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	app := newTestApp(t, func(o *Options) {
		o.Config.Metrics.Enabled = true
		o.Metrics = middleware.NewMetrics(middleware.WithRegistry(reg))
		o.MetricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	})

	get(t, app, "/writings/newer")
	get(t, app, "/nope")

	rr := get(t, app, "/metrics")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{
		`site_requests_total{method="GET",route="/writings/:slug",status="200"} 1`,
		`site_requests_total{method="GET",route="unmatched",status="404"} 1`,
		`site_page_renders_total{result="ok",route="/writings/:slug"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %s", want)
		}
	}
}

func TestMetricsDisabled(t *testing.T) {
	if rr := get(t, newTestApp(t), "/metrics"); rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestExtraRoutesAndScripts(t *testing.T) {
	app := newTestApp(t, func(o *Options) {
		o.Routes = map[string]http.Handler{
			"/_site/reload": http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("socket"))
			}),
		}
		o.Scripts = []render.ScriptTag{{Inline: "window.reload = true;"}}
	})
	if rr := get(t, app, "/_site/reload"); rr.Body.String() != "socket" {
		t.Errorf("extra route body = %q", rr.Body.String())
	}
	if rr := get(t, app, "/"); !strings.Contains(rr.Body.String(), "window.reload = true;") {
		t.Error("inline script not injected")
	}
}

func TestRenderPathDirect(t *testing.T) {
	app := newTestApp(t)
	html, err := app.RenderPath(context.Background(), "/projects")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), "Projects") {
		t.Error("RenderPath output missing content")
	}
	if _, err := app.RenderPath(context.Background(), "/missing"); err == nil {
		t.Error("RenderPath of unknown path succeeded")
	}
}
