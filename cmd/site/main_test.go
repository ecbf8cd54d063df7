package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/vedantk/website/internal/errors"
)

const testConfig = `{
  "site": {"title": "Test", "author": "Tester", "baseURL": "https://example.com"},
  "build": {"output": "out", "fingerprint": true},
  "deploy": {"bucket": "example.com", "region": "us-west-2"},
  "log": {"level": "error"}
}`

func writeSite(t *testing.T, post string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"site.json":              testConfig,
		"content/writings/hi.md": post,
		"content/books.json":     `{"books": [{"title": "Book", "author": "Someone", "highlights": [{"text": "Quote."}]}]}`,
	}
	for name, data := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

const goodPost = "---\ntitle: Hi\ndate: 2024-02-03\n---\nHello there.\n"

func TestRootCommands(t *testing.T) {
	var names []string
	for _, c := range newRootCmd().Commands() {
		names = append(names, c.Name())
	}
	sort.Strings(names)
	want := "build,deploy,dev,routes,serve,version"
	if got := strings.Join(names, ","); got != want {
		t.Errorf("commands = %s, want %s", got, want)
	}
}

func TestLoadSite(t *testing.T) {
	s, err := loadSite(writeSite(t, goodPost))
	if err != nil {
		t.Fatalf("loadSite: %v", err)
	}
	if !s.found {
		t.Error("site.json not found")
	}
	if s.library.Posts().Len() != 1 || s.library.Books().TotalHighlights != 1 {
		t.Errorf("posts=%d highlights=%d", s.library.Posts().Len(), s.library.Books().TotalHighlights)
	}
	if _, err := s.static.Open("styles.css"); err != nil {
		t.Errorf("embedded static missing styles.css: %v", err)
	}
}

func TestLoadSiteBadPost(t *testing.T) {
	_, err := loadSite(writeSite(t, "---\ndate: 2024-02-03\n---\nNo title.\n"))
	e, ok := errors.As(err)
	if !ok || e.Code != "E201" {
		t.Fatalf("loadSite error = %v, want E201", err)
	}
}

func TestLoadSiteWithoutConfig(t *testing.T) {
	s, err := loadSite(t.TempDir())
	if err != nil {
		t.Fatalf("loadSite: %v", err)
	}
	if s.found {
		t.Error("found = true for empty dir")
	}
	if s.library.Posts().Len() != 0 {
		t.Errorf("posts = %d", s.library.Posts().Len())
	}
}

func TestRunBuild(t *testing.T) {
	dir := writeSite(t, goodPost)
	res, err := runBuild(dir, buildFlags{clean: true})
	if err != nil {
		t.Fatalf("runBuild: %v", err)
	}
	if res.Output != filepath.Join(dir, "out") {
		t.Errorf("Output = %s", res.Output)
	}
	for _, rel := range []string{"index.html", "writings/hi/index.html", "books/index.html", "sitemap.xml", "static/manifest.json"} {
		if _, err := os.Stat(filepath.Join(res.Output, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(res.Output, "static", "styles.css")); err == nil {
		t.Error("unfingerprinted styles.css exported")
	}
}

func TestRunDeployDryRun(t *testing.T) {
	dir := writeSite(t, goodPost)
	if err := runDeploy(dir, "", "preview", true, false, false); err != nil {
		t.Fatalf("runDeploy: %v", err)
	}
}

func TestRunDeployNeedsBucket(t *testing.T) {
	err := runDeploy(t.TempDir(), "", "", true, true, false)
	if e, ok := errors.As(err); !ok || e.Code != "E121" {
		t.Fatalf("runDeploy error = %v, want E121", err)
	}
}
