package content

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"

	"github.com/vedantk/website/internal/errors"
)

// WordsPerMinute is the reading speed behind Post.ReadingMinutes.
const WordsPerMinute = 200

// Post is a parsed writing.
type Post struct {
	// Slug is the file name without the .md extension.
	Slug string

	Meta Meta

	// HTML is the rendered, sanitised body.
	HTML string

	// Words is the body word count with markdown punctuation removed.
	Words int

	// Source is the path of the file within the loaded fs.
	Source string
}

// Path is the canonical URL path of the post.
func (p Post) Path() string {
	return "/writings/" + p.Slug
}

// ReadingMinutes is the estimated reading time, never less than a minute.
func (p Post) ReadingMinutes() int {
	return max(1, (p.Words+WordsPerMinute-1)/WordsPerMinute)
}

// Duration is the reading time as shown under the post title.
func (p Post) Duration() string {
	return fmt.Sprintf("~ %d min read", p.ReadingMinutes())
}

// ImageAlt is the alt text for the post image, defaulting to the title.
func (p Post) ImageAlt() string {
	if p.Meta.ImageAlt != "" {
		return p.Meta.ImageAlt
	}
	return p.Meta.Title
}

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Typographer),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	policy = func() *bluemonday.Policy {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[\w+-]+$`)).OnElements("code")
		p.AllowAttrs("loading").Matching(regexp.MustCompile(`^(lazy|eager)$`)).OnElements("img")
		return p
	}()

	markdownPunct = regexp.MustCompile("[#*_`\\[\\]()]")
	yamlLine      = regexp.MustCompile(`line (\d+)`)
)

// LoadPosts parses every *.md file directly under dir in fsys, hidden posts
// included. Slugs keep the file name's case but must be unique ignoring
// case. The result is sorted by date, newest first, then by slug.
func LoadPosts(fsys fs.FS, dir string) ([]Post, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.New("E203").WithLocation(dir, 0, 0).Wrap(err)
	}

	posts := make([]Post, 0, len(entries))
	seen := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") || strings.HasPrefix(name, ".") {
			continue
		}
		file := path.Join(dir, name)
		slug := strings.TrimSuffix(name, ".md")
		key := strings.ToLower(slug)
		if prev, ok := seen[key]; ok {
			return nil, errors.New("E202").WithLocation(file, 0, 0).
				WithDetailf("slug %q is also used by %s", slug, prev)
		}
		seen[key] = file

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, errors.New("E203").WithLocation(file, 0, 0).Wrap(err)
		}
		post, err := ParsePost(file, slug, data)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	SortPosts(posts)
	return posts, nil
}

// SortPosts orders posts newest first, breaking ties by slug.
func SortPosts(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i].Meta.Date, posts[j].Meta.Date
		if !a.Equal(b.Time) {
			return a.After(b.Time)
		}
		return posts[i].Slug < posts[j].Slug
	})
}

// ParsePost parses a single markdown file. file is used for error locations.
func ParsePost(file, slug string, data []byte) (Post, error) {
	src := strings.Split(string(data), "\n")
	front, body, bodyLine, ok := splitFrontmatter(data)
	if !ok {
		return Post{}, errors.New("E200").WithLocation(file, 1, 0).WithSource(src, 2).
			WithDetail("missing --- frontmatter block")
	}

	var meta Meta
	if err := yaml.Unmarshal(front, &meta); err != nil {
		line := 0
		if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
			line, _ = strconv.Atoi(m[1])
			line++ // frontmatter starts after the opening ---
		}
		return Post{}, errors.New("E200").WithLocation(file, line, 0).WithSource(src, 2).Wrap(err)
	}

	switch {
	case strings.TrimSpace(meta.Title) == "":
		return Post{}, errors.New("E201").WithLocation(file, 1, 0).WithDetail("title")
	case meta.Date.IsZero():
		return Post{}, errors.New("E201").WithLocation(file, 1, 0).WithDetail("date")
	}

	var buf bytes.Buffer
	if err := markdown.Convert(body, &buf); err != nil {
		return Post{}, errors.New("E200").WithLocation(file, bodyLine, 0).
			WithDetail("cannot render markdown").Wrap(err)
	}

	return Post{
		Slug:   slug,
		Meta:   meta,
		HTML:   policy.Sanitize(buf.String()),
		Words:  CountWords(string(body)),
		Source: file,
	}, nil
}

// splitFrontmatter separates the YAML block from the body. bodyLine is the
// 1-based line where the body starts.
func splitFrontmatter(data []byte) (front, body []byte, bodyLine int, ok bool) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.HasPrefix(text, "---\n") {
		return nil, nil, 0, false
	}
	rest := text[len("---\n"):]

	var end, next int
	switch {
	case strings.HasPrefix(rest, "---\n"), rest == "---":
		end, next = 0, min(len(rest), 4)
	default:
		idx := strings.Index(rest, "\n---\n")
		if idx < 0 {
			if !strings.HasSuffix(rest, "\n---") {
				return nil, nil, 0, false
			}
			idx = len(rest) - len("\n---")
		}
		end, next = idx+1, min(len(rest), idx+len("\n---\n"))
	}

	front = []byte(rest[:end])
	body = []byte(rest[next:])
	bodyLine = strings.Count(text[:len(text)-len(rest)+next], "\n") + 1
	return front, body, bodyLine, true
}

// CountWords counts whitespace-separated words after stripping markdown
// punctuation.
func CountWords(markdown string) int {
	return len(strings.Fields(markdownPunct.ReplaceAllString(markdown, "")))
}
