package export

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"github.com/vedantk/website/internal/errors"
	"github.com/vedantk/website/pkg/assets"
	"github.com/vedantk/website/pkg/router"
)

// Site is the rendering surface the export walks. *website.App satisfies it.
type Site interface {
	Registry() *router.Registry
	RenderPath(ctx context.Context, path string) ([]byte, error)
	RenderNotFound(path string) ([]byte, error)
	Sitemap(base string) ([]byte, error)
	PostsJSON() ([]byte, error)
}

// Options configures an export.
type Options struct {
	// Output is the destination directory.
	Output string

	// Clean removes Output before writing.
	Clean bool

	// Static is copied under StaticPrefix. Nil skips asset copying.
	Static fs.FS

	// StaticPrefix is the URL prefix static files are served under.
	StaticPrefix string

	// Manifest renames assets on copy. Nil copies names unchanged.
	Manifest *assets.Manifest

	// BaseURL is the origin used for sitemap locations.
	BaseURL string

	Logger *slog.Logger

	// OnFile is called after each file is written.
	OnFile func(File)
}

// File is one written output file, relative to the output directory.
type File struct {
	Path string
	Size int64
}

// Result summarizes an export.
type Result struct {
	Output   string
	Files    []File
	Pages    int
	Assets   int
	Bytes    int64
	Duration time.Duration
}

// NotFoundPath is the request path the 404 document is rendered for.
const NotFoundPath = "/404"

type exporter struct {
	ctx    context.Context
	site   Site
	opts   Options
	result *Result
}

// Run exports site into opts.Output.
func Run(ctx context.Context, site Site, opts Options) (*Result, error) {
	start := time.Now()
	if opts.Output == "" {
		return nil, errors.New("E300").WithDetail("no output directory").
			WithSuggestion("Set build.output in site.json or pass --out.")
	}
	if opts.StaticPrefix == "" {
		opts.StaticPrefix = "/static"
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	out, err := filepath.Abs(opts.Output)
	if err != nil {
		return nil, errors.New("E300").Wrap(err)
	}
	if opts.Clean {
		if out == filepath.Dir(out) {
			return nil, errors.New("E300").WithDetailf("refusing to clean %s", out)
		}
		if err := os.RemoveAll(out); err != nil {
			return nil, errors.New("E300").Wrap(err)
		}
	}

	e := &exporter{ctx: ctx, site: site, opts: opts, result: &Result{Output: out}}
	if err := e.pages(); err != nil {
		return nil, err
	}
	if err := e.documents(); err != nil {
		return nil, err
	}
	if err := e.assets(); err != nil {
		return nil, err
	}

	e.result.Duration = time.Since(start)
	opts.Logger.Info("export complete",
		"output", out,
		"files", len(e.result.Files),
		"bytes", e.result.Bytes,
		"duration", e.result.Duration,
	)
	return e.result, nil
}

// pages renders every static page and every listed dynamic path.
func (e *exporter) pages() error {
	seen := make(map[string]bool)
	for _, p := range e.site.Registry().Pages() {
		for _, params := range p.Paths() {
			urlPath := p.Path(params)
			if seen[urlPath] {
				continue
			}
			seen[urlPath] = true

			if err := e.ctx.Err(); err != nil {
				return errors.New("E300").Wrap(err)
			}
			html, err := e.site.RenderPath(e.ctx, urlPath)
			if err != nil {
				return errors.New("E300").WithDetailf("render %s", urlPath).Wrap(err)
			}
			if err := e.write(OutputFile(urlPath), html); err != nil {
				return err
			}
			e.result.Pages++
		}
	}
	return nil
}

// documents writes 404.html, sitemap.xml and api/posts.json.
func (e *exporter) documents() error {
	notFound, err := e.site.RenderNotFound(NotFoundPath)
	if err != nil {
		return errors.New("E300").WithDetail("render 404").Wrap(err)
	}
	if err := e.write("404.html", notFound); err != nil {
		return err
	}

	sitemap, err := e.site.Sitemap(e.opts.BaseURL)
	if err != nil {
		return errors.New("E300").WithDetail("sitemap").Wrap(err)
	}
	if err := e.write("sitemap.xml", sitemap); err != nil {
		return err
	}

	posts, err := e.site.PostsJSON()
	if err != nil {
		return errors.New("E300").WithDetail("posts").Wrap(err)
	}
	return e.write(path.Join("api", "posts.json"), posts)
}

// assets copies the static fs, renaming through the manifest.
func (e *exporter) assets() error {
	if e.opts.Static == nil {
		return nil
	}
	dir := strings.Trim(e.opts.StaticPrefix, "/")

	err := fs.WalkDir(e.opts.Static, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if err := e.ctx.Err(); err != nil {
			return err
		}
		data, err := fs.ReadFile(e.opts.Static, name)
		if err != nil {
			return err
		}
		target := name
		if e.opts.Manifest != nil {
			target = e.opts.Manifest.Resolve(name)
		}
		if err := e.write(path.Join(dir, target), data); err != nil {
			return err
		}
		e.result.Assets++
		return nil
	})
	if err != nil {
		return errors.New("E300").WithDetail("copy static assets").Wrap(err)
	}

	if e.opts.Manifest == nil || e.opts.Manifest.Len() == 0 {
		return nil
	}
	data, err := e.opts.Manifest.MarshalJSON()
	if err != nil {
		return errors.New("E300").Wrap(err)
	}
	return e.write(path.Join(dir, assets.ManifestName), data)
}

// write atomically writes data to rel under the output directory.
func (e *exporter) write(rel string, data []byte) error {
	target := filepath.Join(e.result.Output, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.New("E300").Wrap(err)
	}
	if err := atomic.WriteFile(target, bytes.NewReader(data)); err != nil {
		return errors.New("E300").WithLocation(target, 0, 0).Wrap(err)
	}

	f := File{Path: rel, Size: int64(len(data))}
	e.result.Files = append(e.result.Files, f)
	e.result.Bytes += f.Size
	e.opts.Logger.Debug("wrote file", "path", rel, "bytes", f.Size)
	if e.opts.OnFile != nil {
		e.opts.OnFile(f)
	}
	return nil
}

// OutputFile maps a canonical URL path to its file in the export, relative
// and slash-separated: "/" is index.html, "/writings" is
// writings/index.html.
func OutputFile(urlPath string) string {
	p := strings.Trim(urlPath, "/")
	if p == "" {
		return "index.html"
	}
	return p + "/index.html"
}
