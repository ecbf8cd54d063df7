package website

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vedantk/website/internal/config"
	"github.com/vedantk/website/internal/content"
	"github.com/vedantk/website/internal/errors"
	"github.com/vedantk/website/pkg/assets"
	"github.com/vedantk/website/pkg/middleware"
	"github.com/vedantk/website/pkg/render"
	"github.com/vedantk/website/pkg/router"
)

// Options configure an App. Config and Registry are required.
type Options struct {
	Config   *config.Config
	Registry *router.Registry

	// Library supplies posts for the API and sitemap. Nil means no posts.
	Library *content.Library

	// Static is served under Config.Static.Prefix. Nil uses StaticFS.
	Static fs.FS

	// Assets resolves stylesheet and script names. Nil links them
	// unchanged under the static prefix.
	Assets assets.Resolver

	// Metrics records requests. When Config.Metrics.Enabled and
	// MetricsHandler is nil, promhttp.Handler serves the metrics path.
	Metrics        *middleware.Metrics
	MetricsHandler http.Handler

	// Tracing enables an OpenTelemetry span per request.
	Tracing []middleware.TracingOption

	// Scripts are added to every page, such as the live reload client.
	Scripts []render.ScriptTag

	// Routes mounts extra handlers by exact path, such as the reload
	// socket.
	Routes map[string]http.Handler

	Logger *slog.Logger
}

// App is the site's http.Handler.
type App struct {
	config   *config.Config
	registry *router.Registry
	library  *content.Library
	static   fs.FS
	assets   assets.Resolver
	metrics  *middleware.Metrics
	scripts  []render.ScriptTag
	logger   *slog.Logger
	renderer *render.Renderer

	handler http.Handler
}

// New builds the App. The registry is sealed if it is not already.
func New(opts Options) (*App, error) {
	if opts.Config == nil {
		return nil, errors.New("E121").WithDetail("website.New needs a Config")
	}
	if opts.Registry == nil {
		return nil, errors.New("E121").WithDetail("website.New needs a Registry")
	}
	opts.Registry.Seal()

	a := &App{
		config:   opts.Config,
		registry: opts.Registry,
		library:  opts.Library,
		static:   opts.Static,
		assets:   opts.Assets,
		metrics:  opts.Metrics,
		scripts:  opts.Scripts,
		logger:   opts.Logger,
		renderer: render.NewRenderer(render.RendererConfig{}),
	}
	if a.library == nil {
		a.library = content.StaticLibrary(nil, nil)
	}
	if a.static == nil {
		a.static = StaticFS()
	}
	if a.assets == nil {
		a.assets = assets.NewPassthroughResolver(a.config.Static.Prefix)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.RealIP)
	r.Use(chimw.RequestLogger(&logFormatter{logger: a.logger}))
	r.Use(chimw.Recoverer)
	if opts.Tracing != nil {
		r.Use(middleware.Tracing(opts.Tracing...))
	}
	if a.metrics != nil {
		r.Use(a.metrics.Handler)
	}
	r.Use(canonicalize)

	r.Get("/healthz", a.handleHealth)
	r.Get("/api/posts", a.handlePosts)
	r.Get("/sitemap.xml", a.handleSitemap)

	if a.config.Metrics.Enabled {
		h := opts.MetricsHandler
		if h == nil {
			h = promhttp.Handler()
		}
		r.Method(http.MethodGet, a.config.Metrics.Path, h)
	}
	for pattern, h := range opts.Routes {
		r.Handle(pattern, h)
	}

	prefix := strings.TrimRight(a.config.Static.Prefix, "/")
	r.Get(prefix+"/*", a.serveStatic)
	r.Head(prefix+"/*", a.serveStatic)

	r.Get("/*", a.servePage)
	r.Head("/*", a.servePage)
	r.NotFound(a.servePage)

	a.handler = r
	return a, nil
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

// Registry returns the page registry.
func (a *App) Registry() *router.Registry {
	return a.registry
}

// Library returns the content library.
func (a *App) Library() *content.Library {
	return a.library
}

// Config returns the site configuration.
func (a *App) Config() *config.Config {
	return a.config
}

// Static returns the fs served under the static prefix.
func (a *App) Static() fs.FS {
	return a.static
}
