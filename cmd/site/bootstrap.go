package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	website "github.com/vedantk/website"
	"github.com/vedantk/website/internal/config"
	"github.com/vedantk/website/internal/content"
	"github.com/vedantk/website/internal/logging"
	"github.com/vedantk/website/internal/pages"
	"github.com/vedantk/website/pkg/assets"
	"github.com/vedantk/website/pkg/middleware"
	"github.com/vedantk/website/pkg/render"
)

// site is the loaded configuration and content shared by every command.
type site struct {
	cfg     *config.Config
	found   bool
	logger  *slog.Logger
	library *content.Library
	static  fs.FS
}

// loadSite reads site.json from dir (defaults when missing), builds the
// logger and loads all content. Content errors abort startup.
func loadSite(dir string) (*site, error) {
	cfg, found, err := config.LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	lib := content.NewLibrary(contentSource(cfg), logger)
	if err := lib.Load(); err != nil {
		return nil, err
	}

	s := &site{cfg: cfg, found: found, logger: logger, library: lib}
	if p := cfg.StaticPath(); p != "" {
		s.static = os.DirFS(p)
	} else {
		s.static = website.StaticFS()
	}
	return s, nil
}

func contentSource(cfg *config.Config) content.Source {
	books := cfg.BooksPath()
	return content.Source{
		Writings:    os.DirFS(cfg.WritingsPath()),
		WritingsDir: ".",
		Books:       os.DirFS(filepath.Dir(books)),
		BooksFile:   filepath.Base(books),
	}
}

// appOptions are the per-command additions to the app.
type appOptions struct {
	metrics *middleware.Metrics
	gather  prometheus.Gatherer
	assets  assets.Resolver
	scripts []render.ScriptTag
	routes  map[string]http.Handler
}

// newMetrics registers the site collectors and the Go runtime collectors on
// a fresh registry.
func newMetrics() (*middleware.Metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return middleware.NewMetrics(middleware.WithRegistry(reg)), reg
}

// app registers the pages and builds the HTTP application.
func (s *site) app(opts appOptions) (*website.App, error) {
	reg, err := pages.New(s.pagesSite(), pages.Deps{Library: s.library})
	if err != nil {
		return nil, err
	}

	wopts := website.Options{
		Config:   s.cfg,
		Registry: reg,
		Library:  s.library,
		Static:   s.static,
		Assets:   opts.assets,
		Metrics:  opts.metrics,
		Tracing:  []middleware.TracingOption{middleware.WithTracerName("site")},
		Scripts:  opts.scripts,
		Routes:   opts.routes,
		Logger:   s.logger,
	}
	if opts.gather != nil {
		wopts.MetricsHandler = promhttp.HandlerFor(opts.gather, promhttp.HandlerOpts{})
	}
	return website.New(wopts)
}

func (s *site) pagesSite() pages.Site {
	links := make([]pages.FooterLink, len(s.cfg.Site.Links))
	for i, l := range s.cfg.Site.Links {
		links[i] = pages.FooterLink{Label: l.Label, Href: l.Href}
	}
	return pages.Site{
		Title:  s.cfg.Site.Title,
		Author: s.cfg.Site.Author,
		Year:   time.Now().Year(),
		Links:  links,
	}
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// listen serves h until ctx is cancelled, then shuts down within the
// configured timeout.
func listen(ctx context.Context, cfg *config.Config, h http.Handler, logger *slog.Logger) error {
	timeout, err := cfg.ShutdownTimeout()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	fmt.Println()
	info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
