package dev

import (
	"context"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/vedantk/website/internal/content"
	"github.com/vedantk/website/internal/errors"
	"github.com/vedantk/website/pkg/middleware"
	"github.com/vedantk/website/pkg/render"
)

// SessionConfig wires a Session.
type SessionConfig struct {
	// Library is reloaded on content changes.
	Library *content.Library

	// Reload notifies browsers. Nil creates one.
	Reload *ReloadServer

	// Metrics records reload results. May be nil.
	Metrics *middleware.Metrics

	Logger *slog.Logger
}

// Session turns file changes into library reloads and browser
// notifications.
type Session struct {
	library *content.Library
	reload  *ReloadServer
	metrics *middleware.Metrics
	logger  *slog.Logger
}

// NewSession creates a session.
func NewSession(cfg SessionConfig) *Session {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Reload == nil {
		cfg.Reload = NewReloadServer(cfg.Logger)
	}
	return &Session{
		library: cfg.Library,
		reload:  cfg.Reload,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}
}

// Reload returns the session's reload server.
func (s *Session) Reload() *ReloadServer {
	return s.reload
}

// Scripts returns the tags that inject the reload client into pages.
func (s *Session) Scripts() []render.ScriptTag {
	return []render.ScriptTag{{Inline: ClientScript}}
}

// Routes returns the handlers the app mounts in dev mode.
func (s *Session) Routes() map[string]http.Handler {
	return map[string]http.Handler{ReloadPath: s.reload}
}

// Handle applies one change. Content changes reload the library; a failed
// load keeps the previous content and shows the error in the browser.
func (s *Session) Handle(c Change) {
	log := s.logger.With("path", filepath.ToSlash(c.Path), "type", c.Type.String())

	switch c.Type {
	case ChangeContent:
		if s.library == nil {
			s.reload.NotifyReload()
			return
		}
		err := s.library.Reload()
		s.metrics.RecordReload(err)
		if err != nil {
			log.Warn("content reload failed", "error", err)
			s.reload.NotifyError(describe(err))
			return
		}
		log.Info("content reloaded", "posts", s.library.Posts().Len())
		s.reload.ClearError()
		s.reload.NotifyReload()
	case ChangeCSS:
		log.Info("stylesheet changed")
		s.reload.NotifyCSS(filepath.Base(c.Path))
	default:
		log.Info("asset changed")
		s.reload.NotifyReload()
	}
}

// Run feeds watcher changes into Handle until ctx is done.
func (s *Session) Run(ctx context.Context, w *Watcher) error {
	w.OnChange(s.Handle)
	err := w.Start(ctx)
	s.reload.Close()
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func describe(err error) string {
	if e, ok := errors.As(err); ok {
		return e.FormatCompact()
	}
	return err.Error()
}
