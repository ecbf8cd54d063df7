package website

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vedantk/website/pkg/routepath"
)

// canonicalize redirects non-canonical paths and rejects malformed ones
// before routing.
func canonicalize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res, err := routepath.CanonicalizePath(r.URL.EscapedPath())
		if err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		if res.Changed {
			target := res.Path
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusMovedPermanently)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// logFormatter adapts chi's request logger to slog.
type logFormatter struct {
	logger *slog.Logger
}

func (f *logFormatter) NewLogEntry(r *http.Request) chimw.LogEntry {
	return &logEntry{
		logger: f.logger.With(
			"request_id", chimw.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
		),
	}
}

type logEntry struct {
	logger *slog.Logger
}

func (e *logEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ any) {
	level := slog.LevelDebug
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelInfo
	}
	e.logger.Log(context.Background(), level, "request",
		"status", status,
		"bytes", bytes,
		"duration", elapsed,
	)
}

func (e *logEntry) Panic(v any, stack []byte) {
	e.logger.Error("page panicked",
		"panic", fmt.Sprint(v),
		"stack", string(stack),
	)
}
