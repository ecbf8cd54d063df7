package website

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/vedantk/website/internal/errors"
	"github.com/vedantk/website/pkg/middleware"
)

// servePage renders the registry page matching the request path, or the
// 404 page.
func (a *App) servePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	html, err := a.RenderPath(r.Context(), r.URL.EscapedPath())
	if stderrors.Is(err, errors.ErrNotFound) {
		a.serveNotFound(w, r)
		return
	}
	if err != nil {
		a.logger.Error("render failed", "path", r.URL.Path, "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, r, http.StatusOK, html)
}

func (a *App) serveNotFound(w http.ResponseWriter, r *http.Request) {
	middleware.SetRoute(r.Context(), middleware.Unmatched)
	html, err := a.RenderNotFound(r.URL.Path)
	if err != nil {
		a.logger.Error("render 404 failed", "path", r.URL.Path, "err", err)
		http.NotFound(w, r)
		return
	}
	writeHTML(w, r, http.StatusNotFound, html)
}

func writeHTML(w http.ResponseWriter, r *http.Request, status int, html []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		w.Write(html)
	}
}

// handlePosts serves the post summaries, newest first.
func (a *App) handlePosts(w http.ResponseWriter, r *http.Request) {
	data, err := a.PostsJSON()
	if err != nil {
		a.logger.Error("encode posts failed", "err", err)
		writeJSONError(w, http.StatusInternalServerError, "cannot encode posts")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// PostsJSON encodes the post summaries served at /api/posts.
func (a *App) PostsJSON() ([]byte, error) {
	return json.Marshal(a.library.Posts().Summaries())
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"pages":  a.registry.Len(),
		"posts":  a.library.Posts().Len(),
	})
}

// handleSitemap serves sitemap.xml. Without a configured base URL the
// request origin is used.
func (a *App) handleSitemap(w http.ResponseWriter, r *http.Request) {
	base := a.config.Site.BaseURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}
	data, err := a.Sitemap(base)
	if err != nil {
		a.logger.Error("build sitemap failed", "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Cache-Control", "max-age=3600")
	w.Write(data)
}
