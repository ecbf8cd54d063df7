package website

import (
	"bytes"
	"io"
	"io/fs"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vedantk/website/pkg/assets"
)

// staticRelPath maps a request path under the static prefix to a name in
// the static fs. Empty names, NUL bytes, backslashes, absolute paths and dot
// segments are refused before the name reaches the filesystem.
func (a *App) staticRelPath(urlPath string) (string, bool) {
	prefix := strings.TrimRight(a.config.Static.Prefix, "/") + "/"
	rel, ok := strings.CutPrefix(urlPath, prefix)
	if !ok || rel == "" || strings.ContainsAny(rel, "\\\x00") {
		return "", false
	}
	if slices.ContainsFunc(strings.Split(rel, "/"), func(seg string) bool {
		return seg == "" || seg == "." || seg == ".."
	}) {
		return "", false
	}
	if !fs.ValidPath(rel) || filepath.VolumeName(filepath.FromSlash(rel)) != "" {
		return "", false
	}
	return rel, true
}

// serveStatic handles static file requests.
func (a *App) serveStatic(w http.ResponseWriter, r *http.Request) {
	rel, ok := a.staticRelPath(r.URL.Path)
	if !ok {
		a.serveNotFound(w, r)
		return
	}

	f, err := a.static.Open(rel)
	if err != nil {
		a.serveNotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		a.serveNotFound(w, r)
		return
	}

	rs, ok := f.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(f)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		rs = bytes.NewReader(data)
	}
	if cc := a.staticCacheControl(rel); cc != "" {
		w.Header().Set("Cache-Control", cc)
	}
	http.ServeContent(w, r, rel, info.ModTime(), rs)
}

// staticCacheControl is the Cache-Control value for a static file. Hashed
// names get a year-long immutable policy.
func (a *App) staticCacheControl(name string) string {
	if assets.IsFingerprinted(name) {
		return "public, max-age=31536000, immutable"
	}
	return a.config.Static.CacheControl
}
