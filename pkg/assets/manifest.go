// Package assets maps static asset names to their fingerprinted versions.
//
// The static export copies each stylesheet and script under a name carrying a
// content hash and records the mapping in manifest.json:
//
//	{
//	  "styles.css": "styles.3f9a1c2b.css",
//	  "reload.js": "reload.77e0d4aa.js"
//	}
//
// Pages resolve asset names through a Resolver, so the same layout links the
// plain file in development and the hashed file in the export:
//
//	manifest, _ := assets.Load(os.DirFS("dist/static"), assets.ManifestName)
//	resolver := assets.NewResolver(manifest, "/static")
//
//	resolver.Asset("styles.css") // "/static/styles.3f9a1c2b.css"
package assets

import (
	"encoding/json"
	"io/fs"
	"sort"
	"sync"
)

// ManifestName is the file name the export writes the manifest under.
const ManifestName = "manifest.json"

// Manifest holds the mapping from source asset paths to fingerprinted paths.
// It is safe for concurrent use.
type Manifest struct {
	entries map[string]string
	mu      sync.RWMutex
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{
		entries: make(map[string]string),
	}
}

// Load reads a manifest from fsys.
func Load(fsys fs.FS, name string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a manifest document.
func Parse(data []byte) (*Manifest, error) {
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = make(map[string]string)
	}
	return &Manifest{entries: entries}, nil
}

// Resolve returns the fingerprinted path for source, or source itself when
// the manifest has no entry.
func (m *Manifest) Resolve(source string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if resolved, ok := m.entries[source]; ok {
		return resolved
	}
	return source
}

// Has reports whether source has an entry.
func (m *Manifest) Has(source string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.entries[source]
	return ok
}

// Set adds or replaces an entry.
func (m *Manifest) Set(source, resolved string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[source] = resolved
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}

// Sources returns the source names, sorted.
func (m *Manifest) Sources() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.entries))
	for k := range m.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON writes the entries as a flat object with sorted keys.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return json.MarshalIndent(m.entries, "", "  ")
}
