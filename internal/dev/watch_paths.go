package dev

import (
	"path/filepath"

	"github.com/vedantk/website/internal/config"
)

// CollectWatchPaths returns the deduplicated directories to poll: the
// writings directory, the books file, the static directory when one is
// configured, and every dev.watch entry.
func CollectWatchPaths(cfg *config.Config) []string {
	paths := []string{
		cfg.WritingsPath(),
		cfg.BooksPath(),
		cfg.StaticPath(),
	}
	paths = append(paths, cfg.WatchPaths()...)

	unique := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		clean := filepath.Clean(p)
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		unique = append(unique, clean)
	}
	return unique
}
