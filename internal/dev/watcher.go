package dev

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeType classifies a changed file.
type ChangeType int

const (
	// ChangeContent is a post or the books file.
	ChangeContent ChangeType = iota
	// ChangeCSS is a stylesheet.
	ChangeCSS
	// ChangeAsset is any other static file.
	ChangeAsset
)

func (t ChangeType) String() string {
	switch t {
	case ChangeContent:
		return "content"
	case ChangeCSS:
		return "css"
	default:
		return "asset"
	}
}

// Change is a detected file change.
type Change struct {
	Path string
	Type ChangeType
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the directories or files to watch.
	Paths []string

	// Ignore lists base names or globs to skip.
	Ignore []string

	// Interval is the polling period, and the quiet time after a burst of
	// filesystem events before they are reported.
	Interval time.Duration

	// Poll disables filesystem notifications.
	Poll bool
}

// DefaultIgnore contains the patterns skipped when Ignore is empty.
var DefaultIgnore = []string{".git", ".DS_Store", "node_modules", "dist", "*.tmp", "*.swp", "*~"}

type fileState struct {
	mod  time.Time
	size int64
}

// Watcher reports file changes under a set of paths. It listens for
// filesystem notifications and diffs a scan of the tree when they arrive,
// falling back to a plain polling loop when notifications are unavailable.
type Watcher struct {
	config   WatcherConfig
	onChange func(Change)

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	files   map[string]fileState
}

// NewWatcher creates a watcher. Interval defaults to 500ms.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Interval <= 0 {
		config.Interval = 500 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}
	return &Watcher{config: config, files: map[string]fileState{}}
}

// OnChange sets the callback for file changes.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	w.onChange = fn
	w.mu.Unlock()
}

// Start watches until ctx is cancelled or Stop is called. The first scan
// records the current state without reporting it.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.files = w.scan()
	var fw *fsnotify.Watcher
	if !w.config.Poll {
		fw, _ = w.notifier()
	}
	w.running = true
	w.stop = make(chan struct{})
	stop := w.stop
	w.mu.Unlock()

	if fw == nil {
		return w.pollLoop(ctx, stop)
	}
	defer fw.Close()
	return w.eventLoop(ctx, stop, fw)
}

func (w *Watcher) pollLoop(ctx context.Context, stop <-chan struct{}) error {
	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return ctx.Err()
		case <-stop:
			return nil
		case <-ticker.C:
			w.Poll()
		}
	}
}

// eventLoop debounces notifications: a burst of writes produces one Poll
// once Interval passes without further events.
func (w *Watcher) eventLoop(ctx context.Context, stop <-chan struct{}, fw *fsnotify.Watcher) error {
	quiet := time.NewTimer(w.config.Interval)
	quiet.Stop()
	defer quiet.Stop()
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return ctx.Err()
		case <-stop:
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return w.pollLoop(ctx, stop)
			}
			if w.shouldIgnore(ev.Name) || !ev.Has(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					w.watchTree(fw, ev.Name)
				}
			}
			quiet.Reset(w.config.Interval)
		case _, ok := <-fw.Errors:
			if !ok {
				return w.pollLoop(ctx, stop)
			}
		case <-quiet.C:
			w.Poll()
		}
	}
}

// notifier registers every directory under the configured paths. A file
// path is watched through its parent directory.
func (w *Watcher) notifier() (*fsnotify.Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, root := range w.config.Paths {
		info, err := os.Stat(root)
		switch {
		case err != nil:
			continue
		case info.IsDir():
			w.watchTree(fw, root)
		default:
			if err := fw.Add(filepath.Dir(root)); err != nil {
				fw.Close()
				return nil, err
			}
		}
	}
	return fw, nil
}

func (w *Watcher) watchTree(fw *fsnotify.Watcher, root string) {
	filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if p != root && w.shouldIgnore(p) {
			return filepath.SkipDir
		}
		fw.Add(p)
		return nil
	})
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stop)
		w.running = false
	}
}

// IsRunning reports whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// Poll diffs the tree against the last scan and reports the first change of
// each type. Deleted files count as changes.
func (w *Watcher) Poll() {
	current := w.scan()

	w.mu.Lock()
	previous := w.files
	w.files = current
	callback := w.onChange
	w.mu.Unlock()

	if callback == nil {
		return
	}

	reported := map[ChangeType]bool{}
	report := func(p string) {
		if t := classifyChange(p); !reported[t] {
			reported[t] = true
			callback(Change{Path: p, Type: t})
		}
	}
	for p, st := range current {
		if old, ok := previous[p]; !ok || old != st {
			report(p)
		}
	}
	for p := range previous {
		if _, ok := current[p]; !ok {
			report(p)
		}
	}
}

func (w *Watcher) scan() map[string]fileState {
	files := map[string]fileState{}
	for _, root := range w.config.Paths {
		filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			switch {
			case err != nil:
				return nil
			case w.shouldIgnore(p) && d.IsDir():
				return filepath.SkipDir
			case w.shouldIgnore(p) || d.IsDir():
				return nil
			}
			if info, err := d.Info(); err == nil {
				files[p] = fileState{mod: info.ModTime(), size: info.Size()}
			}
			return nil
		})
	}
	return files
}

// shouldIgnore matches the base name against each pattern.
func (w *Watcher) shouldIgnore(p string) bool {
	name := filepath.Base(p)
	for _, pattern := range w.config.Ignore {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if ok, _ := filepath.Match(pattern, name); ok || name == pattern {
			return true
		}
	}
	return false
}

func classifyChange(p string) ChangeType {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".md", ".markdown", ".json":
		return ChangeContent
	case ".css":
		return ChangeCSS
	default:
		return ChangeAsset
	}
}
