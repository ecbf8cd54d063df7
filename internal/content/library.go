package content

import (
	stderrors "errors"
	"io/fs"
	"log/slog"
	"sync/atomic"
)

// Source locates the content on disk or in an embedded fs.
type Source struct {
	// Writings holds the *.md posts at WritingsDir.
	Writings    fs.FS
	WritingsDir string

	// Books holds the highlights document BooksFile. Nil disables books.
	Books     fs.FS
	BooksFile string
}

// Library holds the current posts and books. Readers always see a complete
// snapshot; Reload swaps both only when loading succeeds.
type Library struct {
	src    Source
	logger *slog.Logger

	current atomic.Pointer[Snapshot]
}

// Snapshot is one consistent load of posts and books.
type Snapshot struct {
	Posts *Store
	Books *Books
}

// NewLibrary returns an empty library for src. Call Load before serving.
func NewLibrary(src Source, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.Default()
	}
	if src.WritingsDir == "" {
		src.WritingsDir = "."
	}
	l := &Library{src: src, logger: logger}
	l.current.Store(&Snapshot{Posts: NewStore(nil), Books: &Books{Books: []Book{}}})
	return l
}

// StaticLibrary wraps already loaded content. It is used by tests and by
// callers that assemble content themselves.
func StaticLibrary(posts []Post, books *Books) *Library {
	l := NewLibrary(Source{}, nil)
	if books == nil {
		books = &Books{Books: []Book{}}
	}
	l.current.Store(&Snapshot{Posts: NewStore(posts), Books: books})
	return l
}

// Load reads all content. It is Reload under a name that reads better at
// startup.
func (l *Library) Load() error {
	return l.Reload()
}

// Reload re-reads posts and books. On error the previous snapshot is kept.
func (l *Library) Reload() error {
	var posts []Post
	if l.src.Writings != nil {
		var err error
		posts, err = LoadPosts(l.src.Writings, l.src.WritingsDir)
		if stderrors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("writings directory not found", "dir", l.src.WritingsDir)
			posts, err = nil, nil
		}
		if err != nil {
			return err
		}
	}

	books := &Books{Books: []Book{}}
	if l.src.Books != nil && l.src.BooksFile != "" {
		loaded, found, err := LoadBooks(l.src.Books, l.src.BooksFile)
		if err != nil {
			return err
		}
		if !found {
			l.logger.Warn("books file not found", "file", l.src.BooksFile)
		}
		books = loaded
	}

	store := NewStore(posts)
	l.current.Store(&Snapshot{Posts: store, Books: books})
	l.logger.Debug("content loaded", "posts", store.Len(), "books", len(books.Books))
	return nil
}

// Snapshot returns the current posts and books together. Callers that read
// both should take one Snapshot rather than calling Posts and Books.
func (l *Library) Snapshot() *Snapshot {
	return l.current.Load()
}

// Posts returns the posts of the current snapshot.
func (l *Library) Posts() *Store {
	return l.current.Load().Posts
}

// Books returns the books of the current snapshot.
func (l *Library) Books() *Books {
	return l.current.Load().Books
}
