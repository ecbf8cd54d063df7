package content

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"

	"github.com/vedantk/website/internal/errors"
)

// Highlight is a passage marked in a book.
type Highlight struct {
	Text     string `json:"text"`
	Note     string `json:"note,omitempty"`
	Location string `json:"location,omitempty"`
}

// Book groups the highlights taken from one book.
type Book struct {
	Title      string      `json:"title"`
	Author     string      `json:"author"`
	Highlights []Highlight `json:"highlights"`
}

// Books is the books.json document exported from the reading app.
type Books struct {
	LastUpdated     string `json:"lastUpdated"`
	TotalBooks      int    `json:"totalBooks"`
	TotalHighlights int    `json:"totalHighlights"`
	Books           []Book `json:"books"`
}

// Empty reports whether there are no books.
func (b *Books) Empty() bool {
	return b == nil || len(b.Books) == 0
}

// LoadBooks reads name from fsys. A missing file yields an empty Books and
// found == false.
func LoadBooks(fsys fs.FS, name string) (books *Books, found bool, err error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return &Books{Books: []Book{}}, false, nil
		}
		return nil, false, errors.New("E210").WithLocation(name, 0, 0).Wrap(err)
	}
	books, err = ParseBooks(data)
	if err != nil {
		return nil, true, errors.New("E210").WithLocation(name, 0, 0).Wrap(err)
	}
	return books, true, nil
}

// ParseBooks decodes a books document and fills in missing totals.
func ParseBooks(data []byte) (*Books, error) {
	var b Books
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	if b.Books == nil {
		b.Books = []Book{}
	}
	if b.TotalBooks == 0 {
		b.TotalBooks = len(b.Books)
	}
	if b.TotalHighlights == 0 {
		for _, book := range b.Books {
			b.TotalHighlights += len(book.Highlights)
		}
	}
	return &b, nil
}
