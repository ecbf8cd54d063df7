package website

import (
	"embed"
	"io/fs"
)

//go:embed web/static
var embedded embed.FS

// StaticFS returns the static assets compiled into the binary.
func StaticFS() fs.FS {
	sub, err := fs.Sub(embedded, "web/static")
	if err != nil {
		panic(err)
	}
	return sub
}
