package assets

import "strings"

// Resolver maps an asset name to the URL pages should link.
type Resolver interface {
	Asset(source string) string
}

type manifestResolver struct {
	manifest *Manifest
	prefix   string
}

// NewResolver resolves names through m and prepends the URL prefix, such as
// "/static".
func NewResolver(m *Manifest, prefix string) Resolver {
	return &manifestResolver{
		manifest: m,
		prefix:   normalizePrefix(prefix),
	}
}

func (r *manifestResolver) Asset(source string) string {
	return r.prefix + strings.TrimPrefix(r.manifest.Resolve(source), "/")
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(source string) string

func (f ResolverFunc) Asset(source string) string { return f(source) }

// NewPassthroughResolver prepends the prefix without renaming. It is used
// when serving the unfingerprinted files directly.
func NewPassthroughResolver(prefix string) Resolver {
	prefix = normalizePrefix(prefix)
	return ResolverFunc(func(source string) string {
		return prefix + strings.TrimPrefix(source, "/")
	})
}

func normalizePrefix(prefix string) string {
	return strings.TrimRight(prefix, "/") + "/"
}
