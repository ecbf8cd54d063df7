// Package routepath holds the path rules shared by page registration and
// request dispatch.
package routepath

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// CanonicalizeResult contains the result of path canonicalization.
type CanonicalizeResult struct {
	// Path is the canonicalized path (without query string).
	Path string

	// Query is the query string (without leading "?").
	Query string

	// Changed indicates if the path was modified during canonicalization.
	Changed bool
}

// Path errors.
var (
	ErrInvalidPath           = errors.New("invalid path")
	ErrBackslashInPath       = errors.New("path contains backslash")
	ErrNullByteInPath        = errors.New("path contains null byte")
	ErrInvalidPercentEscape  = errors.New("invalid percent escape sequence")
	ErrPathEscapesRoot       = errors.New("path escapes root via ..")
	ErrEncodedSlashInSegment = errors.New("encoded slash (%2F) in segment")
)

// CanonicalizePath normalizes a request path:
//   - Remove trailing slash (except for root "/")
//   - Collapse multiple slashes (/blogs//post → /blogs/post)
//   - Remove "." segments and resolve ".." segments
//
// Paths containing a backslash, a NUL byte, an invalid percent-escape, or a
// ".." that climbs above root are rejected. A query string in the input is
// returned untouched in Query.
func CanonicalizePath(input string) (CanonicalizeResult, error) {
	if input == "" {
		return CanonicalizeResult{Path: "/", Changed: true}, nil
	}

	path, query, _ := strings.Cut(input, "?")

	if strings.Contains(path, `\`) {
		return CanonicalizeResult{}, ErrBackslashInPath
	}
	if strings.Contains(path, "\x00") || strings.Contains(strings.ToUpper(path), "%00") {
		return CanonicalizeResult{}, ErrNullByteInPath
	}
	if strings.Contains(path, "%") {
		if err := validatePercentEscapes(path); err != nil {
			return CanonicalizeResult{}, err
		}
	}

	kept := make([]string, 0, strings.Count(path, "/"))
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(kept) == 0 {
				return CanonicalizeResult{}, ErrPathEscapesRoot
			}
			kept = kept[:len(kept)-1]
		default:
			kept = append(kept, seg)
		}
	}

	canonical := "/" + strings.Join(kept, "/")
	return CanonicalizeResult{
		Path:    canonical,
		Query:   query,
		Changed: canonical != path,
	}, nil
}

// validatePercentEscapes checks that every '%' starts a %XX hex escape.
func validatePercentEscapes(path string) error {
	for i := 0; i < len(path); i++ {
		if path[i] != '%' {
			continue
		}
		if i+2 >= len(path) || !isHexDigit(path[i+1]) || !isHexDigit(path[i+2]) {
			return ErrInvalidPercentEscape
		}
		i += 2
	}
	return nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// ValidateRoute checks a route pattern at registration time. A route must
// already be canonical: it starts with "/", has no trailing slash (except
// "/"), no empty, "." or ".." segments, and no query. Segments starting with
// ':' name a parameter and must carry a name.
func ValidateRoute(route string) error {
	if route == "" {
		return fmt.Errorf("%w: route is empty", ErrInvalidPath)
	}
	if route[0] != '/' {
		return fmt.Errorf("%w: route %q must start with /", ErrInvalidPath, route)
	}
	if strings.ContainsAny(route, "?#") {
		return fmt.Errorf("%w: route %q contains a query or fragment", ErrInvalidPath, route)
	}
	res, err := CanonicalizePath(route)
	if err != nil {
		return fmt.Errorf("route %q: %w", route, err)
	}
	if res.Changed {
		return fmt.Errorf("%w: route %q is not canonical (want %q)", ErrInvalidPath, route, res.Path)
	}

	seen := make(map[string]bool)
	for _, seg := range Segments(route) {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		name := seg[1:]
		if name == "" {
			return fmt.Errorf("%w: route %q has an unnamed parameter", ErrInvalidPath, route)
		}
		if seen[name] {
			return fmt.Errorf("%w: route %q repeats parameter %q", ErrInvalidPath, route, name)
		}
		seen[name] = true
	}
	return nil
}

// Segments splits a canonical path into its segments. The root path has none.
func Segments(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// DecodeSegment decodes a single path segment. A decoded "/" is rejected so
// a parameter value cannot smuggle extra path structure.
func DecodeSegment(segment string) (string, error) {
	decoded, err := url.PathUnescape(segment)
	if err != nil {
		return "", ErrInvalidPercentEscape
	}
	if strings.Contains(decoded, "/") {
		return "", ErrEncodedSlashInSegment
	}
	return decoded, nil
}
