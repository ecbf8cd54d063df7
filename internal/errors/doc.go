// Package errors provides the site's coded, actionable errors.
//
// Every failure that can stop the site from starting (a duplicate route, a
// bad site.json, a post with broken frontmatter) is reported as an *Error
// with a stable code, a short message and, where useful, the file location
// and a hint:
//
//	err := errors.New("E200").
//	    WithLocation("content/writings/hello.md", 3, 0).
//	    WithSource(lines, 2).
//	    Wrap(yamlErr)
//
//	fmt.Print(err.Format())
//
// # Error Codes
//
//   - E100-E119: route registration
//   - E120-E139: configuration
//   - E140-E159: request handling
//   - E200-E219: content loading
//   - E300-E319: export and deploy
//
// The package-level sentinels (ErrDuplicateRoute, ErrNotFound, ...) match
// any error with the same code under errors.Is.
package errors
