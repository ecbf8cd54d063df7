// Package router holds the site's page registry.
//
// Each page is registered once at startup as a (route, title, render
// function) triple. The registry wraps every render function in a shared
// layout, so rendering a page produces layout(chrome, page()):
//
//	reg := router.NewRegistry(pages.Layout)
//	if err := reg.Add("/", "Me", pages.Home); err != nil {
//	    return err
//	}
//	if err := reg.Add("/blogs", "Blogs", pages.Blogs); err != nil {
//	    return err
//	}
//	reg.Seal()
//
//	m, ok := reg.Match("/blogs")
//	tree := m.Page.Render()
//
// Registration fails, before anything is rendered, for an invalid route,
// a route registered twice, an empty title, or a sealed registry. After
// Seal the registry is read-only and safe for concurrent use.
//
// # Parameters
//
// Routes registered with AddDynamic may contain :name segments:
//
//	reg.AddDynamic("/writings/:slug", "Writings", pages.Post, pages.PostPaths)
//
// Match prefers static segments over parameters and decodes parameter
// values, rejecting values that decode to contain a slash.
package router
