// Package pages holds the site's page functions and the layout that wraps
// them.
//
// Every page is registered by Register, the single startup call that fills
// the route registry:
//
//	reg := router.NewRegistry(pages.Layout(site))
//	if err := pages.Register(reg, pages.Deps{Library: lib}); err != nil {
//		return err
//	}
//	reg.Seal()
//
// Home and Blogs are zero-argument functions built from literals. The
// writings, post and books pages read the current content snapshot each time
// they render.
package pages
