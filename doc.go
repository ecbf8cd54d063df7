// Package website serves the personal site.
//
// An App is an http.Handler assembled from a sealed page registry, the
// content library and the static assets:
//
//	lib := content.NewLibrary(src, logger)
//	if err := lib.Load(); err != nil {
//		return err
//	}
//	reg, err := pages.New(site, pages.Deps{Library: lib})
//	if err != nil {
//		return err
//	}
//	app, err := website.New(website.Options{
//		Config:   cfg,
//		Registry: reg,
//		Library:  lib,
//	})
//	http.ListenAndServe(cfg.Address(), app)
//
// Besides the registered pages the App serves /api/posts, /sitemap.xml,
// /healthz, the static assets and, when enabled, /metrics. Non-canonical
// paths are redirected and unknown paths get the 404 page inside the site
// chrome.
package website
