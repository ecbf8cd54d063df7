// Package dev provides the live reload loop used by "site dev".
//
// The loop has three parts:
//
//   - Watcher reports changes under the content and static directories
//   - Session reloads the content library when posts or books change
//   - ReloadServer tells connected browsers to refresh over a WebSocket
//
// # Usage
//
//	reload := dev.NewReloadServer(logger)
//	session := dev.NewSession(dev.SessionConfig{
//	    Library: lib,
//	    Reload:  reload,
//	    Metrics: metrics,
//	    Logger:  logger,
//	})
//
//	app, _ := website.New(website.Options{
//	    Scripts: session.Scripts(),
//	    Routes:  session.Routes(),
//	    // ...
//	})
//
//	watcher := dev.NewWatcher(dev.WatcherConfig{Paths: dev.CollectWatchPaths(cfg)})
//	go session.Run(ctx, watcher)
//
// # Reload Protocol
//
// The browser connects to /_site/reload. Messages are JSON-encoded:
//
//	{"type": "reload"}                // full page reload
//	{"type": "css", "file": "..."}    // re-fetch stylesheets
//	{"type": "error", "error": "..."} // show the error overlay
//	{"type": "clear"}                 // hide the error overlay
package dev
