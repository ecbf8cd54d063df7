// Package config loads the site configuration from site.json.
//
// Every field has a default, so a missing file is not fatal for serving;
// LoadOptional returns the defaults in that case. Relative paths are
// resolved against the directory holding site.json.
//
// # Configuration File Structure
//
//	{
//	  "site": {
//	    "title": "Vedant",
//	    "author": "Vedant",
//	    "baseURL": "https://example.com",
//	    "lang": "en"
//	  },
//	  "server": {"host": "0.0.0.0", "port": 8080, "shutdownTimeout": "10s"},
//	  "content": {"writings": "content/writings", "books": "content/books.json"},
//	  "static": {"prefix": "/static", "cacheControl": "public, max-age=3600"},
//	  "build": {"output": "dist", "fingerprint": true},
//	  "deploy": {"bucket": "example-site", "region": "us-west-2"},
//	  "metrics": {"enabled": true, "path": "/metrics"},
//	  "log": {"level": "info", "format": "json"},
//	  "dev": {"liveReload": true, "watch": ["content", "web/static"], "interval": "500ms"}
//	}
//
// # Usage
//
//	cfg, found, err := config.LoadOptional(".")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
