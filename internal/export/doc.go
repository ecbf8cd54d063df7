// Package export renders the site into a directory of static files.
//
// Every static page is written to <route>/index.html, every path listed by a
// dynamic page likewise, and the site-wide documents next to them:
//
//	dist/
//	├── index.html
//	├── writings/index.html
//	├── writings/talk-to-users/index.html
//	├── 404.html
//	├── sitemap.xml
//	├── api/posts.json
//	└── static/
//	    ├── styles.3f9a1c2b.css
//	    └── manifest.json
//
// Stylesheets and scripts are copied under fingerprinted names when a
// manifest is supplied. Build the manifest with Plan before constructing the
// site so rendered pages link the hashed names.
package export
