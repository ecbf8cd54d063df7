// Package content loads the site's writings and book highlights.
//
// Writings are markdown files with a YAML frontmatter block:
//
//	---
//	title: On shipping experiments
//	date: 2024-05-01
//	description: Why I prefer talking to folks over research.
//	tags: [startups, learning]
//	---
//	Body in markdown.
//
// LoadPosts parses every *.md file in a directory into a Post with
// sanitised HTML and a reading time. Posts with a truthy hidden field are
// left out of listings but still resolve by slug. A Store is an immutable
// snapshot of the loaded posts; a Library holds the current Store and book
// highlights in one Snapshot and swaps it atomically on Reload.
package content
