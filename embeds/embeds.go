// Package embeds carries the default site content and static assets so the
// binary can serve without anything on disk.
package embeds

import (
	"embed"
	"io/fs"
)

//go:embed static content
var files embed.FS

// Static returns the embedded static asset tree (main.js, prism.*, *.css).
func Static() (fs.FS, error) {
	return fs.Sub(files, "static")
}

// Content returns the embedded content tree (site.yml, pages/, articles/).
func Content() (fs.FS, error) {
	return fs.Sub(files, "content")
}
