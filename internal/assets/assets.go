// Package assets loads the fixed scripts and stylesheets the site ships.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrMissingAsset is returned when a required file is absent.
var ErrMissingAsset = errors.New("missing static asset")

const (
	ContentTypeJavaScript = "application/javascript"
	ContentTypeCSS        = "text/css"
)

// File is a pass-through asset served as-is.
type File struct {
	Path        string
	ContentType string
	Body        []byte
}

// Assets holds every static file. Nothing here changes after Load.
type Assets struct {
	// Pass-through routes.
	MainJS   []byte
	PrismJS  []byte
	PrismCSS []byte

	// Inlined into every document head.
	FontsCSS []byte
	MainCSS  []byte
}

// Load reads all required files from fsys. A missing file is an error.
func Load(fsys fs.FS) (*Assets, error) {
	a := &Assets{}
	for _, f := range []struct {
		name string
		dst  *[]byte
	}{
		{"main.js", &a.MainJS},
		{"prism.js", &a.PrismJS},
		{"prism.css", &a.PrismCSS},
		{"fonts.css", &a.FontsCSS},
		{"main.css", &a.MainCSS},
	} {
		data, err := fs.ReadFile(fsys, f.name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrMissingAsset, f.name)
			}
			return nil, fmt.Errorf("reading %s: %w", f.name, err)
		}
		*f.dst = data
	}
	return a, nil
}

// Files returns the pass-through routes in a fixed order.
func (a *Assets) Files() []File {
	return []File{
		{Path: "/main.js", ContentType: ContentTypeJavaScript, Body: a.MainJS},
		{Path: "/prism.js", ContentType: ContentTypeJavaScript, Body: a.PrismJS},
		{Path: "/prism.css", ContentType: ContentTypeCSS, Body: a.PrismCSS},
	}
}
