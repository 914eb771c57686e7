// Package site pre-renders every page variant the server can return. The
// resulting Cache is immutable and safe for concurrent readers.
package site

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/arendjr/phebe/internal/assets"
	"github.com/arendjr/phebe/internal/content"
	"github.com/arendjr/phebe/internal/document"
	"github.com/arendjr/phebe/internal/theme"
)

// FeedPath is where the article feed is served.
const FeedPath = "/rss.xml"

// Options carries the site metadata that ends up in documents and the feed.
type Options struct {
	Title       string
	Author      string
	Description string
	URL         string

	// Now is the cutoff for feed items. Zero means the time of Build.
	Now time.Time

	// Themes overrides the built-in palettes.
	Themes *theme.Catalog
}

// BuildError reports which stage of Build failed and for which path.
type BuildError struct {
	Stage string
	Path  string
	Err   error
}

func (e *BuildError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("building site (%s): %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("building site (%s %s): %v", e.Stage, e.Path, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

type variantKey struct {
	path string
	pref theme.Preference
}

// Cache holds the rendered variants. It is never written after Build.
type Cache struct {
	html  map[variantKey][]byte
	json  map[string][]byte
	feed  []byte
	paths []string
}

// Build renders every (page, preference) HTML variant, one JSON variant per
// page, and the feed.
func Build(reg *content.Registry, a *assets.Assets, opts Options) (*Cache, error) {
	themes := opts.Themes
	if themes == nil {
		var err error
		themes, err = theme.NewCatalog()
		if err != nil {
			return nil, &BuildError{Stage: "themes", Err: err}
		}
	}

	asm := &document.Assembler{
		Title:       opts.Title,
		Author:      opts.Author,
		Description: opts.Description,
		FeedPath:    FeedPath,
		FontsCSS:    string(a.FontsCSS),
		MainCSS:     string(a.MainCSS),
		CodeCSS:     string(a.PrismCSS),
		Themes:      themes,
	}

	c := &Cache{
		html: make(map[variantKey][]byte, len(reg.Pages)*len(theme.Preferences)),
		json: make(map[string][]byte, len(reg.Pages)),
	}

	for _, page := range reg.Pages {
		if _, dup := c.json[page.Path]; dup {
			return nil, &BuildError{Stage: "pages", Path: page.Path, Err: errors.New("duplicate path")}
		}

		body := composeBody(page, reg.Menu)
		for _, pref := range theme.Preferences {
			c.html[variantKey{page.Path, pref}] = asm.Assemble(body, pref)
		}

		data, err := encodeJSON(page.Body)
		if err != nil {
			return nil, &BuildError{Stage: "json", Path: page.Path, Err: err}
		}
		c.json[page.Path] = data
		c.paths = append(c.paths, page.Path)
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	feed, err := renderFeed(opts, reg.Articles, now)
	if err != nil {
		return nil, &BuildError{Stage: "feed", Path: FeedPath, Err: err}
	}
	c.feed = feed

	return c, nil
}

// HTML returns the document for path in the given preference.
func (c *Cache) HTML(path string, pref theme.Preference) ([]byte, bool) {
	b, ok := c.html[variantKey{path, pref}]
	return b, ok
}

// JSON returns the {"content": ...} variant for path.
func (c *Cache) JSON(path string) ([]byte, bool) {
	b, ok := c.json[path]
	return b, ok
}

// Feed returns the RSS document.
func (c *Cache) Feed() []byte { return c.feed }

// Paths lists every routable page path in registry order.
func (c *Cache) Paths() []string {
	return append([]string(nil), c.paths...)
}

type jsonVariant struct {
	Content string `json:"content"`
}

func encodeJSON(body string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(jsonVariant{Content: body}); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
