// Package content supplies the site's pages: the manifest, page bodies and
// articles. Everything is read once from an fs.FS and returned as plain
// strings; nothing here knows about themes or HTTP.
package content

import (
	"errors"
	"fmt"
	"html"
	"io/fs"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the name of the manifest at the root of a content tree.
const ManifestFile = "site.yml"

// DefaultArticleClass is used for article pages when no index page is declared.
const DefaultArticleClass = "articles"

var (
	// ErrInvalidManifest is wrapped by every manifest validation failure.
	ErrInvalidManifest = errors.New("invalid content manifest")
)

// Page is one routable page.
type Page struct {
	Class string // CSS class on <body> and the menu entry it activates
	Path  string
	Title string
	Body  string // <div class="content">...</div>
}

// MenuItem is one navigation entry.
type MenuItem struct {
	Class string
	Path  string
	Title string
}

// Article is an entry in the article list. Local articles have an Href and
// a rendered Body; external ones only have a Link.
type Article struct {
	Title     string
	Href      string
	Source    string
	Link      string
	Published time.Time
	Body      string
}

// Local reports whether the article is served by this site.
func (a Article) Local() bool { return a.Href != "" }

// URL is where the article lives, on this site or elsewhere.
func (a Article) URL() string {
	if a.Local() {
		return a.Href
	}
	return a.Link
}

// Registry is everything the site serves.
type Registry struct {
	Pages    []Page
	Menu     []MenuItem
	Articles []Article

	// Sources are the files read, in load order.
	Sources []string
}

// Page returns the page at path.
func (r *Registry) Page(path string) (Page, bool) {
	for _, p := range r.Pages {
		if p.Path == path {
			return p, true
		}
	}
	return Page{}, false
}

type manifest struct {
	Pages    []pageEntry    `yaml:"pages"`
	Articles []articleEntry `yaml:"articles"`
}

type pageEntry struct {
	Class   string `yaml:"class"`
	Path    string `yaml:"path"`
	Title   string `yaml:"title"`
	Heading string `yaml:"heading"`
	Intro   string `yaml:"intro"`
	Source  string `yaml:"source"`
	Index   bool   `yaml:"index"`
}

type articleEntry struct {
	Title     string `yaml:"title"`
	Href      string `yaml:"href"`
	Source    string `yaml:"source"`
	Link      string `yaml:"link"`
	Published string `yaml:"published"`
}

var classPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Load reads the manifest and every source it names from fsys.
func Load(fsys fs.FS) (*Registry, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ManifestFile, err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ManifestFile, err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}

	src := newSourceReader(fsys)
	reg := &Registry{}

	articleClass := DefaultArticleClass
	for _, p := range m.Pages {
		if p.Index {
			articleClass = p.Class
		}
	}

	for _, a := range m.Articles {
		art := Article{
			Title:  a.Title,
			Href:   a.Href,
			Source: a.Source,
			Link:   a.Link,
		}
		if a.Published != "" {
			// validated already
			art.Published, _ = time.Parse(time.DateOnly, a.Published)
		}
		if art.Local() {
			inner, err := src.Render("articles/" + a.Source)
			if err != nil {
				return nil, fmt.Errorf("article %q: %w", a.Title, err)
			}
			art.Body = `<div class="content"><h1>` + html.EscapeString(a.Title) + "</h1>" + inner + "</div>"
		}
		reg.Articles = append(reg.Articles, art)
	}

	for _, p := range m.Pages {
		title := p.Title
		if title == "" {
			title = p.Class
		}
		reg.Menu = append(reg.Menu, MenuItem{Class: p.Class, Path: p.Path, Title: title})

		var body string
		if p.Index {
			heading := p.Heading
			if heading == "" {
				heading = title
			}
			body = renderIndex(heading, p.Intro, reg.Articles)
		} else {
			inner, err := src.Render(p.Source)
			if err != nil {
				return nil, fmt.Errorf("page %s: %w", p.Path, err)
			}
			body = `<div class="content">` + inner + "</div>"
		}
		reg.Pages = append(reg.Pages, Page{Class: p.Class, Path: p.Path, Title: title, Body: body})
	}

	for _, a := range reg.Articles {
		if !a.Local() {
			continue
		}
		reg.Pages = append(reg.Pages, Page{Class: articleClass, Path: a.Href, Title: a.Title, Body: a.Body})
	}
	reg.Sources = src.used

	return reg, nil
}

func (m *manifest) validate() error {
	if len(m.Pages) == 0 {
		return fmt.Errorf("%w: no pages", ErrInvalidManifest)
	}

	paths := make(map[string]bool)
	claim := func(path string) error {
		if !strings.HasPrefix(path, "/") {
			return fmt.Errorf("%w: path %q must start with /", ErrInvalidManifest, path)
		}
		if paths[path] {
			return fmt.Errorf("%w: duplicate path %q", ErrInvalidManifest, path)
		}
		paths[path] = true
		return nil
	}

	indexPages := 0
	for i, p := range m.Pages {
		if !classPattern.MatchString(p.Class) {
			return fmt.Errorf("%w: page %d has invalid class %q", ErrInvalidManifest, i, p.Class)
		}
		if err := claim(p.Path); err != nil {
			return err
		}
		switch {
		case p.Index && p.Source != "":
			return fmt.Errorf("%w: index page %s cannot have a source", ErrInvalidManifest, p.Path)
		case p.Index:
			indexPages++
		case p.Source == "":
			return fmt.Errorf("%w: page %s has no source", ErrInvalidManifest, p.Path)
		}
	}
	if indexPages > 1 {
		return fmt.Errorf("%w: %d index pages declared", ErrInvalidManifest, indexPages)
	}

	for i, a := range m.Articles {
		if a.Title == "" {
			return fmt.Errorf("%w: article %d has no title", ErrInvalidManifest, i)
		}
		switch {
		case a.Href != "" && a.Source == "":
			return fmt.Errorf("%w: article %q has an href but no source", ErrInvalidManifest, a.Title)
		case a.Href == "" && a.Source != "":
			return fmt.Errorf("%w: article %q has a source but no href", ErrInvalidManifest, a.Title)
		case a.Href == "" && a.Link == "":
			return fmt.Errorf("%w: article %q needs an href or a link", ErrInvalidManifest, a.Title)
		}
		if a.Href != "" {
			if err := claim(a.Href); err != nil {
				return err
			}
		}
		if a.Published != "" {
			if _, err := time.Parse(time.DateOnly, a.Published); err != nil {
				return fmt.Errorf("%w: article %q: published %q is not YYYY-MM-DD", ErrInvalidManifest, a.Title, a.Published)
			}
		}
	}
	return nil
}

// renderIndex lists every article, local or external, in manifest order.
func renderIndex(heading, intro string, articles []Article) string {
	var b strings.Builder
	b.WriteString(`<div class="content"><h1>`)
	b.WriteString(html.EscapeString(heading))
	b.WriteString("</h1>")
	if intro != "" {
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(intro))
		b.WriteString("</p>")
	}
	b.WriteString("<ul>")
	for _, a := range articles {
		fmt.Fprintf(&b, `<li><a href="%s">%s</a></li>`, html.EscapeString(a.URL()), html.EscapeString(a.Title))
	}
	b.WriteString("</ul></div>")
	return b.String()
}
