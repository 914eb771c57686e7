// Package theme holds the light and dark palettes and turns them into CSS.
package theme

import (
	"fmt"

	"github.com/arendjr/phebe/internal/color"
)

// Preference is the color scheme a client asked for.
type Preference int

const (
	// Unspecified leaves the choice to the client's prefers-color-scheme.
	Unspecified Preference = iota
	Light
	Dark
)

// Preferences lists every preference a page is pre-rendered for.
var Preferences = []Preference{Light, Dark, Unspecified}

// ParsePreference maps "light" and "dark"; anything else is Unspecified.
func ParsePreference(s string) Preference {
	switch s {
	case "light":
		return Light
	case "dark":
		return Dark
	default:
		return Unspecified
	}
}

func (p Preference) String() string {
	switch p {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "unspecified"
	}
}

// AccentDef pairs a page class with a hex color.
type AccentDef struct {
	Page  string
	Color string
}

// Palette is the hex source data for a theme.
type Palette struct {
	Name       string
	Foreground string
	Background string
	Accents    []AccentDef
}

// LightPalette and DarkPalette share the same page keys in the same order.
var (
	LightPalette = Palette{
		Name:       "light",
		Foreground: "#111",
		Background: "#fff",
		Accents: []AccentDef{
			{Page: "me", Color: "#daabbc"},
			{Page: "people", Color: "#969f5a"},
			{Page: "projects", Color: "#768036"},
			{Page: "articles", Color: "#3f2310"},
		},
	}

	DarkPalette = Palette{
		Name:       "dark",
		Foreground: "#fff",
		Background: "#191919",
		Accents: []AccentDef{
			{Page: "me", Color: "#daabbc"},
			{Page: "people", Color: "#969f5a"},
			{Page: "projects", Color: "#768036"},
			{Page: "articles", Color: "#eebf58"},
		},
	}
)

// Accent is a parsed page accent.
type Accent struct {
	Page  string
	Color color.Color
}

// Theme is a parsed palette.
type Theme struct {
	Name       string
	Foreground color.Color
	Background color.Color
	Accents    []Accent
}

// NewTheme parses every color in p.
func NewTheme(p Palette) (*Theme, error) {
	fg, err := color.ParseHex(p.Foreground)
	if err != nil {
		return nil, fmt.Errorf("%s foreground: %w", p.Name, err)
	}
	bg, err := color.ParseHex(p.Background)
	if err != nil {
		return nil, fmt.Errorf("%s background: %w", p.Name, err)
	}

	t := &Theme{
		Name:       p.Name,
		Foreground: fg,
		Background: bg,
		Accents:    make([]Accent, 0, len(p.Accents)),
	}
	for _, a := range p.Accents {
		c, err := color.ParseHex(a.Color)
		if err != nil {
			return nil, fmt.Errorf("%s accent for %q: %w", p.Name, a.Page, err)
		}
		t.Accents = append(t.Accents, Accent{Page: a.Page, Color: c})
	}
	return t, nil
}

// Accent returns the accent color for page.
func (t *Theme) Accent(page string) (color.Color, bool) {
	for _, a := range t.Accents {
		if a.Page == page {
			return a.Color, true
		}
	}
	return color.Color{}, false
}

// Catalog holds both themes.
type Catalog struct {
	Light *Theme
	Dark  *Theme
}

// NewCatalog parses LightPalette and DarkPalette.
func NewCatalog() (*Catalog, error) {
	return NewCatalogFrom(LightPalette, DarkPalette)
}

// NewCatalogFrom parses the given palettes. Both must declare the same pages
// in the same order.
func NewCatalogFrom(light, dark Palette) (*Catalog, error) {
	l, err := NewTheme(light)
	if err != nil {
		return nil, err
	}
	d, err := NewTheme(dark)
	if err != nil {
		return nil, err
	}

	if len(l.Accents) != len(d.Accents) {
		return nil, fmt.Errorf("palettes declare %d and %d accents", len(l.Accents), len(d.Accents))
	}
	for i := range l.Accents {
		if l.Accents[i].Page != d.Accents[i].Page {
			return nil, fmt.Errorf("accent %d is %q in %s but %q in %s",
				i, l.Accents[i].Page, l.Name, d.Accents[i].Page, d.Name)
		}
	}

	return &Catalog{Light: l, Dark: d}, nil
}

// Pages returns the page classes that have accents.
func (c *Catalog) Pages() []string {
	pages := make([]string, len(c.Light.Accents))
	for i, a := range c.Light.Accents {
		pages[i] = a.Page
	}
	return pages
}
