package theme

import (
	"fmt"
	"strings"

	"github.com/arendjr/phebe/internal/color"
)

// DarkMediaQuery guards the dark theme when no preference is stored.
const DarkMediaQuery = "@media screen and (prefers-color-scheme: dark)"

// CSS renders the body colors and, per page, the tinted text color plus the
// accent for links and the matching menu entry.
func (t *Theme) CSS() string {
	var b strings.Builder
	fmt.Fprintf(&b, "body { background-color: %s; color: %s; }", t.Background.Hex(), t.Foreground.Hex())

	for _, a := range t.Accents {
		text := color.DeriveTextColor(a.Color, t.Foreground)
		fmt.Fprintf(&b, " body.%s { color: %s; }", a.Page, text.Hex())
		fmt.Fprintf(&b, " body.%s a { color: %s; }", a.Page, a.Color.Hex())
		fmt.Fprintf(&b, " .menu > li a.%s { color: %s; }", a.Page, a.Color.Hex())
	}
	return b.String()
}

// PreferenceCSS renders the stylesheet for pref. An explicit preference gets
// exactly one theme; Unspecified defaults to light and switches to dark
// through a media query.
func (c *Catalog) PreferenceCSS(pref Preference) string {
	switch pref {
	case Light:
		return ".theme-selector .light { display: none; } " + c.Light.CSS()
	case Dark:
		return ".theme-selector .dark { display: none; } " + c.Dark.CSS()
	default:
		return ".theme-selector .light { display: none; } " + c.Light.CSS() +
			" " + DarkMediaQuery + " { " +
			".theme-selector .dark { display: none; } .theme-selector .light { display: inline; } " +
			c.Dark.CSS() + " }"
	}
}
