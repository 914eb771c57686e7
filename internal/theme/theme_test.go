package theme

import (
	"errors"
	"strings"
	"testing"

	cssast "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"

	"github.com/arendjr/phebe/internal/color"
)

const (
	lightBody = "body { background-color: #ffffff; color: #111111; }"
	darkBody  = "body { background-color: #191919; color: #ffffff; }"
)

func mustCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

func TestParsePreference(t *testing.T) {
	tests := map[string]Preference{
		"light": Light,
		"dark":  Dark,
		"":      Unspecified,
		"Dark":  Unspecified,
		"auto":  Unspecified,
	}
	for in, want := range tests {
		if got := ParsePreference(in); got != want {
			t.Errorf("ParsePreference(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCatalogPagesMatchAcrossThemes(t *testing.T) {
	c := mustCatalog(t)

	want := []string{"me", "people", "projects", "articles"}
	got := c.Pages()
	if len(got) != len(want) {
		t.Fatalf("Pages() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pages()[%d] = %q, want %q", i, got[i], want[i])
		}
		if _, ok := c.Dark.Accent(want[i]); !ok {
			t.Errorf("dark theme missing accent for %q", want[i])
		}
	}
}

func TestNewCatalogRejectsBadHex(t *testing.T) {
	bad := LightPalette
	bad.Accents = []AccentDef{{Page: "me", Color: "#zz0000"}}

	_, err := NewCatalogFrom(bad, DarkPalette)
	if !errors.Is(err, color.ErrInvalidHexFormat) {
		t.Fatalf("expected ErrInvalidHexFormat, got %v", err)
	}
}

func TestNewCatalogRejectsMismatchedPages(t *testing.T) {
	dark := DarkPalette
	dark.Accents = append([]AccentDef{}, DarkPalette.Accents...)
	dark.Accents[0].Page = "home"

	if _, err := NewCatalogFrom(LightPalette, dark); err == nil {
		t.Fatal("expected error for mismatched page keys")
	}
}

func TestThemeCSS(t *testing.T) {
	c := mustCatalog(t)
	css := c.Light.CSS()

	if !strings.HasPrefix(css, lightBody) {
		t.Errorf("light CSS should start with body rule, got %q", css[:60])
	}
	for _, want := range []string{
		"body.me { color: #2e2528; }",
		"body.me a { color: #daabbc; }",
		".menu > li a.me { color: #daabbc; }",
		"body.articles { color: #141211; }",
		"body.articles a { color: #3f2310; }",
		".menu > li a.articles { color: #3f2310; }",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("light CSS missing %q", want)
		}
	}

	dark := c.Dark.CSS()
	if !strings.Contains(dark, "body.articles a { color: #eebf58; }") {
		t.Error("dark CSS missing articles accent")
	}
	if !strings.Contains(dark, "body.people { color: #fdfdfc; }") {
		t.Error("dark CSS missing derived people text color")
	}
}

func TestThemeCSSIsDeterministic(t *testing.T) {
	c := mustCatalog(t)
	first := c.PreferenceCSS(Unspecified)
	for i := 0; i < 10; i++ {
		if got := c.PreferenceCSS(Unspecified); got != first {
			t.Fatal("PreferenceCSS output changed between calls")
		}
	}
}

func TestPreferenceCSS(t *testing.T) {
	c := mustCatalog(t)

	tests := []struct {
		pref         Preference
		hidden       string
		wantLight    bool
		wantDark     bool
		mediaQueries int
	}{
		{Light, ".theme-selector .light { display: none; }", true, false, 0},
		{Dark, ".theme-selector .dark { display: none; }", false, true, 0},
		{Unspecified, ".theme-selector .light { display: none; }", true, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.pref.String(), func(t *testing.T) {
			css := c.PreferenceCSS(tt.pref)

			if !strings.HasPrefix(css, tt.hidden) {
				t.Errorf("expected CSS to start with %q", tt.hidden)
			}
			if got := strings.Contains(css, lightBody); got != tt.wantLight {
				t.Errorf("contains light body rule = %v, want %v", got, tt.wantLight)
			}
			if got := strings.Contains(css, darkBody); got != tt.wantDark {
				t.Errorf("contains dark body rule = %v, want %v", got, tt.wantDark)
			}
			if got := strings.Count(css, "prefers-color-scheme: dark"); got != tt.mediaQueries {
				t.Errorf("media query count = %d, want %d", got, tt.mediaQueries)
			}
		})
	}
}

func TestPreferenceCSSParses(t *testing.T) {
	c := mustCatalog(t)

	for _, pref := range Preferences {
		sheet, err := parser.Parse(c.PreferenceCSS(pref))
		if err != nil {
			t.Fatalf("%s: parse: %v", pref, err)
		}

		var media []*cssast.Rule
		qualified := 0
		for _, rule := range sheet.Rules {
			switch rule.Kind {
			case cssast.AtRule:
				if strings.TrimPrefix(rule.Name, "@") == "media" {
					media = append(media, rule)
				}
			case cssast.QualifiedRule:
				qualified++
			}
		}

		// selector rule + body rule + three rules per page
		wantTop := 2 + 3*len(c.Pages())
		if qualified != wantTop {
			t.Errorf("%s: %d top-level rules, want %d", pref, qualified, wantTop)
		}

		if pref != Unspecified {
			if len(media) != 0 {
				t.Errorf("%s: expected no media rules, got %d", pref, len(media))
			}
			continue
		}
		if len(media) != 1 {
			t.Fatalf("unspecified: expected one media rule, got %d", len(media))
		}
		if !strings.Contains(media[0].Prelude, "prefers-color-scheme") {
			t.Errorf("media prelude = %q", media[0].Prelude)
		}
		// two selector swaps + body rule + three rules per page
		if want := 3 + 3*len(c.Pages()); len(media[0].Rules) != want {
			t.Errorf("media block has %d rules, want %d", len(media[0].Rules), want)
		}
	}
}
