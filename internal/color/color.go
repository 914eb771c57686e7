// Package color parses palette colors and derives tinted text colors from them.
package color

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// TextTintAlpha is the opacity at which a page accent is laid over the
// foreground color to produce that page's body text color.
const TextTintAlpha = 8.0 / 255.0

// ErrInvalidHexFormat is returned for hex strings that are not 3 or 6 hex digits.
var ErrInvalidHexFormat = errors.New("invalid hex code format")

// Color is an 8-bit sRGB color.
type Color struct {
	R, G, B uint8
}

// ParseHex parses "#abc", "abc", "#aabbcc" or "aabbcc".
// In the short form each digit d expands to d*17.
func ParseHex(s string) (Color, error) {
	code := strings.TrimPrefix(s, "#")

	switch len(code) {
	case 3:
		var c [3]uint8
		for i := 0; i < 3; i++ {
			d, ok := hexDigit(code[i])
			if !ok {
				return Color{}, fmt.Errorf("%w: %q", ErrInvalidHexFormat, s)
			}
			c[i] = d * 17
		}
		return Color{R: c[0], G: c[1], B: c[2]}, nil
	case 6:
		var c [3]uint8
		for i := 0; i < 3; i++ {
			hi, ok1 := hexDigit(code[2*i])
			lo, ok2 := hexDigit(code[2*i+1])
			if !ok1 || !ok2 {
				return Color{}, fmt.Errorf("%w: %q", ErrInvalidHexFormat, s)
			}
			c[i] = hi<<4 | lo
		}
		return Color{R: c[0], G: c[1], B: c[2]}, nil
	default:
		return Color{}, fmt.Errorf("%w: %q has %d digits", ErrInvalidHexFormat, s, len(code))
	}
}

// MustParseHex is like ParseHex but panics on error. Only for literals in tests.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// Hex formats the color as #rrggbb in lowercase.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string { return c.Hex() }

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// DeriveTextColor lays accent over the opaque foreground at TextTintAlpha in
// linear light and returns the gamma-encoded result. The outcome stays close
// to foreground with a slight tint toward accent.
func DeriveTextColor(accent, foreground Color) Color {
	sr, sg, sb := accent.colorful().LinearRgb()
	dr, dg, db := foreground.colorful().LinearRgb()

	r, g, b := over(sr, sg, sb, TextTintAlpha, dr, dg, db, 1)

	out := colorful.LinearRgb(r, g, b).Clamped()
	r8, g8, b8 := out.RGB255()
	return Color{R: r8, G: g8, B: b8}
}

// over composites unpremultiplied src over dst (Porter-Duff source-over) and
// returns the unpremultiplied result.
func over(sr, sg, sb, sa, dr, dg, db, da float64) (r, g, b float64) {
	// premultiply
	sr, sg, sb = sr*sa, sg*sa, sb*sa
	dr, dg, db = dr*da, dg*da, db*da

	outA := sa + da*(1-sa)
	if outA == 0 {
		return 0, 0, 0
	}
	r = sr + dr*(1-sa)
	g = sg + dg*(1-sa)
	b = sb + db*(1-sa)
	return r / outA, g / outA, b / outA
}
