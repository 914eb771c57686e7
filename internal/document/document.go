// Package document wraps page bodies in a complete HTML document.
package document

import (
	"html"
	"strings"

	"github.com/arendjr/phebe/internal/theme"
)

// CodeMarker is what fenced code looks like once rendered. Its presence in a
// body pulls in the highlighter assets.
const CodeMarker = `<code class="language-`

// HasCode reports whether body appears to contain highlighted code. This is a
// substring scan, not a parse.
func HasCode(body string) bool {
	return strings.Contains(body, CodeMarker)
}

// Assembler builds documents. All fields are fixed for the process lifetime.
type Assembler struct {
	Title       string
	Author      string
	Description string
	FeedPath    string

	FontsCSS string
	MainCSS  string
	CodeCSS  string

	Themes *theme.Catalog
}

// Assemble wraps body (a complete <body> element) for the given preference.
// The output depends only on its inputs.
func (a *Assembler) Assemble(body string, pref theme.Preference) []byte {
	hasCode := HasCode(body)

	var b strings.Builder
	b.Grow(len(a.FontsCSS) + len(a.MainCSS) + len(body) + 4096)

	b.WriteString("<!DOCTYPE html><html><head>")
	b.WriteString(`<meta charset="utf-8">`)
	b.WriteString("<title>")
	b.WriteString(html.EscapeString(a.Title))
	b.WriteString("</title>")
	if a.Author != "" {
		b.WriteString(`<meta name="author" content="`)
		b.WriteString(html.EscapeString(a.Author))
		b.WriteString(`">`)
	}
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	if a.Description != "" {
		b.WriteString(`<meta name="description" content="`)
		b.WriteString(html.EscapeString(a.Description))
		b.WriteString(`">`)
	}
	if a.FeedPath != "" {
		b.WriteString(`<link rel="alternate" type="application/rss+xml" title="`)
		b.WriteString(html.EscapeString(a.Title))
		b.WriteString(`" href="`)
		b.WriteString(html.EscapeString(a.FeedPath))
		b.WriteString(`">`)
	}

	b.WriteString("<style>")
	b.WriteString(a.FontsCSS)
	b.WriteString(" ")
	b.WriteString(a.MainCSS)
	b.WriteString(" ")
	b.WriteString(a.Themes.PreferenceCSS(pref))
	if hasCode {
		b.WriteString(" ")
		b.WriteString(a.CodeCSS)
	}
	b.WriteString("</style>")
	b.WriteString(`<script defer src="/main.js" type="module"></script>`)
	b.WriteString("</head>")

	b.WriteString(body)
	if hasCode {
		b.WriteString(`<script src="/prism.js"></script>`)
	}
	b.WriteString("</html>")

	return []byte(b.String())
}
