package site

import (
	"html"
	"strings"

	"github.com/arendjr/phebe/internal/content"
)

// themeSelector links are hidden per preference by the theme CSS.
const themeSelector = `<div class="theme-selector">` +
	`<a class="dark" href="?preferred_color_scheme=dark">Dark theme</a>` +
	`<a class="light" href="?preferred_color_scheme=light">Light theme</a>` +
	`</div>`

func composeBody(page content.Page, menu []content.MenuItem) string {
	var b strings.Builder
	b.WriteString(`<body class="`)
	b.WriteString(html.EscapeString(page.Class))
	b.WriteString(`">`)
	b.WriteString(themeSelector)
	renderMenu(&b, menu, page.Class)
	b.WriteString(page.Body)
	b.WriteString("</body>")
	return b.String()
}

// renderMenu marks the entry whose class matches the page as active.
func renderMenu(b *strings.Builder, menu []content.MenuItem, active string) {
	b.WriteString(`<ul class="menu">`)
	for _, item := range menu {
		b.WriteString(`<li><a class="`)
		b.WriteString(html.EscapeString(item.Class))
		if item.Class == active {
			b.WriteString(" active")
		}
		b.WriteString(`" href="`)
		b.WriteString(html.EscapeString(item.Path))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(item.Title))
		b.WriteString("</a></li>")
	}
	b.WriteString("</ul>")
}
