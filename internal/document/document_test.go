package document

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/arendjr/phebe/internal/theme"
)

func newAssembler(t *testing.T) *Assembler {
	t.Helper()
	catalog, err := theme.NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return &Assembler{
		Title:    "Arend van Beelen jr.",
		Author:   "Arend van Beelen jr.",
		FeedPath: "/rss.xml",
		FontsCSS: "/* fonts */",
		MainCSS:  ".menu { list-style: none; }",
		CodeCSS:  "code[class*=\"language-\"] { tab-size: 4; }",
		Themes:   catalog,
	}
}

func countElements(t *testing.T, doc []byte, tag string) int {
	t.Helper()
	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		t.Fatalf("html.Parse: %v", err)
	}
	n := 0
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == tag {
			n++
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return n
}

func TestHasCode(t *testing.T) {
	if !HasCode(`<pre><code class="language-js">x</code></pre>`) {
		t.Error("expected fenced code to be detected")
	}
	if HasCode(`<p>plain <code>inline</code></p>`) {
		t.Error("inline code without a language should not count")
	}
}

func TestAssembleStructure(t *testing.T) {
	a := newAssembler(t)
	body := `<body class="me"><div class="content"><h1>Hi</h1></div></body>`

	for _, pref := range theme.Preferences {
		doc := a.Assemble(body, pref)

		if !bytes.HasPrefix(doc, []byte("<!DOCTYPE html><html><head>")) {
			t.Errorf("%s: unexpected prefix %q", pref, doc[:40])
		}
		if n := countElements(t, doc, "head"); n != 1 {
			t.Errorf("%s: %d head elements", pref, n)
		}
		if n := countElements(t, doc, "body"); n != 1 {
			t.Errorf("%s: %d body elements", pref, n)
		}
		if n := countElements(t, doc, "style"); n != 1 {
			t.Errorf("%s: %d style elements", pref, n)
		}
		if !bytes.Contains(doc, []byte(a.Themes.PreferenceCSS(pref))) {
			t.Errorf("%s: theme CSS not embedded", pref)
		}
		if !bytes.Contains(doc, []byte(`<script defer src="/main.js" type="module"></script>`)) {
			t.Errorf("%s: main.js script missing", pref)
		}
	}
}

func TestAssembleCodeAssets(t *testing.T) {
	a := newAssembler(t)

	plain := string(a.Assemble(`<body class="articles"><p>text</p></body>`, theme.Light))
	if strings.Contains(plain, "/prism.js") || strings.Contains(plain, a.CodeCSS) {
		t.Error("plain page should not reference highlighter assets")
	}

	code := string(a.Assemble(`<body class="articles"><pre><code class="language-go">x</code></pre></body>`, theme.Light))
	if !strings.Contains(code, `<script src="/prism.js"></script>`) {
		t.Error("code page should load prism.js")
	}
	if !strings.Contains(code, a.CodeCSS) {
		t.Error("code page should inline highlighter CSS")
	}
	if !strings.HasSuffix(code, `</body><script src="/prism.js"></script></html>`) {
		t.Errorf("prism script should follow the body, got suffix %q", code[len(code)-60:])
	}
}

func TestAssembleEscapesMetadata(t *testing.T) {
	a := newAssembler(t)
	a.Title = `Tom & "Jerry"`
	doc := string(a.Assemble("<body></body>", theme.Dark))
	if !strings.Contains(doc, "<title>Tom &amp; &#34;Jerry&#34;</title>") {
		t.Errorf("title not escaped: %s", doc[:200])
	}
}

func TestAssembleIsDeterministic(t *testing.T) {
	a := newAssembler(t)
	body := `<body class="people"><p>x</p></body>`
	first := a.Assemble(body, theme.Unspecified)
	for i := 0; i < 5; i++ {
		if !bytes.Equal(first, a.Assemble(body, theme.Unspecified)) {
			t.Fatal("Assemble output differs between calls")
		}
	}
}
