package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	// ErrSourceNotFound means no .md or .html file exists for a source name.
	ErrSourceNotFound = errors.New("source not found")
	// ErrAmbiguousSource means both a .md and an .html file exist.
	ErrAmbiguousSource = errors.New("ambiguous source")
)

var sourceNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+(/[A-Za-z0-9._-]+)*$`)

// sourceReader resolves extensionless source names to files and renders
// them to HTML fragments.
type sourceReader struct {
	fsys fs.FS
	md   goldmark.Markdown
	used []string
}

func newSourceReader(fsys fs.FS) *sourceReader {
	return &sourceReader{
		fsys: fsys,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// Resolve finds name.md or name.html.
func (s *sourceReader) Resolve(name string) (string, error) {
	if !sourceNamePattern.MatchString(name) || strings.Contains(name, "..") {
		return "", fmt.Errorf("%w: invalid source name %q", ErrSourceNotFound, name)
	}

	matches, err := doublestar.Glob(s.fsys, name+".{md,html}")
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", name, err)
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s.md or %s.html", ErrSourceNotFound, name, name)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s", ErrAmbiguousSource, strings.Join(matches, ", "))
	}
}

// Render returns the HTML fragment for name. Markdown is converted; HTML is
// passed through untouched.
func (s *sourceReader) Render(name string) (string, error) {
	file, err := s.Resolve(name)
	if err != nil {
		return "", err
	}
	data, err := fs.ReadFile(s.fsys, file)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", file, err)
	}
	s.used = append(s.used, file)

	if path.Ext(file) == ".html" {
		return strings.TrimSpace(string(data)), nil
	}

	var buf bytes.Buffer
	if err := s.md.Convert(data, &buf); err != nil {
		return "", fmt.Errorf("converting %s: %w", file, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// sourcePattern matches every file Load could have resolved.
const sourcePattern = "{pages,articles}/**/*.{md,html}"

// Unreferenced lists source files under pages/ and articles/ that no
// manifest entry uses, sorted by path.
func (r *Registry) Unreferenced(fsys fs.FS) ([]string, error) {
	used := make(map[string]bool, len(r.Sources))
	for _, f := range r.Sources {
		used[f] = true
	}

	var orphans []string
	err := doublestar.GlobWalk(fsys, sourcePattern, func(p string, d fs.DirEntry) error {
		if !d.IsDir() && !used[p] {
			orphans = append(orphans, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning sources: %w", err)
	}
	sort.Strings(orphans)
	return orphans, nil
}
