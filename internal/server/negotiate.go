package server

import (
	"net/http"

	"github.com/arendjr/phebe/internal/site"
	"github.com/arendjr/phebe/internal/theme"
)

// ContentKind is the representation a request asked for.
type ContentKind int

const (
	KindHTML ContentKind = iota
	KindJSON
)

func (k ContentKind) String() string {
	if k == KindJSON {
		return "json"
	}
	return "html"
}

const (
	ContentTypeHTML = "text/html; charset=UTF-8"
	ContentTypeJSON = "application/json"

	// CookieName stores an explicitly chosen color scheme.
	CookieName = "color_scheme"

	queryLight = "preferred_color_scheme=light"
	queryDark  = "preferred_color_scheme=dark"
)

// Negotiation is a request reduced to the key that selects a variant.
type Negotiation struct {
	Kind       ContentKind
	Preference theme.Preference
	// Override is set when the query string chose the preference.
	Override bool
}

// Negotiate inspects the Accept header, the raw query and the color_scheme
// cookie. Only exact matches are recognized; everything else falls back to
// HTML and Unspecified.
func Negotiate(r *http.Request) Negotiation {
	var n Negotiation
	if r.Header.Get("Accept") == ContentTypeJSON {
		n.Kind = KindJSON
	}

	switch r.URL.RawQuery {
	case queryLight:
		n.Preference, n.Override = theme.Light, true
	case queryDark:
		n.Preference, n.Override = theme.Dark, true
	}

	if !n.Override && n.Kind == KindHTML {
		if c, err := r.Cookie(CookieName); err == nil {
			n.Preference = theme.ParsePreference(c.Value)
		}
	}
	return n
}

// Dispatcher serves negotiated page variants from a prebuilt cache.
type Dispatcher struct {
	cache *site.Cache
}

// NewDispatcher returns a handler over cache.
func NewDispatcher(cache *site.Cache) *Dispatcher {
	return &Dispatcher{cache: cache}
}

func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n := Negotiate(r)

	var (
		body        []byte
		ok          bool
		contentType string
	)
	if n.Kind == KindJSON {
		body, ok = d.cache.JSON(r.URL.Path)
		contentType = ContentTypeJSON
	} else {
		body, ok = d.cache.HTML(r.URL.Path, n.Preference)
		contentType = ContentTypeHTML
	}
	if !ok {
		notFound(w, r)
		return
	}

	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("Vary", "Accept")
	if n.Override {
		http.SetCookie(w, &http.Cookie{Name: CookieName, Value: n.Preference.String(), Path: "/"})
	}
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writePlain(w, http.StatusNotFound, "Not Found")
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Allow", http.MethodGet)
	writePlain(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}

func writePlain(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(msg))
}
