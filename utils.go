package jsonschema

import (
	"fmt"
	"net/url"
	"strings"
)

// replace substitutes "{key}" placeholders in template with their string
// forms from params, the fallback used when no localizer is configured.
func replace(template string, params map[string]any) string {
	for key, value := range params {
		template = strings.ReplaceAll(template, "{"+key+"}", fmt.Sprint(value))
	}
	return template
}

// URI wraps net/url.URL with the handful of operations §3 requires: a
// scheme accessor, URN detection, and both fragment-stripped and
// JSON-Pointer-fragment representations. Adapted from the teacher's
// utils.go URL helpers (isValidURI/resolveRelativeURI/getBaseURI), which
// operated on raw strings; this type generalizes them to the spec's named
// URI abstraction used throughout the frame indexer.
type URI struct {
	raw    string
	parsed *url.URL
}

// ParseURI parses a URI string. An error only occurs for syntactically
// invalid input; relative references parse fine (Scheme/Host empty).
func ParseURI(s string) (URI, error) {
	u, err := url.Parse(s)
	if err != nil {
		return URI{}, err
	}
	return URI{raw: s, parsed: u}, nil
}

// IsValid reports whether the string parses as an absolute URI or an
// absolute path (url.ParseRequestURI); other relative references are
// rejected.
func IsValid(s string) bool {
	_, err := url.ParseRequestURI(s)
	return err == nil
}

// IsAbsolute reports whether the URI has both a scheme and an authority.
func (u URI) IsAbsolute() bool {
	return u.parsed != nil && u.parsed.Scheme != "" && u.parsed.Host != ""
}

// IsURN reports whether the URI uses the "urn" scheme (e.g. for metaschema
// identifiers that aren't dereferenceable HTTP(S) locations).
func (u URI) IsURN() bool {
	return u.parsed != nil && u.parsed.Scheme == "urn"
}

// Scheme returns the URI's scheme component.
func (u URI) Scheme() string {
	if u.parsed == nil {
		return ""
	}
	return u.parsed.Scheme
}

// Fragmentless returns the URI with any fragment stripped, the canonical
// form used as a frame index key.
func (u URI) Fragmentless() string {
	if u.parsed == nil {
		return u.raw
	}
	cp := *u.parsed
	cp.Fragment = ""
	cp.RawFragment = ""
	return cp.String()
}

// PointerFragment splits a "#/a/b" style fragment into a Pointer. Returns
// false if the URI has no fragment or the fragment isn't pointer-shaped
// (e.g. a plain $anchor name).
func (u URI) PointerFragment() (Pointer, bool) {
	if u.parsed == nil || u.parsed.Fragment == "" {
		return nil, false
	}
	frag := u.parsed.Fragment
	if !strings.HasPrefix(frag, "/") {
		return nil, false
	}
	return ParsePointer(frag), true
}

// String returns the URI in its original or resolved form.
func (u URI) String() string {
	if u.parsed == nil {
		return u.raw
	}
	return u.parsed.String()
}

// resolveRelativeURI resolves a relative URI against a base URI.
func resolveRelativeURI(baseURI, relativeURL string) string {
	if isAbsoluteURI(relativeURL) {
		return relativeURL
	}
	base, err := url.Parse(baseURI)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return relativeURL
	}
	rel, err := url.Parse(relativeURL)
	if err != nil {
		return relativeURL
	}
	return base.ResolveReference(rel).String()
}

// isAbsoluteURI checks if the given URL is absolute.
func isAbsoluteURI(urlStr string) bool {
	u, err := url.Parse(urlStr)
	return err == nil && u.Scheme != "" && u.Host != ""
}

