// Package urlresolver turns document-relative references into absolute URLs.
//
// The resolution is deliberately simple: it does not normalize ".." segments,
// does not understand scheme-relative ("//host/...") references and has no
// special handling for query- or fragment-only references. Unhandled cases
// come back unchanged so callers always get a usable string.
package urlresolver

import (
	"net/url"
	"strings"
)

// Resolve joins rawURL against baseURL. The input is returned unchanged when
// baseURL is empty, when rawURL already carries an http(s) scheme, or when
// baseURL cannot be parsed into a scheme and host.
func Resolve(rawURL, baseURL string) string {
	if baseURL == "" || rawURL == "" {
		return rawURL
	}
	if strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
		return rawURL
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return rawURL
	}
	origin := base.Scheme + "://" + base.Host

	if strings.HasPrefix(rawURL, "/") {
		return origin + rawURL
	}

	// Manual dirname keeps the base path exactly as given; path.Dir would
	// clean it.
	dir := base.Path
	if idx := strings.LastIndex(dir, "/"); idx >= 0 {
		dir = dir[:idx]
	} else {
		dir = ""
	}
	return origin + dir + "/" + rawURL
}

// Classify labels an href by destination kind: email, phone, anchor,
// external or internal.
func Classify(href string) string {
	lower := strings.ToLower(href)
	switch {
	case strings.HasPrefix(lower, "mailto:"):
		return "email"
	case strings.HasPrefix(lower, "tel:"):
		return "phone"
	case strings.HasPrefix(href, "#"):
		return "anchor"
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return "external"
	default:
		return "internal"
	}
}
