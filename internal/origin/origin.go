// Package origin pins API requests to an allow-listed base origin.
package origin

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// defaultAllowed is the fixed set of origins the shipped client will talk
// to. An origin is scheme://host[:port] exactly as url.URL renders it; no
// case normalization is applied, so a host differing only in case is
// rejected rather than canonicalized.
var defaultAllowed = []string{
	"https://necdetsanli-guestbook.sanlinecdet97.workers.dev",
	"https://necdetsanli-guestbook-staging.sanlinecdet97.workers.dev",
}

var (
	ErrEmptyBase      = errors.New("api base URL not configured")
	ErrInsecureScheme = errors.New("api base URL must use https")
	ErrNotAllowed     = errors.New("api base origin is not allow-listed")
	ErrBadPath        = errors.New("request path must begin with /")
)

// Guard is a validated, pinned API base. The zero value is unusable; obtain
// one via Parse or ParseAllowed.
type Guard struct {
	base    *url.URL
	allowed map[string]bool
}

// Parse validates raw against the compiled-in allow-list.
func Parse(raw string) (*Guard, error) {
	return ParseAllowed(raw, defaultAllowed)
}

// ParseAllowed validates raw as an API base URL: it must parse, use https,
// and its origin must be a member of allowed. Any violation yields a nil
// Guard; callers must treat that as a configuration error and make no
// network calls.
func ParseAllowed(raw string, allowed []string) (*Guard, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyBase
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse api base URL: %w", err)
	}
	if u.Scheme != "https" {
		return nil, ErrInsecureScheme
	}
	if u.User != nil {
		// Userinfo is a classic URL-confusion vector; no legitimate
		// configuration carries one.
		return nil, fmt.Errorf("%w: userinfo present", ErrNotAllowed)
	}

	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		set[o] = true
	}
	if !set[originOf(u)] {
		return nil, fmt.Errorf("%w: %s", ErrNotAllowed, originOf(u))
	}

	// Pin only the origin. Any path or query on the configured base is
	// discarded so Resolve cannot be steered by it.
	return &Guard{
		base:    &url.URL{Scheme: u.Scheme, Host: u.Host},
		allowed: set,
	}, nil
}

// Origin returns the pinned origin string.
func (g *Guard) Origin() string {
	return originOf(g.base)
}

// Resolve resolves path against the pinned base and re-validates that the
// result still lands on an allow-listed origin. The second check guards
// against URL reference quirks (protocol-relative references in particular)
// that could otherwise escape the pinned host.
func (g *Guard) Resolve(path string) (*url.URL, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, ErrBadPath
	}
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("parse request path: %w", err)
	}
	resolved := g.base.ResolveReference(ref)
	if !g.allowed[originOf(resolved)] {
		return nil, fmt.Errorf("%w: resolved %q off-origin", ErrNotAllowed, path)
	}
	return resolved, nil
}

func originOf(u *url.URL) string {
	return u.Scheme + "://" + u.Host
}
