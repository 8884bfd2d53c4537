// Package api defines the wire types of the guestbook worker API.
package api

import "net/url"

// Entry is a guestbook submission as returned by the worker.
//
// While an entry awaits moderation its Key carries the "pending:" prefix;
// approval rewrites the key server-side. Entries are immutable from the
// client's perspective except via explicit approve/delete calls.
type Entry struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Website   string `json:"website,omitempty"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

// WebsiteURL returns the entry's website field if it parses as an absolute
// http(s) URL, or "" otherwise. Callers must not render the raw field.
func (e Entry) WebsiteURL() string {
	if ValidWebsite(e.Website) {
		return e.Website
	}
	return ""
}

// ValidWebsite reports whether raw is an absolute http(s) URL with a host.
func ValidWebsite(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// ListResponse is the envelope returned by the pending and public listing
// endpoints. NextCursor is opaque; "" means no further pages.
type ListResponse struct {
	OK         bool    `json:"ok"`
	Entries    []Entry `json:"entries"`
	NextCursor string  `json:"nextCursor"`
}

// MutateRequest is the body for the approve and delete endpoints.
type MutateRequest struct {
	Key string `json:"key"`
}

// SubmitRequest is the body for a new public guestbook submission. Challenge
// and Answer carry the anti-spam challenge through; the client never
// interprets them.
type SubmitRequest struct {
	Name      string `json:"name"`
	Website   string `json:"website,omitempty"`
	Message   string `json:"message"`
	Challenge string `json:"challenge,omitempty"`
	Answer    string `json:"answer,omitempty"`
}

// ErrorResponse is the error envelope the worker returns on failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
