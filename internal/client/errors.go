package client

import (
	"errors"
	"fmt"
)

var (
	// ErrNoToken means no admin token was available; the request was never
	// attempted.
	ErrNoToken = errors.New("admin token required (run \"guestbookctl login\")")

	// ErrUnauthorized maps HTTP 401/403 from the worker. The stored token is
	// left in place; only the server decides token validity.
	ErrUnauthorized = errors.New("unauthorized: the worker rejected the token")

	// ErrInvalidKey means an entry key failed the client-side shape check;
	// the request was never attempted.
	ErrInvalidKey = errors.New("invalid entry key")
)

// StatusError is a non-2xx response other than 401/403. Redirects surface
// here too: the client never follows them, a 3xx on an API endpoint means
// the origin is misconfigured or compromised.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed with status %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("request failed with status %d", e.Code)
}
