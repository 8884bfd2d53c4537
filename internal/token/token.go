// Package token validates admin session tokens.
package token

import "strings"

const (
	minLength = 20
	maxLength = 2048
)

// Sanitize trims surrounding whitespace from raw and returns it when it is a
// plausible bearer token: length within [20, 2048] and every byte drawn from
// the unreserved-plus-base64 class (alphanumerics and ._~-+=/). Anything
// else, including control or interior whitespace characters, yields "".
//
// "" is the canonical invalid sentinel; malformed user input is not an
// error. The server remains the only authority on whether a token is
// actually valid.
func Sanitize(raw string) string {
	tok := strings.TrimSpace(raw)
	if len(tok) < minLength || len(tok) > maxLength {
		return ""
	}
	for i := 0; i < len(tok); i++ {
		if !allowedByte(tok[i]) {
			return ""
		}
	}
	return tok
}

func allowedByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '.', '_', '~', '-', '+', '=', '/':
		return true
	}
	return false
}
