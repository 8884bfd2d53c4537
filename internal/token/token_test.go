package token

import (
	"strings"
	"testing"
)

func TestSanitizeValid(t *testing.T) {
	cases := []string{
		"AbCdEfGhIj0123456789",
		"abcdefghij.0123456789",
		"a_b-c~d+e=f/g.h22334455",
		strings.Repeat("x", 2048),
	}
	for _, raw := range cases {
		if got := Sanitize(raw); got != raw {
			t.Errorf("Sanitize(%q) = %q, want input unchanged", raw, got)
		}
	}
}

func TestSanitizeTrims(t *testing.T) {
	if got := Sanitize("  AbCdEfGhIj0123456789\n"); got != "AbCdEfGhIj0123456789" {
		t.Errorf("Sanitize did not trim: %q", got)
	}
}

func TestSanitizeInvalid(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"too short", strings.Repeat("a", 19)},
		{"too long", strings.Repeat("a", 2049)},
		{"interior space", "AbCdEfGhIj 123456789"},
		{"interior tab", "AbCdEfGhIj\t123456789"},
		{"control char", "AbCdEfGhIj\x01123456789"},
		{"disallowed punctuation", "AbCdEfGhIj!0123456789"},
		{"non-ascii", "AbCdEfGhIjé0123456789"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sanitize(tc.raw); got != "" {
				t.Errorf("Sanitize(%q) = %q, want \"\"", tc.raw, got)
			}
		})
	}
}
