package origin

import (
	"errors"
	"testing"
)

const base = "https://necdetsanli-guestbook.sanlinecdet97.workers.dev"

func TestParseAllowed(t *testing.T) {
	g, err := Parse(base)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := g.Origin(); got != base {
		t.Errorf("Origin() = %q, want %q", got, base)
	}
}

func TestParseTrimsWhitespace(t *testing.T) {
	g, err := Parse("  " + base + "\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := g.Origin(); got != base {
		t.Errorf("Origin() = %q, want %q", got, base)
	}
}

func TestParseRejected(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"http scheme", "http://necdetsanli-guestbook.sanlinecdet97.workers.dev"},
		{"unknown host", "https://evil.example.com"},
		{"subdomain variant", "https://necdetsanli-guestbook.sanlinecdet97.workers.dev.evil.example"},
		{"explicit port", base + ":8443"},
		{"uppercase host", "https://NECDETSANLI-GUESTBOOK.SANLINECDET97.WORKERS.DEV"},
		{"userinfo", "https://user@necdetsanli-guestbook.sanlinecdet97.workers.dev"},
		{"garbage", "https://%zz"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if g, err := Parse(tc.raw); err == nil {
				t.Errorf("Parse(%q) succeeded with origin %q, want error", tc.raw, g.Origin())
			}
		})
	}
}

func TestParseDiscardsBasePath(t *testing.T) {
	g, err := Parse(base + "/some/prefix?x=1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	u, err := g.Resolve("/admin/pending")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if u.Path != "/admin/pending" {
		t.Errorf("resolved path = %q, want %q", u.Path, "/admin/pending")
	}
}

func TestResolve(t *testing.T) {
	g, err := Parse(base)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	u, err := g.Resolve("/admin/pending")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got, want := u.String(), base+"/admin/pending"; got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestResolveRejectsRelativePath(t *testing.T) {
	g, err := Parse(base)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	for _, path := range []string{"admin/pending", "", "https://evil.example.com/x"} {
		if _, err := g.Resolve(path); !errors.Is(err, ErrBadPath) {
			t.Errorf("Resolve(%q) error = %v, want ErrBadPath", path, err)
		}
	}
}

func TestResolveRejectsOriginEscape(t *testing.T) {
	g, err := Parse(base)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	// A protocol-relative reference starts with "/" but resolves to a
	// different host entirely.
	if u, err := g.Resolve("//evil.example.com/admin/pending"); err == nil {
		t.Errorf("Resolve escaped origin: %s", u)
	} else if !errors.Is(err, ErrNotAllowed) {
		t.Errorf("Resolve error = %v, want ErrNotAllowed", err)
	}
}
