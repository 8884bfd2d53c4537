package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/necdetsanli/guestbookctl/internal/origin"
)

// A base URL outside the allow-list is a configuration error: the command
// must fail before any request is built.
func TestPendingRejectsUnknownOrigin(t *testing.T) {
	t.Setenv("GUESTBOOK_SESSION_FILE", t.TempDir()+"/session")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"pending", "--api-url", "https://evil.example.com"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		pendingFlags.apiURL = ""
	})

	err := rootCmd.Execute()
	if !errors.Is(err, origin.ErrNotAllowed) {
		t.Fatalf("Execute error = %v, want ErrNotAllowed", err)
	}
	if strings.Contains(out.String(), "No pending entries") {
		t.Errorf("command rendered a listing despite the rejected origin:\n%s", out.String())
	}
}
