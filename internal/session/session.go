// Package session persists the admin token for the current login session.
//
// The token lives in a single file under the OS temp directory with owner-only
// permissions, so it survives between invocations of the tool but not a
// reboot. It is the command-line analogue of session-scoped browser storage:
// logout (or the OS clearing the temp dir) destroys it.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/necdetsanli/guestbookctl/internal/token"
)

// Store reads and writes the session token file.
type Store struct {
	path string
}

// New returns a Store backed by path. If path is empty the default location
// under the OS temp dir is used, keyed by UID so shared machines do not
// collide.
func New(path string) *Store {
	if path == "" {
		path = filepath.Join(os.TempDir(), "guestbookctl-session-"+strconv.Itoa(os.Getuid()))
	}
	return &Store{path: path}
}

// Get returns the stored token, or "" when no session exists. A stored value
// that no longer passes validation is treated as absent.
func (s *Store) Get() (string, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read session file: %w", err)
	}
	return token.Sanitize(strings.TrimSpace(string(b))), nil
}

// Set writes tok to the session file with owner-only permissions.
func (s *Store) Set(tok string) error {
	if token.Sanitize(tok) == "" {
		return errors.New("refusing to store invalid token")
	}
	if err := os.WriteFile(s.path, []byte(tok+"\n"), 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	// WriteFile does not change the mode of an existing file.
	if err := os.Chmod(s.path, 0o600); err != nil {
		return fmt.Errorf("chmod session file: %w", err)
	}
	return nil
}

// Clear removes the session file. Clearing an absent session is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }
