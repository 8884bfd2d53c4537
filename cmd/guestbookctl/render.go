package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/necdetsanli/guestbookctl/internal/api"
	"github.com/necdetsanli/guestbookctl/internal/client"
)

const messageColumnWidth = 48

func printEntries(w io.Writer, entries []api.Entry) {
	fmt.Fprintf(w, "%-32s  %-16s  %-19s  %s\n", "KEY", "NAME", "CREATED", "MESSAGE")
	for _, e := range entries {
		created := e.CreatedAt
		if t, err := time.Parse(time.RFC3339, e.CreatedAt); err == nil {
			created = t.Format("2006-01-02 15:04:05")
		}
		name := e.Name
		if site := e.WebsiteURL(); site != "" {
			name = name + " *"
		}
		fmt.Fprintf(w, "%-32s  %-16s  %-19s  %s\n", e.Key, truncate(name, 16), created, truncate(oneLine(e.Message), messageColumnWidth))
	}
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// confirm asks the operator a yes/no question on in, defaulting to no.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// describeErr adds a recovery hint to errors the operator can act on.
func describeErr(err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		return fmt.Errorf("%w; re-enter the token with \"guestbookctl login\"", err)
	}
	return err
}
