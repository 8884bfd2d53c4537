package main

import (
	"fmt"

	"github.com/necdetsanli/guestbookctl/internal/client"
	"github.com/necdetsanli/guestbookctl/internal/origin"
	"github.com/necdetsanli/guestbookctl/internal/session"
	"github.com/necdetsanli/guestbookctl/internal/token"
	"github.com/spf13/cobra"
)

type clientConfig struct {
	apiURL string
	token  string
}

func addClientFlags(cmd *cobra.Command, c *clientConfig) {
	cmd.Flags().StringVar(&c.apiURL, "api-url", "", "API base URL (default: GUESTBOOK_API_URL or the compiled-in origin)")
	cmd.Flags().StringVar(&c.token, "token", "", "admin bearer token (default: GUESTBOOK_ADMIN_TOKEN or the stored session)")
}

// guard validates the configured base URL against the origin allow-list.
// Failure here is a configuration error: no request is attempted.
func (c *clientConfig) guard() (*origin.Guard, error) {
	base := c.apiURL
	if base == "" {
		base = cfg.BaseURL
	}
	g, err := origin.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("api base URL rejected: %w", err)
	}
	return g, nil
}

// resolveToken picks the admin token by precedence: --token flag, the
// GUESTBOOK_ADMIN_TOKEN environment, then the session store. The result is
// sanitized; "" means no usable token.
func (c *clientConfig) resolveToken() (string, error) {
	if c.token != "" {
		tok := token.Sanitize(c.token)
		if tok == "" {
			return "", fmt.Errorf("--token value failed validation")
		}
		return tok, nil
	}
	if cfg.Token != "" {
		tok := token.Sanitize(cfg.Token)
		if tok == "" {
			return "", fmt.Errorf("GUESTBOOK_ADMIN_TOKEN failed validation")
		}
		return tok, nil
	}
	return sessionStore().Get()
}

// newAdminClient builds a client carrying the admin token. The token may
// still be empty; admin calls then fail with client.ErrNoToken before any
// network traffic.
func (c *clientConfig) newAdminClient() (*client.Client, error) {
	g, err := c.guard()
	if err != nil {
		return nil, err
	}
	tok, err := c.resolveToken()
	if err != nil {
		return nil, err
	}
	cl := client.New(g, tok)
	cl.SetTimeout(cfg.Timeout)
	return cl, nil
}

// newPublicClient builds a tokenless client for the public endpoints.
func (c *clientConfig) newPublicClient() (*client.Client, error) {
	g, err := c.guard()
	if err != nil {
		return nil, err
	}
	cl := client.New(g, "")
	cl.SetTimeout(cfg.Timeout)
	return cl, nil
}

func sessionStore() *session.Store {
	return session.New(cfg.SessionFile)
}
