// Package client implements the HTTP client for the guestbook worker API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/necdetsanli/guestbookctl/internal/api"
	"github.com/necdetsanli/guestbookctl/internal/origin"
)

const (
	// DefaultTimeout bounds every request; a hung network path resolves to
	// a context error rather than blocking forever.
	DefaultTimeout = 10 * time.Second

	// PageLimit is the fixed page size sent on listing requests.
	PageLimit = 50

	// PendingKeyPrefix marks entries that await moderation.
	PendingKeyPrefix = "pending:"

	minKeyLength     = 8
	maxMessageLength = 2000
	maxResponseBytes = 1 << 20 // 1MB
)

// Client talks to the guestbook worker at an origin-guarded base URL. The
// zero value is unusable; construct with New.
type Client struct {
	guard   *origin.Guard
	token   string
	timeout time.Duration
	httpc   *http.Client
}

// New returns a Client pinned to guard. tok may be empty for public
// operations; admin operations then fail with ErrNoToken before any network
// call.
func New(guard *origin.Guard, tok string) *Client {
	return &Client{
		guard:   guard,
		token:   tok,
		timeout: DefaultTimeout,
		httpc: &http.Client{
			// Never follow redirects: a credentialed request must not be
			// replayed against whatever Location the server offers. The 3xx
			// response itself falls through to the status check.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
			// No cookie jar: the bearer header is the only credential sent.
		},
	}
}

// SetTimeout overrides the per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.timeout = d
	}
}

// ListPending fetches one page of entries awaiting moderation. An empty
// cursor starts from the beginning; a non-empty cursor is threaded through
// verbatim from a prior page's NextCursor.
func (c *Client) ListPending(ctx context.Context, cursor string) (*api.ListResponse, error) {
	return c.list(ctx, "/admin/pending", cursor, true)
}

// ListApproved fetches one page of the public, approved guestbook entries.
// No credential is attached.
func (c *Client) ListApproved(ctx context.Context, cursor string) (*api.ListResponse, error) {
	return c.list(ctx, "/entries", cursor, false)
}

func (c *Client) list(ctx context.Context, path, cursor string, authed bool) (*api.ListResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	q := url.Values{}
	q.Set("limit", strconv.Itoa(PageLimit))
	if cursor != "" {
		q.Set("cursor", cursor)
	}

	req, err := c.newRequest(ctx, http.MethodGet, path+"?"+q.Encode(), nil, authed)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	page, err := decodeList(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	return page, nil
}

// Approve approves a pending entry. Keys without the pending prefix fail the
// shape check locally and never reach the network; the server re-validates
// regardless.
func (c *Client) Approve(ctx context.Context, key string) error {
	if !strings.HasPrefix(key, PendingKeyPrefix) {
		return fmt.Errorf("%w: approve requires a %q key", ErrInvalidKey, PendingKeyPrefix)
	}
	return c.mutate(ctx, "/admin/approve", key)
}

// Delete permanently removes an entry. Confirmation is the caller's job;
// the client only enforces the key shape.
func (c *Client) Delete(ctx context.Context, key string) error {
	if len(key) < minKeyLength {
		return fmt.Errorf("%w: too short", ErrInvalidKey)
	}
	return c.mutate(ctx, "/admin/delete", key)
}

func (c *Client) mutate(ctx context.Context, path, key string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(api.MutateRequest{Key: key})
	if err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(body), true)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

// Submit posts a new public guestbook entry, carrying the anti-spam
// challenge answer through untouched.
func (c *Client) Submit(ctx context.Context, sub api.SubmitRequest) error {
	if strings.TrimSpace(sub.Name) == "" {
		return fmt.Errorf("submission requires a name")
	}
	if strings.TrimSpace(sub.Message) == "" {
		return fmt.Errorf("submission requires a message")
	}
	if len(sub.Message) > maxMessageLength {
		return fmt.Errorf("message exceeds %d characters", maxMessageLength)
	}
	if sub.Website != "" && !api.ValidWebsite(sub.Website) {
		return fmt.Errorf("website must be an absolute http(s) URL")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(sub)
	if err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/entries", bytes.NewReader(body), false)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("post /entries: %w", err)
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

// newRequest builds a request against the pinned origin. ctx must already
// carry the per-request timeout; operations own its lifetime and cancel it
// once the response body is consumed.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, authed bool) (*http.Request, error) {
	if authed && c.token == "" {
		return nil, ErrNoToken
	}

	u, err := c.guard.Resolve(strings.SplitN(path, "?", 2)[0])
	if err != nil {
		return nil, err
	}
	if i := strings.IndexByte(path, '?'); i >= 0 {
		u.RawQuery = path[i+1:]
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Cache-Control", "no-store")
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// checkStatus maps the response status to the error taxonomy: nil for 2xx,
// ErrUnauthorized for 401/403, StatusError otherwise (redirects included).
func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	default:
		return &StatusError{Code: resp.StatusCode, Message: errorMessage(resp)}
	}
}

func errorMessage(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return ""
	}
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	return errResp.Error
}

// decodeList parses a listing envelope defensively: the response is a
// failure unless its "ok" field is literally true; a malformed entries
// array degrades to empty and a malformed cursor to "", mirroring how the
// worker's clients have always treated this envelope.
func decodeList(r io.Reader) (*api.ListResponse, error) {
	var envelope struct {
		OK         json.RawMessage `json:"ok"`
		Entries    json.RawMessage `json:"entries"`
		NextCursor json.RawMessage `json:"nextCursor"`
	}
	if err := json.NewDecoder(r).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("malformed response body: %w", err)
	}
	if string(bytes.TrimSpace(envelope.OK)) != "true" {
		return nil, fmt.Errorf("response not ok")
	}

	page := &api.ListResponse{OK: true}
	if len(envelope.Entries) > 0 {
		if err := json.Unmarshal(envelope.Entries, &page.Entries); err != nil {
			page.Entries = nil
		}
	}
	if len(envelope.NextCursor) > 0 {
		if err := json.Unmarshal(envelope.NextCursor, &page.NextCursor); err != nil {
			page.NextCursor = ""
		}
	}
	return page, nil
}
