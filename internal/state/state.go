// Package state holds the pure pagination state of a moderation listing.
//
// It performs no I/O: the client fetches pages, Apply folds them in, and the
// command layer renders the result. Keeping the transition logic here keeps
// it testable without a network or a terminal.
package state

import "github.com/necdetsanli/guestbookctl/internal/api"

// PageState is the accumulated view of a paginated listing. Cursor is the
// opaque continuation token to send on the next fetch; "" means either the
// start of the listing or its end, depending on HasMore.
type PageState struct {
	Cursor  string
	Entries []api.Entry
	hasMore bool
}

// Reset returns the empty state: no cursor, no entries. Used before a reset
// fetch so a failed request never shows stale rows as current.
func Reset() PageState {
	return PageState{}
}

// Apply folds a fetched page into s. A reset application replaces the
// accumulated entries; a continuation appends. The new cursor is threaded
// through verbatim: cursors are opaque and never inspected, deduplicated,
// or reordered client-side.
func (s PageState) Apply(page *api.ListResponse, reset bool) PageState {
	next := s
	if reset {
		next.Entries = nil
	}
	next.Entries = append(next.Entries[:len(next.Entries):len(next.Entries)], page.Entries...)
	next.Cursor = page.NextCursor
	next.hasMore = page.NextCursor != ""
	return next
}

// HasMore reports whether the server indicated further pages.
func (s PageState) HasMore() bool { return s.hasMore }

// Len returns the number of accumulated entries.
func (s PageState) Len() int { return len(s.Entries) }
