package state

import (
	"testing"

	"github.com/necdetsanli/guestbookctl/internal/api"
)

func page(keys []string, next string) *api.ListResponse {
	resp := &api.ListResponse{OK: true, NextCursor: next}
	for _, k := range keys {
		resp.Entries = append(resp.Entries, api.Entry{Key: k})
	}
	return resp
}

func keys(s PageState) []string {
	var out []string
	for _, e := range s.Entries {
		out = append(out, e.Key)
	}
	return out
}

func TestApplyReset(t *testing.T) {
	s := Reset().Apply(page([]string{"pending:a", "pending:b"}, "abc"), true)

	if got := keys(s); len(got) != 2 || got[0] != "pending:a" || got[1] != "pending:b" {
		t.Errorf("entries = %v, want [pending:a pending:b]", got)
	}
	if s.Cursor != "abc" {
		t.Errorf("Cursor = %q, want %q", s.Cursor, "abc")
	}
	if !s.HasMore() {
		t.Error("HasMore() = false, want true")
	}
}

func TestApplyContinuationAppends(t *testing.T) {
	s := Reset().Apply(page([]string{"pending:a"}, "abc"), true)
	s = s.Apply(page([]string{"pending:b"}, ""), false)

	if got := keys(s); len(got) != 2 || got[0] != "pending:a" || got[1] != "pending:b" {
		t.Errorf("entries = %v, want [pending:a pending:b]", got)
	}
	if s.HasMore() {
		t.Error("HasMore() = true after empty cursor")
	}
	if s.Cursor != "" {
		t.Errorf("Cursor = %q, want \"\"", s.Cursor)
	}
}

func TestApplyResetDiscardsPrior(t *testing.T) {
	s := Reset().Apply(page([]string{"pending:a"}, "abc"), true)
	s = s.Apply(page(nil, ""), true)

	if s.Len() != 0 {
		t.Errorf("Len() = %d after reset with empty page, want 0", s.Len())
	}
	if s.HasMore() {
		t.Error("HasMore() = true, want false")
	}
}

func TestApplyDoesNotAliasReceiver(t *testing.T) {
	first := Reset().Apply(page([]string{"pending:a"}, "abc"), true)
	second := first.Apply(page([]string{"pending:b"}, ""), false)
	third := first.Apply(page([]string{"pending:c"}, ""), false)

	if second.Entries[1].Key != "pending:b" {
		t.Errorf("second branch entry = %q, want pending:b", second.Entries[1].Key)
	}
	if third.Entries[1].Key != "pending:c" {
		t.Errorf("third branch entry = %q, want pending:c", third.Entries[1].Key)
	}
}
