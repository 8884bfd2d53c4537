package history

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "history.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpenCreatesSchema(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"schema_migrations", "actions"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s not found: %v", table, err)
		}
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	_ = db.Close()

	db, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	_ = db.Close()
}

func TestRecordAndList(t *testing.T) {
	db := openTestDB(t)

	if err := Record(db, "approve", "pending:a", "ok"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := Record(db, "delete", "entry:b", "status 500"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	actions, err := List(db, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(actions) != 2 {
		t.Fatalf("List returned %d actions, want 2", len(actions))
	}
	// Newest first; same-second inserts tie-break on id.
	if actions[0].Action != "delete" || actions[0].EntryKey != "entry:b" {
		t.Errorf("actions[0] = %+v, want the delete", actions[0])
	}
	if actions[1].Outcome != "ok" {
		t.Errorf("actions[1].Outcome = %q, want ok", actions[1].Outcome)
	}
	if actions[0].PerformedAt == 0 {
		t.Error("PerformedAt not set")
	}
}

func TestListLimit(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 5; i++ {
		if err := Record(db, "approve", "pending:x", "ok"); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	actions, err := List(db, 3)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(actions) != 3 {
		t.Errorf("List returned %d actions, want 3", len(actions))
	}
}
