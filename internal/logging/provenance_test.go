package logging

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// #region helpers
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, err = db.Exec(`CREATE TABLE phase_transitions (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id    TEXT NOT NULL,
		from_phase    TEXT NOT NULL,
		to_phase      TEXT NOT NULL,
		reason        TEXT,
		decision_json TEXT,
		created_at    TEXT NOT NULL
	)`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

// #endregion helpers

// #region log-transition-tests
func TestLogTransition_Success(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	entry := TransitionEntry{
		SessionID:    "sess-1",
		FromPhase:    "warning",
		ToPhase:      "locked",
		Reason:       "grace expired",
		DecisionJSON: `{"phase":"locked"}`,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := LogTransition(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int
	db.QueryRow("SELECT COUNT(*) FROM phase_transitions").Scan(&count)
	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}

	var from, to string
	db.QueryRow("SELECT from_phase, to_phase FROM phase_transitions").Scan(&from, &to)
	if from != "warning" {
		t.Errorf("expected from_phase 'warning', got %q", from)
	}
	if to != "locked" {
		t.Errorf("expected to_phase 'locked', got %q", to)
	}
}

func TestLogTransition_ZeroCreatedAt(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	entry := TransitionEntry{
		SessionID: "sess-2",
		FromPhase: "pending",
		ToPhase:   "unlocked",
	}

	before := time.Now().UTC()
	if err := LogTransition(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var createdAtStr string
	db.QueryRow("SELECT created_at FROM phase_transitions").Scan(&createdAtStr)
	createdAt, err := time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		t.Fatalf("parse created_at: %v", err)
	}
	if createdAt.Before(before) {
		t.Error("expected auto-filled created_at to be >= test start time")
	}
}

func TestLogTransition_EmptyOptionalFields(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	entry := TransitionEntry{
		SessionID: "sess-3",
		FromPhase: "unlocked",
		ToPhase:   "warning",
		CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := LogTransition(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var reason, decision sql.NullString
	db.QueryRow("SELECT reason, decision_json FROM phase_transitions").Scan(&reason, &decision)
	if reason.Valid {
		t.Error("expected NULL reason for empty string")
	}
	if decision.Valid {
		t.Error("expected NULL decision_json for empty string")
	}
}

func TestLogTransition_Error(t *testing.T) {
	db := setupDB(t)
	db.Close() // close to force error

	entry := TransitionEntry{
		SessionID: "sess-4",
		FromPhase: "pending",
		ToPhase:   "unlocked",
	}

	if err := LogTransition(db, entry); err == nil {
		t.Fatal("expected error on closed db")
	}
}

// #endregion log-transition-tests

// #region list-transitions-tests
func TestListTransitions(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	seq := []TransitionEntry{
		{SessionID: "sess-5", FromPhase: "pending", ToPhase: "unlocked", Reason: "hold satisfied"},
		{SessionID: "sess-5", FromPhase: "unlocked", ToPhase: "warning", Reason: "requirement lost"},
		{SessionID: "other", FromPhase: "pending", ToPhase: "unlocked"},
	}
	for _, e := range seq {
		if err := LogTransition(db, e); err != nil {
			t.Fatalf("log transition: %v", err)
		}
	}

	got, err := ListTransitions(db, "sess-5", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 transitions, got %d", len(got))
	}
	if got[0].ToPhase != "unlocked" || got[1].ToPhase != "warning" {
		t.Fatalf("transitions out of order: %+v", got)
	}
	if got[1].Reason != "requirement lost" {
		t.Fatalf("unexpected reason %q", got[1].Reason)
	}
}

// #endregion list-transitions-tests

// #region null-if-empty-tests
func TestNullIfEmpty_Empty(t *testing.T) {
	if result := nullIfEmpty(""); result != nil {
		t.Errorf("expected nil for empty string, got %v", result)
	}
}

func TestNullIfEmpty_NonEmpty(t *testing.T) {
	if result := nullIfEmpty("hello"); result != "hello" {
		t.Errorf("expected 'hello', got %v", result)
	}
}

// #endregion null-if-empty-tests
