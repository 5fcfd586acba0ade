package journal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kckern/DaylightStation-sub009/internal/govern"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id  TEXT PRIMARY KEY,
	media_id    TEXT,
	started_at  TEXT NOT NULL,
	ended_at    TEXT
);

CREATE TABLE IF NOT EXISTS decisions (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id       TEXT NOT NULL,
	trigger_type     TEXT NOT NULL,
	phase            TEXT NOT NULL,
	video_locked     INTEGER NOT NULL,
	satisfied        INTEGER NOT NULL,
	challenge_status TEXT,
	input_json       TEXT,
	decision_json    TEXT,
	created_at       TEXT NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);

CREATE TABLE IF NOT EXISTS phase_transitions (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id    TEXT NOT NULL,
	from_phase    TEXT NOT NULL,
	to_phase      TEXT NOT NULL,
	reason        TEXT,
	decision_json TEXT,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);
`

// #endregion schema

// #region store-struct
// Store manages the decision journal in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion close

// #region sessions
// BeginSession creates a new session row and returns it.
func (s *Store) BeginSession(mediaID string) (Session, error) {
	sess := Session{
		SessionID: uuid.New().String(),
		MediaID:   mediaID,
		StartedAt: time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO sessions (session_id, media_id, started_at) VALUES (?, ?, ?)`,
		sess.SessionID, nullIfEmpty(mediaID), sess.StartedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Session{}, fmt.Errorf("insert session: %w", err)
	}
	return sess, nil
}

// EndSession marks a session closed.
func (s *Store) EndSession(sessionID string, endedAt time.Time) error {
	_, err := s.db.Exec(
		`UPDATE sessions SET ended_at = ? WHERE session_id = ?`,
		endedAt.UTC().Format(time.RFC3339Nano), sessionID,
	)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

// ListSessions returns the most recent sessions.
func (s *Store) ListSessions(limit int) ([]Session, error) {
	rows, err := s.db.Query(
		`SELECT session_id, media_id, started_at, ended_at
		 FROM sessions ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var mediaID, endedAt sql.NullString
		var startedAt string
		if err := rows.Scan(&sess.SessionID, &mediaID, &startedAt, &endedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		if mediaID.Valid {
			sess.MediaID = mediaID.String
		}
		sess.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAt)
		if endedAt.Valid {
			sess.EndedAt, _ = time.Parse(time.RFC3339Nano, endedAt.String)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// #endregion sessions

// #region decisions
// RecordDecision appends one evaluation cycle to the journal.
func (s *Store) RecordDecision(entry DecisionEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO decisions (session_id, trigger_type, phase, video_locked, satisfied, challenge_status, input_json, decision_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.SessionID,
		entry.Trigger,
		string(entry.Phase),
		boolToInt(entry.VideoLocked),
		boolToInt(entry.Satisfied),
		nullIfEmpty(string(entry.ChallengeStatus)),
		nullIfEmpty(entry.InputJSON),
		nullIfEmpty(entry.DecisionJSON),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record decision: %w", err)
	}
	return nil
}

// ListDecisions returns a session's journaled cycles in evaluation order.
func (s *Store) ListDecisions(sessionID string, limit int) ([]DecisionEntry, error) {
	rows, err := s.db.Query(
		`SELECT session_id, trigger_type, phase, video_locked, satisfied, challenge_status, input_json, decision_json, created_at
		 FROM decisions WHERE session_id = ? ORDER BY id ASC LIMIT ?`, sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var entries []DecisionEntry
	for rows.Next() {
		var e DecisionEntry
		var phase, createdAt string
		var locked, satisfied int
		var challenge, input, decision sql.NullString
		if err := rows.Scan(&e.SessionID, &e.Trigger, &phase, &locked, &satisfied, &challenge, &input, &decision, &createdAt); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		e.Phase = govern.Phase(phase)
		e.VideoLocked = locked != 0
		e.Satisfied = satisfied != 0
		if challenge.Valid {
			e.ChallengeStatus = govern.ChallengeStatus(challenge.String)
		}
		if input.Valid {
			e.InputJSON = input.String
		}
		if decision.Valid {
			e.DecisionJSON = decision.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion decisions

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion helpers
