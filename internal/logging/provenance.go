package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-transition
// LogTransition writes a provenance entry to the phase_transitions table.
func LogTransition(db *sql.DB, entry TransitionEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO phase_transitions (session_id, from_phase, to_phase, reason, decision_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.SessionID,
		entry.FromPhase,
		entry.ToPhase,
		nullIfEmpty(entry.Reason),
		nullIfEmpty(entry.DecisionJSON),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log transition: %w", err)
	}
	return nil
}

// #endregion log-transition

// #region list-transitions
// ListTransitions returns a session's phase transitions in order.
func ListTransitions(db *sql.DB, sessionID string, limit int) ([]TransitionEntry, error) {
	rows, err := db.Query(
		`SELECT session_id, from_phase, to_phase, reason, decision_json, created_at
		 FROM phase_transitions WHERE session_id = ? ORDER BY id ASC LIMIT ?`, sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list transitions: %w", err)
	}
	defer rows.Close()

	var entries []TransitionEntry
	for rows.Next() {
		var e TransitionEntry
		var reason, decision sql.NullString
		var createdAt string
		if err := rows.Scan(&e.SessionID, &e.FromPhase, &e.ToPhase, &reason, &decision, &createdAt); err != nil {
			return nil, fmt.Errorf("scan transition: %w", err)
		}
		if reason.Valid {
			e.Reason = reason.String
		}
		if decision.Valid {
			e.DecisionJSON = decision.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion list-transitions

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
