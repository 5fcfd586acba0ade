package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kckern/DaylightStation-sub009/internal/journal"
	"github.com/kckern/DaylightStation-sub009/internal/logging"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to governor.db")
	sessionID := flag.String("session", "", "show one session's cycles")
	last := flag.Int("last", 20, "show N most recent sessions, or the first N rows with --session")
	transitions := flag.Bool("transitions", false, "show phase transitions instead of cycles (with --session)")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/governor.db [--session id] [--last N] [--transitions] [--json]")
		os.Exit(2)
	}

	store, err := journal.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case *sessionID != "" && *transitions:
		err = runTransitionMode(store, *sessionID, *last, *jsonOut)
	case *sessionID != "":
		err = runCycleMode(store, *sessionID, *last, *jsonOut)
	default:
		err = runSessionMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region session-mode

type sessionRow struct {
	SessionID string `json:"session_id"`
	MediaID   string `json:"media_id,omitempty"`
	StartedAt string `json:"started_at"`
	EndedAt   string `json:"ended_at,omitempty"`
}

func runSessionMode(store *journal.Store, last int, jsonOut bool) error {
	sessions, err := store.ListSessions(last)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(os.Stderr, "no sessions found")
		return nil
	}

	rows := make([]sessionRow, len(sessions))
	for i, s := range sessions {
		rows[i] = sessionRow{
			SessionID: s.SessionID,
			MediaID:   s.MediaID,
			StartedAt: s.StartedAt.Format(time.RFC3339),
		}
		if !s.EndedAt.IsZero() {
			rows[i].EndedAt = s.EndedAt.Format(time.RFC3339)
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-10s  %-16s  %-20s  %s\n", "Session", "Media", "Started", "Ended")
	fmt.Printf("%-10s+-%-16s+-%-20s+-%s\n", "----------", "----------------", "--------------------", "--------------------")
	for _, r := range rows {
		ended := "open"
		if r.EndedAt != "" {
			ended = r.EndedAt
		}
		fmt.Printf("%-10s  %-16s  %-20s  %s\n", shortID(r.SessionID), r.MediaID, r.StartedAt, ended)
	}
	return nil
}

// #endregion session-mode

// #region cycle-mode

type cycleRow struct {
	Phase           string `json:"phase"`
	VideoLocked     bool   `json:"video_locked"`
	Satisfied       bool   `json:"satisfied"`
	ChallengeStatus string `json:"challenge_status,omitempty"`
	CreatedAt       string `json:"created_at"`
}

func runCycleMode(store *journal.Store, sessionID string, last int, jsonOut bool) error {
	entries, err := store.ListDecisions(sessionID, last)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "no cycles found for session")
		return nil
	}

	rows := make([]cycleRow, len(entries))
	for i, e := range entries {
		rows[i] = cycleRow{
			Phase:           string(e.Phase),
			VideoLocked:     e.VideoLocked,
			Satisfied:       e.Satisfied,
			ChallengeStatus: string(e.ChallengeStatus),
			CreatedAt:       e.CreatedAt.Format(time.RFC3339),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-10s  %-7s  %-9s  %-10s  %s\n", "Phase", "Locked", "Satisfied", "Challenge", "Time")
	fmt.Printf("%-10s+-%-7s+-%-9s+-%-10s+-%s\n", "----------", "-------", "---------", "----------", "--------------------")
	for _, r := range rows {
		challenge := r.ChallengeStatus
		if challenge == "" {
			challenge = "-"
		}
		fmt.Printf("%-10s  %-7v  %-9v  %-10s  %s\n", r.Phase, r.VideoLocked, r.Satisfied, challenge, r.CreatedAt)
	}
	return nil
}

// #endregion cycle-mode

// #region transition-mode

type transitionRow struct {
	FromPhase string `json:"from_phase"`
	ToPhase   string `json:"to_phase"`
	Reason    string `json:"reason,omitempty"`
	CreatedAt string `json:"created_at"`
}

func runTransitionMode(store *journal.Store, sessionID string, last int, jsonOut bool) error {
	entries, err := logging.ListTransitions(store.DB(), sessionID, last)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "no transitions found for session")
		return nil
	}

	rows := make([]transitionRow, len(entries))
	for i, e := range entries {
		rows[i] = transitionRow{
			FromPhase: e.FromPhase,
			ToPhase:   e.ToPhase,
			Reason:    e.Reason,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-10s  %-10s  %-30s  %s\n", "From", "To", "Reason", "Time")
	fmt.Printf("%-10s+-%-10s+-%-30s+-%s\n", "----------", "----------", "------------------------------", "--------------------")
	for _, r := range rows {
		reason := r.Reason
		if reason == "" {
			reason = "-"
		}
		fmt.Printf("%-10s  %-10s  %-30s  %s\n", r.FromPhase, r.ToPhase, reason, r.CreatedAt)
	}
	return nil
}

// #endregion transition-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
