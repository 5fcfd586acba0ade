package logging

import "time"

// #region transition-entry
// TransitionEntry is a single row in the phase_transitions table.
type TransitionEntry struct {
	SessionID    string
	FromPhase    string
	ToPhase      string
	Reason       string // "hold satisfied" | "grace expired" | "challenge failed" | ...
	DecisionJSON string
	CreatedAt    time.Time
}

// #endregion transition-entry
