package journal

import (
	"time"

	"github.com/kckern/DaylightStation-sub009/internal/govern"
)

// #region session
// Session is one governed playback session.
type Session struct {
	SessionID string
	MediaID   string
	StartedAt time.Time
	EndedAt   time.Time // zero while the session is open
}

// #endregion session

// #region decision-entry
// DecisionEntry is one journaled evaluation cycle.
type DecisionEntry struct {
	SessionID       string
	Trigger         string // "cycle" | "replay"
	Phase           govern.Phase
	VideoLocked     bool
	Satisfied       bool
	ChallengeStatus govern.ChallengeStatus // empty when no challenge
	InputJSON       string                 // serialized CycleRecord for deterministic replay
	DecisionJSON    string
	CreatedAt       time.Time
}

// #endregion decision-entry

// #region cycle-record
// CycleRecord captures the exact cycle input as evaluated at runtime.
// Serialized as JSON into decisions.input_json so cmd/replay can re-drive
// the engine deterministically from the journal.
type CycleRecord struct {
	Zones  map[string]string `json:"zones"`
	Roster []string          `json:"roster"`
	AtUnix int64             `json:"at_unix_millis"`
}

// RecordFromInput builds the replayable capture of one cycle input.
func RecordFromInput(in govern.CycleInput) CycleRecord {
	zones := make(map[string]string, len(in.Zones))
	for k, v := range in.Zones {
		zones[k] = v
	}
	return CycleRecord{
		Zones:  zones,
		Roster: in.Roster.IDs(),
		AtUnix: in.Now.UnixMilli(),
	}
}

// #endregion cycle-record
