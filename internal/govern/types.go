package govern

// #region imports
import (
	"time"

	"github.com/kckern/DaylightStation-sub009/internal/policy"
	"github.com/kckern/DaylightStation-sub009/internal/roster"
	"github.com/kckern/DaylightStation-sub009/internal/zone"
)

// #endregion

// #region phase

// Phase is the top-level lock state of the governed session.
type Phase string

const (
	PhasePending  Phase = "pending"
	PhaseUnlocked Phase = "unlocked"
	PhaseWarning  Phase = "warning"
	PhaseLocked   Phase = "locked"
)

// #endregion

// #region challenge-status

// ChallengeStatus is the lifecycle state of a timed challenge.
type ChallengeStatus string

const (
	ChallengeIdle      ChallengeStatus = "idle"
	ChallengeActive    ChallengeStatus = "active"
	ChallengePaused    ChallengeStatus = "paused"
	ChallengeCompleted ChallengeStatus = "completed"
	ChallengeFailed    ChallengeStatus = "failed"
)

// #endregion

// #region requirement

// Requirement is the per-cycle view of the governing rule.
type Requirement struct {
	TargetZoneID         string
	Rule                 policy.Rule
	RequiredCount        int // computed against non-exempt participants only
	ExemptParticipantIDs []string
}

// RequirementEvaluation is the outcome of checking the requirement against
// one cycle's zone map. Derived fresh each cycle, never persisted.
type RequirementEvaluation struct {
	Requirement           Requirement
	MetParticipantIDs     []string
	MissingParticipantIDs []string
	Satisfied             bool
}

// #endregion

// #region challenge-snapshot

// ChallengeSnapshot is the externally visible state of the active challenge.
type ChallengeSnapshot struct {
	ID            string
	TemplateID    string
	TargetZoneID  string
	RequiredCount int
	MetCount      int
	Deadline      time.Time
	Remaining     time.Duration // meaningful while paused
	Status        ChallengeStatus
}

// #endregion

// #region decision

// Decision is the immutable per-cycle output of the engine. It carries only
// IDs and enums — display metadata (names, colors, avatars) is joined
// downstream by the display-resolution collaborator, never here.
type Decision struct {
	Phase                Phase
	Governed             bool
	Requirement          RequirementEvaluation
	Challenge            *ChallengeSnapshot
	VideoLocked          bool
	Deadline             time.Time // grace deadline while in warning
	GraceTotalSeconds    int
	ActiveParticipantIDs []string
	EvaluatedAt          time.Time
}

// #endregion

// #region cycle-input

// CycleInput is the ephemeral input to one Evaluate call, constructed fresh
// each cycle. Downstream functions receive it explicitly rather than reading
// ambient mutable fields.
type CycleInput struct {
	Zones  map[string]string // participant → stabilized zone (stabilizer snapshot)
	Ranks  zone.RankMap
	Roster *roster.View
	Exempt map[string]bool // nil = derive from engine config
	Now    time.Time
}

// #endregion

// #region config

// Config holds the engine's static policy, loaded once at activation.
type Config struct {
	Requirement      policy.RequirementSpec
	Challenges       []policy.ChallengeTemplate
	UnlockHold       time.Duration
	Grace            time.Duration
	RewarnCooldown   time.Duration
	MinResetInterval time.Duration
	ContentGoverned  bool
}

// ConfigFromPolicy converts a validated policy into an engine config.
func ConfigFromPolicy(p *policy.Policy) Config {
	return Config{
		Requirement:      p.Requirement,
		Challenges:       p.Challenges,
		UnlockHold:       p.Timing.UnlockHold(),
		Grace:            p.Timing.Grace(),
		RewarnCooldown:   p.Timing.RewarnCooldown(),
		MinResetInterval: p.Timing.MinResetInterval(),
		ContentGoverned:  p.Content.Governed,
	}
}

// #endregion
