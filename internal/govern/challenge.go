package govern

import (
	"time"

	"github.com/google/uuid"
	"github.com/kckern/DaylightStation-sub009/internal/policy"
	"github.com/kckern/DaylightStation-sub009/internal/zone"
)

// #region challenge-state
// challengeState is the engine-private lifecycle record of one challenge
// instance. Lifecycle is owned solely by the engine.
type challengeState struct {
	id        string
	template  policy.ChallengeTemplate
	deadline  time.Time
	remaining time.Duration // preserved while paused
	status    ChallengeStatus
	metCount  int
}

// newChallengeState activates a challenge from its template.
func newChallengeState(tmpl policy.ChallengeTemplate, now time.Time) *challengeState {
	return &challengeState{
		id:       uuid.New().String(),
		template: tmpl,
		deadline: now.Add(time.Duration(tmpl.DurationSeconds) * time.Second),
		status:   ChallengeActive,
	}
}

// #endregion challenge-state

// #region tick
// tick advances an active challenge: completion when enough participants
// occupy the target zone before the deadline, failure when the deadline
// elapses first. Paused challenges do not tick. Returns true when the
// challenge failed this call.
func (c *challengeState) tick(zones map[string]string, active []string, ranks zone.RankMap, now time.Time) bool {
	if c == nil || c.status != ChallengeActive {
		return false
	}
	c.metCount = countInZone(zones, active, ranks, c.template.TargetZoneID)
	if c.metCount >= c.template.RequiredCount {
		c.status = ChallengeCompleted
		return false
	}
	if !now.Before(c.deadline) {
		c.status = ChallengeFailed
		return true
	}
	return false
}

// #endregion tick

// #region pause-resume
// pause suspends an active challenge, preserving the remaining time.
func (c *challengeState) pause(now time.Time) {
	if c == nil || c.status != ChallengeActive {
		return
	}
	c.remaining = c.deadline.Sub(now)
	if c.remaining < 0 {
		c.remaining = 0
	}
	c.status = ChallengePaused
}

// resume reactivates a paused challenge with its preserved remaining time —
// the countdown continues, it never restarts.
func (c *challengeState) resume(now time.Time) {
	if c == nil || c.status != ChallengePaused {
		return
	}
	c.deadline = now.Add(c.remaining)
	c.remaining = 0
	c.status = ChallengeActive
}

// #endregion pause-resume

// #region snapshot
// snapshot builds the externally visible view of the challenge.
func (c *challengeState) snapshot() *ChallengeSnapshot {
	if c == nil {
		return nil
	}
	return &ChallengeSnapshot{
		ID:            c.id,
		TemplateID:    c.template.ID,
		TargetZoneID:  c.template.TargetZoneID,
		RequiredCount: c.template.RequiredCount,
		MetCount:      c.metCount,
		Deadline:      c.deadline,
		Remaining:     c.remaining,
		Status:        c.status,
	}
}

// #endregion snapshot
