package govern

// #region imports
import (
	"log"
	"time"
)

// #endregion

// #region engine-struct

// Engine evaluates requirement satisfaction and challenge progress for one
// governed session and owns the phase state machine. Evaluate is synchronous
// and non-reentrant; callers must serialize calls (the scheduler does).
type Engine struct {
	config Config
	exempt map[string]bool

	phase          Phase
	satisfiedSince time.Time // zero = requirement not currently satisfied
	graceDeadline  time.Time // set while in warning
	lastUnlockAt   time.Time
	lastResetAt    time.Time

	challenge           *challengeState
	nextChallengeAt     time.Time
	challengeIdx        int
	challengeForcedLock bool

	lastDecision Decision
	hasDecision  bool
	evaluating   bool // non-reentrant guard
	resetting    bool // non-reentrant teardown guard
}

// NewEngine creates an engine for the given policy config.
func NewEngine(config Config) *Engine {
	exempt := make(map[string]bool, len(config.Requirement.ExemptParticipantIDs))
	for _, id := range config.Requirement.ExemptParticipantIDs {
		exempt[id] = true
	}
	return &Engine{
		config: config,
		exempt: exempt,
		phase:  PhasePending,
	}
}

// #endregion

// #region accessors

// Phase returns the current governance phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Decision returns the latest decision snapshot.
func (e *Engine) Decision() Decision {
	if !e.hasDecision {
		return Decision{Phase: e.phase, Governed: e.governed()}
	}
	return e.lastDecision
}

// VideoLocked returns the lock signal of the latest decision. This is the
// only lock signal consumers may use; deriving locking from Phase alone is
// not supported.
func (e *Engine) VideoLocked() bool {
	return e.Decision().VideoLocked
}

// governed reports whether a policy and active content are configured.
func (e *Engine) governed() bool {
	return e.config.ContentGoverned && e.config.Requirement.TargetZoneID != ""
}

// #endregion

// #region evaluate

// Evaluate runs one governance cycle. It never panics or returns an error:
// missing or malformed input degrades to unsatisfied/ungoverned, favoring
// locked over falsely reporting success.
func (e *Engine) Evaluate(in CycleInput) Decision {
	if e.evaluating {
		return e.lastDecision
	}
	e.evaluating = true
	defer func() { e.evaluating = false }()

	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	// Ungoverned guard: no policy or no active content means no work at all —
	// no state mutation, no notification. Decision.Governed=false tells the
	// scheduler to stay silent.
	if !e.governed() {
		return Decision{Phase: PhasePending, EvaluatedAt: now}
	}

	// Populate the zone map for every roster participant BEFORE any ghost
	// filtering. Filtering first would see an empty map and drop everyone,
	// producing a false "no participants" result.
	zones := e.populateZones(in)
	active, ghosts := filterGhosts(in.Roster.IDs(), zones)
	if len(ghosts) > 0 && e.phase == PhasePending {
		log.Printf("[GOV] %d roster participant(s) without zone data yet", len(ghosts))
	}

	// Empty roster: session is over, reset (rate-limited) and report pending.
	if in.Roster.Len() == 0 {
		e.reset(now, "empty roster")
		return e.finishCycle(RequirementEvaluation{}, nil, now)
	}

	exempt := in.Exempt
	if exempt == nil {
		exempt = e.exempt
	}
	req := evaluateRequirement(e.config.Requirement, zones, active, exempt, in.Ranks)

	challengeFailed := e.challenge.tick(zones, active, in.Ranks, now)
	e.transition(req, challengeFailed, now)
	e.syncChallengeToPhase(now)
	e.maybeTriggerChallenge(now)

	d := e.finishCycle(req, active, now)
	// The terminal challenge status is surfaced in this cycle's snapshot;
	// retire it now so the next trigger's cooldown clock starts here.
	e.retireFinishedChallenge(now)
	return d
}

// #endregion

// #region zone-map

// populateZones builds the full participant→zone map from the roster view
// and the stabilizer snapshot carried in the cycle input.
func (e *Engine) populateZones(in CycleInput) map[string]string {
	zones := make(map[string]string, in.Roster.Len())
	for _, id := range in.Roster.IDs() {
		if z, ok := in.Zones[id]; ok && z != "" {
			zones[id] = z
		}
	}
	return zones
}

// filterGhosts splits roster participants into those with zone data (active)
// and those without (ghosts). Runs strictly after populateZones.
func filterGhosts(rosterIDs []string, zones map[string]string) (active, ghosts []string) {
	for _, id := range rosterIDs {
		if _, ok := zones[id]; ok {
			active = append(active, id)
		} else {
			ghosts = append(ghosts, id)
		}
	}
	return active, ghosts
}

// #endregion

// #region phase-machine

// transition applies one step of the phase state machine.
func (e *Engine) transition(req RequirementEvaluation, challengeFailed bool, now time.Time) {
	prev := e.phase
	reason := ""

	switch e.phase {
	case PhasePending:
		if req.Satisfied {
			if e.satisfiedSince.IsZero() {
				e.satisfiedSince = now
			}
			if now.Sub(e.satisfiedSince) >= e.config.UnlockHold {
				e.toUnlocked(now)
				reason = "requirement held"
			}
		} else {
			e.satisfiedSince = time.Time{}
		}

	case PhaseUnlocked:
		switch {
		case challengeFailed && !req.Satisfied:
			e.toLocked(now, true)
			reason = "challenge failed, requirement unsatisfied"
		case challengeFailed:
			// Base requirement still satisfied: a failed challenge routes
			// through warning, never straight to locked.
			e.toWarning(now)
			reason = "challenge failed"
		case !req.Satisfied && now.Sub(e.lastUnlockAt) >= e.config.RewarnCooldown:
			e.toWarning(now)
			reason = "requirement unsatisfied"
		}

	case PhaseWarning:
		if req.Satisfied {
			e.toUnlocked(now)
			reason = "requirement re-satisfied in grace"
		} else if !now.Before(e.graceDeadline) {
			e.toLocked(now, false)
			reason = "grace elapsed"
		}

	case PhaseLocked:
		// Lock is a deliberate, costlier state: exiting needs the requirement
		// truly met, but no additional hold.
		if req.Satisfied {
			e.toUnlocked(now)
			reason = "requirement satisfied"
		}
	}

	if e.phase != prev {
		log.Printf("[GOV] phase %s → %s (%s)", prev, e.phase, reason)
	}
}

func (e *Engine) toUnlocked(now time.Time) {
	e.phase = PhaseUnlocked
	e.lastUnlockAt = now
	e.graceDeadline = time.Time{}
	e.satisfiedSince = time.Time{}
	e.challengeForcedLock = false
	if e.nextChallengeAt.IsZero() && len(e.config.Challenges) > 0 {
		tmpl := e.config.Challenges[e.challengeIdx%len(e.config.Challenges)]
		e.nextChallengeAt = now.Add(time.Duration(tmpl.TriggerIntervalSeconds) * time.Second)
	}
}

func (e *Engine) toWarning(now time.Time) {
	e.phase = PhaseWarning
	e.graceDeadline = now.Add(e.config.Grace)
}

func (e *Engine) toLocked(now time.Time, challengeForced bool) {
	e.phase = PhaseLocked
	e.graceDeadline = time.Time{}
	e.challengeForcedLock = challengeForced
}

// #endregion

// #region reset

// Reset explicitly returns the engine to pending (session restart). Rate
// limited to one reset per MinResetInterval to prevent reset storms.
func (e *Engine) Reset(now time.Time) {
	e.reset(now, "explicit reset")
}

func (e *Engine) reset(now time.Time, why string) {
	if e.resetting {
		return
	}
	e.resetting = true
	defer func() { e.resetting = false }()

	if e.phase == PhasePending {
		return
	}
	if !e.lastResetAt.IsZero() && now.Sub(e.lastResetAt) < e.config.MinResetInterval {
		return
	}

	log.Printf("[GOV] reset to pending (%s)", why)
	e.phase = PhasePending
	e.satisfiedSince = time.Time{}
	e.graceDeadline = time.Time{}
	e.challenge = nil
	e.nextChallengeAt = time.Time{}
	e.challengeForcedLock = false
	e.lastResetAt = now
}

// #endregion

// #region challenge-lifecycle

// syncChallengeToPhase pauses the challenge whenever the phase leaves
// unlocked and resumes it with preserved remaining time on return.
func (e *Engine) syncChallengeToPhase(now time.Time) {
	if e.challenge == nil {
		return
	}
	if e.phase != PhaseUnlocked {
		e.challenge.pause(now)
	} else {
		e.challenge.resume(now)
	}
}

// maybeTriggerChallenge activates the next challenge template while unlocked.
func (e *Engine) maybeTriggerChallenge(now time.Time) {
	if e.phase != PhaseUnlocked || e.challenge != nil || len(e.config.Challenges) == 0 {
		return
	}
	if e.nextChallengeAt.IsZero() || now.Before(e.nextChallengeAt) {
		return
	}
	tmpl := e.config.Challenges[e.challengeIdx%len(e.config.Challenges)]
	e.challengeIdx++
	e.challenge = newChallengeState(tmpl, now)
	e.nextChallengeAt = time.Time{}
	log.Printf("[GOV] challenge %s activated (template %s, deadline %s)",
		e.challenge.id, tmpl.ID, e.challenge.deadline.Format(time.RFC3339))
}

// retireFinishedChallenge clears a completed/failed challenge and schedules
// the next trigger window.
func (e *Engine) retireFinishedChallenge(now time.Time) {
	c := e.challenge
	if c == nil || (c.status != ChallengeCompleted && c.status != ChallengeFailed) {
		return
	}
	e.challenge = nil
	if len(e.config.Challenges) > 0 {
		next := e.config.Challenges[e.challengeIdx%len(e.config.Challenges)]
		cooldown := time.Duration(c.template.CooldownSeconds) * time.Second
		interval := time.Duration(next.TriggerIntervalSeconds) * time.Second
		e.nextChallengeAt = now.Add(cooldown + interval)
	}
}

// #endregion

// #region decision-build

// finishCycle assembles and stores the immutable decision snapshot.
func (e *Engine) finishCycle(req RequirementEvaluation, active []string, now time.Time) Decision {
	d := Decision{
		Phase:                e.phase,
		Governed:             true,
		Requirement:          req,
		Challenge:            e.challenge.snapshot(),
		VideoLocked:          e.lockSignal(),
		GraceTotalSeconds:    int(e.config.Grace / time.Second),
		ActiveParticipantIDs: active,
		EvaluatedAt:          now,
	}
	if e.phase == PhaseWarning {
		d.Deadline = e.graceDeadline
	}
	e.lastDecision = d
	e.hasDecision = true
	return d
}

// lockSignal derives the single externally consumed lock flag:
// (challengeForcesLock || contentIsGoverned) && phase not in {unlocked, warning}.
func (e *Engine) lockSignal() bool {
	if e.phase == PhaseUnlocked || e.phase == PhaseWarning {
		return false
	}
	return e.challengeForcedLock || e.config.ContentGoverned
}

// #endregion
