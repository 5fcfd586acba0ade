package scheduler

// #region imports
import (
	"log"
	"sync"
	"time"

	"github.com/kckern/DaylightStation-sub009/internal/govern"
)

// #endregion

// #region scheduler-struct

// Scheduler drives the engine from two trigger sources — a periodic tick and
// a debounced zone-change signal — and coalesces outbound notifications to at
// most one per rendering frame. Timer lifecycle is idempotent: stale timers
// from a previous generation self-cancel, and rapid start/stop cycling cannot
// spawn concurrent timers.
type Scheduler struct {
	config    Config
	cycle     CycleFunc
	callbacks Callbacks

	mu            sync.Mutex // guards lifecycle state below
	generation    uint64
	running       bool
	stopping      bool // non-reentrant teardown guard
	lastStartAt   time.Time
	stopCh        chan struct{}
	debounceTimer *time.Timer

	evalMu  sync.Mutex // serializes evaluation cycles
	last    govern.Decision
	hasLast bool

	noteMu          sync.Mutex // guards pending notification state
	pendingDecision govern.Decision
	pendingPhase    bool
	pendingPulse    bool
	noteTimes       []time.Time
	breakerUntil    time.Time
}

// NewScheduler creates a scheduler; callbacks may be partially nil.
func NewScheduler(config Config, cycle CycleFunc, callbacks Callbacks) *Scheduler {
	return &Scheduler{
		config:    config,
		cycle:     cycle,
		callbacks: callbacks,
	}
}

// #endregion

// #region lifecycle

// Start arms the tick and frame timers. It is a no-op while a timer is
// already active, and refuses to create a new timer within the re-arm
// interval of the previous Start.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if s.running {
		log.Printf("[SCHED] start ignored: already running")
		return
	}
	if !s.lastStartAt.IsZero() && now.Sub(s.lastStartAt) < s.config.Rearm {
		log.Printf("[SCHED] start refused: within re-arm interval")
		return
	}

	s.generation++
	gen := s.generation
	s.lastStartAt = now
	s.running = true
	s.stopCh = make(chan struct{})

	go s.runTicks(gen, s.stopCh)
	go s.runFrames(gen, s.stopCh)
	log.Printf("[SCHED] started (generation %d)", gen)
}

// Stop invalidates the current timer generation — no further ticks fire —
// and cancels any in-flight debounce.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopping || !s.running {
		return
	}
	s.stopping = true

	s.generation++ // stale callbacks from the old generation self-cancel
	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
		s.debounceTimer = nil
	}
	close(s.stopCh)
	s.running = false

	s.stopping = false
	log.Printf("[SCHED] stopped")
}

// Running reports whether timers are currently armed.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Generation returns the current timer generation.
func (s *Scheduler) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

func (s *Scheduler) currentGeneration(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running && s.generation == gen
}

// #endregion

// #region triggers

// runTicks is the periodic trigger loop for one generation.
func (s *Scheduler) runTicks(gen uint64, stopCh chan struct{}) {
	ticker := time.NewTicker(s.config.Tick)
	defer ticker.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !s.currentGeneration(gen) {
				return
			}
			if s.breakerOpen(time.Now()) {
				continue
			}
			s.runCycle("tick")
		}
	}
}

// NotifyZoneChange signals that a stabilized zone changed. The reaction is
// debounced: rapid repeated signals settle into a single evaluation.
func (s *Scheduler) NotifyZoneChange() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	gen := s.generation
	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}
	s.debounceTimer = time.AfterFunc(s.config.Debounce, func() {
		if !s.currentGeneration(gen) {
			return
		}
		if s.breakerOpen(time.Now()) {
			return
		}
		s.runCycle("zone-change")
	})
}

// #endregion

// #region cycle

// runCycle executes one serialized evaluation and queues its notification.
func (s *Scheduler) runCycle(trigger string) {
	s.evalMu.Lock()
	defer s.evalMu.Unlock()

	d := s.cycle(time.Now())
	if !d.Governed {
		// Ungoverned idle condition: no state, no notification.
		return
	}

	phaseChanged := !s.hasLast || s.last.Phase != d.Phase || s.last.VideoLocked != d.VideoLocked
	s.last = d
	s.hasLast = true
	s.queueNotification(d, phaseChanged)
}

// queueNotification stores the latest decision for the next frame flush.
// Multiple cycles within one frame coalesce to a single delivery.
func (s *Scheduler) queueNotification(d govern.Decision, phaseChanged bool) {
	s.noteMu.Lock()
	defer s.noteMu.Unlock()
	s.pendingDecision = d
	s.pendingPulse = true
	if phaseChanged {
		s.pendingPhase = true
	}
}

// #endregion

// #region frames

// runFrames delivers batched notifications on the rendering-frame boundary.
func (s *Scheduler) runFrames(gen uint64, stopCh chan struct{}) {
	ticker := time.NewTicker(s.config.Frame)
	defer ticker.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !s.currentGeneration(gen) {
				return
			}
			s.flushFrame(time.Now())
		}
	}
}

// flushFrame fires at most one phase-change and one pulse callback with the
// coalesced latest decision, then updates breaker accounting.
func (s *Scheduler) flushFrame(now time.Time) {
	s.noteMu.Lock()
	if !s.pendingPulse && !s.pendingPhase {
		s.noteMu.Unlock()
		return
	}
	d := s.pendingDecision
	phaseChanged := s.pendingPhase
	s.pendingPhase = false
	s.pendingPulse = false
	s.recordNotificationLocked(now)
	s.noteMu.Unlock()

	if phaseChanged && s.callbacks.OnPhaseChange != nil {
		s.callbacks.OnPhaseChange(d)
	}
	if s.callbacks.OnPulse != nil {
		s.callbacks.OnPulse(d)
	}
}

// #endregion

// #region breaker

// recordNotificationLocked tracks outbound deliveries and trips the circuit
// breaker when the sustained rate exceeds the threshold for the full window.
// Caller holds noteMu.
func (s *Scheduler) recordNotificationLocked(now time.Time) {
	s.noteTimes = append(s.noteTimes, now)

	cutoff := now.Add(-s.config.BreakerWindow)
	trimmed := s.noteTimes[:0]
	for _, t := range s.noteTimes {
		if t.After(cutoff) {
			trimmed = append(trimmed, t)
		}
	}
	s.noteTimes = trimmed

	limit := int(s.config.BreakerRatePerSecond * s.config.BreakerWindow.Seconds())
	if limit > 0 && len(s.noteTimes) > limit && now.After(s.breakerUntil) {
		s.breakerUntil = now.Add(s.config.BreakerCooldown)
		log.Printf("[SCHED] notification rate exceeded (%d in %v), suspending ticks until %s",
			len(s.noteTimes), s.config.BreakerWindow, s.breakerUntil.Format(time.RFC3339))
	}
}

// breakerOpen reports whether ticking is currently suspended.
func (s *Scheduler) breakerOpen(now time.Time) bool {
	s.noteMu.Lock()
	defer s.noteMu.Unlock()
	return now.Before(s.breakerUntil)
}

// #endregion

// #region accessors

// Decision returns the latest decision snapshot produced by any trigger.
func (s *Scheduler) Decision() govern.Decision {
	s.evalMu.Lock()
	defer s.evalMu.Unlock()
	return s.last
}

// VideoLocked is the convenience accessor for the decision's lock flag.
func (s *Scheduler) VideoLocked() bool {
	return s.Decision().VideoLocked
}

// #endregion
