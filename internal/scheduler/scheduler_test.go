package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/kckern/DaylightStation-sub009/internal/govern"
)

func quietConfig() Config {
	// Long tick/frame so background timers never interfere with direct
	// method-level tests.
	cfg := DefaultConfig()
	cfg.Tick = time.Hour
	cfg.Frame = time.Hour
	cfg.Debounce = 10 * time.Millisecond
	cfg.Rearm = time.Hour
	return cfg
}

func staticCycle(d govern.Decision) CycleFunc {
	return func(time.Time) govern.Decision { return d }
}

func governedDecision(phase govern.Phase, locked bool) govern.Decision {
	return govern.Decision{Phase: phase, Governed: true, VideoLocked: locked}
}

func TestStartIsIdempotent(t *testing.T) {
	s := NewScheduler(quietConfig(), staticCycle(governedDecision(govern.PhasePending, true)), Callbacks{})
	defer s.Stop()

	s.Start()
	s.Start()
	s.Start()

	if !s.Running() {
		t.Fatal("expected running after start")
	}
	if g := s.Generation(); g != 1 {
		t.Fatalf("N starts in succession must advance exactly one generation, got %d", g)
	}
}

func TestStopInvalidatesGeneration(t *testing.T) {
	s := NewScheduler(quietConfig(), staticCycle(governedDecision(govern.PhasePending, true)), Callbacks{})

	s.Start()
	gen := s.Generation()
	s.Stop()

	if s.Running() {
		t.Fatal("expected stopped")
	}
	if s.currentGeneration(gen) {
		t.Fatal("old generation must be invalid after stop")
	}
	// Stop twice is harmless.
	s.Stop()
}

func TestStartRefusedWithinRearmInterval(t *testing.T) {
	s := NewScheduler(quietConfig(), staticCycle(governedDecision(govern.PhasePending, true)), Callbacks{})

	s.Start()
	s.Stop()
	s.Start() // within the (one hour) re-arm interval

	if s.Running() {
		t.Fatal("start within re-arm interval must be refused")
	}
}

func TestCycleCoalescesToOneNotificationPerFrame(t *testing.T) {
	var phaseCalls, pulseCalls int32
	var lastPulse govern.Decision

	s := NewScheduler(quietConfig(), nil, Callbacks{
		OnPhaseChange: func(govern.Decision) { atomic.AddInt32(&phaseCalls, 1) },
		OnPulse: func(d govern.Decision) {
			atomic.AddInt32(&pulseCalls, 1)
			lastPulse = d
		},
	})

	decisions := []govern.Decision{
		governedDecision(govern.PhasePending, true),
		governedDecision(govern.PhaseUnlocked, false),
	}
	i := 0
	s.cycle = func(time.Time) govern.Decision {
		d := decisions[i%len(decisions)]
		i++
		return d
	}

	// Two evaluations inside one frame: the flush delivers once, with the
	// latest decision.
	s.runCycle("tick")
	s.runCycle("zone-change")
	s.flushFrame(time.Now())

	if pulseCalls != 1 {
		t.Fatalf("expected one pulse per frame, got %d", pulseCalls)
	}
	if phaseCalls != 1 {
		t.Fatalf("expected one phase-change per frame, got %d", phaseCalls)
	}
	if lastPulse.Phase != govern.PhaseUnlocked {
		t.Fatalf("flush must carry the latest decision, got %s", lastPulse.Phase)
	}

	// Nothing pending: flushing again delivers nothing.
	s.flushFrame(time.Now())
	if pulseCalls != 1 || phaseCalls != 1 {
		t.Fatalf("empty flush must not deliver, pulses=%d phases=%d", pulseCalls, phaseCalls)
	}
}

func TestPhaseCallbackOnlyOnChange(t *testing.T) {
	var phaseCalls, pulseCalls int32
	s := NewScheduler(quietConfig(), staticCycle(governedDecision(govern.PhaseUnlocked, false)), Callbacks{
		OnPhaseChange: func(govern.Decision) { atomic.AddInt32(&phaseCalls, 1) },
		OnPulse:       func(govern.Decision) { atomic.AddInt32(&pulseCalls, 1) },
	})

	s.runCycle("tick")
	s.flushFrame(time.Now())
	s.runCycle("tick") // same phase, same lock flag
	s.flushFrame(time.Now())

	if phaseCalls != 1 {
		t.Fatalf("unchanged phase must not re-fire phase callback, got %d", phaseCalls)
	}
	if pulseCalls != 2 {
		t.Fatalf("each flush with work delivers a pulse, got %d", pulseCalls)
	}
}

func TestUngovernedCycleFiresNothing(t *testing.T) {
	var calls int32
	s := NewScheduler(quietConfig(), staticCycle(govern.Decision{Phase: govern.PhasePending}), Callbacks{
		OnPhaseChange: func(govern.Decision) { atomic.AddInt32(&calls, 1) },
		OnPulse:       func(govern.Decision) { atomic.AddInt32(&calls, 1) },
	})

	s.runCycle("tick")
	s.flushFrame(time.Now())

	if calls != 0 {
		t.Fatalf("ungoverned decisions must fire zero notifications, got %d", calls)
	}
}

func TestDebounceCoalescesBursts(t *testing.T) {
	var cycles int32
	s := NewScheduler(quietConfig(), func(time.Time) govern.Decision {
		atomic.AddInt32(&cycles, 1)
		return governedDecision(govern.PhaseUnlocked, false)
	}, Callbacks{})
	s.Start()
	defer s.Stop()

	for i := 0; i < 5; i++ {
		s.NotifyZoneChange()
	}
	time.Sleep(100 * time.Millisecond)

	if n := atomic.LoadInt32(&cycles); n != 1 {
		t.Fatalf("a burst of zone changes must settle into one evaluation, got %d", n)
	}
}

func TestNotifyZoneChangeIgnoredWhenStopped(t *testing.T) {
	var cycles int32
	s := NewScheduler(quietConfig(), func(time.Time) govern.Decision {
		atomic.AddInt32(&cycles, 1)
		return governedDecision(govern.PhaseUnlocked, false)
	}, Callbacks{})

	s.NotifyZoneChange()
	time.Sleep(50 * time.Millisecond)

	if atomic.LoadInt32(&cycles) != 0 {
		t.Fatal("zone change while stopped must not evaluate")
	}
}

func TestBreakerTripsOnSustainedRate(t *testing.T) {
	cfg := quietConfig()
	cfg.BreakerRatePerSecond = 10
	cfg.BreakerWindow = time.Second
	cfg.BreakerCooldown = time.Minute
	s := NewScheduler(cfg, staticCycle(governedDecision(govern.PhaseUnlocked, false)), Callbacks{})

	now := time.Now()
	s.noteMu.Lock()
	for i := 0; i < 15; i++ {
		s.recordNotificationLocked(now.Add(time.Duration(i) * 50 * time.Millisecond))
	}
	s.noteMu.Unlock()

	tripAt := now.Add(700 * time.Millisecond)
	if !s.breakerOpen(tripAt.Add(time.Second)) {
		t.Fatal("breaker must be open after sustained rate")
	}
	if s.breakerOpen(tripAt.Add(2 * time.Minute)) {
		t.Fatal("breaker must close after the cooldown window")
	}
}

func TestBreakerBelowRateStaysClosed(t *testing.T) {
	cfg := quietConfig()
	cfg.BreakerRatePerSecond = 10
	cfg.BreakerWindow = time.Second
	s := NewScheduler(cfg, staticCycle(governedDecision(govern.PhaseUnlocked, false)), Callbacks{})

	now := time.Now()
	s.noteMu.Lock()
	for i := 0; i < 5; i++ {
		s.recordNotificationLocked(now.Add(time.Duration(i) * 100 * time.Millisecond))
	}
	s.noteMu.Unlock()

	if s.breakerOpen(now.Add(time.Second)) {
		t.Fatal("breaker must stay closed below the rate threshold")
	}
}

func TestDecisionAccessor(t *testing.T) {
	s := NewScheduler(quietConfig(), staticCycle(governedDecision(govern.PhaseLocked, true)), Callbacks{})

	s.runCycle("tick")

	if s.Decision().Phase != govern.PhaseLocked {
		t.Fatalf("expected locked decision, got %s", s.Decision().Phase)
	}
	if !s.VideoLocked() {
		t.Fatal("expected locked video")
	}
}
