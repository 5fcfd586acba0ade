package scheduler

// #region imports
import (
	"time"

	"github.com/kckern/DaylightStation-sub009/internal/govern"
	"github.com/kckern/DaylightStation-sub009/internal/policy"
)

// #endregion

// #region config

// Config holds the scheduler's trigger, batching, and breaker knobs.
type Config struct {
	Tick     time.Duration // periodic evaluation interval
	Debounce time.Duration // settle window for zone-change bursts
	Frame    time.Duration // rendering-frame boundary for notification batching
	Rearm    time.Duration // minimum spacing between Start calls creating timers

	BreakerRatePerSecond float64       // sustained notification rate that trips the breaker
	BreakerWindow        time.Duration // how long the rate must be sustained
	BreakerCooldown      time.Duration // tick suspension once tripped
}

// DefaultConfig returns the stock scheduler tuning.
func DefaultConfig() Config {
	return Config{
		Tick:                 5 * time.Second,
		Debounce:             100 * time.Millisecond,
		Frame:                16 * time.Millisecond,
		Rearm:                time.Second,
		BreakerRatePerSecond: 30,
		BreakerWindow:        3 * time.Second,
		BreakerCooldown:      10 * time.Second,
	}
}

// ConfigFromPolicy converts the policy's scheduler tuning section.
func ConfigFromPolicy(p *policy.Policy) Config {
	return Config{
		Tick:                 p.Scheduler.Tick(),
		Debounce:             p.Scheduler.Debounce(),
		Frame:                p.Scheduler.Frame(),
		Rearm:                p.Scheduler.Rearm(),
		BreakerRatePerSecond: p.Scheduler.BreakerRatePerSecond,
		BreakerWindow:        p.Scheduler.BreakerWindow(),
		BreakerCooldown:      p.Scheduler.BreakerCooldown(),
	}
}

// #endregion

// #region cycle-func

// CycleFunc runs one full evaluation cycle (telemetry sync, cycle input
// construction, engine evaluation) and returns the decision snapshot. The
// scheduler guarantees calls are strictly serialized.
type CycleFunc func(now time.Time) govern.Decision

// #endregion

// #region callbacks

// Callbacks are the outbound consumer notifications. Both are batched: at
// most one delivery per rendering frame, carrying the latest decision.
type Callbacks struct {
	OnPhaseChange func(govern.Decision)
	OnPulse       func(govern.Decision)
}

// #endregion
