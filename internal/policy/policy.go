package policy

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// #region load
// Load reads and validates a policy file. Any validation failure returns a
// *ConfigError and the policy must not be activated.
func Load(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals and validates policy YAML.
func Parse(data []byte) (*Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse policy: %w", err)
	}
	p.applyDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// #endregion load

// #region defaults
func (p *Policy) applyDefaults() {
	if p.Timing.StabilitySeconds == 0 {
		p.Timing.StabilitySeconds = 3
	}
	if p.Timing.CooldownSeconds == 0 {
		p.Timing.CooldownSeconds = 5
	}
	if p.Timing.GraceSeconds == 0 {
		p.Timing.GraceSeconds = 30
	}
	if p.Timing.MinResetSeconds == 0 {
		p.Timing.MinResetSeconds = 5
	}
	if p.Scheduler.TickSeconds == 0 {
		p.Scheduler.TickSeconds = 5
	}
	if p.Scheduler.DebounceMillis == 0 {
		p.Scheduler.DebounceMillis = 100
	}
	if p.Scheduler.FrameMillis == 0 {
		p.Scheduler.FrameMillis = 16
	}
	if p.Scheduler.RearmMillis == 0 {
		p.Scheduler.RearmMillis = 1000
	}
	if p.Scheduler.BreakerRatePerSecond == 0 {
		p.Scheduler.BreakerRatePerSecond = 30
	}
	if p.Scheduler.BreakerWindowSeconds == 0 {
		p.Scheduler.BreakerWindowSeconds = 3
	}
	if p.Scheduler.BreakerCooldownSecond == 0 {
		p.Scheduler.BreakerCooldownSecond = 10
	}
}

// #endregion defaults

// #region validate
// Validate checks structural invariants of the loaded policy.
func (p *Policy) Validate() error {
	if len(p.Zones) == 0 {
		return &ConfigError{Field: "zones", Msg: "at least one zone required"}
	}

	seenIDs := make(map[string]bool, len(p.Zones))
	seenRanks := make(map[int]bool, len(p.Zones))
	for i, z := range p.Zones {
		if z.ID == "" {
			return &ConfigError{Field: fmt.Sprintf("zones[%d].id", i), Msg: "empty zone id"}
		}
		if seenIDs[z.ID] {
			return &ConfigError{Field: "zones", Msg: "duplicate zone id " + z.ID}
		}
		seenIDs[z.ID] = true
		if seenRanks[z.Rank] {
			return &ConfigError{Field: "zones", Msg: fmt.Sprintf("duplicate zone rank %d", z.Rank)}
		}
		seenRanks[z.Rank] = true
		if z.MinThreshold < 0 {
			return &ConfigError{Field: fmt.Sprintf("zones[%d].min_threshold", i), Msg: "negative threshold"}
		}
	}

	if p.Requirement.TargetZoneID == "" {
		return &ConfigError{Field: "requirement.target_zone", Msg: "required"}
	}
	if !seenIDs[p.Requirement.TargetZoneID] {
		return &ConfigError{Field: "requirement.target_zone", Msg: "unknown zone " + p.Requirement.TargetZoneID}
	}
	switch p.Requirement.Rule {
	case RuleAll, RuleAny:
	case RuleCount:
		if p.Requirement.Count <= 0 {
			return &ConfigError{Field: "requirement.count", Msg: "count rule requires count > 0"}
		}
	default:
		return &ConfigError{Field: "requirement.rule", Msg: fmt.Sprintf("unknown rule %q", p.Requirement.Rule)}
	}

	for i, c := range p.Challenges {
		if c.ID == "" {
			return &ConfigError{Field: fmt.Sprintf("challenges[%d].id", i), Msg: "empty challenge id"}
		}
		if !seenIDs[c.TargetZoneID] {
			return &ConfigError{Field: fmt.Sprintf("challenges[%d].target_zone", i), Msg: "unknown zone " + c.TargetZoneID}
		}
		if c.RequiredCount <= 0 {
			return &ConfigError{Field: fmt.Sprintf("challenges[%d].required_count", i), Msg: "must be > 0"}
		}
		if c.DurationSeconds <= 0 {
			return &ConfigError{Field: fmt.Sprintf("challenges[%d].duration_seconds", i), Msg: "must be > 0"}
		}
	}

	if p.Timing.GraceSeconds < 0 || p.Timing.UnlockHoldSeconds < 0 {
		return &ConfigError{Field: "timing", Msg: "negative window"}
	}
	return nil
}

// #endregion validate

// #region duration-accessors
// Durations converted once at load; evaluation code never re-parses config.

func (t Timing) StabilityWindow() time.Duration {
	return time.Duration(t.StabilitySeconds * float64(time.Second))
}

func (t Timing) CooldownWindow() time.Duration {
	return time.Duration(t.CooldownSeconds * float64(time.Second))
}

func (t Timing) UnlockHold() time.Duration {
	return time.Duration(t.UnlockHoldSeconds * float64(time.Second))
}

func (t Timing) Grace() time.Duration {
	return time.Duration(t.GraceSeconds) * time.Second
}

func (t Timing) RewarnCooldown() time.Duration {
	return time.Duration(t.RewarnCooldownSeconds * float64(time.Second))
}

func (t Timing) MinResetInterval() time.Duration {
	return time.Duration(t.MinResetSeconds * float64(time.Second))
}

func (s SchedulerTuning) Tick() time.Duration {
	return time.Duration(s.TickSeconds * float64(time.Second))
}

func (s SchedulerTuning) Debounce() time.Duration {
	return time.Duration(s.DebounceMillis) * time.Millisecond
}

func (s SchedulerTuning) Frame() time.Duration {
	return time.Duration(s.FrameMillis) * time.Millisecond
}

func (s SchedulerTuning) Rearm() time.Duration {
	return time.Duration(s.RearmMillis) * time.Millisecond
}

func (s SchedulerTuning) BreakerWindow() time.Duration {
	return time.Duration(s.BreakerWindowSeconds * float64(time.Second))
}

func (s SchedulerTuning) BreakerCooldown() time.Duration {
	return time.Duration(s.BreakerCooldownSecond * float64(time.Second))
}

// #endregion duration-accessors
