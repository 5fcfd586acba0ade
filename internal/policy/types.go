package policy

import (
	"github.com/kckern/DaylightStation-sub009/internal/zone"
)

// #region rule
// Rule selects how many participants must occupy the target zone.
type Rule string

const (
	RuleAll   Rule = "all"
	RuleAny   Rule = "any"
	RuleCount Rule = "count"
)

// #endregion rule

// #region requirement-spec
// RequirementSpec is the static requirement rule from the policy file.
type RequirementSpec struct {
	TargetZoneID         string   `yaml:"target_zone"`
	Rule                 Rule     `yaml:"rule"`
	Count                int      `yaml:"count"`  // used when Rule == count
	ExemptParticipantIDs []string `yaml:"exempt"` // excluded from numerator and denominator
}

// #endregion requirement-spec

// #region challenge-template
// ChallengeTemplate defines a timed mini-objective the engine may activate
// while playback is unlocked.
type ChallengeTemplate struct {
	ID                     string `yaml:"id"`
	TargetZoneID           string `yaml:"target_zone"`
	RequiredCount          int    `yaml:"required_count"`
	DurationSeconds        int    `yaml:"duration_seconds"`
	TriggerIntervalSeconds int    `yaml:"trigger_interval_seconds"` // unlocked time before activation
	CooldownSeconds        int    `yaml:"cooldown_seconds"`         // spacing after completion/failure
}

// #endregion challenge-template

// #region timing
// Timing holds the hysteresis and phase-machine windows. Values are
// configuration, not architecture; any of them may be zero.
type Timing struct {
	StabilitySeconds      float64 `yaml:"stability_seconds"`
	CooldownSeconds       float64 `yaml:"cooldown_seconds"`
	UnlockHoldSeconds     float64 `yaml:"unlock_hold_seconds"`
	GraceSeconds          int     `yaml:"grace_seconds"`
	RewarnCooldownSeconds float64 `yaml:"rewarn_cooldown_seconds"`
	MinResetSeconds       float64 `yaml:"min_reset_seconds"`
}

// #endregion timing

// #region scheduler
// SchedulerTuning holds the evaluation scheduler's trigger and batching knobs.
type SchedulerTuning struct {
	TickSeconds           float64 `yaml:"tick_seconds"`
	DebounceMillis        int     `yaml:"debounce_millis"`
	FrameMillis           int     `yaml:"frame_millis"`
	RearmMillis           int     `yaml:"rearm_millis"`
	BreakerRatePerSecond  float64 `yaml:"breaker_rate_per_second"`
	BreakerWindowSeconds  float64 `yaml:"breaker_window_seconds"`
	BreakerCooldownSecond float64 `yaml:"breaker_cooldown_seconds"`
}

// #endregion scheduler

// #region content
// Content identifies the governed media item.
type Content struct {
	Governed bool   `yaml:"governed"`
	MediaID  string `yaml:"media_id"`
}

// #endregion content

// #region policy
// Policy is the full static configuration, validated once at load time.
type Policy struct {
	Zones       []zone.Definition   `yaml:"zones"`
	Requirement RequirementSpec     `yaml:"requirement"`
	Challenges  []ChallengeTemplate `yaml:"challenges"`
	Timing      Timing              `yaml:"timing"`
	Scheduler   SchedulerTuning     `yaml:"scheduler"`
	Content     Content             `yaml:"content"`
}

// #endregion policy

// #region config-error
// ConfigError reports invalid static configuration. Surfaced once at load
// time to the caller; it halts policy activation, never per-cycle evaluation.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return "policy config: " + e.Field + ": " + e.Msg
}

// #endregion config-error
