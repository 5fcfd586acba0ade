package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/kckern/DaylightStation-sub009/internal/govern"
	"github.com/kckern/DaylightStation-sub009/internal/policy"
	"github.com/kckern/DaylightStation-sub009/internal/stabilizer"
	"github.com/kckern/DaylightStation-sub009/internal/telemetry"
	"github.com/kckern/DaylightStation-sub009/internal/zone"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture. Timestamps
// are millisecond offsets from the start of the run, so fixtures are
// independent of wall-clock time.
type Fixture struct {
	Description string               `json:"description"`
	Zones       []zone.Definition    `json:"zones"`
	Timing      FixtureTiming        `json:"timing"`
	Requirement FixtureRequirement   `json:"requirement"`
	Challenges  []FixtureChallenge   `json:"challenges,omitempty"`
	Steps       []FixtureStep        `json:"steps"`
	Expected    []FixtureExpectation `json:"expected,omitempty"`
}

// FixtureTiming mirrors policy.Timing with JSON tags.
type FixtureTiming struct {
	StabilitySeconds      float64 `json:"stability_seconds"`
	CooldownSeconds       float64 `json:"cooldown_seconds"`
	UnlockHoldSeconds     float64 `json:"unlock_hold_seconds"`
	GraceSeconds          int     `json:"grace_seconds"`
	RewarnCooldownSeconds float64 `json:"rewarn_cooldown_seconds"`
	MinResetSeconds       float64 `json:"min_reset_seconds"`
}

// FixtureRequirement mirrors policy.RequirementSpec with JSON tags.
type FixtureRequirement struct {
	TargetZoneID         string   `json:"target_zone"`
	Rule                 string   `json:"rule"`
	Count                int      `json:"count,omitempty"`
	ExemptParticipantIDs []string `json:"exempt,omitempty"`
}

// FixtureChallenge mirrors policy.ChallengeTemplate with JSON tags.
type FixtureChallenge struct {
	ID                     string `json:"id"`
	TargetZoneID           string `json:"target_zone"`
	RequiredCount          int    `json:"required_count"`
	DurationSeconds        int    `json:"duration_seconds"`
	TriggerIntervalSeconds int    `json:"trigger_interval_seconds"`
	CooldownSeconds        int    `json:"cooldown_seconds"`
}

// FixtureSample is one participant heart-rate reading within a step.
type FixtureSample struct {
	ParticipantID string `json:"participant_id"`
	HeartRate     int    `json:"heart_rate"`
}

// FixtureStep is one telemetry delivery at a point in the run.
type FixtureStep struct {
	AtMillis int64           `json:"at_millis"`
	Samples  []FixtureSample `json:"samples"`
	Roster   []string        `json:"roster"`
}

// FixtureExpectation pins the phase the engine must report at a step.
type FixtureExpectation struct {
	AtMillis int64  `json:"at_millis"`
	Phase    string `json:"phase"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if len(f.Zones) == 0 {
		return nil, fmt.Errorf("fixture %s: no zones defined", path)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("fixture %s: no steps defined", path)
	}
	return &f, nil
}

// ToStabilizerConfig converts the fixture timing to hysteresis windows.
func (f *Fixture) ToStabilizerConfig() stabilizer.Config {
	return stabilizer.Config{
		StabilityWindow: secondsToDuration(f.Timing.StabilitySeconds),
		CooldownWindow:  secondsToDuration(f.Timing.CooldownSeconds),
	}
}

// ToEngineConfig converts the fixture policy to an engine config. Fixtures
// always model governed sessions.
func (f *Fixture) ToEngineConfig() govern.Config {
	challenges := make([]policy.ChallengeTemplate, len(f.Challenges))
	for i, c := range f.Challenges {
		challenges[i] = policy.ChallengeTemplate{
			ID:                     c.ID,
			TargetZoneID:           c.TargetZoneID,
			RequiredCount:          c.RequiredCount,
			DurationSeconds:        c.DurationSeconds,
			TriggerIntervalSeconds: c.TriggerIntervalSeconds,
			CooldownSeconds:        c.CooldownSeconds,
		}
	}
	return govern.Config{
		Requirement: policy.RequirementSpec{
			TargetZoneID:         f.Requirement.TargetZoneID,
			Rule:                 policy.Rule(f.Requirement.Rule),
			Count:                f.Requirement.Count,
			ExemptParticipantIDs: f.Requirement.ExemptParticipantIDs,
		},
		Challenges:       challenges,
		UnlockHold:       secondsToDuration(f.Timing.UnlockHoldSeconds),
		Grace:            time.Duration(f.Timing.GraceSeconds) * time.Second,
		RewarnCooldown:   secondsToDuration(f.Timing.RewarnCooldownSeconds),
		MinResetInterval: secondsToDuration(f.Timing.MinResetSeconds),
		ContentGoverned:  true,
	}
}

// ToSamples converts a step's samples to telemetry samples at the given time.
func (s *FixtureStep) ToSamples(at time.Time) []telemetry.Sample {
	samples := make([]telemetry.Sample, len(s.Samples))
	for i, fs := range s.Samples {
		samples[i] = telemetry.Sample{
			ParticipantID: fs.ParticipantID,
			HeartRate:     fs.HeartRate,
			At:            at,
		}
	}
	return samples
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// #endregion fixture-loader
