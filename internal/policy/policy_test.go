package policy

import (
	"errors"
	"testing"
	"time"
)

const validYAML = `
zones:
  - {id: cool, rank: 0, min_threshold: 0}
  - {id: active, rank: 1, min_threshold: 100}
  - {id: warm, rank: 2, min_threshold: 130}
requirement:
  target_zone: active
  rule: all
challenges:
  - id: sprint
    target_zone: warm
    required_count: 2
    duration_seconds: 60
    trigger_interval_seconds: 300
    cooldown_seconds: 120
timing:
  grace_seconds: 30
  unlock_hold_seconds: 2
content:
  governed: true
  media_id: workout-42
`

func TestParseValidPolicy(t *testing.T) {
	p, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Zones) != 3 {
		t.Fatalf("expected 3 zones, got %d", len(p.Zones))
	}
	if p.Requirement.Rule != RuleAll {
		t.Fatalf("expected all rule, got %s", p.Requirement.Rule)
	}
	if !p.Content.Governed {
		t.Fatal("expected governed content")
	}
	if p.Timing.Grace() != 30*time.Second {
		t.Fatalf("expected 30s grace, got %v", p.Timing.Grace())
	}
	if p.Timing.UnlockHold() != 2*time.Second {
		t.Fatalf("expected 2s hold, got %v", p.Timing.UnlockHold())
	}
}

func TestParseAppliesDefaults(t *testing.T) {
	p, err := Parse([]byte(`
zones:
  - {id: active, rank: 1, min_threshold: 100}
requirement: {target_zone: active, rule: any}
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Timing.StabilityWindow() != 3*time.Second {
		t.Fatalf("expected default stability window, got %v", p.Timing.StabilityWindow())
	}
	if p.Scheduler.Tick() != 5*time.Second {
		t.Fatalf("expected default tick, got %v", p.Scheduler.Tick())
	}
	if p.Scheduler.Debounce() != 100*time.Millisecond {
		t.Fatalf("expected default debounce, got %v", p.Scheduler.Debounce())
	}
}

func TestValidateRejectsEmptyZones(t *testing.T) {
	_, err := Parse([]byte(`
requirement: {target_zone: active, rule: all}
`))
	assertConfigError(t, err, "zones")
}

func TestValidateRejectsDuplicateZoneID(t *testing.T) {
	_, err := Parse([]byte(`
zones:
  - {id: active, rank: 0, min_threshold: 0}
  - {id: active, rank: 1, min_threshold: 100}
requirement: {target_zone: active, rule: all}
`))
	assertConfigError(t, err, "zones")
}

func TestValidateRejectsUnknownRequirementZone(t *testing.T) {
	_, err := Parse([]byte(`
zones:
  - {id: active, rank: 1, min_threshold: 100}
requirement: {target_zone: hot, rule: all}
`))
	assertConfigError(t, err, "requirement.target_zone")
}

func TestValidateRejectsCountRuleWithoutCount(t *testing.T) {
	_, err := Parse([]byte(`
zones:
  - {id: active, rank: 1, min_threshold: 100}
requirement: {target_zone: active, rule: count}
`))
	assertConfigError(t, err, "requirement.count")
}

func TestValidateRejectsBadChallenge(t *testing.T) {
	_, err := Parse([]byte(`
zones:
  - {id: active, rank: 1, min_threshold: 100}
requirement: {target_zone: active, rule: all}
challenges:
  - {id: sprint, target_zone: hot, required_count: 1, duration_seconds: 60}
`))
	assertConfigError(t, err, "challenges[0].target_zone")
}

func assertConfigError(t *testing.T, err error, field string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected config error")
	}
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConfigError, got %T: %v", err, err)
	}
	if ce.Field != field {
		t.Fatalf("expected field %q, got %q (%v)", field, ce.Field, ce)
	}
}
