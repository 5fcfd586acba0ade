package govern

import (
	"testing"

	"github.com/kckern/DaylightStation-sub009/internal/policy"
	"github.com/kckern/DaylightStation-sub009/internal/zone"
)

func testRanks() zone.RankMap {
	return zone.RankMap{"cool": 0, "active": 1, "warm": 2, "hot": 3}
}

func TestRequirementAllSatisfied(t *testing.T) {
	spec := policy.RequirementSpec{TargetZoneID: "active", Rule: policy.RuleAll}
	zones := map[string]string{"a": "active", "b": "warm", "c": "hot"}

	ev := evaluateRequirement(spec, zones, []string{"a", "b", "c"}, nil, testRanks())

	if !ev.Satisfied {
		t.Fatalf("expected satisfied, missing=%v", ev.MissingParticipantIDs)
	}
	if len(ev.MetParticipantIDs) != 3 {
		t.Fatalf("expected 3 met, got %v", ev.MetParticipantIDs)
	}
	if ev.Requirement.RequiredCount != 3 {
		t.Fatalf("expected required count 3, got %d", ev.Requirement.RequiredCount)
	}
}

func TestRequirementAllOneMissing(t *testing.T) {
	spec := policy.RequirementSpec{TargetZoneID: "active", Rule: policy.RuleAll}
	zones := map[string]string{"a": "active", "b": "cool"}

	ev := evaluateRequirement(spec, zones, []string{"a", "b"}, nil, testRanks())

	if ev.Satisfied {
		t.Fatal("expected unsatisfied")
	}
	if len(ev.MissingParticipantIDs) != 1 || ev.MissingParticipantIDs[0] != "b" {
		t.Fatalf("expected b missing, got %v", ev.MissingParticipantIDs)
	}
}

func TestRequirementAny(t *testing.T) {
	spec := policy.RequirementSpec{TargetZoneID: "warm", Rule: policy.RuleAny}
	zones := map[string]string{"a": "cool", "b": "hot"}

	ev := evaluateRequirement(spec, zones, []string{"a", "b"}, nil, testRanks())

	if !ev.Satisfied {
		t.Fatal("expected satisfied: b is above warm")
	}
	if ev.Requirement.RequiredCount != 1 {
		t.Fatalf("expected required count 1, got %d", ev.Requirement.RequiredCount)
	}
}

func TestRequirementCount(t *testing.T) {
	spec := policy.RequirementSpec{TargetZoneID: "active", Rule: policy.RuleCount, Count: 2}
	zones := map[string]string{"a": "active", "b": "cool", "c": "warm"}

	ev := evaluateRequirement(spec, zones, []string{"a", "b", "c"}, nil, testRanks())

	if !ev.Satisfied {
		t.Fatal("expected satisfied: a and c meet active")
	}
	if ev.Requirement.RequiredCount != 2 {
		t.Fatalf("expected required count 2, got %d", ev.Requirement.RequiredCount)
	}
}

func TestExemptionExcludedFromBothSides(t *testing.T) {
	// Exempt participants leave both numerator and denominator: with b exempt
	// and below target, ALL over {a} is still satisfied.
	spec := policy.RequirementSpec{TargetZoneID: "active", Rule: policy.RuleAll}
	zones := map[string]string{"a": "active", "b": "cool"}
	exempt := map[string]bool{"b": true}

	ev := evaluateRequirement(spec, zones, []string{"a", "b"}, exempt, testRanks())

	if !ev.Satisfied {
		t.Fatalf("expected satisfied with b exempt, missing=%v", ev.MissingParticipantIDs)
	}
	if ev.Requirement.RequiredCount != 1 {
		t.Fatalf("exempt must shrink the denominator: expected 1, got %d", ev.Requirement.RequiredCount)
	}
	for _, id := range append(ev.MetParticipantIDs, ev.MissingParticipantIDs...) {
		if id == "b" {
			t.Fatal("exempt participant must not appear in either list")
		}
	}
}

func TestEmptyRankMapDegradesToUnsatisfied(t *testing.T) {
	spec := policy.RequirementSpec{TargetZoneID: "active", Rule: policy.RuleAll}
	zones := map[string]string{"a": "active"}

	ev := evaluateRequirement(spec, zones, []string{"a"}, nil, zone.RankMap{})

	if ev.Satisfied {
		t.Fatal("empty rank map must degrade to unsatisfied")
	}
}

func TestNoConsideredParticipantsUnsatisfied(t *testing.T) {
	spec := policy.RequirementSpec{TargetZoneID: "active", Rule: policy.RuleAny}

	ev := evaluateRequirement(spec, nil, nil, nil, testRanks())

	if ev.Satisfied {
		t.Fatal("no participants must be unsatisfied, never vacuously true")
	}
}
