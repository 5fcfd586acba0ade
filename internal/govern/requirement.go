package govern

import (
	"github.com/kckern/DaylightStation-sub009/internal/policy"
	"github.com/kckern/DaylightStation-sub009/internal/zone"
)

// #region evaluate-requirement
// evaluateRequirement checks the governing rule against one cycle's zone map.
// Exempt participants are excluded from both numerator and denominator. An
// empty rank map or empty considered set degrades to unsatisfied — never an
// error (invariant guard).
func evaluateRequirement(
	spec policy.RequirementSpec,
	zones map[string]string,
	active []string,
	exempt map[string]bool,
	ranks zone.RankMap,
) RequirementEvaluation {
	req := Requirement{
		TargetZoneID:         spec.TargetZoneID,
		Rule:                 spec.Rule,
		ExemptParticipantIDs: spec.ExemptParticipantIDs,
	}

	var met, missing []string
	considered := 0
	for _, id := range active {
		if exempt[id] {
			continue
		}
		considered++
		if zone.AtLeast(ranks, zones[id], spec.TargetZoneID) {
			met = append(met, id)
		} else {
			missing = append(missing, id)
		}
	}

	switch spec.Rule {
	case policy.RuleAll:
		req.RequiredCount = considered
	case policy.RuleAny:
		req.RequiredCount = 1
	case policy.RuleCount:
		req.RequiredCount = spec.Count
	default:
		req.RequiredCount = considered
	}

	satisfied := false
	if considered > 0 && len(ranks) > 0 {
		switch spec.Rule {
		case policy.RuleAll:
			satisfied = len(missing) == 0
		case policy.RuleAny:
			satisfied = len(met) > 0
		case policy.RuleCount:
			satisfied = len(met) >= spec.Count
		}
	}

	return RequirementEvaluation{
		Requirement:           req,
		MetParticipantIDs:     met,
		MissingParticipantIDs: missing,
		Satisfied:             satisfied,
	}
}

// #endregion evaluate-requirement

// #region count-in-zone
// countInZone counts active participants whose zone meets the target rank.
func countInZone(zones map[string]string, active []string, ranks zone.RankMap, targetZoneID string) int {
	n := 0
	for _, id := range active {
		if zone.AtLeast(ranks, zones[id], targetZoneID) {
			n++
		}
	}
	return n
}

// #endregion count-in-zone
