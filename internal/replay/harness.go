package replay

import (
	"time"

	"github.com/kckern/DaylightStation-sub009/internal/govern"
	"github.com/kckern/DaylightStation-sub009/internal/roster"
	"github.com/kckern/DaylightStation-sub009/internal/stabilizer"
	"github.com/kckern/DaylightStation-sub009/internal/zone"
)

// #region types

// StepResult captures the outcome of replaying one fixture step through the
// stabilizer and engine.
type StepResult struct {
	AtMillis    int64
	At          time.Time
	ZoneChanges []string // participants whose stabilized zone changed this step
	Decision    govern.Decision
}

// Mismatch is one expectation the replayed run did not meet.
type Mismatch struct {
	AtMillis int64
	Want     govern.Phase
	Got      govern.Phase
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalSteps  int
	PhaseCounts map[govern.Phase]int
	Transitions int
	FinalPhase  govern.Phase
	Mismatches  []Mismatch
}

// #endregion types

// #region run

// Run replays fixture steps through a fresh stabilizer and engine on a
// simulated clock. Operates entirely in-memory; no scheduler, no telemetry
// transport.
func Run(f *Fixture) []StepResult {
	defs := zone.SortByThreshold(f.Zones)
	ranks := zone.BuildRankMap(defs)

	stab := stabilizer.NewStabilizer(f.ToStabilizerConfig(), defs)
	engine := govern.NewEngine(f.ToEngineConfig())

	base := time.UnixMilli(0).UTC()
	results := make([]StepResult, 0, len(f.Steps))

	for _, step := range f.Steps {
		at := base.Add(time.Duration(step.AtMillis) * time.Millisecond)
		changed := stab.SyncFromTelemetry(step.ToSamples(at), at)

		view := roster.NewView(step.Roster)
		for id := range stab.SnapshotZones() {
			if !view.Contains(id) {
				stab.Drop(id)
			}
		}

		d := engine.Evaluate(govern.CycleInput{
			Zones:  stab.SnapshotZones(),
			Ranks:  ranks,
			Roster: view,
			Now:    at,
		})

		results = append(results, StepResult{
			AtMillis:    step.AtMillis,
			At:          at,
			ZoneChanges: changed,
			Decision:    d,
		})
	}
	return results
}

// #endregion run

// #region summarize

// Summarize computes aggregate stats and checks the fixture's expectations
// against the replayed phases.
func Summarize(f *Fixture, results []StepResult) Summary {
	s := Summary{
		TotalSteps:  len(results),
		PhaseCounts: make(map[govern.Phase]int),
	}

	byMillis := make(map[int64]govern.Phase, len(results))
	var prev govern.Phase
	for i, r := range results {
		s.PhaseCounts[r.Decision.Phase]++
		byMillis[r.AtMillis] = r.Decision.Phase
		if i > 0 && r.Decision.Phase != prev {
			s.Transitions++
		}
		prev = r.Decision.Phase
	}
	if len(results) > 0 {
		s.FinalPhase = results[len(results)-1].Decision.Phase
	}

	for _, exp := range f.Expected {
		want := govern.Phase(exp.Phase)
		got, ok := byMillis[exp.AtMillis]
		if !ok || got != want {
			s.Mismatches = append(s.Mismatches, Mismatch{AtMillis: exp.AtMillis, Want: want, Got: got})
		}
	}
	return s
}

// #endregion summarize
