package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kckern/DaylightStation-sub009/internal/journal"
	"github.com/kckern/DaylightStation-sub009/internal/policy"
	"github.com/kckern/DaylightStation-sub009/internal/replay"
	"github.com/kckern/DaylightStation-sub009/internal/zone"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to governor.db")
	sessionID := flag.String("session", "", "session to export (default latest)")
	policyPath := flag.String("policy", "", "policy file the session ran under")
	last := flag.Int("last", 200, "number of most recent cycles to export")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *policyPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/governor.db --policy path/to/policy.yaml --out path/to/fixture.json [--session id] [--last N]")
		os.Exit(2)
	}

	if err := run(*dbPath, *sessionID, *policyPath, *last, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region extract

func run(dbPath, sessionID, policyPath string, last int, outPath string) error {
	p, err := policy.Load(policyPath)
	if err != nil {
		return fmt.Errorf("load policy: %w", err)
	}

	store, err := journal.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	if sessionID == "" {
		sessions, err := store.ListSessions(1)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(sessions) == 0 {
			return fmt.Errorf("no sessions found in journal")
		}
		sessionID = sessions[0].SessionID
	}

	entries, err := store.ListDecisions(sessionID, last)
	if err != nil {
		return fmt.Errorf("list decisions: %w", err)
	}

	type cycleRow struct {
		rec   journal.CycleRecord
		entry journal.DecisionEntry
	}
	var rows []cycleRow
	for _, e := range entries {
		if e.InputJSON == "" {
			continue
		}
		var rec journal.CycleRecord
		if err := json.Unmarshal([]byte(e.InputJSON), &rec); err != nil {
			continue
		}
		rows = append(rows, cycleRow{rec: rec, entry: e})
	}
	if len(rows) == 0 {
		return fmt.Errorf("no replayable cycles found for session %s", sessionID)
	}

	fmt.Printf("Found %d replayable cycles\n", len(rows))

	// Journaled zones are already stabilized, so the exported fixture zeroes
	// the hysteresis windows and synthesizes each zone's threshold rate.
	// Re-running hysteresis over stabilized output would shift every timeline.
	thresholds := make(map[string]int, len(p.Zones))
	for _, d := range p.Zones {
		thresholds[d.ID] = d.MinThreshold
	}

	base := rows[0].rec.AtUnix
	steps := make([]replay.FixtureStep, len(rows))
	expected := make([]replay.FixtureExpectation, len(rows))
	for i, r := range rows {
		var samples []replay.FixtureSample
		for id, zoneID := range r.rec.Zones {
			rate, ok := thresholds[zoneID]
			if !ok {
				continue
			}
			if rate <= 0 {
				rate = 1 // a zero rate would read as device silence
			}
			samples = append(samples, replay.FixtureSample{ParticipantID: id, HeartRate: rate})
		}
		steps[i] = replay.FixtureStep{
			AtMillis: r.rec.AtUnix - base,
			Samples:  samples,
			Roster:   r.rec.Roster,
		}
		expected[i] = replay.FixtureExpectation{
			AtMillis: r.rec.AtUnix - base,
			Phase:    string(r.entry.Phase),
		}
	}

	fixture := replay.Fixture{
		Description: fmt.Sprintf("Session export: %d cycles from %s", len(rows), sessionID),
		Zones:       zone.SortByThreshold(p.Zones),
		Timing: replay.FixtureTiming{
			UnlockHoldSeconds:     p.Timing.UnlockHoldSeconds,
			GraceSeconds:          p.Timing.GraceSeconds,
			RewarnCooldownSeconds: p.Timing.RewarnCooldownSeconds,
			MinResetSeconds:       p.Timing.MinResetSeconds,
		},
		Requirement: replay.FixtureRequirement{
			TargetZoneID:         p.Requirement.TargetZoneID,
			Rule:                 string(p.Requirement.Rule),
			Count:                p.Requirement.Count,
			ExemptParticipantIDs: p.Requirement.ExemptParticipantIDs,
		},
		Steps:    steps,
		Expected: expected,
	}
	for _, c := range p.Challenges {
		fixture.Challenges = append(fixture.Challenges, replay.FixtureChallenge{
			ID:                     c.ID,
			TargetZoneID:           c.TargetZoneID,
			RequiredCount:          c.RequiredCount,
			DurationSeconds:        c.DurationSeconds,
			TriggerIntervalSeconds: c.TriggerIntervalSeconds,
			CooldownSeconds:        c.CooldownSeconds,
		})
	}

	return writeFixture(fixture, outPath)
}

// #endregion extract

// #region output

func writeFixture(fixture replay.Fixture, outPath string) error {
	data, err := json.MarshalIndent(fixture, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	fmt.Printf("Wrote fixture to %s (%d bytes, %d steps)\n", outPath, len(data), len(fixture.Steps))
	return nil
}

// #endregion output
