package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kckern/DaylightStation-sub009/internal/govern"
	"github.com/kckern/DaylightStation-sub009/internal/journal"
	"github.com/kckern/DaylightStation-sub009/internal/policy"
	"github.com/kckern/DaylightStation-sub009/internal/replay"
	"github.com/kckern/DaylightStation-sub009/internal/roster"
	"github.com/kckern/DaylightStation-sub009/internal/zone"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to governor.db (DB mode)")
	sessionID := flag.String("session", "", "session to replay (DB mode; default latest)")
	policyPath := flag.String("policy", "", "policy file the session ran under (DB mode)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json")
		fmt.Fprintln(os.Stderr, "       replay --db path/to/governor.db --policy path/to/policy.yaml [--session ID]")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath, *sessionID, *policyPath)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	if f.Description != "" {
		fmt.Printf("Fixture: %s\n\n", f.Description)
	}

	results := replay.Run(f)
	summary := replay.Summarize(f, results)

	expected := make(map[int64]govern.Phase, len(f.Expected))
	for _, e := range f.Expected {
		expected[e.AtMillis] = govern.Phase(e.Phase)
	}

	fmt.Printf("%-12s| %-10s| %-10s| %s\n", "At (ms)", "Expected", "Replayed", "Match")
	fmt.Printf("%-12s+%-11s+%-11s+%s\n", "------------", "-----------", "-----------", "------")
	for _, r := range results {
		exp, pinned := expected[r.AtMillis]
		expStr, match := "-", "-"
		if pinned {
			expStr = string(exp)
			if exp == r.Decision.Phase {
				match = "OK"
			} else {
				match = "DIFF"
			}
		}
		fmt.Printf("%-12d| %-10s| %-10s| %s\n", r.AtMillis, expStr, r.Decision.Phase, match)
	}

	fmt.Printf("\nSummary: %d steps, %d transitions, final phase %s\n",
		summary.TotalSteps, summary.Transitions, summary.FinalPhase)
	if len(summary.Mismatches) > 0 {
		fmt.Printf("%d expectation(s) not met\n", len(summary.Mismatches))
		return 1
	}
	return 0
}

// #endregion fixture-mode

// #region db-mode

func runDBMode(dbPath, sessionID, policyPath string) int {
	if policyPath == "" {
		fmt.Fprintln(os.Stderr, "DB mode needs --policy (the journal stores inputs, not the policy)")
		return 2
	}
	p, err := policy.Load(policyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load policy: %v\n", err)
		return 2
	}

	store, err := journal.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	if sessionID == "" {
		sessions, err := store.ListSessions(1)
		if err != nil || len(sessions) == 0 {
			fmt.Fprintln(os.Stderr, "no sessions found in journal")
			return 2
		}
		sessionID = sessions[0].SessionID
	}

	entries, err := store.ListDecisions(sessionID, 100000)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list decisions: %v\n", err)
		return 2
	}
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "no journaled decisions for session %s\n", sessionID)
		return 2
	}

	defs := zone.SortByThreshold(p.Zones)
	ranks := zone.BuildRankMap(defs)
	engine := govern.NewEngine(govern.ConfigFromPolicy(p))

	fmt.Printf("Session %s: %d journaled cycles\n\n", sessionID, len(entries))
	fmt.Printf("%-26s| %-10s| %-10s| %s\n", "Evaluated At", "Journaled", "Replayed", "Match")
	fmt.Printf("%-26s+%-11s+%-11s+%s\n", "--------------------------", "-----------", "-----------", "------")

	matches, skipped := 0, 0
	total := 0
	for _, e := range entries {
		var rec journal.CycleRecord
		if e.InputJSON == "" || json.Unmarshal([]byte(e.InputJSON), &rec) != nil {
			skipped++
			continue
		}
		at := time.UnixMilli(rec.AtUnix).UTC()
		d := engine.Evaluate(govern.CycleInput{
			Zones:  rec.Zones,
			Ranks:  ranks,
			Roster: roster.NewView(rec.Roster),
			Now:    at,
		})

		total++
		match := "DIFF"
		if d.Phase == e.Phase && d.VideoLocked == e.VideoLocked {
			match = "OK"
			matches++
		}
		fmt.Printf("%-26s| %-10s| %-10s| %s\n", at.Format(time.RFC3339), e.Phase, d.Phase, match)
	}

	diverge := total - matches
	fmt.Printf("\nSummary: %d total, %d match, %d diverge, %d skipped\n", total, matches, diverge, skipped)
	if diverge > 0 {
		return 1
	}
	return 0
}

// #endregion db-mode
