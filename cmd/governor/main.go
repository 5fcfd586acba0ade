package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kckern/DaylightStation-sub009/internal/govern"
	"github.com/kckern/DaylightStation-sub009/internal/journal"
	"github.com/kckern/DaylightStation-sub009/internal/logging"
	"github.com/kckern/DaylightStation-sub009/internal/policy"
	"github.com/kckern/DaylightStation-sub009/internal/roster"
	"github.com/kckern/DaylightStation-sub009/internal/scheduler"
	"github.com/kckern/DaylightStation-sub009/internal/stabilizer"
	"github.com/kckern/DaylightStation-sub009/internal/telemetry"
	"github.com/kckern/DaylightStation-sub009/internal/zone"
)

// #region main
func main() {
	policyPath := envOr("GOVERNOR_POLICY", "policy.yaml")
	dbPath := envOr("GOVERNOR_DB", "governor.db")
	grpcAddr := envOr("TELEMETRY_ADDR", "localhost:50051")

	p, err := policy.Load(policyPath)
	if err != nil {
		log.Fatalf("failed to load policy: %v", err)
	}

	store, err := journal.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open journal: %v", err)
	}
	defer store.Close()

	session, err := store.BeginSession(p.Content.MediaID)
	if err != nil {
		log.Fatalf("failed to begin session: %v", err)
	}

	// Connect to the telemetry bridge service
	bridge, err := telemetry.NewClient(grpcAddr)
	if err != nil {
		log.Fatalf("failed to connect to telemetry bridge at %s: %v", grpcAddr, err)
	}
	defer bridge.Close()

	defs := zone.SortByThreshold(p.Zones)
	ranks := zone.BuildRankMap(defs)
	stab := stabilizer.NewStabilizer(stabilizer.Config{
		StabilityWindow: p.Timing.StabilityWindow(),
		CooldownWindow:  p.Timing.CooldownWindow(),
	}, defs)
	engine := govern.NewEngine(govern.ConfigFromPolicy(p))

	var sched *scheduler.Scheduler
	var lastRoster []string
	lastPhase := engine.Phase()

	cycle := func(now time.Time) govern.Decision {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		snap, err := bridge.FetchSnapshot(ctx, session.SessionID)
		cancel()
		if err != nil {
			// Telemetry outage: evaluate on the last known roster and zones so
			// grace deadlines and challenge timers keep advancing. An empty
			// roster here would read as "session over" and reset the engine.
			log.Printf("telemetry error: %v", err)
			snap.Roster = lastRoster
		} else {
			lastRoster = snap.Roster
		}

		view := roster.NewView(snap.Roster)
		changed := stab.SyncFromTelemetry(snap.Samples, now)
		if err == nil {
			for id := range stab.SnapshotZones() {
				if !view.Contains(id) {
					stab.Drop(id)
				}
			}
		}

		in := govern.CycleInput{
			Zones:  stab.SnapshotZones(),
			Ranks:  ranks,
			Roster: view,
			Now:    now,
		}
		d := engine.Evaluate(in)

		inputJSON, _ := json.Marshal(journal.RecordFromInput(in))
		decisionJSON, _ := json.Marshal(d)
		entry := journal.DecisionEntry{
			SessionID:    session.SessionID,
			Trigger:      "cycle",
			Phase:        d.Phase,
			VideoLocked:  d.VideoLocked,
			Satisfied:    d.Requirement.Satisfied,
			InputJSON:    string(inputJSON),
			DecisionJSON: string(decisionJSON),
		}
		if d.Challenge != nil {
			entry.ChallengeStatus = d.Challenge.Status
		}
		if err := store.RecordDecision(entry); err != nil {
			log.Printf("journal error: %v", err)
		}

		if len(changed) > 0 {
			sched.NotifyZoneChange()
		}
		return d
	}

	sched = scheduler.NewScheduler(scheduler.ConfigFromPolicy(p), cycle, scheduler.Callbacks{
		OnPhaseChange: func(d govern.Decision) {
			decisionJSON, _ := json.Marshal(d)
			err := logging.LogTransition(store.DB(), logging.TransitionEntry{
				SessionID:    session.SessionID,
				FromPhase:    string(lastPhase),
				ToPhase:      string(d.Phase),
				DecisionJSON: string(decisionJSON),
			})
			if err != nil {
				log.Printf("transition log error: %v", err)
			}
			lastPhase = d.Phase
			fmt.Printf("[%s] phase=%s locked=%v satisfied=%v\n",
				d.EvaluatedAt.Format(time.RFC3339), d.Phase, d.VideoLocked, d.Requirement.Satisfied)
		},
	})

	sched.Start()
	fmt.Println("Effort governor ready.")
	fmt.Printf("  Policy: %s | DB: %s | Bridge: %s | Session: %s\n",
		policyPath, dbPath, grpcAddr, session.SessionID)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	sched.Stop()
	if err := store.EndSession(session.SessionID, time.Now().UTC()); err != nil {
		log.Printf("end session error: %v", err)
	}
	fmt.Println("Session closed.")
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
