package stabilizer

import (
	"testing"
	"time"

	"github.com/kckern/DaylightStation-sub009/internal/telemetry"
	"github.com/kckern/DaylightStation-sub009/internal/zone"
)

func testDefs() []zone.Definition {
	return []zone.Definition{
		{ID: "cool", Rank: 0, MinThreshold: 0},
		{ID: "active", Rank: 1, MinThreshold: 100},
		{ID: "warm", Rank: 2, MinThreshold: 130},
	}
}

func testConfig() Config {
	return Config{StabilityWindow: 3 * time.Second, CooldownWindow: 5 * time.Second}
}

func sample(id string, rate int, at time.Time) telemetry.Sample {
	return telemetry.Sample{ParticipantID: id, HeartRate: rate, At: at}
}

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestFirstClassificationPromotesImmediately(t *testing.T) {
	s := NewStabilizer(testConfig(), testDefs())

	changed := s.SyncFromTelemetry([]telemetry.Sample{sample("x", 110, t0)}, t0)

	if len(changed) != 1 || changed[0] != "x" {
		t.Fatalf("expected immediate first promotion, got %v", changed)
	}
	if s.SnapshotZones()["x"] != "active" {
		t.Fatalf("expected active, got %q", s.SnapshotZones()["x"])
	}
}

func TestShortRawBlipNeverStabilizes(t *testing.T) {
	// Scenario: X stabilized in active, raw drops to cool for 2s, then
	// returns. With a 3s stability window the stabilized zone never moves.
	s := NewStabilizer(testConfig(), testDefs())
	s.SyncFromTelemetry([]telemetry.Sample{sample("x", 110, t0)}, t0)

	blipAt := t0.Add(10 * time.Second)
	if changed := s.SyncFromTelemetry([]telemetry.Sample{sample("x", 80, blipAt)}, blipAt); len(changed) != 0 {
		t.Fatalf("raw change must not stabilize immediately, got %v", changed)
	}

	// 2s later the raw value returns to active before the window elapses.
	backAt := blipAt.Add(2 * time.Second)
	if changed := s.SyncFromTelemetry([]telemetry.Sample{sample("x", 115, backAt)}, backAt); len(changed) != 0 {
		t.Fatalf("recovered blip must not report a change, got %v", changed)
	}
	if s.SnapshotZones()["x"] != "active" {
		t.Fatalf("stabilized zone must stay active, got %q", s.SnapshotZones()["x"])
	}
}

func TestPersistentRawChangePromotesAfterWindow(t *testing.T) {
	s := NewStabilizer(testConfig(), testDefs())
	s.SyncFromTelemetry([]telemetry.Sample{sample("x", 110, t0)}, t0)

	dropAt := t0.Add(10 * time.Second)
	s.SyncFromTelemetry([]telemetry.Sample{sample("x", 80, dropAt)}, dropAt)

	// Raw stable for >= 3s and cooldown long expired: promotes.
	promoteAt := dropAt.Add(3 * time.Second)
	changed := s.SyncFromTelemetry([]telemetry.Sample{sample("x", 80, promoteAt)}, promoteAt)
	if len(changed) != 1 || changed[0] != "x" {
		t.Fatalf("expected promotion after stability window, got %v", changed)
	}
	if s.SnapshotZones()["x"] != "cool" {
		t.Fatalf("expected cool, got %q", s.SnapshotZones()["x"])
	}
}

func TestPromotionWithoutFreshSample(t *testing.T) {
	// The raw value ages into stability between samples; a later sync call
	// with no sample for the participant still promotes.
	s := NewStabilizer(testConfig(), testDefs())
	s.SyncFromTelemetry([]telemetry.Sample{sample("x", 110, t0)}, t0)

	dropAt := t0.Add(10 * time.Second)
	s.SyncFromTelemetry([]telemetry.Sample{sample("x", 80, dropAt)}, dropAt)

	later := dropAt.Add(4 * time.Second)
	changed := s.SyncFromTelemetry(nil, later)
	if len(changed) != 1 || changed[0] != "x" {
		t.Fatalf("expected promotion on empty sync, got %v", changed)
	}
}

func TestCooldownBlocksRapidStabilizedChanges(t *testing.T) {
	s := NewStabilizer(testConfig(), testDefs())
	s.SyncFromTelemetry([]telemetry.Sample{sample("x", 80, t0)}, t0) // first: cool

	// Raw jumps to active immediately and stays there.
	jumpAt := t0.Add(1 * time.Second)
	s.SyncFromTelemetry([]telemetry.Sample{sample("x", 110, jumpAt)}, jumpAt)

	// Stability window passes at t0+4s but cooldown (5s from t0) has not.
	earlyAt := t0.Add(4 * time.Second)
	if changed := s.SyncFromTelemetry([]telemetry.Sample{sample("x", 110, earlyAt)}, earlyAt); len(changed) != 0 {
		t.Fatalf("cooldown must block promotion, got %v", changed)
	}

	// After the cooldown expires it promotes.
	lateAt := t0.Add(5 * time.Second)
	changed := s.SyncFromTelemetry([]telemetry.Sample{sample("x", 110, lateAt)}, lateAt)
	if len(changed) != 1 {
		t.Fatalf("expected promotion after cooldown, got %v", changed)
	}
}

func TestSilentDevicePreservesZone(t *testing.T) {
	s := NewStabilizer(testConfig(), testDefs())
	s.SyncFromTelemetry([]telemetry.Sample{sample("x", 110, t0)}, t0)

	// Zero heart rate is "no new information".
	quietAt := t0.Add(20 * time.Second)
	if changed := s.SyncFromTelemetry([]telemetry.Sample{sample("x", 0, quietAt)}, quietAt); len(changed) != 0 {
		t.Fatalf("silent device must not change anything, got %v", changed)
	}
	if s.SnapshotZones()["x"] != "active" {
		t.Fatalf("silent device must preserve zone, got %q", s.SnapshotZones()["x"])
	}
}

func TestDropForgetsParticipant(t *testing.T) {
	s := NewStabilizer(testConfig(), testDefs())
	s.SyncFromTelemetry([]telemetry.Sample{sample("x", 110, t0)}, t0)

	s.Drop("x")

	if _, ok := s.SnapshotZones()["x"]; ok {
		t.Fatal("dropped participant must not appear in snapshot")
	}
	if _, ok := s.State("x"); ok {
		t.Fatal("dropped participant must have no state")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewStabilizer(testConfig(), testDefs())
	s.SyncFromTelemetry([]telemetry.Sample{sample("x", 110, t0)}, t0)

	snap := s.SnapshotZones()
	snap["x"] = "hot"

	if s.SnapshotZones()["x"] != "active" {
		t.Fatal("mutating a snapshot must not affect owned state")
	}
}
