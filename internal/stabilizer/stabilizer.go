package stabilizer

import (
	"log"
	"time"

	"github.com/kckern/DaylightStation-sub009/internal/telemetry"
	"github.com/kckern/DaylightStation-sub009/internal/zone"
)

// #region stabilizer
// Stabilizer converts jittery per-participant zone classifications into
// stabilized zones using hysteresis: a raw change must persist for the
// stability window, and stabilized changes are spaced by the cooldown window.
type Stabilizer struct {
	config Config
	defs   []zone.Definition
	states map[string]*ParticipantZoneState
}

// NewStabilizer creates a stabilizer over the given zone definitions.
func NewStabilizer(config Config, defs []zone.Definition) *Stabilizer {
	return &Stabilizer{
		config: config,
		defs:   defs,
		states: make(map[string]*ParticipantZoneState),
	}
}

// #endregion stabilizer

// #region sync
// SyncFromTelemetry ingests the latest samples and returns the IDs of
// participants whose stabilized zone changed this call. Samples without a
// usable heart rate are skipped: device silence preserves the last known
// zone until a positive reading overrides it or the participant is dropped.
func (s *Stabilizer) SyncFromTelemetry(samples []telemetry.Sample, now time.Time) []string {
	// 1. Record raw classifications.
	for _, sample := range samples {
		if sample.ParticipantID == "" || !sample.HasRate() {
			continue
		}
		rawZone, ok := zone.ClassifyRate(s.defs, sample.HeartRate)
		if !ok {
			continue
		}

		st, exists := s.states[sample.ParticipantID]
		if !exists {
			st = &ParticipantZoneState{ParticipantID: sample.ParticipantID}
			s.states[sample.ParticipantID] = st
		}
		if st.RawZoneID != rawZone {
			st.RawZoneID = rawZone
			st.LastRawChangeAt = now
		}
	}

	// 2. Promotion pass over all tracked participants, not just this call's
	// samples — a raw value ages into stability between samples too.
	var changed []string
	for _, st := range s.states {
		if st.RawZoneID == "" || st.RawZoneID == st.StabilizedZoneID {
			continue
		}

		// First-ever classification promotes immediately, no cooldown.
		if st.StabilizedZoneID == "" {
			st.StabilizedZoneID = st.RawZoneID
			st.LastStabilizedChangeAt = now
			changed = append(changed, st.ParticipantID)
			continue
		}

		if now.Sub(st.LastRawChangeAt) < s.config.StabilityWindow {
			continue
		}
		if now.Sub(st.LastStabilizedChangeAt) < s.config.CooldownWindow {
			continue
		}

		log.Printf("[STAB] %s: %s → %s", st.ParticipantID, st.StabilizedZoneID, st.RawZoneID)
		st.StabilizedZoneID = st.RawZoneID
		st.LastStabilizedChangeAt = now
		changed = append(changed, st.ParticipantID)
	}
	return changed
}

// #endregion sync

// #region snapshot
// SnapshotZones returns a fresh participant→stabilized-zone map for this
// cycle. Participants without a stabilized classification yet are omitted.
func (s *Stabilizer) SnapshotZones() map[string]string {
	out := make(map[string]string, len(s.states))
	for id, st := range s.states {
		if st.StabilizedZoneID != "" {
			out[id] = st.StabilizedZoneID
		}
	}
	return out
}

// State returns a copy of one participant's zone state.
func (s *Stabilizer) State(participantID string) (ParticipantZoneState, bool) {
	st, ok := s.states[participantID]
	if !ok {
		return ParticipantZoneState{}, false
	}
	return *st, true
}

// #endregion snapshot

// #region drop
// Drop forgets a participant that left the roster.
func (s *Stabilizer) Drop(participantID string) {
	delete(s.states, participantID)
}

// Reset clears all tracked participants.
func (s *Stabilizer) Reset() {
	s.states = make(map[string]*ParticipantZoneState)
}

// #endregion drop
