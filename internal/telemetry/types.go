package telemetry

import "time"

// #region sample
// Sample is one heart-rate reading for a participant, delivered at arbitrary
// intervals by the telemetry bridge. A HeartRate of zero or less means the
// device was silent this interval — "no new information", never "zero effort".
type Sample struct {
	ParticipantID string
	HeartRate     int
	At            time.Time
}

// HasRate reports whether the sample carries a usable reading.
func (s Sample) HasRate() bool {
	return s.HeartRate > 0
}

// #endregion sample

// #region snapshot
// Snapshot bundles one fetch from the telemetry bridge: the latest sample per
// participant plus the roster collaborator's current membership list.
type Snapshot struct {
	Samples []Sample
	Roster  []string
}

// #endregion snapshot
