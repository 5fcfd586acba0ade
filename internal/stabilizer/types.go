package stabilizer

import "time"

// #region participant-zone-state
// ParticipantZoneState tracks the raw and stabilized zone classification for
// one participant. Owned exclusively by the Stabilizer and mutated only inside
// SyncFromTelemetry; every other component sees read-only snapshots.
type ParticipantZoneState struct {
	ParticipantID          string
	RawZoneID              string
	StabilizedZoneID       string
	LastRawChangeAt        time.Time
	LastStabilizedChangeAt time.Time
}

// #endregion participant-zone-state

// #region config
// Config holds the hysteresis windows.
type Config struct {
	StabilityWindow time.Duration // raw value must persist this long before promotion
	CooldownWindow  time.Duration // minimum spacing between stabilized changes
}

// DefaultConfig returns the stock hysteresis windows.
func DefaultConfig() Config {
	return Config{
		StabilityWindow: 3 * time.Second,
		CooldownWindow:  5 * time.Second,
	}
}

// #endregion config
