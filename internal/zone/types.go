package zone

// #region definition
// Definition describes one ordered effort-intensity band.
// Rank is the ordinal position (lower = easier) and is loaded once per
// policy configuration, never recomputed per cycle.
type Definition struct {
	ID           string `yaml:"id" json:"id"`
	Rank         int    `yaml:"rank" json:"rank"`
	MinThreshold int    `yaml:"min_threshold" json:"min_threshold"` // beats per minute
}

// #endregion definition

// #region rank-map
// RankMap maps a zone ID to its rank for "at least zone X" comparisons.
type RankMap map[string]int

// #endregion rank-map
