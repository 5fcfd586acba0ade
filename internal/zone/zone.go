package zone

import "sort"

// #region rank-map-build
// BuildRankMap derives the ID→rank lookup from an ordered zone list.
func BuildRankMap(defs []Definition) RankMap {
	ranks := make(RankMap, len(defs))
	for _, d := range defs {
		ranks[d.ID] = d.Rank
	}
	return ranks
}

// #endregion rank-map-build

// #region sort
// SortByThreshold returns a copy of defs ordered by ascending MinThreshold.
func SortByThreshold(defs []Definition) []Definition {
	sorted := make([]Definition, len(defs))
	copy(sorted, defs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinThreshold < sorted[j].MinThreshold
	})
	return sorted
}

// #endregion sort

// #region classify
// ClassifyRate maps a heart rate to the highest zone whose threshold the
// rate meets. A zero or negative rate carries no information and returns
// ok=false — the caller must treat it as "no update", never as "zone zero".
func ClassifyRate(defs []Definition, rate int) (string, bool) {
	if rate <= 0 || len(defs) == 0 {
		return "", false
	}
	sorted := SortByThreshold(defs)
	id := ""
	found := false
	for _, d := range sorted {
		if rate >= d.MinThreshold {
			id = d.ID
			found = true
		}
	}
	return id, found
}

// #endregion classify

// #region at-least
// AtLeast reports whether zone got meets or exceeds the rank of zone want.
// Unknown zones on either side report false.
func AtLeast(ranks RankMap, got, want string) bool {
	if len(ranks) == 0 {
		return false
	}
	gr, ok := ranks[got]
	if !ok {
		return false
	}
	wr, ok := ranks[want]
	if !ok {
		return false
	}
	return gr >= wr
}

// #endregion at-least
