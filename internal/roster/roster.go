package roster

import "sort"

// #region view
// View is a read-only per-cycle snapshot of which participant identities are
// currently part of the session. It is independent of zone data and is the
// sole source of session membership — no other component re-derives activity
// from raw telemetry.
type View struct {
	ids   map[string]struct{}
	order []string
}

// NewView builds a snapshot from the roster collaborator's participant IDs.
// Duplicates and empty IDs are dropped; the stored order is stable (sorted).
func NewView(participantIDs []string) *View {
	ids := make(map[string]struct{}, len(participantIDs))
	for _, id := range participantIDs {
		if id == "" {
			continue
		}
		ids[id] = struct{}{}
	}
	order := make([]string, 0, len(ids))
	for id := range ids {
		order = append(order, id)
	}
	sort.Strings(order)
	return &View{ids: ids, order: order}
}

// #endregion view

// #region accessors
// Contains reports whether the participant is part of this cycle's roster.
func (v *View) Contains(participantID string) bool {
	if v == nil {
		return false
	}
	_, ok := v.ids[participantID]
	return ok
}

// IDs returns the participant IDs in stable order. The returned slice is a
// copy; callers may not mutate the view through it.
func (v *View) IDs() []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v.order))
	copy(out, v.order)
	return out
}

// Len returns the number of participants in the snapshot.
func (v *View) Len() int {
	if v == nil {
		return 0
	}
	return len(v.order)
}

// Empty reports whether the snapshot has no participants.
func (v *View) Empty() bool {
	return v.Len() == 0
}

// #endregion accessors
