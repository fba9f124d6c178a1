package domain

import (
	"sort"
	"time"
)

// Interval is a half-open time window [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// Valid reports whether Start is strictly before End.
func (i Interval) Valid() bool {
	return i.Start.Before(i.End)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps reports whether both windows share at least one instant.
// A window ending exactly when the other starts does not overlap it.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

// FirstConflict returns the earliest-starting event whose window overlaps
// candidate, or nil. Ties on start are broken by id so the result is stable.
func FirstConflict(events []*Event, candidate Interval) *Event {
	sorted := make([]*Event, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(a, b int) bool {
		if !sorted[a].StartAt.Equal(sorted[b].StartAt) {
			return sorted[a].StartAt.Before(sorted[b].StartAt)
		}
		return sorted[a].ID < sorted[b].ID
	})

	for _, e := range sorted {
		if e.Window().Overlaps(candidate) {
			return e
		}
	}
	return nil
}
