package models

import "time"

// TimeInterval is a half-open time range [Start, End). Invariant: Start < End.
// Used both for busy intervals reported by the calendar and for candidate slots.
type TimeInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether two half-open intervals share any time.
// Touching endpoints (one ends exactly where the other starts) do not overlap.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// BusySet is the unordered collection of busy intervals reported by the
// calendar for one resource over a queried window. Entries may overlap or
// touch; no normalized form is assumed anywhere.
type BusySet []TimeInterval
