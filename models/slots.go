package models

// SlotCandidate is a generated, fixed-duration candidate meeting slot.
// Available is derived once at generation time and never mutated.
type SlotCandidate struct {
	TimeInterval
	Available bool `json:"available"`
}

// DaySlots groups the ordered candidate slots generated for one calendar day.
type DaySlots struct {
	Date  string          `json:"date"` // "2006-01-02" in the business zone
	Slots []SlotCandidate `json:"slots"`
}

// AvailabilityResponse is returned by the availability endpoint. Slot times
// are RFC3339 in the business zone; DisplayZone echoes the caller's requested
// zone so clients can convert for display.
type AvailabilityResponse struct {
	Days        []DaySlots `json:"days"`
	DisplayZone string     `json:"displayZone,omitempty"`
}
