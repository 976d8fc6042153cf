package models

// BookingRequest is the caller-supplied consultation request. All fields are
// untrusted input; the booking service enforces the required fields and the
// startISO < endISO invariant before any side effect runs.
type BookingRequest struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Company          string   `json:"company"`
	Website          string   `json:"website"`
	Timezone         string   `json:"timezone"`
	FocusAreas       []string `json:"focusAreas"`
	TargetCountries  []string `json:"targetCountries"`
	Timeline         string   `json:"timeline"`
	PrimaryChallenge string   `json:"primaryChallenge"`
	StartISO         string   `json:"startISO"`
	EndISO           string   `json:"endISO"`
}

// BookingResult is the definitive outcome returned to the caller. It is
// created once per request and never persisted.
type BookingResult struct {
	Ok          bool   `json:"ok"`
	MeetingLink string `json:"meetingLink,omitempty"`
	Error       string `json:"error,omitempty"`
}

// CalendarEvent is the payload handed to the calendar collaborator when a
// booking is confirmed.
type CalendarEvent struct {
	Title          string
	Description    string
	StartISO       string
	EndISO         string
	Timezone       string
	AttendeeEmails []string
	WantMeetLink   bool
}

// CreatedEvent is what the calendar collaborator returns on a successful insert.
type CreatedEvent struct {
	EventURL    string
	MeetingLink string
}
