package models

// ReminderPayload is the task payload for a scheduled consultation reminder.
type ReminderPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	MeetingLink string `json:"meetingLink,omitempty"`
	StartISO    string `json:"startISO"`
	Timezone    string `json:"timezone,omitempty"`
}
