package booking

import (
	"fmt"
	"strings"
	"time"

	"slotbook/config"
	"slotbook/models"
	"slotbook/services/notification"
)

func eventTitle(req models.BookingRequest) string {
	if req.Company != "" {
		return fmt.Sprintf("Consultation: %s (%s)", req.Name, req.Company)
	}
	return fmt.Sprintf("Consultation: %s", req.Name)
}

func eventDescription(req models.BookingRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Consultation booked via slotbook.\n\n")
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\n", req.Name, req.Email)
	if req.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", req.Company)
	}
	if req.Website != "" {
		fmt.Fprintf(&b, "Website: %s\n", req.Website)
	}
	if req.Timezone != "" {
		fmt.Fprintf(&b, "Client timezone: %s\n", req.Timezone)
	}
	if len(req.FocusAreas) > 0 {
		fmt.Fprintf(&b, "Focus areas: %s\n", strings.Join(req.FocusAreas, ", "))
	}
	if len(req.TargetCountries) > 0 {
		fmt.Fprintf(&b, "Target countries: %s\n", strings.Join(req.TargetCountries, ", "))
	}
	if req.Timeline != "" {
		fmt.Fprintf(&b, "Timeline: %s\n", req.Timeline)
	}
	if req.PrimaryChallenge != "" {
		fmt.Fprintf(&b, "Primary challenge: %s\n", req.PrimaryChallenge)
	}
	return b.String()
}

// displayTime renders the meeting start in the requester's zone when it
// resolves, otherwise echoes the raw ISO timestamp.
func displayTime(startISO, tz string) string {
	start, err := time.Parse(time.RFC3339, startISO)
	if err != nil {
		return startISO
	}
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return start.In(loc).Format("Monday, 2 January 2006 at 15:04 (MST)")
		}
	}
	return start.Format("Monday, 2 January 2006 at 15:04 (MST)")
}

func confirmationMessage(req models.BookingRequest, created *models.CreatedEvent) notification.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Hi %s,</p>", req.Name)
	fmt.Fprintf(&b, "<p>Your consultation is confirmed for <strong>%s</strong>.</p>", displayTime(req.StartISO, req.Timezone))
	if created.MeetingLink != "" {
		fmt.Fprintf(&b, "<p>Join via Google Meet: <a href=\"%s\">%s</a></p>", created.MeetingLink, created.MeetingLink)
	}
	b.WriteString("<p>A calendar invitation is on its way to your inbox. See you there!</p>")

	return notification.Message{
		To:       req.Email,
		Subject:  "Your consultation is confirmed",
		HTMLBody: b.String(),
	}
}

func operatorMessage(req models.BookingRequest, created *models.CreatedEvent) notification.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>New consultation booked by <strong>%s</strong> (%s).</p>", req.Name, req.Email)
	fmt.Fprintf(&b, "<pre>%s</pre>", eventDescription(req))
	if created.EventURL != "" {
		fmt.Fprintf(&b, "<p>Event: <a href=\"%s\">%s</a></p>", created.EventURL, created.EventURL)
	}

	return notification.Message{
		To:       config.AppConfig.OperatorEmail,
		Subject:  fmt.Sprintf("New consultation: %s, %s", req.Name, displayTime(req.StartISO, "")),
		HTMLBody: b.String(),
	}
}
