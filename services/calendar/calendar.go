package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"slotbook/config"
	"slotbook/models"
)

// Service defines the calendar operations the availability and booking
// services depend on. Implementations talk to one calendar resource.
type Service interface {
	QueryBusy(ctx context.Context, timeMin, timeMax time.Time, timeZone string) (models.BusySet, error)
	CreateEvent(ctx context.Context, event models.CalendarEvent) (*models.CreatedEvent, error)
}

// GoogleCalendarService is the production implementation backed by the
// Google Calendar API.
type GoogleCalendarService struct {
	svc        *calendar.Service
	calendarID string
}

// NewGoogleCalendarService creates a calendar client authenticated with the
// configured service-account credentials file.
func NewGoogleCalendarService(ctx context.Context) (*GoogleCalendarService, error) {
	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(config.AppConfig.GoogleCredentialsFile),
		option.WithScopes(calendar.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}
	return &GoogleCalendarService{
		svc:        svc,
		calendarID: config.AppConfig.CalendarID,
	}, nil
}

// QueryBusy returns the busy intervals for the calendar resource in the
// given half-open window. The result is unordered and may contain
// overlapping entries; callers must not assume a merged form.
func (s *GoogleCalendarService) QueryBusy(ctx context.Context, timeMin, timeMax time.Time, timeZone string) (models.BusySet, error) {
	query := &calendar.FreeBusyRequest{
		TimeMin:  timeMin.Format(time.RFC3339),
		TimeMax:  timeMax.Format(time.RFC3339),
		TimeZone: timeZone,
		Items:    []*calendar.FreeBusyRequestItem{{Id: s.calendarID}},
	}

	result, err := s.svc.Freebusy.Query(query).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to query freebusy: %w", err)
	}

	return busySetFromResponse(result, s.calendarID)
}

// busySetFromResponse flattens the freebusy response for one calendar into a BusySet.
func busySetFromResponse(resp *calendar.FreeBusyResponse, calendarID string) (models.BusySet, error) {
	cal, ok := resp.Calendars[calendarID]
	if !ok {
		return nil, fmt.Errorf("freebusy response missing calendar %q", calendarID)
	}
	for _, calErr := range cal.Errors {
		return nil, fmt.Errorf("freebusy error for calendar %q: %s", calendarID, calErr.Reason)
	}

	var busy models.BusySet
	for _, period := range cal.Busy {
		start, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			return nil, fmt.Errorf("invalid busy start %q: %w", period.Start, err)
		}
		end, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			return nil, fmt.Errorf("invalid busy end %q: %w", period.End, err)
		}
		busy = append(busy, models.TimeInterval{Start: start, End: end})
	}
	return busy, nil
}

// CreateEvent inserts the event and, when requested, asks Google to attach a
// Meet conference. Returns the event URL and the generated meeting link.
func (s *GoogleCalendarService) CreateEvent(ctx context.Context, input models.CalendarEvent) (*models.CreatedEvent, error) {
	event := buildEvent(input)

	call := s.svc.Events.Insert(s.calendarID, event).Context(ctx)
	if input.WantMeetLink {
		call = call.ConferenceDataVersion(1)
	}

	created, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return &models.CreatedEvent{
		EventURL:    created.HtmlLink,
		MeetingLink: meetingLink(created),
	}, nil
}

// buildEvent maps our event payload onto the Calendar API shape.
func buildEvent(input models.CalendarEvent) *calendar.Event {
	event := &calendar.Event{
		Summary:     input.Title,
		Description: input.Description,
		Start: &calendar.EventDateTime{
			DateTime: input.StartISO,
			TimeZone: input.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: input.EndISO,
			TimeZone: input.Timezone,
		},
	}

	for _, email := range input.AttendeeEmails {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
	}

	if input.WantMeetLink {
		event.ConferenceData = &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: fmt.Sprintf("meet-%s", uuid.New().String()),
			},
		}
	}

	return event
}

// meetingLink extracts the video entry point from a created event, falling
// back to the legacy hangout link when conference data is absent.
func meetingLink(event *calendar.Event) string {
	if event.ConferenceData != nil {
		for _, ep := range event.ConferenceData.EntryPoints {
			if ep.EntryPointType == "video" {
				return ep.Uri
			}
		}
	}
	return event.HangoutLink
}
