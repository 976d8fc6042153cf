package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotbook/config"
	"slotbook/models"
	"slotbook/services/notification"
)

type fakeCalendar struct {
	created   *models.CreatedEvent
	err       error
	calls     int
	lastEvent models.CalendarEvent
}

func (f *fakeCalendar) QueryBusy(ctx context.Context, timeMin, timeMax time.Time, timeZone string) (models.BusySet, error) {
	return nil, nil
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, event models.CalendarEvent) (*models.CreatedEvent, error) {
	f.calls++
	f.lastEvent = event
	if f.err != nil {
		return nil, f.err
	}
	return f.created, nil
}

type fakeSender struct {
	mu   sync.Mutex
	err  error
	sent []notification.Message
}

func (f *fakeSender) Send(ctx context.Context, msg notification.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return f.err
}

func (f *fakeSender) messages() []notification.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]notification.Message(nil), f.sent...)
}

type fakeCRM struct {
	mu        sync.Mutex
	err       error
	submitted []map[int]string
}

func (f *fakeCRM) Submit(ctx context.Context, fields map[int]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = append(f.submitted, fields)
	return f.err
}

type fakeScheduler struct {
	mu       sync.Mutex
	err      error
	payloads []models.ReminderPayload
	fireAts  []time.Time
}

func (f *fakeScheduler) Schedule(payload models.ReminderPayload, fireAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payloads = append(f.payloads, payload)
	f.fireAts = append(f.fireAts, fireAt)
	return f.err
}

type fixture struct {
	calendar  *fakeCalendar
	sender    *fakeSender
	crm       *fakeCRM
	scheduler *fakeScheduler
	service   *DefaultBookingService
}

func newFixture() *fixture {
	f := &fixture{
		calendar: &fakeCalendar{created: &models.CreatedEvent{
			EventURL:    "https://calendar.google.com/event/abc",
			MeetingLink: "https://meet.google.com/abc-defg-hij",
		}},
		sender:    &fakeSender{},
		crm:       &fakeCRM{},
		scheduler: &fakeScheduler{},
	}
	f.service = &DefaultBookingService{
		Calendar:  f.calendar,
		Notifier:  f.sender,
		CRM:       f.crm,
		Reminders: f.scheduler,
	}
	return f
}

func validRequest() models.BookingRequest {
	start := time.Now().Add(48 * time.Hour).Truncate(time.Minute)
	return models.BookingRequest{
		Name:             "Ada Lovelace",
		Email:            "ada@example.com",
		Company:          "Analytical Engines Ltd",
		Website:          "https://engines.example.com",
		Timezone:         "Europe/London",
		FocusAreas:       []string{"Market entry", "Compliance"},
		TargetCountries:  []string{"Germany", "France"},
		Timeline:         "Q1 2027",
		PrimaryChallenge: "Regulatory complexity",
		StartISO:         start.Format(time.RFC3339),
		EndISO:           start.Add(20 * time.Minute).Format(time.RFC3339),
	}
}

func TestBookRejectsMissingRequiredFields(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Email = ""
	result, err := f.service.Book(context.Background(), req)

	assert.False(t, result.Ok)
	assert.NotEmpty(t, result.Error)
	var clientErr *ClientInputError
	require.ErrorAs(t, err, &clientErr)

	assert.Zero(t, f.calendar.calls, "no collaborator may be invoked on invalid input")
	assert.Empty(t, f.sender.messages())
	assert.Empty(t, f.crm.submitted)
	assert.Empty(t, f.scheduler.payloads)
}

func TestBookRejectsStartNotBeforeEnd(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.EndISO = req.StartISO
	result, err := f.service.Book(context.Background(), req)

	assert.False(t, result.Ok)
	var clientErr *ClientInputError
	require.ErrorAs(t, err, &clientErr)
	assert.Zero(t, f.calendar.calls)
}

func TestBookRejectsUnparseableTimestamps(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.StartISO = "tomorrow at noon"
	result, err := f.service.Book(context.Background(), req)

	assert.False(t, result.Ok)
	var clientErr *ClientInputError
	require.ErrorAs(t, err, &clientErr)
	assert.Zero(t, f.calendar.calls)
}

func TestBookCalendarFailureIsFatal(t *testing.T) {
	f := newFixture()
	f.calendar.err = errors.New("calendar: quota exceeded")

	result, err := f.service.Book(context.Background(), validRequest())

	assert.False(t, result.Ok)
	assert.Contains(t, result.Error, "failed to create calendar event")
	var fatal *BookingFatalError
	require.ErrorAs(t, err, &fatal)

	assert.Equal(t, 1, f.calendar.calls)
	assert.Empty(t, f.sender.messages(), "no notification after a fatal calendar failure")
	assert.Empty(t, f.crm.submitted, "no CRM submission after a fatal calendar failure")
	assert.Empty(t, f.scheduler.payloads)
}

func TestBookSuccessReturnsMeetingLink(t *testing.T) {
	f := newFixture()
	config.AppConfig.OperatorEmail = "ops@slotbook.app"
	config.AppConfig.ReminderLeadMin = 60

	req := validRequest()
	result, err := f.service.Book(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, result.Ok)
	assert.Equal(t, "https://meet.google.com/abc-defg-hij", result.MeetingLink)
	assert.Empty(t, result.Error)

	// Calendar event carries the request data and asks for a Meet link.
	assert.True(t, f.calendar.lastEvent.WantMeetLink)
	assert.Contains(t, f.calendar.lastEvent.AttendeeEmails, req.Email)
	assert.Contains(t, f.calendar.lastEvent.Description, req.PrimaryChallenge)

	// Both notifications went out.
	msgs := f.sender.messages()
	require.Len(t, msgs, 2)
	recipients := []string{msgs[0].To, msgs[1].To}
	assert.Contains(t, recipients, "ada@example.com")
	assert.Contains(t, recipients, "ops@slotbook.app")

	// CRM received exactly one lead.
	require.Len(t, f.crm.submitted, 1)
	assert.Equal(t, "Ada Lovelace", f.crm.submitted[0][6])
	assert.Equal(t, "ada@example.com", f.crm.submitted[0][7])
	assert.Equal(t, "Market entry\nCompliance", f.crm.submitted[0][11])
	assert.Equal(t, "Germany, France", f.crm.submitted[0][12])

	// Reminder scheduled one lead interval before the meeting.
	require.Len(t, f.scheduler.payloads, 1)
	start, _ := time.Parse(time.RFC3339, req.StartISO)
	assert.True(t, f.scheduler.fireAts[0].Equal(start.Add(-60*time.Minute)))
	assert.Equal(t, result.MeetingLink, f.scheduler.payloads[0].MeetingLink)
}

func TestBookNotificationFailureDoesNotChangeResult(t *testing.T) {
	f := newFixture()
	f.sender.err = errors.New("smtp: connection refused")

	result, err := f.service.Book(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, result.Ok)
	assert.Equal(t, "https://meet.google.com/abc-defg-hij", result.MeetingLink)

	// The other best-effort stages still ran.
	assert.Len(t, f.crm.submitted, 1)
}

func TestBookCRMFailureDoesNotChangeResult(t *testing.T) {
	f := newFixture()
	f.crm.err = errors.New("crm: 500")
	f.scheduler.err = errors.New("queue down")

	result, err := f.service.Book(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, result.Ok)
	assert.Empty(t, result.Error)
}

func TestBookSkipsReminderInsideLeadWindow(t *testing.T) {
	f := newFixture()
	config.AppConfig.ReminderLeadMin = 60

	req := validRequest()
	start := time.Now().Add(30 * time.Minute).Truncate(time.Minute)
	req.StartISO = start.Format(time.RFC3339)
	req.EndISO = start.Add(20 * time.Minute).Format(time.RFC3339)

	result, err := f.service.Book(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, result.Ok)
	assert.Empty(t, f.scheduler.payloads, "reminder inside the lead window is skipped")
}

func TestBookDoesNotDeduplicate(t *testing.T) {
	f := newFixture()

	req := validRequest()
	_, err := f.service.Book(context.Background(), req)
	require.NoError(t, err)
	_, err = f.service.Book(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 2, f.calendar.calls, "identical requests create two events")
}
