package booking

import (
	"context"

	"slotbook/models"
	"slotbook/services/calendar"
	"slotbook/services/crm"
	"slotbook/services/notification"
	"slotbook/services/tasks"
)

// BookingService drives a consultation booking end to end. The returned
// result is always definitive: Ok is true iff the calendar event was created.
// The error, when non-nil, is a *ClientInputError or *BookingFatalError
// carrying the same reason as the result.
type BookingService interface {
	Book(ctx context.Context, req models.BookingRequest) (models.BookingResult, error)
}

// DefaultBookingService implements BookingService. All collaborators are
// constructor-injected so the orchestration is testable without live
// network access.
type DefaultBookingService struct {
	Calendar  calendar.Service
	Notifier  notification.Sender
	CRM       crm.SubmissionService
	Reminders tasks.ReminderScheduler
}
