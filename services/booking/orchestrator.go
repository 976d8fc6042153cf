package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"slotbook/config"
	"slotbook/models"
	"slotbook/services/crm"
	"slotbook/utils"
)

const (
	calendarInsertTimeout = 30 * time.Second
	sideEffectTimeout     = 10 * time.Second
)

// Book runs the two-phase booking pipeline.
//
// Critical phase: validate the request, then create the calendar event with
// a generated meeting link. Either failure aborts the booking and is
// reported to the caller.
//
// Best-effort phase: confirmation email, operator email, CRM submission and
// reminder scheduling fan out concurrently. Each task is isolated; failures
// are logged and never change the already-successful result. Two identical
// requests create two events; there is no dedup.
func (s *DefaultBookingService) Book(ctx context.Context, req models.BookingRequest) (models.BookingResult, error) {
	logger := utils.GetLogger()

	start, err := validateRequest(req)
	if err != nil {
		logger.Warn("Book: rejected invalid request", zap.String("email", req.Email), zap.Error(err))
		return models.BookingResult{Ok: false, Error: err.Error()}, err
	}

	insertCtx, cancel := context.WithTimeout(ctx, calendarInsertTimeout)
	defer cancel()

	created, err := s.Calendar.CreateEvent(insertCtx, models.CalendarEvent{
		Title:          eventTitle(req),
		Description:    eventDescription(req),
		StartISO:       req.StartISO,
		EndISO:         req.EndISO,
		Timezone:       config.AppConfig.BusinessTimezone,
		AttendeeEmails: attendees(req),
		WantMeetLink:   true,
	})
	if err != nil {
		logger.Error("Book: calendar insert failed", zap.String("email", req.Email), zap.Error(err))
		fatal := NewBookingFatalError(fmt.Sprintf("failed to create calendar event: %v", err))
		return models.BookingResult{Ok: false, Error: fatal.Error()}, fatal
	}
	logger.Info("Book: calendar event created",
		zap.String("email", req.Email), zap.String("eventURL", created.EventURL))

	s.runSideEffects(req, created, start)

	return models.BookingResult{Ok: true, MeetingLink: created.MeetingLink}, nil
}

// validateRequest enforces the required identity fields and the
// startISO < endISO invariant before any side effect is attempted.
// Returns the parsed start time for reminder scheduling.
func validateRequest(req models.BookingRequest) (time.Time, error) {
	if req.Name == "" || req.Email == "" || req.StartISO == "" || req.EndISO == "" {
		return time.Time{}, NewClientInputError("name, email, startISO and endISO are required")
	}
	start, err := time.Parse(time.RFC3339, req.StartISO)
	if err != nil {
		return time.Time{}, NewClientInputError(fmt.Sprintf("invalid startISO: %v", err))
	}
	end, err := time.Parse(time.RFC3339, req.EndISO)
	if err != nil {
		return time.Time{}, NewClientInputError(fmt.Sprintf("invalid endISO: %v", err))
	}
	if !start.Before(end) {
		return time.Time{}, NewClientInputError("startISO must be before endISO")
	}
	return start, nil
}

// runSideEffects fans out the best-effort stage and waits for it with
// bounded timeouts. Waiting keeps side-effect errors inside this request's
// logs without ever touching the response.
func (s *DefaultBookingService) runSideEffects(req models.BookingRequest, created *models.CreatedEvent, start time.Time) {
	logger := utils.GetLogger()

	effects := []struct {
		name string
		run  func(ctx context.Context) error
	}{
		{"confirmation-email", func(ctx context.Context) error {
			return s.Notifier.Send(ctx, confirmationMessage(req, created))
		}},
		{"operator-email", func(ctx context.Context) error {
			return s.Notifier.Send(ctx, operatorMessage(req, created))
		}},
		{"crm-submission", func(ctx context.Context) error {
			return s.CRM.Submit(ctx, crm.BuildLeadFields(req))
		}},
		{"reminder-schedule", func(ctx context.Context) error {
			return s.scheduleReminder(req, created, start)
		}},
	}

	var wg sync.WaitGroup
	for _, effect := range effects {
		wg.Add(1)
		go func(name string, run func(ctx context.Context) error) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Book: side effect panicked", zap.String("effect", name), zap.Any("recover", r))
				}
			}()

			ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
			defer cancel()

			if err := run(ctx); err != nil {
				logger.Warn("Book: best-effort side effect failed",
					zap.String("effect", name), zap.String("email", req.Email), zap.Error(err))
			}
		}(effect.name, effect.run)
	}
	wg.Wait()
}

func (s *DefaultBookingService) scheduleReminder(req models.BookingRequest, created *models.CreatedEvent, start time.Time) error {
	lead := time.Duration(config.AppConfig.ReminderLeadMin) * time.Minute
	fireAt := start.Add(-lead)
	if !fireAt.After(time.Now()) {
		// Meeting starts within the lead window; nothing to schedule.
		return nil
	}
	return s.Reminders.Schedule(models.ReminderPayload{
		Name:        req.Name,
		Email:       req.Email,
		MeetingLink: created.MeetingLink,
		StartISO:    req.StartISO,
		Timezone:    req.Timezone,
	}, fireAt)
}

func attendees(req models.BookingRequest) []string {
	list := []string{req.Email}
	if op := config.AppConfig.OperatorEmail; op != "" {
		list = append(list, op)
	}
	return list
}
