package availability

import (
	"context"
	"time"

	"slotbook/models"
	"slotbook/services/calendar"
)

// AvailabilityService computes bookable slots for a date range.
type AvailabilityService interface {
	GetAvailability(ctx context.Context, startDate time.Time, days int, displayZone string) (*models.AvailabilityResponse, error)
}

// DefaultAvailabilityService is the production implementation. The calendar
// collaborator is injected so the service is testable without network access.
type DefaultAvailabilityService struct {
	Calendar calendar.Service
}
