package availability

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"slotbook/config"
	"slotbook/models"
	"slotbook/utils"
)

// GetAvailability fetches busy intervals for the whole requested range,
// then generates per-day candidate slots in the business zone. A failed
// busy-query surfaces as an error with no partial results.
func (s *DefaultAvailabilityService) GetAvailability(ctx context.Context, startDate time.Time, days int, displayZone string) (*models.AvailabilityResponse, error) {
	logger := utils.GetLogger()
	loc := config.BusinessLocation()

	workdayStart := time.Duration(config.AppConfig.WorkdayStartMin) * time.Minute
	workdayEnd := time.Duration(config.AppConfig.WorkdayEndMin) * time.Minute
	slotDuration := time.Duration(config.AppConfig.SlotDurationMin) * time.Minute
	step := time.Duration(config.AppConfig.SlotStepMin) * time.Minute

	firstDay := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, loc)
	rangeMin := firstDay.Add(workdayStart)
	rangeMax := firstDay.AddDate(0, 0, days-1).Add(workdayEnd).Add(slotDuration)

	busy, err := s.Calendar.QueryBusy(ctx, rangeMin, rangeMax, config.AppConfig.BusinessTimezone)
	if err != nil {
		logger.Error("GetAvailability: busy-query failed",
			zap.Time("rangeMin", rangeMin), zap.Time("rangeMax", rangeMax), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch busy intervals: %w", err)
	}

	resp := &models.AvailabilityResponse{DisplayZone: displayZone}
	for i := 0; i < days; i++ {
		dayStart := firstDay.AddDate(0, 0, i)
		slots := GenerateSlots(dayStart, workdayStart, workdayEnd, slotDuration, step, busy)
		resp.Days = append(resp.Days, models.DaySlots{
			Date:  dayStart.Format("2006-01-02"),
			Slots: slots,
		})
	}

	return resp, nil
}
