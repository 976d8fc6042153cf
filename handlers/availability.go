package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotbook/services/availability"
	"slotbook/utils"
)

const maxAvailabilityDays = 30

// AvailabilityHandler serves the availability endpoint.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
	Logger  *zap.Logger
}

func NewAvailabilityHandler(svc availability.AvailabilityService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Logger: logger}
}

// GetAvailability handles GET /api/availability?start=2006-01-02&days=N&timezone=Zone.
// Slot times come back in the business zone; timezone only tags the response
// for client-side display conversion.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	startStr := c.Query("start")
	if startStr == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "start date is required (format 2006-01-02)")
		return
	}
	startDate, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "start must be formatted as 2006-01-02")
		return
	}

	days := 5
	if daysStr := c.Query("days"); daysStr != "" {
		days, err = strconv.Atoi(daysStr)
		if err != nil || days < 1 || days > maxAvailabilityDays {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "days must be between 1 and 30")
			return
		}
	}

	displayZone := c.Query("timezone")
	if displayZone != "" {
		if _, err := time.LoadLocation(displayZone); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "unknown timezone")
			return
		}
	}

	resp, err := h.Service.GetAvailability(c.Request.Context(), startDate, days, displayZone)
	if err != nil {
		h.Logger.Error("GetAvailability failed", zap.String("start", startStr), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "availability unavailable", "could not fetch calendar availability")
		return
	}

	c.JSON(http.StatusOK, resp)
}
