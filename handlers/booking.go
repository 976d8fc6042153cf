package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotbook/models"
	"slotbook/services/booking"
)

// BookingHandler serves the booking endpoint.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking handles POST /api/bookings. The response body is always a
// BookingResult with a definitive ok flag; the status code distinguishes
// client input errors from upstream calendar failures.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.BookingResult{Ok: false, Error: "invalid request body: " + err.Error()})
		return
	}

	result, err := h.Service.Book(c.Request.Context(), req)
	if err != nil {
		var clientErr *booking.ClientInputError
		if errors.As(err, &clientErr) {
			c.JSON(http.StatusBadRequest, result)
			return
		}
		h.Logger.Error("CreateBooking failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusBadGateway, result)
		return
	}

	c.JSON(http.StatusOK, result)
}
