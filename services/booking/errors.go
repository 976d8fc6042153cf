package booking

import "fmt"

// ClientInputError signals malformed or missing booking fields. Surfaced to
// the caller; no side effects were attempted.
type ClientInputError struct {
	Message string
}

func (e *ClientInputError) Error() string {
	return fmt.Sprintf("clientInputError: %s", e.Message)
}

func NewClientInputError(msg string) error {
	return &ClientInputError{Message: msg}
}

// BookingFatalError signals that the calendar insert failed. The whole
// booking is aborted and no best-effort stage runs.
type BookingFatalError struct {
	Message string
}

func (e *BookingFatalError) Error() string {
	return fmt.Sprintf("bookingFatalError: %s", e.Message)
}

func NewBookingFatalError(msg string) error {
	return &BookingFatalError{Message: msg}
}
