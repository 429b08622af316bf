package appointments

import "errors"

var (
	// ErrMissingFields is returned when a confirm request omits a field
	ErrMissingFields = errors.New("appointments: missing field")

	// ErrDuplicateSlot is returned when the (patient, doctor, date, time) slot is already booked
	ErrDuplicateSlot = errors.New("appointments: slot already booked")

	// ErrInvalidAmount is returned when the payment amount is not strictly positive
	ErrInvalidAmount = errors.New("appointments: invalid payment amount")

	// ErrBookingNotFound is returned when no booking matches an appointment id
	ErrBookingNotFound = errors.New("appointments: booking not found")
)
