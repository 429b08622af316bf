package appointments

import "strings"

// StatusConfirmed is the only status a booking can hold. Bookings are
// immutable once created; there is no cancellation path.
const StatusConfirmed = "confirmed"

// Booking represents a confirmed appointment with its payment reference.
type Booking struct {
	AppointmentID string  `json:"appointment_id"`
	Name          string  `json:"name"`
	Doctor        string  `json:"doctor"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Amount        float64 `json:"amount"`
	PaymentID     string  `json:"payment_id"`
	Status        string  `json:"status"`
}

// ConfirmRequest represents the request body for confirming an
// appointment. Date and time are opaque strings; they are never parsed,
// only compared.
type ConfirmRequest struct {
	Name   string  `json:"name"`
	Doctor string  `json:"doctor"`
	Date   string  `json:"date"`
	Time   string  `json:"time"`
	Amount float64 `json:"amount"`
}

// checkFields reports whether any of the five fields is empty or absent.
// A zero amount is indistinguishable from an absent one and counts as
// missing; a negative amount is present but invalid and is rejected later
// in the sequence.
func (r *ConfirmRequest) checkFields() error {
	if strings.TrimSpace(r.Name) == "" ||
		strings.TrimSpace(r.Doctor) == "" ||
		strings.TrimSpace(r.Date) == "" ||
		strings.TrimSpace(r.Time) == "" ||
		r.Amount == 0 {
		return ErrMissingFields
	}
	return nil
}
