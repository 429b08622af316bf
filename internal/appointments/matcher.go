package appointments

import "github.com/clinicops/appointment-api/internal/identity"

// MatchesSlot reports whether an existing booking collides with a
// candidate on the booking identity key (name, doctor, date, time). Name
// and doctor compare case-insensitively after trimming; date and time
// compare as exact strings with no normalization.
func MatchesSlot(existing Booking, req *ConfirmRequest) bool {
	return identity.Equal(existing.Name, req.Name) &&
		identity.Equal(existing.Doctor, req.Doctor) &&
		existing.Date == req.Date &&
		existing.Time == req.Time
}

// findBySlot scans bookings until the first slot collision. The ledger
// invariant guarantees at most one can exist.
func findBySlot(bookings []Booking, req *ConfirmRequest) (Booking, bool) {
	for _, b := range bookings {
		if MatchesSlot(b, req) {
			return b, true
		}
	}
	return Booking{}, false
}

func hasAppointmentID(bookings []Booking, id string) bool {
	for _, b := range bookings {
		if b.AppointmentID == id {
			return true
		}
	}
	return false
}
