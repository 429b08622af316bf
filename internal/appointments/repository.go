package appointments

import (
	"context"
	"sync"
)

// maxIDAttempts bounds the uniqueness retry for appointment references.
// Collisions are theoretically possible in a 90000-value space; after the
// budget is spent the last candidate is used, matching the no-guarantee
// contract of the reference format.
const maxIDAttempts = 8

// Ledger defines the interface for booking storage
type Ledger interface {
	// Confirm books a slot. Checks run in a fixed order: missing fields,
	// then duplicate slot, then amount validity.
	Confirm(ctx context.Context, req *ConfirmRequest) (*Booking, error)

	// GetByID retrieves a booking by its appointment reference.
	GetByID(ctx context.Context, appointmentID string) (*Booking, error)

	// List returns a snapshot of all confirmed bookings.
	List(ctx context.Context) ([]Booking, error)
}

// InMemoryLedger stores bookings in process memory. Confirmation is a
// mutex-guarded check-then-append so two concurrent requests cannot both
// pass the duplicate-slot scan.
type InMemoryLedger struct {
	mu       sync.RWMutex
	bookings []Booking
	ids      *IDGenerator
}

// NewInMemoryLedger creates a new in-memory ledger
func NewInMemoryLedger() *InMemoryLedger {
	return &InMemoryLedger{ids: NewIDGenerator()}
}

// NewInMemoryLedgerWithIDs allows injecting a deterministic generator for
// tests.
func NewInMemoryLedgerWithIDs(ids *IDGenerator) *InMemoryLedger {
	return &InMemoryLedger{ids: ids}
}

// Confirm runs the fields, duplicate and amount checks and appends the
// booking with freshly generated references.
func (l *InMemoryLedger) Confirm(ctx context.Context, req *ConfirmRequest) (*Booking, error) {
	if err := req.checkFields(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, found := findBySlot(l.bookings, req); found {
		return nil, ErrDuplicateSlot
	}

	if req.Amount < 0 {
		return nil, ErrInvalidAmount
	}

	appointmentID := l.ids.AppointmentID()
	for attempt := 1; attempt < maxIDAttempts && hasAppointmentID(l.bookings, appointmentID); attempt++ {
		appointmentID = l.ids.AppointmentID()
	}

	booking := Booking{
		AppointmentID: appointmentID,
		Name:          req.Name,
		Doctor:        req.Doctor,
		Date:          req.Date,
		Time:          req.Time,
		Amount:        req.Amount,
		PaymentID:     l.ids.PaymentID(),
		Status:        StatusConfirmed,
	}
	l.bookings = append(l.bookings, booking)

	return &booking, nil
}

// GetByID scans for the appointment reference.
func (l *InMemoryLedger) GetByID(ctx context.Context, appointmentID string) (*Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, b := range l.bookings {
		if b.AppointmentID == appointmentID {
			booking := b
			return &booking, nil
		}
	}
	return nil, ErrBookingNotFound
}

// List returns a copy of the stored bookings.
func (l *InMemoryLedger) List(ctx context.Context) ([]Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Booking, len(l.bookings))
	copy(out, l.bookings)
	return out, nil
}
