package appointments

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/clinicops/appointment-api/internal/identity"
)

// PgxPool is the subset of pgxpool.Pool the ledger needs; pgxmock
// satisfies it in tests.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresLedger stores bookings in the relational database. The
// duplicate-slot scan becomes an EXISTS query over the normalized identity
// key; a unique index on the same expression backs it up against
// concurrent writers.
type PostgresLedger struct {
	pool PgxPool
	ids  *IDGenerator
}

// NewPostgresLedger initializes a ledger backed by a pgx pool.
func NewPostgresLedger(pool PgxPool) *PostgresLedger {
	if pool == nil {
		panic("appointments: pgx pool required")
	}
	return &PostgresLedger{pool: pool, ids: NewIDGenerator()}
}

// Confirm runs the fields, duplicate and amount checks and inserts the
// booking row.
func (l *PostgresLedger) Confirm(ctx context.Context, req *ConfirmRequest) (*Booking, error) {
	if err := req.checkFields(); err != nil {
		return nil, err
	}

	var exists bool
	if err := l.pool.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM appointments
			WHERE lower(btrim(patient_name)) = $1
			  AND lower(btrim(doctor)) = $2
			  AND slot_date = $3
			  AND slot_time = $4
		)`,
		identity.Normalize(req.Name), identity.Normalize(req.Doctor), req.Date, req.Time,
	).Scan(&exists); err != nil {
		return nil, fmt.Errorf("appointments: duplicate scan failed: %w", err)
	}
	if exists {
		return nil, ErrDuplicateSlot
	}

	if req.Amount < 0 {
		return nil, ErrInvalidAmount
	}

	booking := Booking{
		AppointmentID: l.ids.AppointmentID(),
		Name:          req.Name,
		Doctor:        req.Doctor,
		Date:          req.Date,
		Time:          req.Time,
		Amount:        req.Amount,
		PaymentID:     l.ids.PaymentID(),
		Status:        StatusConfirmed,
	}

	if _, err := l.pool.Exec(ctx,
		`INSERT INTO appointments
			(id, appointment_id, patient_name, doctor, slot_date, slot_time, amount, payment_id, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		uuid.New(), booking.AppointmentID, booking.Name, booking.Doctor,
		booking.Date, booking.Time, booking.Amount, booking.PaymentID, booking.Status,
	); err != nil {
		return nil, fmt.Errorf("appointments: insert failed: %w", err)
	}

	return &booking, nil
}

// GetByID fetches a booking by its appointment reference.
func (l *PostgresLedger) GetByID(ctx context.Context, appointmentID string) (*Booking, error) {
	row := l.pool.QueryRow(ctx,
		`SELECT appointment_id, patient_name, doctor, slot_date, slot_time, amount, payment_id, status
		 FROM appointments WHERE appointment_id = $1`,
		appointmentID,
	)

	var b Booking
	if err := row.Scan(&b.AppointmentID, &b.Name, &b.Doctor, &b.Date, &b.Time, &b.Amount, &b.PaymentID, &b.Status); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("appointments: select failed: %w", err)
	}
	return &b, nil
}

// List returns all confirmed bookings.
func (l *PostgresLedger) List(ctx context.Context) ([]Booking, error) {
	rows, err := l.pool.Query(ctx,
		`SELECT appointment_id, patient_name, doctor, slot_date, slot_time, amount, payment_id, status
		 FROM appointments ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("appointments: list failed: %w", err)
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.AppointmentID, &b.Name, &b.Doctor, &b.Date, &b.Time, &b.Amount, &b.PaymentID, &b.Status); err != nil {
			return nil, fmt.Errorf("appointments: scan failed: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
