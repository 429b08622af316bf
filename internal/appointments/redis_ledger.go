package appointments

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/clinicops/appointment-api/internal/identity"
)

// RedisLedger stores one JSON value per booking identity key. SETNX makes
// the duplicate-slot check and the claim a single atomic step. A second
// key per appointment reference serves lookups.
type RedisLedger struct {
	redis  *redis.Client
	tracer trace.Tracer
	ids    *IDGenerator
}

// NewRedisLedger creates a ledger backed by Redis.
func NewRedisLedger(client *redis.Client, tracer trace.Tracer) *RedisLedger {
	if client == nil {
		panic("appointments: redis client cannot be nil")
	}
	if tracer == nil {
		tracer = otel.Tracer("clinic.internal.appointments")
	}
	return &RedisLedger{redis: client, tracer: tracer, ids: NewIDGenerator()}
}

// Confirm runs the fields, duplicate and amount checks, claims the slot
// key and stores the booking.
func (l *RedisLedger) Confirm(ctx context.Context, req *ConfirmRequest) (*Booking, error) {
	if err := req.checkFields(); err != nil {
		return nil, err
	}

	ctx, span := l.tracer.Start(ctx, "appointments.confirm")
	defer span.End()

	slotTaken, err := l.redis.Exists(ctx, slotKey(req)).Result()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("appointments: duplicate scan: %w", err)
	}
	if slotTaken > 0 {
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
	data, err := json.Marshal(booking)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("appointments: encode booking: %w", err)
	}

	// SETNX closes the race between the check above and the claim: a
	// concurrent confirm for the same slot loses here.
	ok, err := l.redis.SetNX(ctx, slotKey(req), data, 0).Result()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("appointments: claim slot: %w", err)
	}
	if !ok {
		return nil, ErrDuplicateSlot
	}

	if err := l.redis.Set(ctx, bookingKey(booking.AppointmentID), data, 0).Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("appointments: persist booking: %w", err)
	}
	if err := l.redis.SAdd(ctx, bookingIndexKey, bookingKey(booking.AppointmentID)).Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("appointments: index booking: %w", err)
	}

	return &booking, nil
}

// GetByID loads a booking by its appointment reference.
func (l *RedisLedger) GetByID(ctx context.Context, appointmentID string) (*Booking, error) {
	ctx, span := l.tracer.Start(ctx, "appointments.get")
	defer span.End()

	data, err := l.redis.Get(ctx, bookingKey(appointmentID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrBookingNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("appointments: load booking: %w", err)
	}

	var b Booking
	if err := json.Unmarshal(data, &b); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("appointments: decode booking: %w", err)
	}
	return &b, nil
}

// List loads every indexed booking.
func (l *RedisLedger) List(ctx context.Context) ([]Booking, error) {
	ctx, span := l.tracer.Start(ctx, "appointments.list")
	defer span.End()

	keys, err := l.redis.SMembers(ctx, bookingIndexKey).Result()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("appointments: list keys: %w", err)
	}

	out := make([]Booking, 0, len(keys))
	for _, key := range keys {
		data, err := l.redis.Get(ctx, key).Bytes()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			span.RecordError(err)
			return nil, fmt.Errorf("appointments: load booking: %w", err)
		}
		var b Booking
		if err := json.Unmarshal(data, &b); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("appointments: decode booking: %w", err)
		}
		out = append(out, b)
	}
	return out, nil
}

const bookingIndexKey = "bookings:index"

// slotKey builds the booking identity key. Name and doctor normalize;
// date and time stay verbatim because they compare exactly.
func slotKey(req *ConfirmRequest) string {
	return fmt.Sprintf("booking:slot:%s|%s|%s", identity.Key(req.Name, req.Doctor), req.Date, req.Time)
}

func bookingKey(appointmentID string) string {
	return fmt.Sprintf("booking:id:%s", appointmentID)
}
