package patients

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/clinicops/appointment-api/internal/identity"
)

// RedisDirectory stores one JSON value per identity key. SETNX gives the
// check-then-act duplicate suppression a single atomic step, so no client
// side lock is needed.
type RedisDirectory struct {
	redis  *redis.Client
	tracer trace.Tracer
}

// NewRedisDirectory creates a directory backed by Redis.
func NewRedisDirectory(client *redis.Client, tracer trace.Tracer) *RedisDirectory {
	if client == nil {
		panic("patients: redis client cannot be nil")
	}
	if tracer == nil {
		tracer = otel.Tracer("clinic.internal.patients")
	}
	return &RedisDirectory{redis: client, tracer: tracer}
}

// Register claims the identity key with SETNX and stores the record.
func (d *RedisDirectory) Register(ctx context.Context, req *RegisterRequest) (*Patient, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, span := d.tracer.Start(ctx, "patients.register")
	defer span.End()

	record := Patient{
		Name:         req.Name,
		Age:          req.Age,
		Email:        req.Email,
		IsRegistered: true,
	}
	data, err := json.Marshal(record)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("patients: encode record: %w", err)
	}

	ok, err := d.redis.SetNX(ctx, patientKey(req.Name, req.Email), data, 0).Result()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("patients: persist record: %w", err)
	}
	if !ok {
		return nil, ErrAlreadyRegistered
	}

	if err := d.redis.SAdd(ctx, patientIndexKey, patientKey(req.Name, req.Email)).Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("patients: index record: %w", err)
	}
	return &record, nil
}

// Validate loads the record at the identity key and checks the age.
func (d *RedisDirectory) Validate(ctx context.Context, req *ValidateRequest) (*Patient, error) {
	if !req.wellFormed() {
		return nil, ErrPatientNotFound
	}

	ctx, span := d.tracer.Start(ctx, "patients.validate")
	defer span.End()

	data, err := d.redis.Get(ctx, patientKey(req.Name, req.Email)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPatientNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("patients: load record: %w", err)
	}

	var p Patient
	if err := json.Unmarshal(data, &p); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("patients: decode record: %w", err)
	}
	if p.Age != req.Age {
		return nil, ErrPatientNotFound
	}
	return &p, nil
}

// List loads every indexed record.
func (d *RedisDirectory) List(ctx context.Context) ([]Patient, error) {
	ctx, span := d.tracer.Start(ctx, "patients.list")
	defer span.End()

	keys, err := d.redis.SMembers(ctx, patientIndexKey).Result()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("patients: list keys: %w", err)
	}

	out := make([]Patient, 0, len(keys))
	for _, key := range keys {
		data, err := d.redis.Get(ctx, key).Bytes()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			span.RecordError(err)
			return nil, fmt.Errorf("patients: load record: %w", err)
		}
		var p Patient
		if err := json.Unmarshal(data, &p); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("patients: decode record: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

const patientIndexKey = "patients:index"

func patientKey(name, email string) string {
	return fmt.Sprintf("patient:%s", identity.Key(name, email))
}
