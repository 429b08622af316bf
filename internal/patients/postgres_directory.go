package patients

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/clinicops/appointment-api/internal/identity"
)

// PgxPool is the subset of pgxpool.Pool the directory needs; pgxmock
// satisfies it in tests.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresDirectory stores patients in the relational database. The
// duplicate scan becomes an EXISTS query over the normalized identity key;
// a unique index on the same expression backs it up against concurrent
// writers.
type PostgresDirectory struct {
	pool PgxPool
}

// NewPostgresDirectory initializes a directory backed by a pgx pool.
func NewPostgresDirectory(pool PgxPool) *PostgresDirectory {
	if pool == nil {
		panic("patients: pgx pool required")
	}
	return &PostgresDirectory{pool: pool}
}

// Register inserts a new row unless the identity key is taken.
func (d *PostgresDirectory) Register(ctx context.Context, req *RegisterRequest) (*Patient, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var exists bool
	if err := d.pool.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM patients
			WHERE lower(btrim(name)) = $1 AND lower(btrim(email)) = $2
		)`,
		identity.Normalize(req.Name), identity.Normalize(req.Email),
	).Scan(&exists); err != nil {
		return nil, fmt.Errorf("patients: duplicate scan failed: %w", err)
	}
	if exists {
		return nil, ErrAlreadyRegistered
	}

	if _, err := d.pool.Exec(ctx,
		`INSERT INTO patients (id, name, age, email, is_registered)
		 VALUES ($1, $2, $3, $4, TRUE)`,
		uuid.New(), req.Name, req.Age, req.Email,
	); err != nil {
		return nil, fmt.Errorf("patients: insert failed: %w", err)
	}

	return &Patient{
		Name:         req.Name,
		Age:          req.Age,
		Email:        req.Email,
		IsRegistered: true,
	}, nil
}

// Validate fetches the record matching the full validate triple.
func (d *PostgresDirectory) Validate(ctx context.Context, req *ValidateRequest) (*Patient, error) {
	if !req.wellFormed() {
		return nil, ErrPatientNotFound
	}

	row := d.pool.QueryRow(ctx,
		`SELECT name, age, email, is_registered
		 FROM patients
		 WHERE lower(btrim(name)) = $1 AND lower(btrim(email)) = $2 AND age = $3`,
		identity.Normalize(req.Name), identity.Normalize(req.Email), req.Age,
	)

	var p Patient
	if err := row.Scan(&p.Name, &p.Age, &p.Email, &p.IsRegistered); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("patients: select failed: %w", err)
	}
	return &p, nil
}

// List returns all registered patients.
func (d *PostgresDirectory) List(ctx context.Context) ([]Patient, error) {
	rows, err := d.pool.Query(ctx,
		`SELECT name, age, email, is_registered FROM patients ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("patients: list failed: %w", err)
	}
	defer rows.Close()

	var out []Patient
	for rows.Next() {
		var p Patient
		if err := rows.Scan(&p.Name, &p.Age, &p.Email, &p.IsRegistered); err != nil {
			return nil, fmt.Errorf("patients: scan failed: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
