package patients

import (
	"context"
	"sync"
)

// Directory defines the interface for patient storage
type Directory interface {
	// Register appends a new patient unless one with the same identity
	// key (name, email) already exists.
	Register(ctx context.Context, req *RegisterRequest) (*Patient, error)

	// Validate returns the record matching name, age and email. A
	// malformed request is reported the same way as a missing record.
	Validate(ctx context.Context, req *ValidateRequest) (*Patient, error)

	// List returns a snapshot of all registered patients.
	List(ctx context.Context) ([]Patient, error)
}

// InMemoryDirectory stores patients in process memory. Registration is a
// mutex-guarded check-then-append so two concurrent requests cannot both
// pass the duplicate scan.
type InMemoryDirectory struct {
	mu       sync.RWMutex
	patients []Patient
}

// NewInMemoryDirectory creates a new in-memory directory
func NewInMemoryDirectory() *InMemoryDirectory {
	return &InMemoryDirectory{}
}

// NewInMemoryDirectorySeeded creates a directory pre-populated with
// records, preserving the predefined-patient variant of the workflow.
func NewInMemoryDirectorySeeded(seed []Patient) *InMemoryDirectory {
	d := &InMemoryDirectory{}
	for _, p := range seed {
		if _, found := findByIdentity(d.patients, p.Name, p.Email); found {
			continue
		}
		p.IsRegistered = true
		d.patients = append(d.patients, p)
	}
	return d
}

// Register adds a new patient record after the duplicate scan.
func (d *InMemoryDirectory) Register(ctx context.Context, req *RegisterRequest) (*Patient, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, found := findByIdentity(d.patients, req.Name, req.Email); found {
		return nil, ErrAlreadyRegistered
	}

	record := Patient{
		Name:         req.Name,
		Age:          req.Age,
		Email:        req.Email,
		IsRegistered: true,
	}
	d.patients = append(d.patients, record)

	return &record, nil
}

// Validate looks up the record matching all three fields.
func (d *InMemoryDirectory) Validate(ctx context.Context, req *ValidateRequest) (*Patient, error) {
	if !req.wellFormed() {
		return nil, ErrPatientNotFound
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	record, found := findByValidation(d.patients, req)
	if !found {
		return nil, ErrPatientNotFound
	}
	return &record, nil
}

// List returns a copy of the stored records.
func (d *InMemoryDirectory) List(ctx context.Context) ([]Patient, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Patient, len(d.patients))
	copy(out, d.patients)
	return out, nil
}
