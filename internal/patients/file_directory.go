package patients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// patientsFile is the on-disk format: a single JSON object holding the
// full patient list, pretty-printed, rewritten on every registration.
type patientsFile struct {
	Patients []Patient `json:"patients"`
}

// FileDirectory persists the directory in a flat JSON file. Every call
// reloads the file, so records written by an earlier process (or seeded by
// hand) are visible without restart. The load-check-append-save sequence
// runs under one lock, and the rewrite goes through a temp file plus
// rename so a crash mid-write leaves the previous contents intact.
type FileDirectory struct {
	path string
	mu   sync.RWMutex
}

// NewFileDirectory creates a directory backed by the JSON file at path.
// The file does not need to exist yet; it is created on first
// registration.
func NewFileDirectory(path string) *FileDirectory {
	return &FileDirectory{path: path}
}

// Register reloads the file, runs the duplicate scan, appends and saves.
func (d *FileDirectory) Register(ctx context.Context, req *RegisterRequest) (*Patient, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	records, err := d.load()
	if err != nil {
		return nil, err
	}

	if _, found := findByIdentity(records, req.Name, req.Email); found {
		return nil, ErrAlreadyRegistered
	}

	record := Patient{
		Name:         req.Name,
		Age:          req.Age,
		Email:        req.Email,
		IsRegistered: true,
	}
	records = append(records, record)

	if err := d.save(records); err != nil {
		return nil, err
	}
	return &record, nil
}

// Validate reloads the file and looks up the full match.
func (d *FileDirectory) Validate(ctx context.Context, req *ValidateRequest) (*Patient, error) {
	if !req.wellFormed() {
		return nil, ErrPatientNotFound
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	records, err := d.load()
	if err != nil {
		return nil, err
	}

	record, found := findByValidation(records, req)
	if !found {
		return nil, ErrPatientNotFound
	}
	return &record, nil
}

// List reloads the file and returns all records.
func (d *FileDirectory) List(ctx context.Context) ([]Patient, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.load()
}

func (d *FileDirectory) load() ([]Patient, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("patients: read %s: %w", d.path, err)
	}

	var f patientsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("patients: decode %s: %w", d.path, err)
	}
	return f.Patients, nil
}

func (d *FileDirectory) save(records []Patient) error {
	data, err := json.MarshalIndent(patientsFile{Patients: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("patients: encode directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(d.path), ".patients-*.json")
	if err != nil {
		return fmt.Errorf("patients: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("patients: write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("patients: close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), d.path); err != nil {
		return fmt.Errorf("patients: replace %s: %w", d.path, err)
	}
	return nil
}
