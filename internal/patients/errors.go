package patients

import "errors"

var (
	// ErrInvalidInput is returned when a registration field is missing or malformed
	ErrInvalidInput = errors.New("patients: invalid or missing field")

	// ErrAlreadyRegistered is returned when a patient with the same identity key exists
	ErrAlreadyRegistered = errors.New("patients: already registered")

	// ErrPatientNotFound is returned when no record matches a validate request
	ErrPatientNotFound = errors.New("patients: patient not found")
)
