package patients

import "strings"

// Patient represents a registered patient record. Records are immutable
// once created; there is no deregistration path.
type Patient struct {
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Email        string `json:"email"`
	IsRegistered bool   `json:"is_registered"`
}

// RegisterRequest represents the request body for registering a patient
type RegisterRequest struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Email string `json:"email"`
}

// Validate checks the registration fields for minimal well-formedness.
func (r *RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrInvalidInput
	}
	if r.Age <= 0 {
		return ErrInvalidInput
	}
	if !emailWellFormed(r.Email) {
		return ErrInvalidInput
	}
	return nil
}

// ValidateRequest represents the request body for validating a patient.
// All three fields participate in the match; age compares exactly.
type ValidateRequest struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Email string `json:"email"`
}

// wellFormed reports whether the lookup fields are present. A malformed
// validate request is indistinguishable from a missing record: both
// surface ErrPatientNotFound.
func (r *ValidateRequest) wellFormed() bool {
	return strings.TrimSpace(r.Name) != "" && r.Age > 0 && emailWellFormed(r.Email)
}

// emailWellFormed applies the minimal shape check: non-empty, containing
// both "@" and ".".
func emailWellFormed(email string) bool {
	email = strings.TrimSpace(email)
	return email != "" && strings.Contains(email, "@") && strings.Contains(email, ".")
}
