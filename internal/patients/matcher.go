package patients

import "github.com/clinicops/appointment-api/internal/identity"

// MatchesIdentity reports whether an existing record and a candidate share
// the patient identity key (name, email). Age is deliberately excluded:
// two registrations with the same name and email are the same patient even
// when the stated ages differ.
func MatchesIdentity(existing Patient, name, email string) bool {
	return identity.Equal(existing.Name, name) && identity.Equal(existing.Email, email)
}

// MatchesValidation reports whether an existing record satisfies a
// validate request: identity key plus exact age.
func MatchesValidation(existing Patient, req *ValidateRequest) bool {
	return MatchesIdentity(existing, req.Name, req.Email) && existing.Age == req.Age
}

// findByIdentity scans records until the first identity match. At most one
// match can exist because the directory invariant forbids duplicate
// identity keys.
func findByIdentity(records []Patient, name, email string) (Patient, bool) {
	for _, p := range records {
		if MatchesIdentity(p, name, email) {
			return p, true
		}
	}
	return Patient{}, false
}

// findByValidation scans records until the first full validate match.
func findByValidation(records []Patient, req *ValidateRequest) (Patient, bool) {
	for _, p := range records {
		if MatchesValidation(p, req) {
			return p, true
		}
	}
	return Patient{}, false
}
