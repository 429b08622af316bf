// Package identity canonicalizes the fields that decide whether two
// records denote the same real-world entity. Patient identity is
// (name, email); booking identity is (name, doctor, date, time). Name,
// email and doctor compare case-insensitively after trimming; date and
// time compare as exact strings.
package identity

import "strings"

// Normalize returns the canonical form of an identity field: surrounding
// whitespace removed, lowercased.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Equal reports whether two identity fields are the same after
// normalization.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Key joins normalized fields into a single identity key, suitable for
// map and Redis keys.
func Key(fields ...string) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = Normalize(f)
	}
	return strings.Join(parts, "|")
}
