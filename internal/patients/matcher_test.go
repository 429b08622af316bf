package patients

import "testing"

func TestMatchesIdentity(t *testing.T) {
	existing := Patient{Name: "Ann", Age: 30, Email: "ann@x.com"}

	tests := []struct {
		name  string
		cand  [2]string // name, email
		want  bool
	}{
		{"exact", [2]string{"Ann", "ann@x.com"}, true},
		{"case insensitive name", [2]string{"ann", "ann@x.com"}, true},
		{"case insensitive email", [2]string{"Ann", "ANN@X.com"}, true},
		{"whitespace trimmed", [2]string{" Ann ", "ann@x.com "}, true},
		{"different name", [2]string{"Anne", "ann@x.com"}, false},
		{"different email", [2]string{"Ann", "ann@y.com"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesIdentity(existing, tt.cand[0], tt.cand[1]); got != tt.want {
				t.Errorf("MatchesIdentity(%q, %q) = %v, want %v", tt.cand[0], tt.cand[1], got, tt.want)
			}
		})
	}
}

func TestMatchesValidation_AgeIsExact(t *testing.T) {
	existing := Patient{Name: "Ann", Age: 30, Email: "ann@x.com"}

	if !MatchesValidation(existing, &ValidateRequest{Name: "ANN", Age: 30, Email: "Ann@X.com"}) {
		t.Error("expected match despite case variation")
	}
	if MatchesValidation(existing, &ValidateRequest{Name: "Ann", Age: 31, Email: "ann@x.com"}) {
		t.Error("age mismatch must break the match")
	}
}

func TestFindByIdentity_FirstMatchSemantics(t *testing.T) {
	records := []Patient{
		{Name: "Ann", Age: 30, Email: "ann@x.com"},
		{Name: "Bob", Age: 44, Email: "bob@x.com"},
	}

	got, found := findByIdentity(records, "bob", "BOB@x.com")
	if !found || got.Name != "Bob" {
		t.Fatalf("expected Bob, got %+v found=%v", got, found)
	}

	if _, found := findByIdentity(records, "carol", "carol@x.com"); found {
		t.Error("expected no match for unknown identity")
	}
}
