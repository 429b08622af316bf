package scheduling

import (
	"errors"
	"testing"
)

func TestSpecialityDirectory_Doctors(t *testing.T) {
	dir := NewSpecialityDirectory()

	doctors, err := dir.Doctors("Cardiology")
	if err != nil {
		t.Fatalf("doctors: %v", err)
	}
	want := []string{"Dr. Rajesh Kumar", "Dr. Meena Sharma"}
	if len(doctors) != len(want) {
		t.Fatalf("expected %d doctors, got %d", len(want), len(doctors))
	}
	for i := range want {
		if doctors[i] != want[i] {
			t.Errorf("doctor %d: got %s, want %s (order must be preserved)", i, doctors[i], want[i])
		}
	}
}

func TestSpecialityDirectory_UnknownSpeciality(t *testing.T) {
	dir := NewSpecialityDirectory()

	if _, err := dir.Doctors("Homeopathy"); !errors.Is(err, ErrUnknownSpeciality) {
		t.Errorf("expected ErrUnknownSpeciality, got %v", err)
	}
}

func TestSpecialityDirectory_CheckDoctor(t *testing.T) {
	dir := NewSpecialityDirectory()

	tests := []struct {
		name       string
		speciality string
		doctor     string
		wantErr    error
	}{
		{"known pair", "Dermatology", "Dr. Priya Nair", nil},
		{"doctor in other speciality", "Dermatology", "Dr. Rajesh Kumar", ErrDoctorNotAvailable},
		{"doctor name is exact", "Dermatology", "dr. priya nair", ErrDoctorNotAvailable},
		{"unknown speciality", "Homeopathy", "Dr. Priya Nair", ErrUnknownSpeciality},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dir.CheckDoctor(tt.speciality, tt.doctor)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckDoctor(%q, %q) = %v, want %v", tt.speciality, tt.doctor, err, tt.wantErr)
			}
		})
	}
}

func TestSpecialityDirectory_Custom(t *testing.T) {
	dir := NewSpecialityDirectoryWith(map[string][]string{
		"Physio": {"Dr. A"},
	})

	if err := dir.CheckDoctor("Physio", "Dr. A"); err != nil {
		t.Errorf("expected custom doctor to be found, got %v", err)
	}
	if _, err := dir.Doctors("Cardiology"); !errors.Is(err, ErrUnknownSpeciality) {
		t.Errorf("built-in data must not leak into custom directories, got %v", err)
	}
}
