package scheduling

import "errors"

var (
	// ErrUnknownSpeciality is returned when the speciality is not in the directory
	ErrUnknownSpeciality = errors.New("scheduling: unknown speciality")

	// ErrDoctorNotAvailable is returned when the doctor does not practice the speciality
	ErrDoctorNotAvailable = errors.New("scheduling: doctor not available in this speciality")
)

// defaultSpecialities is the static reference data shipped with the
// service. Doctor names compare exactly; the directory is never mutated
// at runtime.
var defaultSpecialities = map[string][]string{
	"Cardiology":  {"Dr. Rajesh Kumar", "Dr. Meena Sharma"},
	"Dermatology": {"Dr. Priya Nair", "Dr. Amit Verma"},
	"Neurology":   {"Dr. R. Srinivasan", "Dr. Kavitha Devi"},
}

// SpecialityDirectory maps speciality names to their ordered doctor
// lists.
type SpecialityDirectory struct {
	specialities map[string][]string
}

// NewSpecialityDirectory returns the directory with the built-in
// reference data.
func NewSpecialityDirectory() *SpecialityDirectory {
	return &SpecialityDirectory{specialities: defaultSpecialities}
}

// NewSpecialityDirectoryWith returns a directory over custom reference
// data; tests and future config loading use it.
func NewSpecialityDirectoryWith(specialities map[string][]string) *SpecialityDirectory {
	return &SpecialityDirectory{specialities: specialities}
}

// Doctors returns the ordered doctor list for a speciality.
func (d *SpecialityDirectory) Doctors(speciality string) ([]string, error) {
	doctors, ok := d.specialities[speciality]
	if !ok {
		return nil, ErrUnknownSpeciality
	}
	out := make([]string, len(doctors))
	copy(out, doctors)
	return out, nil
}

// CheckDoctor verifies that the doctor practices the speciality.
func (d *SpecialityDirectory) CheckDoctor(speciality, doctor string) error {
	doctors, ok := d.specialities[speciality]
	if !ok {
		return ErrUnknownSpeciality
	}
	for _, name := range doctors {
		if name == doctor {
			return nil
		}
	}
	return ErrDoctorNotAvailable
}
