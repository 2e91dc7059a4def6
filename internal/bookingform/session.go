package bookingform

import (
	"time"

	"github.com/zeecare/booking-gateway/internal/hospital"
)

// DoctorsStatus tracks the doctor-directory axis of the session state
// machine. A failed load is terminal for the session; the doctor selector
// stays disabled until the patient starts a new session.
type DoctorsStatus string

const (
	DoctorsPending    DoctorsStatus = "pending"
	DoctorsLoaded     DoctorsStatus = "loaded"
	DoctorsLoadFailed DoctorsStatus = "load_failed"
)

// Session is one patient's booking form: field state plus the doctor
// directory snapshot fetched when the session started. The snapshot is never
// mutated after load.
type Session struct {
	ID            string            `json:"id"`
	Form          FormState         `json:"form"`
	Doctors       []hospital.Doctor `json:"doctors"`
	DoctorsStatus DoctorsStatus     `json:"doctorsStatus"`

	// SubmitGeneration increments on every submission attempt; a response
	// arriving for an older generation is discarded.
	SubmitGeneration uint64 `json:"submitGeneration"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Departments lists the unique departments in the snapshot, fetch order.
func (s *Session) Departments() []string {
	return Departments(s.Doctors)
}

// DoctorOptions lists the selectable doctors for the currently selected
// department. Empty (selector disabled) while no department is chosen.
func (s *Session) DoctorOptions() []DoctorOption {
	if s.Form.Department == "" {
		return nil
	}
	return DoctorsByDepartment(s.Doctors, s.Form.Department)
}

// SelectDepartment picks a department from the derived list and clears any
// doctor selection.
func (s *Session) SelectDepartment(department string) error {
	for _, d := range s.Departments() {
		if d == department {
			return s.Form.Set(FieldDepartment, department)
		}
	}
	return ErrUnknownDepartment
}

// SelectDoctor picks a doctor by snapshot index. The index must belong to a
// doctor in the selected department.
func (s *Session) SelectDoctor(index int) error {
	if s.Form.Department == "" {
		return ErrNoDepartment
	}
	if index < 0 || index >= len(s.Doctors) {
		return ErrUnknownDoctor
	}
	doc := s.Doctors[index]
	if doc.Department != s.Form.Department {
		return ErrUnknownDoctor
	}
	s.Form.DoctorFirstName = doc.FirstName
	s.Form.DoctorLastName = doc.LastName
	return nil
}

// SelectDoctorByDisplayName picks a doctor from the "First Last" option
// string the legacy frontend sends, using first-space-split semantics.
func (s *Session) SelectDoctorByDisplayName(display string) error {
	if s.Form.Department == "" {
		return ErrNoDepartment
	}
	for _, opt := range s.DoctorOptions() {
		if opt.DisplayName == display {
			first, last := SplitDoctorName(display)
			s.Form.DoctorFirstName = first
			s.Form.DoctorLastName = last
			return nil
		}
	}
	return ErrUnknownDoctor
}
