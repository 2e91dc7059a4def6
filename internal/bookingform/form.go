// Package bookingform owns the appointment booking form: its field state,
// the doctor directory snapshot behind the department/doctor selectors, and
// the submission flow against the hospital backend.
package bookingform

import (
	"strings"

	"github.com/zeecare/booking-gateway/internal/hospital"
)

// Field names accepted by FormState.Set. These match the frontend's input
// names one-to-one.
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldAadhar          = "aadhar"
	FieldDOB             = "dob"
	FieldGender          = "gender"
	FieldAppointmentDate = "appointmentDate"
	FieldDepartment      = "department"
	FieldDoctorFirstName = "doctorFirstName"
	FieldDoctorLastName  = "doctorLastName"
	FieldAddress         = "address"
	FieldHasVisited      = "hasVisited"
)

// Gender options offered by the form. Free-text fields are deliberately not
// validated (the form has no client-side validation), but the gender selector
// only ever produces these values.
const (
	GenderUnset  = ""
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOthers = "Others"
)

// FormState is the complete set of current values for the appointment form.
// All updates flow through Set/SetHasVisited so the clear-on-department-change
// and reset-on-success transitions stay atomic.
type FormState struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Aadhar          string `json:"aadhar"`
	DOB             string `json:"dob"`
	Gender          string `json:"gender"`
	AppointmentDate string `json:"appointmentDate"`
	Department      string `json:"department"`
	DoctorFirstName string `json:"doctorFirstName"`
	DoctorLastName  string `json:"doctorLastName"`
	Address         string `json:"address"`
	HasVisited      bool   `json:"hasVisited"`
}

// Set updates one string field by its frontend name. Setting the department
// also clears the doctor selection; a stale doctor/department pairing must
// never survive a department change.
func (f *FormState) Set(field, value string) error {
	switch field {
	case FieldFirstName:
		f.FirstName = value
	case FieldLastName:
		f.LastName = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	case FieldAadhar:
		f.Aadhar = value
	case FieldDOB:
		f.DOB = value
	case FieldGender:
		if value != GenderUnset && value != GenderMale && value != GenderFemale && value != GenderOthers {
			return ErrInvalidGender
		}
		f.Gender = value
	case FieldAppointmentDate:
		f.AppointmentDate = value
	case FieldDepartment:
		f.Department = value
		f.DoctorFirstName = ""
		f.DoctorLastName = ""
	case FieldDoctorFirstName:
		f.DoctorFirstName = value
	case FieldDoctorLastName:
		f.DoctorLastName = value
	case FieldAddress:
		f.Address = value
	case FieldHasVisited:
		return ErrNotStringField
	default:
		return ErrUnknownField
	}
	return nil
}

// SetHasVisited updates the only boolean field.
func (f *FormState) SetHasVisited(v bool) {
	f.HasVisited = v
}

// Reset returns every field to its initial empty/false value in one step.
func (f *FormState) Reset() {
	*f = FormState{}
}

// AppointmentRequest maps the form to the hospital wire format, applying the
// appointment_date / doctor_firstName / doctor_lastName renames.
func (f *FormState) AppointmentRequest() hospital.AppointmentRequest {
	return hospital.AppointmentRequest{
		FirstName:       f.FirstName,
		LastName:        f.LastName,
		Email:           f.Email,
		Phone:           f.Phone,
		Aadhar:          f.Aadhar,
		DOB:             f.DOB,
		Gender:          f.Gender,
		AppointmentDate: f.AppointmentDate,
		Department:      f.Department,
		DoctorFirstName: f.DoctorFirstName,
		DoctorLastName:  f.DoctorLastName,
		HasVisited:      f.HasVisited,
		Address:         f.Address,
	}
}

// SplitDoctorName recovers first/last name from a "First Last" display
// string by splitting on the first space. "Mary Ann Smith" becomes
// ("Mary", "Ann Smith"); a single token leaves the last name empty. Lossy
// for multi-word first names, kept for compatibility with the existing
// frontend's option encoding. Index-based selection avoids it entirely.
func SplitDoctorName(display string) (first, last string) {
	first, last, _ = strings.Cut(display, " ")
	return first, last
}
