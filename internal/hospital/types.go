// Package hospital contains the REST client for the hospital management
// backend that owns doctors and appointments.
package hospital

import "fmt"

// Doctor is a practitioner record from the hospital directory. The JSON tag
// for the department keeps the backend's misspelled field name; it must not
// be "fixed" here or the decode silently drops every department.
type Doctor struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Department string `json:"doctrDptmnt"`
}

type doctorsEnvelope struct {
	Doctors []Doctor `json:"doctors"`
}

// AppointmentRequest is the body for POST /api/v1/appointment/post. The
// backend uses snake_case for the date and doctor name fields only.
type AppointmentRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Aadhar          string `json:"aadhar"`
	DOB             string `json:"dob"`
	Gender          string `json:"gender"`
	AppointmentDate string `json:"appointment_date"`
	Department      string `json:"department"`
	DoctorFirstName string `json:"doctor_firstName"`
	DoctorLastName  string `json:"doctor_lastName"`
	HasVisited      bool   `json:"hasVisited"`
	Address         string `json:"address"`
}

// AppointmentResponse carries the backend's confirmation text, shown to the
// patient verbatim.
type AppointmentResponse struct {
	Message string `json:"message"`
}

// APIError is a non-2xx upstream response. Message holds the server-provided
// text when the error body carried one, otherwise it is empty.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("hospital API returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("hospital API returned %d", e.StatusCode)
}
