package bookingform

import "errors"

var (
	// ErrSessionNotFound is returned when a form session does not exist or
	// has expired.
	ErrSessionNotFound = errors.New("booking session not found")

	// ErrUnknownField is returned for a field name the form does not have.
	ErrUnknownField = errors.New("unknown form field")

	// ErrNotStringField is returned when hasVisited is set through the
	// string-field path.
	ErrNotStringField = errors.New("field is not a string field")

	// ErrInvalidGender is returned for a gender outside the selector's options.
	ErrInvalidGender = errors.New("gender must be Male, Female or Others")

	// ErrUnknownDepartment is returned when the selected department is not in
	// the session's derived department list.
	ErrUnknownDepartment = errors.New("department not in directory")

	// ErrNoDepartment is returned when a doctor is selected while the doctor
	// selector is disabled (no department chosen).
	ErrNoDepartment = errors.New("select a department first")

	// ErrUnknownDoctor is returned when the doctor selection does not match
	// any option for the chosen department.
	ErrUnknownDoctor = errors.New("doctor not available for department")
)
