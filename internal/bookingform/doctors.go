package bookingform

import "github.com/zeecare/booking-gateway/internal/hospital"

// DoctorOption is one selectable entry in the doctor dropdown. Index refers
// to the doctor's position in the session's directory snapshot and is the
// stable identifier callers should select by.
type DoctorOption struct {
	Index       int    `json:"index"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Department  string `json:"department"`
	DisplayName string `json:"displayName"`
}

// Departments derives the unique department list from a doctor snapshot, in
// fetch order.
func Departments(doctors []hospital.Doctor) []string {
	seen := make(map[string]struct{}, len(doctors))
	out := make([]string, 0, len(doctors))
	for _, d := range doctors {
		if _, ok := seen[d.Department]; ok {
			continue
		}
		seen[d.Department] = struct{}{}
		out = append(out, d.Department)
	}
	return out
}

// DoctorsByDepartment returns the options for one department, in fetch order.
func DoctorsByDepartment(doctors []hospital.Doctor, department string) []DoctorOption {
	out := make([]DoctorOption, 0, len(doctors))
	for i, d := range doctors {
		if d.Department != department {
			continue
		}
		out = append(out, DoctorOption{
			Index:       i,
			FirstName:   d.FirstName,
			LastName:    d.LastName,
			Department:  d.Department,
			DisplayName: d.FirstName + " " + d.LastName,
		})
	}
	return out
}
