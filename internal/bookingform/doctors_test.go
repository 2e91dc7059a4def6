package bookingform

import (
	"reflect"
	"testing"

	"github.com/zeecare/booking-gateway/internal/hospital"
)

func sampleDoctors() []hospital.Doctor {
	return []hospital.Doctor{
		{FirstName: "Jane", LastName: "Doe", Department: "Cardiology"},
		{FirstName: "Ravi", LastName: "Kumar", Department: "Neurology"},
		{FirstName: "Mary Ann", LastName: "Smith", Department: "Cardiology"},
		{FirstName: "Asha", LastName: "Patel", Department: "Dermatology"},
		{FirstName: "Liu", LastName: "Wei", Department: "Neurology"},
	}
}

func TestDepartmentsUniqueFetchOrder(t *testing.T) {
	got := Departments(sampleDoctors())
	want := []string{"Cardiology", "Neurology", "Dermatology"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Departments() = %v, want %v", got, want)
	}
}

func TestDepartmentsEmpty(t *testing.T) {
	if got := Departments(nil); len(got) != 0 {
		t.Fatalf("Departments(nil) = %v, want empty", got)
	}
}

func TestDoctorsByDepartment(t *testing.T) {
	got := DoctorsByDepartment(sampleDoctors(), "Cardiology")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Fetch order, with indices pointing into the snapshot.
	if got[0].Index != 0 || got[0].DisplayName != "Jane Doe" {
		t.Fatalf("first option = %+v", got[0])
	}
	if got[1].Index != 2 || got[1].DisplayName != "Mary Ann Smith" {
		t.Fatalf("second option = %+v", got[1])
	}
}

func TestDoctorsByDepartmentNoMatch(t *testing.T) {
	if got := DoctorsByDepartment(sampleDoctors(), "Oncology"); len(got) != 0 {
		t.Fatalf("expected no options, got %v", got)
	}
}
