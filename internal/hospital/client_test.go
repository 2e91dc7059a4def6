package hospital

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zeecare/booking-gateway/pkg/logging"
)

func unwrapAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

func newTestClient(t *testing.T, creds Credentials, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(ts.URL, creds, logging.Default())
}

func TestListDoctors_Success(t *testing.T) {
	client := newTestClient(t, Credentials{Cookie: "patientToken=abc"}, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/api/v1/user/doctors" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		if r.Header.Get("Cookie") != "patientToken=abc" {
			t.Fatalf("cookie = %q, want forwarded credentials", r.Header.Get("Cookie"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"doctors":[{"firstName":"Jane","lastName":"Doe","doctrDptmnt":"Cardiology"}]}`))
	})

	doctors, err := client.ListDoctors(context.Background())
	if err != nil {
		t.Fatalf("ListDoctors() error = %v", err)
	}
	if len(doctors) != 1 {
		t.Fatalf("len(doctors) = %d, want 1", len(doctors))
	}
	if doctors[0].Department != "Cardiology" {
		t.Fatalf("department = %s, want Cardiology (decoded from doctrDptmnt)", doctors[0].Department)
	}
}

func TestListDoctors_BearerToken(t *testing.T) {
	client := newTestClient(t, Credentials{BearerToken: "tok-1"}, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			t.Fatalf("authorization = %q", r.Header.Get("Authorization"))
		}
		_, _ = w.Write([]byte(`{"doctors":[]}`))
	})

	if _, err := client.ListDoctors(context.Background()); err != nil {
		t.Fatalf("ListDoctors() error = %v", err)
	}
}

func TestListDoctors_InvalidJSON(t *testing.T) {
	client := newTestClient(t, Credentials{}, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"doctors":[`))
	})

	if _, err := client.ListDoctors(context.Background()); err == nil {
		t.Fatal("expected JSON decode error, got nil")
	}
}

func TestCreateAppointment_Success(t *testing.T) {
	client := newTestClient(t, Credentials{}, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/v1/appointment/post" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("content type = %s", ct)
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["appointment_date"] != "2026-09-14" {
			t.Fatalf("appointment_date = %v", body["appointment_date"])
		}
		if body["doctor_firstName"] != "Mary" || body["doctor_lastName"] != "Ann Smith" {
			t.Fatalf("doctor name = %v %v", body["doctor_firstName"], body["doctor_lastName"])
		}
		if body["hasVisited"] != true {
			t.Fatalf("hasVisited = %v", body["hasVisited"])
		}

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Appointment sent!"}`))
	})

	resp, err := client.CreateAppointment(context.Background(), AppointmentRequest{
		FirstName:       "Priya",
		LastName:        "Sharma",
		AppointmentDate: "2026-09-14",
		Department:      "Cardiology",
		DoctorFirstName: "Mary",
		DoctorLastName:  "Ann Smith",
		HasVisited:      true,
	})
	if err != nil {
		t.Fatalf("CreateAppointment() error = %v", err)
	}
	if resp.Message != "Appointment sent!" {
		t.Fatalf("message = %q", resp.Message)
	}
}

func TestCreateAppointment_ServerRejection(t *testing.T) {
	client := newTestClient(t, Credentials{}, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"Please Fill Full Form!"}`))
	})

	_, err := client.CreateAppointment(context.Background(), AppointmentRequest{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	apiErr, ok := unwrapAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError in chain, got %v", err)
	}
	if apiErr.Message != "Please Fill Full Form!" {
		t.Fatalf("message = %q", apiErr.Message)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", apiErr.StatusCode)
	}
}

func TestCreateAppointment_NoErrorBody(t *testing.T) {
	client := newTestClient(t, Credentials{}, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.CreateAppointment(context.Background(), AppointmentRequest{})
	apiErr, ok := unwrapAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError in chain, got %v", err)
	}
	if apiErr.Message != "" {
		t.Fatalf("message = %q, want empty", apiErr.Message)
	}
}

func TestListDoctors_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(ts.URL, Credentials{}, logging.Default())
	ts.Close()

	if _, err := client.ListDoctors(context.Background()); err == nil {
		t.Fatal("expected transport error, got nil")
	}
}
