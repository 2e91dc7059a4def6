package bookingform

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zeecare/booking-gateway/internal/hospital"
	"github.com/zeecare/booking-gateway/internal/observability/metrics"
	"github.com/zeecare/booking-gateway/pkg/logging"
)

// HospitalAPI is the slice of the hospital client the form needs.
type HospitalAPI interface {
	ListDoctors(ctx context.Context) ([]hospital.Doctor, error)
	CreateAppointment(ctx context.Context, req hospital.AppointmentRequest) (*hospital.AppointmentResponse, error)
}

// Notification is a transient message surfaced to the patient after an
// asynchronous operation. It is returned in API responses, never stored.
type Notification struct {
	Level   string `json:"level"` // "success" or "error"
	Message string `json:"message"`
}

const (
	NotificationSuccess = "success"
	NotificationError   = "error"

	// Fallback texts when the backend gives no message.
	doctorFetchFailedMessage = "Failed to load the doctor directory."
	submitFailedMessage      = "Failed to book the appointment. Please try again."
)

// SubmitResult reports the outcome of one submission attempt.
type SubmitResult struct {
	Notification *Notification `json:"notification"`
	// Reset is true when the submission succeeded and every field was
	// returned to its initial value.
	Reset bool `json:"reset"`
	// Superseded is true when a newer submission started while this one was
	// in flight; the response was discarded and state is untouched.
	Superseded bool     `json:"superseded"`
	Session    *Session `json:"-"`
}

// Service orchestrates booking form sessions.
type Service struct {
	hospital HospitalAPI
	store    SessionStore
	metrics  *metrics.BookingMetrics
	logger   *logging.Logger

	fetchTimeout  time.Duration
	submitTimeout time.Duration
}

// NewService creates the booking form service.
func NewService(api HospitalAPI, store SessionStore, m *metrics.BookingMetrics, logger *logging.Logger, fetchTimeout, submitTimeout time.Duration) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if fetchTimeout <= 0 {
		fetchTimeout = 10 * time.Second
	}
	if submitTimeout <= 0 {
		submitTimeout = 15 * time.Second
	}
	return &Service{
		hospital:      api,
		store:         store,
		metrics:       m,
		logger:        logger,
		fetchTimeout:  fetchTimeout,
		submitTimeout: submitTimeout,
	}
}

// StartSession creates a fresh form session and issues the one doctor
// directory fetch the session gets. A failed fetch is degraded, not fatal:
// the form stays usable with an empty department list and the returned
// notification tells the patient the directory is unavailable.
//
// The fetch runs under the caller's context; if the caller is gone before
// the directory arrives, the fetch is cancelled and no session is written.
func (s *Service) StartSession(ctx context.Context) (*Session, *Notification, error) {
	session := &Session{
		ID:            uuid.NewString(),
		DoctorsStatus: DoctorsPending,
		CreatedAt:     time.Now().UTC(),
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	start := time.Now()
	doctors, err := s.hospital.ListDoctors(fetchCtx)
	s.metrics.ObserveUpstreamLatency("doctors", time.Since(start).Seconds())

	var notification *Notification
	if err != nil {
		s.logger.Error("doctor directory fetch failed", "error", err, "session_id", session.ID)
		s.metrics.ObserveDoctorFetch("error")
		session.DoctorsStatus = DoctorsLoadFailed
		notification = &Notification{Level: NotificationError, Message: doctorFetchFailedMessage}
	} else {
		s.metrics.ObserveDoctorFetch("ok")
		session.Doctors = doctors
		session.DoctorsStatus = DoctorsLoaded
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, nil, err
	}

	s.logger.Info("booking session started",
		"session_id", session.ID,
		"doctors", len(session.Doctors),
		"departments", len(session.Departments()),
		"doctors_status", string(session.DoctorsStatus),
	)
	return session, notification, nil
}

// GetSession loads a session by ID.
func (s *Service) GetSession(ctx context.Context, id string) (*Session, error) {
	return s.store.Load(ctx, id)
}

// UpdateFields applies field updates by frontend field name. String fields
// take strings; hasVisited takes a bool. Updates are applied with department
// first so a combined department+doctor change keeps the clearing invariant.
func (s *Service) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*Session, error) {
	session, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	apply := func(name string, value interface{}) error {
		if name == FieldHasVisited {
			v, ok := value.(bool)
			if !ok {
				return fmt.Errorf("%w: hasVisited must be a boolean", ErrUnknownField)
			}
			session.Form.SetHasVisited(v)
			return nil
		}
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s must be a string", ErrUnknownField, name)
		}
		return session.Form.Set(name, v)
	}

	// Department first: it clears the doctor fields, so any doctor-name
	// value in the same batch must land after it.
	if value, ok := fields[FieldDepartment]; ok {
		if err := apply(FieldDepartment, value); err != nil {
			return nil, err
		}
	}
	for name, value := range fields {
		if name == FieldDepartment {
			continue
		}
		if err := apply(name, value); err != nil {
			return nil, err
		}
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectDepartment picks a department from the session's derived list and
// clears the doctor selection.
func (s *Service) SelectDepartment(ctx context.Context, id, department string) (*Session, error) {
	session, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := session.SelectDepartment(department); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectDoctor picks a doctor by snapshot index (preferred) or by the legacy
// "First Last" display string when index is negative.
func (s *Service) SelectDoctor(ctx context.Context, id string, index int, displayName string) (*Session, error) {
	session, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if index >= 0 {
		err = session.SelectDoctor(index)
	} else {
		err = session.SelectDoctorByDisplayName(displayName)
	}
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Submit sends the current form to the hospital backend. Exactly one write
// request is issued per call. On success every field resets and the backend's
// confirmation text comes back as a success notification. On failure the
// form is left exactly as the patient filled it so they can correct and
// retry; the backend's message is surfaced when present, else a generic one.
//
// Each attempt claims a new submission generation before calling upstream.
// If a newer attempt claims the generation while this one is in flight, the
// late response is discarded without touching the session.
func (s *Service) Submit(ctx context.Context, id string) (*SubmitResult, error) {
	session, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	generation := session.SubmitGeneration + 1
	session.SubmitGeneration = generation
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	submitCtx, cancel := context.WithTimeout(ctx, s.submitTimeout)
	defer cancel()

	start := time.Now()
	resp, submitErr := s.hospital.CreateAppointment(submitCtx, session.Form.AppointmentRequest())
	s.metrics.ObserveUpstreamLatency("appointment", time.Since(start).Seconds())

	// Re-read: a newer submission may have claimed the generation while this
	// request was in flight.
	current, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.SubmitGeneration != generation {
		s.logger.Info("submission superseded", "session_id", id, "generation", generation)
		s.metrics.ObserveSubmission("superseded")
		return &SubmitResult{Superseded: true, Session: current}, nil
	}

	if submitErr != nil {
		s.logger.Error("appointment submission failed", "error", submitErr, "session_id", id)
		s.metrics.ObserveSubmission("error")
		message := submitFailedMessage
		var apiErr *hospital.APIError
		if errors.As(submitErr, &apiErr) && apiErr.Message != "" {
			message = apiErr.Message
		}
		return &SubmitResult{
			Notification: &Notification{Level: NotificationError, Message: message},
			Session:      current,
		}, nil
	}

	s.metrics.ObserveSubmission("ok")
	current.Form.Reset()
	if err := s.store.Save(ctx, current); err != nil {
		return nil, err
	}

	s.logger.Info("appointment submitted", "session_id", id)
	return &SubmitResult{
		Notification: &Notification{Level: NotificationSuccess, Message: resp.Message},
		Reset:        true,
		Session:      current,
	}, nil
}
