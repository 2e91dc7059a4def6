package bookingform

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zeecare/booking-gateway/pkg/logging"
)

// Handler handles HTTP requests for the booking form session API.
type Handler struct {
	svc    *Service
	logger *logging.Logger
}

// NewHandler creates a new booking form handler.
func NewHandler(svc *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

// SessionResponse is the API view of a form session: field state plus
// everything the selectors need to render.
type SessionResponse struct {
	ID                    string         `json:"id"`
	Form                  FormState      `json:"form"`
	Departments           []string       `json:"departments"`
	DoctorOptions         []DoctorOption `json:"doctorOptions"`
	DoctorSelectorEnabled bool           `json:"doctorSelectorEnabled"`
	DoctorsStatus         DoctorsStatus  `json:"doctorsStatus"`
	Notification          *Notification  `json:"notification,omitempty"`
}

func sessionResponse(s *Session, n *Notification) SessionResponse {
	departments := s.Departments()
	return SessionResponse{
		ID:                    s.ID,
		Form:                  s.Form,
		Departments:           departments,
		DoctorOptions:         s.DoctorOptions(),
		DoctorSelectorEnabled: s.Form.Department != "" && len(departments) > 0,
		DoctorsStatus:         s.DoctorsStatus,
		Notification:          n,
	}
}

// StartSession handles POST /booking/sessions requests
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	session, notification, err := h.svc.StartSession(r.Context())
	if err != nil {
		h.logger.Error("failed to start session", "error", err)
		http.Error(w, "failed to start session", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse(session, notification))
}

// GetSession handles GET /booking/sessions/{sessionID} requests
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.GetSession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(session, nil))
}

// UpdateFields handles PATCH /booking/sessions/{sessionID}/fields requests.
// The body is a field-name-to-value object, e.g. {"phone":"9876543210"}.
func (h *Handler) UpdateFields(w http.ResponseWriter, r *http.Request) {
	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	session, err := h.svc.UpdateFields(r.Context(), chi.URLParam(r, "sessionID"), fields)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(session, nil))
}

// SelectDepartment handles PUT /booking/sessions/{sessionID}/department requests
func (h *Handler) SelectDepartment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Department string `json:"department"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	session, err := h.svc.SelectDepartment(r.Context(), chi.URLParam(r, "sessionID"), req.Department)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(session, nil))
}

// SelectDoctor handles PUT /booking/sessions/{sessionID}/doctor requests.
// Callers select by snapshot index; displayName is the legacy option-string
// path with first-space-split semantics.
func (h *Handler) SelectDoctor(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Index       *int   `json:"index"`
		DisplayName string `json:"displayName"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	index := -1
	if req.Index != nil {
		index = *req.Index
	}
	session, err := h.svc.SelectDoctor(r.Context(), chi.URLParam(r, "sessionID"), index, req.DisplayName)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(session, nil))
}

// SubmitResponse is the API view of a submission outcome.
type SubmitResponse struct {
	Notification *Notification   `json:"notification,omitempty"`
	Reset        bool            `json:"reset"`
	Superseded   bool            `json:"superseded"`
	Session      SessionResponse `json:"session"`
}

// Submit handles POST /booking/sessions/{sessionID}/submit requests. Upstream
// rejection is not an HTTP error here: the outcome comes back as a
// notification the frontend shows as a toast.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Submit(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SubmitResponse{
		Notification: result.Notification,
		Reset:        result.Reset,
		Superseded:   result.Superseded,
		Session:      sessionResponse(result.Session, nil),
	})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrUnknownField),
		errors.Is(err, ErrNotStringField),
		errors.Is(err, ErrInvalidGender),
		errors.Is(err, ErrUnknownDepartment),
		errors.Is(err, ErrNoDepartment),
		errors.Is(err, ErrUnknownDoctor):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error("booking form request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
