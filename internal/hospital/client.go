package hospital

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/zeecare/booking-gateway/pkg/logging"
)

const (
	defaultTimeout = 15 * time.Second

	doctorsPath     = "/api/v1/user/doctors"
	appointmentPath = "/api/v1/appointment/post"
)

// Credentials are forwarded verbatim on every upstream call. The hospital
// backend authenticates the patient session with a cookie; a bearer token is
// supported for deployments that front the API with a gateway.
type Credentials struct {
	Cookie      string
	BearerToken string
}

// Client wraps the two hospital REST endpoints the booking form consumes.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	credentials Credentials
	logger      *logging.Logger
}

// NewClient constructs a hospital REST client.
func NewClient(baseURL string, credentials Credentials, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		httpClient:  &http.Client{Timeout: defaultTimeout},
		baseURL:     strings.TrimRight(baseURL, "/"),
		credentials: credentials,
		logger:      logger,
	}
}

// ListDoctors fetches the full doctor directory.
func (c *Client) ListDoctors(ctx context.Context) ([]Doctor, error) {
	var env doctorsEnvelope
	if err := c.doJSON(ctx, http.MethodGet, doctorsPath, nil, &env); err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return env.Doctors, nil
}

// CreateAppointment submits a booking request and returns the backend's
// confirmation message.
func (c *Client) CreateAppointment(ctx context.Context, req AppointmentRequest) (*AppointmentResponse, error) {
	var resp AppointmentResponse
	if err := c.doJSON(ctx, http.MethodPost, appointmentPath, req, &resp); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return &resp, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	endpoint := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.credentials.Cookie != "" {
		req.Header.Set("Cookie", c.credentials.Cookie)
	}
	if c.credentials.BearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.credentials.BearerToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// The backend wraps rejections as {"success":false,"message":"..."}.
		var envelope struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(respBody, &envelope) == nil {
			apiErr.Message = envelope.Message
		}
		snippet := string(respBody)
		if len(snippet) > 300 {
			snippet = snippet[:300]
		}
		c.logger.Warn("hospital API non-2xx response", "status", resp.StatusCode, "path", path, "body", snippet)
		return apiErr
	}

	if len(respBody) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
