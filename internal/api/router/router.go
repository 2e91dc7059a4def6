package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zeecare/booking-gateway/internal/bookingform"
	httpmiddleware "github.com/zeecare/booking-gateway/internal/http/middleware"
	"github.com/zeecare/booking-gateway/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	BookingHandler     *bookingform.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/booking/sessions", func(r chi.Router) {
		r.Post("/", cfg.BookingHandler.StartSession)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", cfg.BookingHandler.GetSession)
			r.Patch("/fields", cfg.BookingHandler.UpdateFields)
			r.Put("/department", cfg.BookingHandler.SelectDepartment)
			r.Put("/doctor", cfg.BookingHandler.SelectDoctor)
			r.Post("/submit", cfg.BookingHandler.Submit)
		})
	})

	return r
}
