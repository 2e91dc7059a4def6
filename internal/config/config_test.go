package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("HOSPITAL_API_BASE_URL", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.HospitalBaseURL != "http://localhost:4000" {
		t.Fatalf("expected default hospital base URL, got %s", cfg.HospitalBaseURL)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("expected default session TTL, got %s", cfg.SessionTTL)
	}
	if cfg.CORSAllowedOrigins != nil {
		t.Fatalf("expected no default CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HOSPITAL_API_BASE_URL", "https://api.hospital.example")
	t.Setenv("HOSPITAL_API_COOKIE", "patientToken=abc123")
	t.Setenv("DOCTOR_FETCH_TIMEOUT", "3s")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://portal.hospital.example, https://staging.hospital.example")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected port override, got %s", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected env override, got %s", cfg.Env)
	}
	if cfg.HospitalBaseURL != "https://api.hospital.example" {
		t.Fatalf("expected hospital base URL override, got %s", cfg.HospitalBaseURL)
	}
	if cfg.HospitalCookie != "patientToken=abc123" {
		t.Fatalf("expected hospital cookie override, got %s", cfg.HospitalCookie)
	}
	if cfg.DoctorFetchTimeout != 3*time.Second {
		t.Fatalf("expected fetch timeout override, got %s", cfg.DoctorFetchTimeout)
	}
	if !cfg.RedisTLS {
		t.Fatal("expected redis TLS enabled")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[0] != "https://portal.hospital.example" {
		t.Fatalf("expected trimmed CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("SUBMIT_TIMEOUT", "not-a-duration")
	cfg := Load()
	if cfg.SubmitTimeout != 15*time.Second {
		t.Fatalf("expected fallback submit timeout, got %s", cfg.SubmitTimeout)
	}
}
