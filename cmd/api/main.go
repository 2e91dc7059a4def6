package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/zeecare/booking-gateway/internal/api/router"
	"github.com/zeecare/booking-gateway/internal/bookingform"
	appconfig "github.com/zeecare/booking-gateway/internal/config"
	"github.com/zeecare/booking-gateway/internal/hospital"
	"github.com/zeecare/booking-gateway/internal/observability/metrics"
	"github.com/zeecare/booking-gateway/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel, cfg.Env)
	logger.Info("starting booking gateway",
		"env", cfg.Env,
		"port", cfg.Port,
		"hospital_base_url", cfg.HospitalBaseURL,
	)

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOptions)
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Error("redis not available", "error", err)
		os.Exit(1)
	}

	hospitalClient := hospital.NewClient(cfg.HospitalBaseURL, hospital.Credentials{
		Cookie:      cfg.HospitalCookie,
		BearerToken: cfg.HospitalBearerToken,
	}, logger)

	store := bookingform.NewRedisStore(redisClient, cfg.SessionTTL, nil)
	bookingMetrics := metrics.NewBookingMetrics(nil)
	service := bookingform.NewService(hospitalClient, store, bookingMetrics, logger, cfg.DoctorFetchTimeout, cfg.SubmitTimeout)
	handler := bookingform.NewHandler(service, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		BookingHandler:     handler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
