package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the booking form flows.
type BookingMetrics struct {
	doctorFetchTotal *prometheus.CounterVec
	submissionTotal  *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		doctorFetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking",
			Subsystem: "gateway",
			Name:      "doctor_fetch_total",
			Help:      "Total doctor directory fetches from the hospital API",
		}, []string{"status"}),
		submissionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking",
			Subsystem: "gateway",
			Name:      "submission_total",
			Help:      "Total appointment submissions to the hospital API",
		}, []string{"status"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "booking",
			Subsystem: "gateway",
			Name:      "upstream_latency_seconds",
			Help:      "Latency of hospital API calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.doctorFetchTotal, m.submissionTotal, m.upstreamLatency)
	return m
}

func (m *BookingMetrics) ObserveDoctorFetch(status string) {
	if m == nil {
		return
	}
	m.doctorFetchTotal.WithLabelValues(status).Inc()
}

func (m *BookingMetrics) ObserveSubmission(status string) {
	if m == nil {
		return
	}
	m.submissionTotal.WithLabelValues(status).Inc()
}

func (m *BookingMetrics) ObserveUpstreamLatency(endpoint string, seconds float64) {
	if m == nil {
		return
	}
	m.upstreamLatency.WithLabelValues(endpoint).Observe(seconds)
}
