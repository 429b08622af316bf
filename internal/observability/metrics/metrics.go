package metrics

import "github.com/prometheus/client_golang/prometheus"

// ClinicMetrics exposes counters for the registration and booking flows.
type ClinicMetrics struct {
	registrationsTotal *prometheus.CounterVec
	validationsTotal   *prometheus.CounterVec
	confirmationsTotal *prometheus.CounterVec
	slotRequestsTotal  *prometheus.CounterVec
}

func NewClinicMetrics(reg prometheus.Registerer) *ClinicMetrics {
	m := &ClinicMetrics{
		registrationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "patients",
			Name:      "registrations_total",
			Help:      "Total patient registration attempts",
		}, []string{"status"}),
		validationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "patients",
			Name:      "validations_total",
			Help:      "Total patient validation lookups",
		}, []string{"status"}),
		confirmationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "appointments",
			Name:      "confirmations_total",
			Help:      "Total appointment confirmation attempts",
		}, []string{"status"}),
		slotRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "scheduling",
			Name:      "slot_requests_total",
			Help:      "Total slot listing requests",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.registrationsTotal, m.validationsTotal, m.confirmationsTotal, m.slotRequestsTotal)
	return m
}

func (m *ClinicMetrics) ObserveRegistration(status string) {
	if m == nil {
		return
	}
	m.registrationsTotal.WithLabelValues(status).Inc()
}

func (m *ClinicMetrics) ObserveValidation(status string) {
	if m == nil {
		return
	}
	m.validationsTotal.WithLabelValues(status).Inc()
}

func (m *ClinicMetrics) ObserveConfirmation(status string) {
	if m == nil {
		return
	}
	m.confirmationsTotal.WithLabelValues(status).Inc()
}

func (m *ClinicMetrics) ObserveSlotRequest(status string) {
	if m == nil {
		return
	}
	m.slotRequestsTotal.WithLabelValues(status).Inc()
}
