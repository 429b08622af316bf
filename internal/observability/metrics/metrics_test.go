package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func gatherCounter(t *testing.T, reg *prometheus.Registry, name, label string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	return counterValue(families, name, label)
}

func counterValue(families []*dto.MetricFamily, name, label string) float64 {
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
		for _, metric := range fam.GetMetric() {
			for _, pair := range metric.GetLabel() {
				if pair.GetName() == "status" && pair.GetValue() == label {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestClinicMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewClinicMetrics(reg)

	m.ObserveRegistration("registered")
	m.ObserveRegistration("duplicate")
	m.ObserveRegistration("duplicate")
	m.ObserveConfirmation("duplicate_slot")

	if got := gatherCounter(t, reg, "clinic_patients_registrations_total", "duplicate"); got != 2 {
		t.Errorf("expected 2 duplicate registrations, got %v", got)
	}
	if got := gatherCounter(t, reg, "clinic_patients_registrations_total", "registered"); got != 1 {
		t.Errorf("expected 1 successful registration, got %v", got)
	}
	if got := gatherCounter(t, reg, "clinic_appointments_confirmations_total", "duplicate_slot"); got != 1 {
		t.Errorf("expected 1 duplicate slot, got %v", got)
	}
}

func TestClinicMetrics_NilSafe(t *testing.T) {
	var m *ClinicMetrics
	// Must not panic when metrics are not wired.
	m.ObserveRegistration("registered")
	m.ObserveValidation("found")
	m.ObserveConfirmation("confirmed")
	m.ObserveSlotRequest("ok")
}
