package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clinicops/appointment-api/internal/appointments"
	appconfig "github.com/clinicops/appointment-api/internal/config"
	"github.com/clinicops/appointment-api/internal/patients"
	"github.com/clinicops/appointment-api/pkg/logging"
)

func TestSetupMetricsExposesClinicCounters(t *testing.T) {
	handler, m := setupMetrics()
	if handler == nil || m == nil {
		t.Fatalf("expected non-nil handler and metrics")
	}

	m.ObserveRegistration("ok")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "clinic_patients_registrations_total") {
		t.Fatalf("expected registration counter to be exported")
	}
}

func TestConnectPostgresPoolEmptyURLReturnsNil(t *testing.T) {
	logger := logging.New("error")
	if pool := connectPostgresPool(context.Background(), "", logger); pool != nil {
		t.Fatalf("expected nil pool for empty URL")
	}
}

func TestBuildStoresDefaultsToMemory(t *testing.T) {
	logger := logging.New("error")
	cfg := &appconfig.Config{}

	directory, ledger := buildStores(context.Background(), cfg, logger)

	if _, ok := directory.(*patients.InMemoryDirectory); !ok {
		t.Errorf("expected in-memory directory, got %T", directory)
	}
	if _, ok := ledger.(*appointments.InMemoryLedger); !ok {
		t.Errorf("expected in-memory ledger, got %T", ledger)
	}
}

func TestBuildStoresUsesFileDirectory(t *testing.T) {
	logger := logging.New("error")
	cfg := &appconfig.Config{PatientsFile: t.TempDir() + "/patients.json"}

	directory, ledger := buildStores(context.Background(), cfg, logger)

	if _, ok := directory.(*patients.FileDirectory); !ok {
		t.Errorf("expected file directory, got %T", directory)
	}
	if _, ok := ledger.(*appointments.InMemoryLedger); !ok {
		t.Errorf("expected in-memory ledger, got %T", ledger)
	}
}
