package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/clinicops/appointment-api/internal/appointments"
	httpmiddleware "github.com/clinicops/appointment-api/internal/http/middleware"
	"github.com/clinicops/appointment-api/internal/patients"
	"github.com/clinicops/appointment-api/internal/scheduling"
	"github.com/clinicops/appointment-api/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger              *logging.Logger
	PatientsHandler     *patients.Handler
	SchedulingHandler   *scheduling.Handler
	AppointmentsHandler *appointments.Handler
	MetricsHandler      http.Handler
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/patients", func(r chi.Router) {
		r.Post("/validate", cfg.PatientsHandler.Validate)
		r.Post("/register", cfg.PatientsHandler.Register)
	})

	r.Post("/slots", cfg.SchedulingHandler.AvailableSlots)

	r.Route("/appointments", func(r chi.Router) {
		r.Post("/confirm", cfg.AppointmentsHandler.Confirm)
		r.Get("/{appointmentID}", cfg.AppointmentsHandler.Get)
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
