package patients

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/clinicops/appointment-api/internal/observability/metrics"
	"github.com/clinicops/appointment-api/pkg/logging"
)

// Handler handles HTTP requests for the patient directory.
//
// Wire contract: legacy clients expect HTTP 200 on every response with the
// outcome carried in the status field, so error variants are mapped to
// {"status":"error"} rather than 4xx codes.
type Handler struct {
	directory Directory
	logger    *logging.Logger
	metrics   *metrics.ClinicMetrics
}

// NewHandler creates a new patients handler
func NewHandler(directory Directory, logger *logging.Logger, m *metrics.ClinicMetrics) *Handler {
	return &Handler{
		directory: directory,
		logger:    logger,
		metrics:   m,
	}
}

type response struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Patient *Patient `json:"patient,omitempty"`
}

// Validate handles POST /patients/validate requests
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode validate request", "error", err)
		h.metrics.ObserveValidation("not_found")
		writeEnvelope(w, response{Status: "error", Message: "Patient not found. Please register first."})
		return
	}

	record, err := h.directory.Validate(r.Context(), &req)
	if err != nil {
		h.metrics.ObserveValidation("not_found")
		writeEnvelope(w, response{Status: "error", Message: "Patient not found. Please register first."})
		return
	}

	h.logger.Info("patient validated", "name", record.Name)
	h.metrics.ObserveValidation("found")
	writeEnvelope(w, response{
		Status:  "success",
		Message: "Patient " + record.Name + " validated successfully",
		Patient: record,
	})
}

// Register handles POST /patients/register requests
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode register request", "error", err)
		h.metrics.ObserveRegistration("invalid")
		writeEnvelope(w, response{Status: "error", Message: "Invalid or missing patient details."})
		return
	}

	record, err := h.directory.Register(r.Context(), &req)
	switch {
	case errors.Is(err, ErrAlreadyRegistered):
		h.metrics.ObserveRegistration("duplicate")
		writeEnvelope(w, response{Status: "error", Message: "Patient already registered."})
		return
	case errors.Is(err, ErrInvalidInput):
		h.metrics.ObserveRegistration("invalid")
		writeEnvelope(w, response{Status: "error", Message: "Invalid or missing patient details."})
		return
	case err != nil:
		h.logger.Error("failed to register patient", "error", err)
		h.metrics.ObserveRegistration("invalid")
		writeEnvelope(w, response{Status: "error", Message: "Invalid or missing patient details."})
		return
	}

	h.logger.Info("patient registered", "name", record.Name)
	h.metrics.ObserveRegistration("registered")
	writeEnvelope(w, response{
		Status:  "success",
		Message: "Patient " + record.Name + " registered successfully",
		Patient: record,
	})
}

func writeEnvelope(w http.ResponseWriter, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
