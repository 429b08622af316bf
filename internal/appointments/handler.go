package appointments

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clinicops/appointment-api/internal/observability/metrics"
	"github.com/clinicops/appointment-api/pkg/logging"
)

// Handler handles HTTP requests for the booking ledger.
//
// Wire contract: the confirm endpoint always answers HTTP 200 with the
// outcome in the status field. The lookup endpoint is newer and uses
// plain REST statuses.
type Handler struct {
	ledger  Ledger
	logger  *logging.Logger
	metrics *metrics.ClinicMetrics
}

// NewHandler creates a new appointments handler
func NewHandler(ledger Ledger, logger *logging.Logger, m *metrics.ClinicMetrics) *Handler {
	return &Handler{
		ledger:  ledger,
		logger:  logger,
		metrics: m,
	}
}

type confirmResponse struct {
	Status       string   `json:"status"`
	Message      string   `json:"message"`
	Confirmation *Booking `json:"appointment_confirmation,omitempty"`
}

// Confirm handles POST /appointments/confirm requests
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode confirm request", "error", err)
		h.metrics.ObserveConfirmation("missing_fields")
		writeConfirm(w, confirmResponse{Status: "error", Message: "Missing appointment details."})
		return
	}

	booking, err := h.ledger.Confirm(r.Context(), &req)
	switch {
	case errors.Is(err, ErrMissingFields):
		h.metrics.ObserveConfirmation("missing_fields")
		writeConfirm(w, confirmResponse{Status: "error", Message: "Missing appointment details."})
		return
	case errors.Is(err, ErrDuplicateSlot):
		h.metrics.ObserveConfirmation("duplicate_slot")
		writeConfirm(w, confirmResponse{Status: "error", Message: "This slot is already booked for the same patient and doctor"})
		return
	case errors.Is(err, ErrInvalidAmount):
		h.metrics.ObserveConfirmation("invalid_amount")
		writeConfirm(w, confirmResponse{Status: "error", Message: "Invalid payment amount"})
		return
	case err != nil:
		h.logger.Error("failed to confirm appointment", "error", err)
		h.metrics.ObserveConfirmation("error")
		writeConfirm(w, confirmResponse{Status: "error", Message: "Missing appointment details."})
		return
	}

	h.logger.Info("appointment confirmed",
		"appointment_id", booking.AppointmentID,
		"doctor", booking.Doctor,
		"date", booking.Date,
		"time", booking.Time,
	)
	h.metrics.ObserveConfirmation("confirmed")
	writeConfirm(w, confirmResponse{
		Status:       "success",
		Message:      "Appointment and payment confirmed successfully",
		Confirmation: booking,
	})
}

// Get handles GET /appointments/{appointmentID} requests
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "appointmentID")
	if appointmentID == "" {
		http.Error(w, "missing appointment id", http.StatusBadRequest)
		return
	}

	booking, err := h.ledger.GetByID(r.Context(), appointmentID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			http.Error(w, "booking not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to load booking", "error", err, "appointment_id", appointmentID)
		http.Error(w, "failed to load booking", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(booking)
}

func writeConfirm(w http.ResponseWriter, resp confirmResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
