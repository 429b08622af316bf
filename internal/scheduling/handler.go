package scheduling

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/clinicops/appointment-api/internal/observability/metrics"
	"github.com/clinicops/appointment-api/pkg/logging"
)

// Handler handles HTTP requests for slot listing.
//
// Wire contract: always HTTP 200 with the outcome in the status field.
type Handler struct {
	directory *SpecialityDirectory
	slots     *SlotGenerator
	logger    *logging.Logger
	metrics   *metrics.ClinicMetrics
}

// NewHandler creates a new scheduling handler
func NewHandler(directory *SpecialityDirectory, slots *SlotGenerator, logger *logging.Logger, m *metrics.ClinicMetrics) *Handler {
	return &Handler{
		directory: directory,
		slots:     slots,
		logger:    logger,
		metrics:   m,
	}
}

// SlotRequest represents the request body for listing available slots
type SlotRequest struct {
	Speciality string `json:"speciality"`
	Doctor     string `json:"doctor"`
}

type slotResponse struct {
	Status         string `json:"status"`
	Message        string `json:"message,omitempty"`
	Doctor         string `json:"doctor,omitempty"`
	Speciality     string `json:"speciality,omitempty"`
	AvailableSlots []Slot `json:"available_slots,omitempty"`
}

// AvailableSlots handles POST /slots requests
func (h *Handler) AvailableSlots(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode slot request", "error", err)
		h.metrics.ObserveSlotRequest("invalid")
		writeSlots(w, slotResponse{Status: "error", Message: "Invalid speciality"})
		return
	}

	if err := h.directory.CheckDoctor(req.Speciality, req.Doctor); err != nil {
		h.metrics.ObserveSlotRequest("invalid")
		if errors.Is(err, ErrDoctorNotAvailable) {
			writeSlots(w, slotResponse{Status: "error", Message: "Doctor not available in this speciality"})
			return
		}
		writeSlots(w, slotResponse{Status: "error", Message: "Invalid speciality"})
		return
	}

	slots := h.slots.Candidates()
	h.logger.Info("slots generated", "speciality", req.Speciality, "doctor", req.Doctor, "count", len(slots))
	h.metrics.ObserveSlotRequest("ok")
	writeSlots(w, slotResponse{
		Status:         "success",
		Doctor:         req.Doctor,
		Speciality:     req.Speciality,
		AvailableSlots: slots,
	})
}

func writeSlots(w http.ResponseWriter, resp slotResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
