package scheduling

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clinicops/appointment-api/pkg/logging"
)

func newTestHandler() *Handler {
	return NewHandler(NewSpecialityDirectory(), NewSlotGenerator(), logging.Default(), nil)
}

func postSlots(t *testing.T, handler *Handler, payload any) (*httptest.ResponseRecorder, slotResponse) {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/slots", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.AvailableSlots(w, req)

	var resp slotResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return w, resp
}

func TestAvailableSlots_Success(t *testing.T) {
	handler := newTestHandler()

	w, resp := postSlots(t, handler, SlotRequest{Speciality: "Cardiology", Doctor: "Dr. Meena Sharma"})

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if resp.Status != "success" {
		t.Fatalf("expected success envelope, got %+v", resp)
	}
	if len(resp.AvailableSlots) != 3 {
		t.Errorf("expected 3 slots, got %d", len(resp.AvailableSlots))
	}
	if resp.Doctor != "Dr. Meena Sharma" || resp.Speciality != "Cardiology" {
		t.Errorf("expected echoed pair, got %+v", resp)
	}
}

func TestAvailableSlots_UnknownSpeciality(t *testing.T) {
	handler := newTestHandler()

	w, resp := postSlots(t, handler, SlotRequest{Speciality: "Homeopathy", Doctor: "Dr. Meena Sharma"})
	if w.Code != http.StatusOK {
		t.Errorf("legacy contract requires HTTP 200, got %d", w.Code)
	}
	if resp.Status != "error" || resp.Message != "Invalid speciality" {
		t.Errorf("unexpected envelope %+v", resp)
	}
}

func TestAvailableSlots_DoctorNotInSpeciality(t *testing.T) {
	handler := newTestHandler()

	_, resp := postSlots(t, handler, SlotRequest{Speciality: "Cardiology", Doctor: "Dr. Priya Nair"})
	if resp.Status != "error" || resp.Message != "Doctor not available in this speciality" {
		t.Errorf("unexpected envelope %+v", resp)
	}
}

func TestAvailableSlots_MalformedJSON(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/slots", strings.NewReader("{"))
	w := httptest.NewRecorder()
	handler.AvailableSlots(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("boundary faults map to the error envelope, not %d", w.Code)
	}
}
