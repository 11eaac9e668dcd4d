package controllers_test

import (
	"net/http"
	"testing"

	"purdetall-backend/config"
	"purdetall-backend/models"
)

func createAppointment(t *testing.T, r http.Handler, date, timeSlot string) uint {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/appointments", "", map[string]interface{}{
		"client_name":      "María García",
		"client_phone":     "+34600111222",
		"client_email":     "maria@example.com",
		"appointment_date": date,
		"appointment_time": timeSlot,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		AppointmentID uint `json:"appointmentId"`
	}
	decodeBody(t, w, &resp)
	if resp.AppointmentID == 0 {
		t.Fatal("expected appointmentId in response")
	}
	return resp.AppointmentID
}

func TestCreateAppointment(t *testing.T) {
	r := setupServer(t)

	id := createAppointment(t, r, "2026-10-01", "10:00")

	var appt models.Appointment
	if err := config.DB.First(&appt, id).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if appt.Status != models.AppointmentPending {
		t.Errorf("expected pending status, got %q", appt.Status)
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	r := setupServer(t)

	w := doJSON(r, http.MethodPost, "/api/appointments", "", map[string]interface{}{
		"client_name":      "",
		"client_phone":     "",
		"appointment_date": "not-a-date",
		"appointment_time": "25:99",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp struct {
		Errors []struct {
			Path string `json:"path"`
		} `json:"errors"`
	}
	decodeBody(t, w, &resp)
	if len(resp.Errors) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %s", len(resp.Errors), w.Body.String())
	}
}

func TestCreateAppointmentSlotTaken(t *testing.T) {
	r := setupServer(t)

	createAppointment(t, r, "2026-10-01", "11:00")

	w := doJSON(r, http.MethodPost, "/api/appointments", "", map[string]interface{}{
		"client_name":      "Pedro López",
		"client_phone":     "+34600333444",
		"appointment_date": "2026-10-01",
		"appointment_time": "11:00",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for taken slot, got %d", w.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &resp)
	if resp.Error != "Esa fecha y hora ya están ocupadas" {
		t.Errorf("unexpected error message: %q", resp.Error)
	}
}

func TestCancelledAppointmentFreesSlot(t *testing.T) {
	r := setupServer(t)
	token := adminToken(t)

	createAppointment(t, r, "2026-10-01", "12:00")

	w := doJSON(r, http.MethodPut, "/api/appointments/1/status", token, map[string]string{
		"status": models.AppointmentCancelled,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("cancel failed: %d: %s", w.Code, w.Body.String())
	}

	// The slot can be booked again once the previous appointment is cancelled.
	createAppointment(t, r, "2026-10-01", "12:00")
}

func TestUpdateAppointmentStatusInvalid(t *testing.T) {
	r := setupServer(t)
	token := adminToken(t)
	createAppointment(t, r, "2026-10-01", "13:00")

	w := doJSON(r, http.MethodPut, "/api/appointments/1/status", token, map[string]string{
		"status": "teleported",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAvailableTimesExcludesBooked(t *testing.T) {
	r := setupServer(t)

	createAppointment(t, r, "2026-10-02", "09:00")
	createAppointment(t, r, "2026-10-02", "15:00")

	w := doJSON(r, http.MethodGet, "/api/appointments/available-times/2026-10-02", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		AvailableTimes []string `json:"availableTimes"`
	}
	decodeBody(t, w, &resp)

	if len(resp.AvailableTimes) != len(models.WorkingHours)-2 {
		t.Fatalf("expected %d free slots, got %d", len(models.WorkingHours)-2, len(resp.AvailableTimes))
	}
	for _, slot := range resp.AvailableTimes {
		if slot == "09:00" || slot == "15:00" {
			t.Errorf("booked slot %s still reported available", slot)
		}
	}
}

func TestAvailableTimesEmptyDay(t *testing.T) {
	r := setupServer(t)

	w := doJSON(r, http.MethodGet, "/api/appointments/available-times/2026-10-03", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		AvailableTimes []string `json:"availableTimes"`
	}
	decodeBody(t, w, &resp)
	if len(resp.AvailableTimes) != len(models.WorkingHours) {
		t.Errorf("expected all %d slots, got %d", len(models.WorkingHours), len(resp.AvailableTimes))
	}
}

func TestListAppointmentsRequiresAuth(t *testing.T) {
	r := setupServer(t)

	w := doJSON(r, http.MethodGet, "/api/appointments", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestListAppointmentsByStatus(t *testing.T) {
	r := setupServer(t)
	token := adminToken(t)

	createAppointment(t, r, "2026-10-04", "10:00")
	createAppointment(t, r, "2026-10-04", "11:00")

	w := doJSON(r, http.MethodPut, "/api/appointments/1/status", token, map[string]string{
		"status": models.AppointmentConfirmed,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status update failed: %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/api/appointments/status/confirmed", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var list []map[string]interface{}
	decodeBody(t, w, &list)
	if len(list) != 1 {
		t.Fatalf("expected 1 confirmed appointment, got %d", len(list))
	}
}

func TestDeleteAppointment(t *testing.T) {
	r := setupServer(t)
	token := adminToken(t)
	createAppointment(t, r, "2026-10-05", "10:00")

	w := doJSON(r, http.MethodDelete, "/api/appointments/1", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodDelete, "/api/appointments/1", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", w.Code)
	}
}
