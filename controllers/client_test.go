package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"purdetall-backend/config"
	"purdetall-backend/models"
)

func createClient(t *testing.T, r http.Handler, token, name, email string) uint {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/clients", token, map[string]string{
		"name":  name,
		"email": email,
		"phone": "+34600777888",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		ClientID uint `json:"clientId"`
	}
	decodeBody(t, w, &resp)
	return resp.ClientID
}

func TestClientsRequireAdmin(t *testing.T) {
	r := setupServer(t)

	w := doJSON(r, http.MethodGet, "/api/clients", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestCreateClientValidation(t *testing.T) {
	r := setupServer(t)
	token := adminToken(t)

	w := doJSON(r, http.MethodPost, "/api/clients", token, map[string]string{
		"name":  "",
		"email": "no-valido",
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
	if len(resp.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(resp.Errors))
	}
}

func TestGetClientWithHistory(t *testing.T) {
	r := setupServer(t)
	token := adminToken(t)

	id := createClient(t, r, token, "Carlos Ruiz", "carlos@example.com")

	appt := models.Appointment{
		ClientID:        &id,
		ClientName:      "Carlos Ruiz",
		ClientPhone:     "+34600777888",
		AppointmentDate: "2026-09-15",
		AppointmentTime: "10:00",
		Status:          models.AppointmentCompleted,
	}
	if err := config.DB.Create(&appt).Error; err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/api/clients/%d", id), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Name         string               `json:"name"`
		Appointments []models.Appointment `json:"appointments"`
	}
	decodeBody(t, w, &resp)
	if resp.Name != "Carlos Ruiz" {
		t.Errorf("name = %q", resp.Name)
	}
	if len(resp.Appointments) != 1 {
		t.Fatalf("expected 1 appointment in history, got %d", len(resp.Appointments))
	}
}

func TestSearchClients(t *testing.T) {
	r := setupServer(t)
	token := adminToken(t)

	createClient(t, r, token, "Ana Belén", "ana@example.com")
	createClient(t, r, token, "Bernardo Soto", "bernardo@example.com")

	w := doJSON(r, http.MethodGet, "/api/clients/search/ana", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var list []models.Client
	decodeBody(t, w, &list)
	if len(list) != 1 || list[0].Name != "Ana Belén" {
		t.Fatalf("unexpected search result: %+v", list)
	}
}

func TestUpdateClient(t *testing.T) {
	r := setupServer(t)
	token := adminToken(t)

	id := createClient(t, r, token, "Nombre Viejo", "viejo@example.com")

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/clients/%d", id), token, map[string]string{
		"name":  "Nombre Nuevo",
		"email": "nuevo@example.com",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var client models.Client
	if err := config.DB.First(&client, id).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if client.Name != "Nombre Nuevo" {
		t.Errorf("name = %q", client.Name)
	}
}

func TestDeleteClientNotFound(t *testing.T) {
	r := setupServer(t)
	token := adminToken(t)

	w := doJSON(r, http.MethodDelete, "/api/clients/42", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
