package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"purdetall-backend/config"
	"purdetall-backend/models"
	"purdetall-backend/utils"
)

func TestLogin(t *testing.T) {
	r := setupServer(t)
	adminToken(t)

	w := doJSON(r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	decodeBody(t, w, &resp)
	if !resp.Success || resp.Token == "" {
		t.Fatalf("expected token in response, got %+v", resp)
	}
	if resp.User.Username != "admin" || resp.User.Role != "admin" {
		t.Errorf("unexpected user payload: %+v", resp.User)
	}
}

func TestLoginByEmail(t *testing.T) {
	r := setupServer(t)
	adminToken(t)

	w := doJSON(r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "admin@purdetall.es",
		"password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupServer(t)
	adminToken(t)

	w := doJSON(r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &resp)
	if resp.Error != "Credenciales inválidas" {
		t.Errorf("unexpected error message: %q", resp.Error)
	}
}

func TestLoginMissingFields(t *testing.T) {
	r := setupServer(t)

	w := doJSON(r, http.MethodPost, "/api/auth/login", "", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp struct {
		Errors []struct {
			Msg  string `json:"msg"`
			Path string `json:"path"`
		} `json:"errors"`
	}
	decodeBody(t, w, &resp)
	if len(resp.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(resp.Errors))
	}
}

func TestVerify(t *testing.T) {
	r := setupServer(t)
	token := adminToken(t)

	w := doJSON(r, http.MethodGet, "/api/auth/verify", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		User struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	decodeBody(t, w, &resp)
	if resp.User.Username != "admin" {
		t.Errorf("unexpected identity: %+v", resp)
	}
}

func TestVerifyWithoutToken(t *testing.T) {
	r := setupServer(t)

	w := doJSON(r, http.MethodGet, "/api/auth/verify", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	r := setupServer(t)
	adminToken(t)

	claims := jwt.MapClaims{
		"id":       1,
		"username": "admin",
		"role":     "admin",
		"iat":      time.Now().Add(-2 * time.Hour).Unix(),
		"exp":      time.Now().Add(-time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	w := doJSON(r, http.MethodGet, "/api/auth/verify", signed, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", w.Code)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	r := setupServer(t)

	claims := jwt.MapClaims{
		"id":       1,
		"username": "admin",
		"role":     "admin",
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	w := doJSON(r, http.MethodGet, "/api/auth/verify", signed, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for forged token, got %d", w.Code)
	}
}

func TestChangePassword(t *testing.T) {
	r := setupServer(t)
	token := adminToken(t)

	w := doJSON(r, http.MethodPost, "/api/auth/change-password", token, map[string]string{
		"currentPassword": "secret123",
		"newPassword":     "newsecret456",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var user models.User
	if err := config.DB.Where("username = ?", "admin").First(&user).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if !utils.CheckPasswordHash("newsecret456", user.Password) {
		t.Error("password was not updated")
	}
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	r := setupServer(t)
	token := adminToken(t)

	w := doJSON(r, http.MethodPost, "/api/auth/change-password", token, map[string]string{
		"currentPassword": "nope",
		"newPassword":     "newsecret456",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestChangePasswordTooShort(t *testing.T) {
	r := setupServer(t)
	token := adminToken(t)

	w := doJSON(r, http.MethodPost, "/api/auth/change-password", token, map[string]string{
		"currentPassword": "secret123",
		"newPassword":     "abc",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
