package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestSignupCreatesPlayer(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/signup", SignupRequest{
		Username: "gildong",
		Password: "password123",
		Email:    "gildong@example.com",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	var resp SignupResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" {
		t.Fatal("expected a generated player id")
	}

	stored := env.players.players["gildong"]
	if stored == nil {
		t.Fatal("player not persisted")
	}
	if stored.PasswordHash == "password123" || stored.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}
	if stored.MainHighestScore != 0 || stored.MainHighestCombo != 0 {
		t.Fatal("new players start with zeroed stats")
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	env.signupAndLogin(t, "gildong", "password123")

	w := env.do(t, http.MethodPost, "/signup", SignupRequest{Username: "gildong", Password: "other"}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "already exists") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestSignupRejectsBlankCredentials(t *testing.T) {
	env := newTestEnv(t)

	for _, req := range []SignupRequest{
		{Username: "   ", Password: "password123"},
		{Username: "gildong", Password: ""},
	} {
		w := env.do(t, http.MethodPost, "/signup", req, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %+v, got %d", req, w.Code)
		}
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.signupAndLogin(t, "gildong", "password123")

	w := env.do(t, http.MethodPost, "/login", LoginRequest{Username: "gildong", Password: "wrong"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestLoginUnknownUserSameError(t *testing.T) {
	env := newTestEnv(t)
	env.signupAndLogin(t, "gildong", "password123")

	wrongPass := env.do(t, http.MethodPost, "/login", LoginRequest{Username: "gildong", Password: "wrong"}, "")
	unknownUser := env.do(t, http.MethodPost, "/login", LoginRequest{Username: "nobody", Password: "wrong"}, "")

	// Unknown user and bad password are indistinguishable to the client.
	if wrongPass.Code != unknownUser.Code || wrongPass.Body.String() != unknownUser.Body.String() {
		t.Fatalf("login errors must match: %q vs %q", wrongPass.Body.String(), unknownUser.Body.String())
	}
}

func TestProfileRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/profile", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestProfileReturnsOwnPlayer(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "gildong", "password123")

	w := env.do(t, http.MethodGet, "/api/profile", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["username"] != "gildong" {
		t.Fatalf("unexpected username: %v", resp["username"])
	}
	if _, ok := resp["password_hash"]; ok {
		t.Fatal("password hash must never be serialized")
	}
}
