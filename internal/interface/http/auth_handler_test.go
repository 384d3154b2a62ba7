package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
)

func TestRegisterLoginDashboard(t *testing.T) {
	e := newTestEnv()

	code, env := e.do(t, http.MethodPost, "/api/auth/register/", map[string]string{"email": "meena@example.com", "password": "Sup3rSecret", "role": "maid"}, "")
	if code != http.StatusCreated {
		t.Fatalf("register: %d %+v", code, env)
	}
	var user map[string]any
	_ = json.Unmarshal(env.Data, &user)
	if user["role"] != "provider" || user["username"] != "meena" {
		t.Fatalf("user = %v", user)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatal("password must not be exposed")
	}

	code, env = e.do(t, http.MethodPost, "/api/auth/register/", map[string]string{"email": "meena@example.com", "password": "Sup3rSecret"}, "")
	if code != http.StatusConflict {
		t.Fatalf("duplicate: %d %+v", code, env)
	}
	code, env = e.do(t, http.MethodPost, "/api/auth/register/", map[string]string{"email": "x@example.com", "password": "short"}, "")
	if code != http.StatusBadRequest || env.Error["password"] == "" {
		t.Fatalf("short password: %d %+v", code, env)
	}

	code, env = e.do(t, http.MethodPost, "/api/auth/login/", map[string]string{"email": "meena@example.com", "password": "wrong"}, "")
	if code != http.StatusUnauthorized {
		t.Fatalf("bad login: %d %+v", code, env)
	}
	code, env = e.do(t, http.MethodPost, "/api/auth/login/", map[string]string{"email": "meena@example.com", "password": "Sup3rSecret"}, "")
	if code != http.StatusOK {
		t.Fatalf("login: %d %+v", code, env)
	}
	var tokens struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	_ = json.Unmarshal(env.Data, &tokens)
	if tokens.Access == "" || tokens.Refresh == "" {
		t.Fatalf("tokens = %+v", tokens)
	}

	code, env = e.do(t, http.MethodGet, "/api/dashboard/", nil, tokens.Access)
	var dash map[string]json.RawMessage
	_ = json.Unmarshal(env.Data, &dash)
	if code != http.StatusOK || dash["profile"] == nil {
		t.Fatalf("dashboard: %d %s", code, env.Data)
	}

	code, env = e.do(t, http.MethodPost, "/api/auth/token/refresh/", map[string]string{"refresh": tokens.Refresh}, "")
	if code != http.StatusOK {
		t.Fatalf("refresh: %d %+v", code, env)
	}
}

func TestCustomerDashboardAndProfile(t *testing.T) {
	e := newTestEnv()
	u := e.seedUser("c@example.com", entity.RoleCustomer)
	tok := e.token(t, u)

	code, env := e.do(t, http.MethodGet, "/api/dashboard/", nil, tok)
	var dash struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(env.Data, &dash)
	if code != http.StatusOK || dash.Message != "Customer dashboard summary" {
		t.Fatalf("dashboard: %d %s", code, env.Data)
	}

	code, env = e.do(t, http.MethodPut, "/api/profile/", map[string]string{"city": "Pune", "gender": "female"}, tok)
	var view map[string]any
	_ = json.Unmarshal(env.Data, &view)
	if code != http.StatusOK || view["city"] != "Pune" || view["gender"] != "female" {
		t.Fatalf("profile: %d %v", code, view)
	}
	if code, _ = e.do(t, http.MethodPut, "/api/profile/", map[string]string{"gender": "robot"}, tok); code != http.StatusBadRequest {
		t.Fatalf("bad gender status = %d", code)
	}
}
