package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
)

var errTest = errors.New("boom")

func TestAdminRoutesRequireAdmin(t *testing.T) {
	e := newTestEnv()
	customer := e.seedUser("c@example.com", entity.RoleCustomer)

	if code, _ := e.do(t, http.MethodGet, "/api/states/", nil, ""); code != http.StatusUnauthorized {
		t.Fatalf("anonymous status = %d", code)
	}
	code, env := e.do(t, http.MethodGet, "/api/states/", nil, e.token(t, customer))
	if code != http.StatusForbidden || env.Detail != "You do not have permission to perform this action." {
		t.Fatalf("customer: %d %+v", code, env)
	}
}

func TestStateCRUD(t *testing.T) {
	e := newTestEnv()
	admin := e.seedUser("admin@example.com", entity.RoleAdmin)
	tok := e.token(t, admin)

	code, env := e.do(t, http.MethodPost, "/api/states/", map[string]any{"name": "Goa", "active": true}, tok)
	if code != http.StatusCreated {
		t.Fatalf("create: %d %+v", code, env)
	}
	var st entity.State
	_ = json.Unmarshal(env.Data, &st)
	if st.ID == 0 || st.Name != "Goa" {
		t.Fatalf("state = %+v", st)
	}

	path := fmt.Sprintf("/api/states/%d/", st.ID)
	if code, env = e.do(t, http.MethodPut, path, map[string]any{"name": "Goa North", "active": false}, tok); code != http.StatusOK {
		t.Fatalf("update: %d %+v", code, env)
	}
	code, env = e.do(t, http.MethodGet, path, nil, tok)
	_ = json.Unmarshal(env.Data, &st)
	if code != http.StatusOK || st.Name != "Goa North" || st.Active {
		t.Fatalf("get: %d %+v", code, st)
	}

	if code, _ = e.do(t, http.MethodDelete, path, nil, tok); code != http.StatusNoContent {
		t.Fatalf("delete status = %d", code)
	}
	if code, _ = e.do(t, http.MethodGet, path, nil, tok); code != http.StatusNotFound {
		t.Fatalf("get after delete = %d", code)
	}
	if code, _ = e.do(t, http.MethodGet, "/api/states/abc/", nil, tok); code != http.StatusNotFound {
		t.Fatalf("non numeric id = %d", code)
	}
	if code, env = e.do(t, http.MethodPost, "/api/states/", map[string]any{"name": ""}, tok); code != http.StatusBadRequest || env.Detail != "name is required" {
		t.Fatalf("blank name: %d %+v", code, env)
	}
}

func TestCatalogActiveDefaultsAndPartialUpdate(t *testing.T) {
	e := newTestEnv()
	tok := e.token(t, e.seedUser("admin@example.com", entity.RoleAdmin))

	code, env := e.do(t, http.MethodPost, "/api/states/", map[string]any{"name": "Goa"}, tok)
	var st entity.State
	_ = json.Unmarshal(env.Data, &st)
	if code != http.StatusCreated || !st.Active {
		t.Fatalf("create without active: %d %+v", code, st)
	}

	code, env = e.do(t, http.MethodPost, "/api/subscriptions/", map[string]any{"name": "Basic", "price": 10}, tok)
	var plan entity.SubscriptionPlan
	_ = json.Unmarshal(env.Data, &plan)
	if code != http.StatusCreated || !plan.Active {
		t.Fatalf("plan without active: %d %+v", code, plan)
	}

	path := fmt.Sprintf("/api/states/%d/", st.ID)
	if code, _ = e.do(t, http.MethodPut, path, map[string]any{"active": false}, tok); code != http.StatusOK {
		t.Fatalf("deactivate: %d", code)
	}
	code, env = e.do(t, http.MethodPut, path, map[string]any{"name": "Goa West"}, tok)
	_ = json.Unmarshal(env.Data, &st)
	if code != http.StatusOK || st.Name != "Goa West" || st.Active {
		t.Fatalf("rename kept flags: %d %+v", code, st)
	}

	if code, _ = e.do(t, http.MethodPut, "/api/states/999/", map[string]any{"name": "X"}, tok); code != http.StatusNotFound {
		t.Fatalf("update missing = %d", code)
	}
}

func TestServiceWithNestedOptions(t *testing.T) {
	e := newTestEnv()
	tok := e.token(t, e.seedUser("admin@example.com", entity.RoleAdmin))

	code, env := e.do(t, http.MethodPost, "/api/services/", map[string]any{"name": "Deep Cleaning", "optional_fields": map[string]any{"rooms": 3}}, tok)
	if code != http.StatusCreated {
		t.Fatalf("create service: %d %+v", code, env)
	}
	var svc entity.Service
	_ = json.Unmarshal(env.Data, &svc)
	if svc.Slug != "deep-cleaning" {
		t.Fatalf("slug = %q", svc.Slug)
	}

	code, env = e.do(t, http.MethodPost, "/api/service-options/", map[string]any{"service": svc.ID, "duration_label": "2 hours", "price": 499.0}, tok)
	if code != http.StatusCreated {
		t.Fatalf("create option: %d %+v", code, env)
	}

	code, env = e.do(t, http.MethodGet, fmt.Sprintf("/api/services/%d/", svc.ID), nil, tok)
	_ = json.Unmarshal(env.Data, &svc)
	if code != http.StatusOK || len(svc.Options) != 1 || svc.Options[0].DurationLabel != "2 hours" {
		t.Fatalf("service = %+v", svc)
	}
}

func TestProviderSetStatusOverHTTP(t *testing.T) {
	e := newTestEnv()
	tok := e.token(t, e.seedUser("admin@example.com", entity.RoleAdmin))
	maid := e.seedUser("m@example.com", entity.RoleProvider)
	p := e.providers.Seed(entity.NewProviderProfile(maid.ID))

	path := fmt.Sprintf("/api/maids/%d/set_status/", p.ID)
	code, env := e.do(t, http.MethodPost, path, map[string]string{"status": "archived"}, tok)
	if code != http.StatusBadRequest || env.Detail != "invalid status" {
		t.Fatalf("bad status: %d %+v", code, env)
	}
	code, env = e.do(t, http.MethodPost, path, map[string]string{"status": "approved"}, tok)
	if code != http.StatusOK {
		t.Fatalf("approve: %d %+v", code, env)
	}
	code, env = e.do(t, http.MethodGet, "/api/maids/?status=approved", nil, tok)
	var list []entity.ProviderProfile
	_ = json.Unmarshal(env.Data, &list)
	if code != http.StatusOK || len(list) != 1 || list[0].ID != p.ID {
		t.Fatalf("list: %d %+v", code, list)
	}
}

func TestContactFlow(t *testing.T) {
	e := newTestEnv()
	tok := e.token(t, e.seedUser("admin@example.com", entity.RoleAdmin))

	code, env := e.do(t, http.MethodPost, "/api/contact/", map[string]string{"full_name": "Ravi", "email": "not-an-email", "message": "hi"}, "")
	if code != http.StatusBadRequest || env.Error["email"] != "must be a valid email" {
		t.Fatalf("bad email: %d %+v", code, env)
	}
	code, _ = e.do(t, http.MethodPost, "/api/contact/", map[string]string{"full_name": "Ravi", "email": "ravi@example.com", "message": "Need a cook"}, "")
	if code != http.StatusCreated {
		t.Fatalf("submit status = %d", code)
	}
	code, env = e.do(t, http.MethodGet, "/api/admin/contact-messages/", nil, tok)
	var msgs []entity.ContactMessage
	_ = json.Unmarshal(env.Data, &msgs)
	if code != http.StatusOK || len(msgs) != 1 || msgs[0].Status != entity.ContactStatusUnread {
		t.Fatalf("list: %d %+v", code, msgs)
	}
}
