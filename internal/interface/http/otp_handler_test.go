package handlers

import (
	"net/http"
	"testing"
	"time"
)

func TestOTPResetOverHTTP(t *testing.T) {
	e := newTestEnv("482913")
	u := e.seedUser("asha@example.com", "customer")

	code, env := e.do(t, http.MethodPost, "/api/otp/request/", map[string]string{"identifier": "asha@example.com", "via": "email"}, "")
	if code != http.StatusOK || env.Detail != "OTP sent if user exists." || !env.Success {
		t.Fatalf("request: %d %+v", code, env)
	}

	e.clock.Advance(5 * time.Minute)
	body := map[string]string{"identifier": "asha@example.com", "via": "email", "code": "482913", "new_password": "N3wPass!"}
	code, env = e.do(t, http.MethodPost, "/api/otp/verify-reset/", body, "")
	if code != http.StatusOK || env.Detail != "Password reset successful." {
		t.Fatalf("verify: %d %+v", code, env)
	}
	if e.users.Password(u.ID) != "hashed:N3wPass!" {
		t.Fatal("password not updated")
	}

	code, env = e.do(t, http.MethodPost, "/api/otp/verify-reset/", body, "")
	if code != http.StatusBadRequest || env.Detail != "Invalid or used OTP" || env.Success {
		t.Fatalf("replay: %d %+v", code, env)
	}
}

func TestOTPRequestErrors(t *testing.T) {
	e := newTestEnv("482913")
	e.seedUser("asha@example.com", "customer")

	cases := []struct {
		name   string
		body   any
		status int
		detail string
	}{
		{"unknown identifier", map[string]string{"identifier": "ghost@example.com", "via": "email"}, http.StatusNotFound, "No user found with provided identifier"},
		{"bad channel", map[string]string{"identifier": "asha@example.com", "via": "sms"}, http.StatusBadRequest, "invalid payload"},
		{"missing identifier", map[string]string{"via": "email"}, http.StatusBadRequest, "invalid payload"},
		{"malformed json", "{", http.StatusBadRequest, "invalid payload"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, env := e.do(t, http.MethodPost, "/api/otp/request/", tc.body, "")
			if code != tc.status || env.Detail != tc.detail {
				t.Fatalf("got %d %q, want %d %q", code, env.Detail, tc.status, tc.detail)
			}
		})
	}
	if e.otps.Len() != 0 {
		t.Fatal("no codes should be issued")
	}
}

func TestOTPVerifyErrors(t *testing.T) {
	e := newTestEnv("482913")
	e.seedUser("asha@example.com", "customer")
	if code, _ := e.do(t, http.MethodPost, "/api/otp/request/", map[string]string{"identifier": "asha@example.com", "via": "email"}, ""); code != http.StatusOK {
		t.Fatalf("request status %d", code)
	}

	missing := map[string]string{"identifier": "asha@example.com", "via": "email", "code": "482913"}
	code, env := e.do(t, http.MethodPost, "/api/otp/verify-reset/", missing, "")
	if code != http.StatusBadRequest || env.Detail != "Missing fields" {
		t.Fatalf("missing: %d %+v", code, env)
	}

	ghost := map[string]string{"identifier": "ghost@example.com", "via": "email", "code": "482913", "new_password": "x"}
	code, env = e.do(t, http.MethodPost, "/api/otp/verify-reset/", ghost, "")
	if code != http.StatusNotFound || env.Detail != "User not found" {
		t.Fatalf("ghost: %d %+v", code, env)
	}

	e.clock.Advance(11 * time.Minute)
	late := map[string]string{"identifier": "asha@example.com", "via": "email", "code": "482913", "new_password": "x"}
	code, env = e.do(t, http.MethodPost, "/api/otp/verify-reset/", late, "")
	if code != http.StatusBadRequest || env.Detail != "OTP expired or invalid" {
		t.Fatalf("expired: %d %+v", code, env)
	}
}

func TestOTPDeliveryFailureIsServerError(t *testing.T) {
	e := newTestEnv("482913")
	e.seedUser("asha@example.com", "customer")
	e.delivery.Err = errTest
	code, env := e.do(t, http.MethodPost, "/api/otp/request/", map[string]string{"identifier": "asha@example.com", "via": "email"}, "")
	if code != http.StatusInternalServerError || env.Detail != internalDetail {
		t.Fatalf("got %d %+v", code, env)
	}
}
