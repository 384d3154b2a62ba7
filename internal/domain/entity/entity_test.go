package entity

import (
	"testing"
	"time"
)

func TestOTPCodeIsValid(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	otp := &OTPCode{CreatedAt: t0, ExpiresAt: t0.Add(10 * time.Minute)}

	cases := []struct {
		name string
		now  time.Time
		used bool
		want bool
	}{
		{"at issuance", t0, false, true},
		{"before expiry", t0.Add(5 * time.Minute), false, true},
		{"exactly at expiry", t0.Add(10 * time.Minute), false, true},
		{"after expiry", t0.Add(10*time.Minute + time.Nanosecond), false, false},
		{"used with time left", t0.Add(time.Minute), true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			otp.Used = tc.used
			if got := otp.IsValid(tc.now); got != tc.want {
				t.Fatalf("IsValid() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"":         RoleCustomer,
		"customer": RoleCustomer,
		"maid":     RoleProvider,
		"Provider": RoleProvider,
		"admin":    RoleAdmin,
	}
	for in, want := range cases {
		got, ok := ParseRole(in)
		if !ok || got != want {
			t.Fatalf("ParseRole(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
	if _, ok := ParseRole("superuser"); ok {
		t.Fatal("expected unknown role to be rejected")
	}
}

func TestParseChannel(t *testing.T) {
	if c, ok := ParseChannel("email"); !ok || c != ChannelEmail {
		t.Fatalf("email: got %q %v", c, ok)
	}
	if c, ok := ParseChannel("phone"); !ok || c != ChannelPhone {
		t.Fatalf("phone: got %q %v", c, ok)
	}
	for _, bad := range []string{"", "sms", "EMAIL"} {
		if _, ok := ParseChannel(bad); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestDefaultUsername(t *testing.T) {
	if got := DefaultUsername("asha@example.com"); got != "asha" {
		t.Fatalf("got %q", got)
	}
}

func TestVerificationStatusValid(t *testing.T) {
	for _, s := range []VerificationStatus{VerificationPending, VerificationApproved, VerificationRejected} {
		if !s.Valid() {
			t.Fatalf("%q should be valid", s)
		}
	}
	if VerificationStatus("archived").Valid() {
		t.Fatal("archived should be invalid")
	}
}
