package mailer

import (
	"context"
	"strings"
	"testing"
)

func TestMailgunSendRejectsTooManyTags(t *testing.T) {
	m := NewMailgun("mg.example.com", "key-test", "Blinkmaid <no-reply@example.com>", "")
	m.Tags = []string{"transactional", "otp", "password-reset", "extra"}

	err := m.Send(context.Background(), "user@example.com", "Reset", "code 123456", "")
	if err == nil {
		t.Fatal("expected tag limit error")
	}
	if !strings.Contains(err.Error(), `mailgun tag "extra"`) {
		t.Fatalf("err = %v", err)
	}
}

func TestNewMailgunDefaults(t *testing.T) {
	m := NewMailgun("mg.example.com", "key-test", "no-reply@example.com", "")
	if len(m.Tags) != 1 || m.Tags[0] != "transactional" {
		t.Fatalf("tags = %v", m.Tags)
	}
	if m.Timeout != defaultSendTimeout {
		t.Fatalf("timeout = %v", m.Timeout)
	}
}
