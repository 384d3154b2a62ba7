package helpers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func TestOTPGeneratorFixedWidth(t *testing.T) {
	g := NewOTPGenerator(6)
	for i := 0; i < 200; i++ {
		code, err := g.Generate()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6 chars, got %q", code)
		}
		if strings.Trim(code, "0123456789") != "" {
			t.Fatalf("expected digits only, got %q", code)
		}
	}
}

func TestNewOTPGeneratorClampsDigits(t *testing.T) {
	if g := NewOTPGenerator(0); g.Digits != DefaultOTPDigits {
		t.Fatalf("got %d", g.Digits)
	}
	if g := NewOTPGenerator(12); g.Digits != DefaultOTPDigits {
		t.Fatalf("got %d", g.Digits)
	}
	if g := NewOTPGenerator(8); g.Digits != 8 {
		t.Fatalf("got %d", g.Digits)
	}
	if g := NewOTPGenerator(9); g.Digits != DefaultOTPDigits {
		t.Fatalf("9 digits would overflow otp_codes.code, got %d", g.Digits)
	}
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	hash, err := h.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal plain text")
	}
	if !h.Compare(hash, "s3cret-pass") {
		t.Fatal("expected match")
	}
	if h.Compare(hash, "wrong") {
		t.Fatal("expected mismatch")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("access", "refresh", time.Minute, time.Hour)
	tok, exp, err := m.GenerateAccessToken("user-1", "admin", "sid-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatal("expected future expiry")
	}
	claims, err := m.ParseAccessToken(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != "admin" || claims.SessionID != "sid-1" {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if _, err := m.ParseRefreshToken(tok); err == nil {
		t.Fatal("access token must not validate as refresh token")
	}
}

func TestObjectPathKeepsExtension(t *testing.T) {
	p := ObjectPath("profiles", "user-1", "Me.JPG")
	if !strings.HasPrefix(p, "profiles/user-1/") || !strings.HasSuffix(p, ".jpg") {
		t.Fatalf("unexpected path %q", p)
	}
	if got := PublicURL("bucket", p); got != "https://storage.googleapis.com/bucket/"+p {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestSessionKey(t *testing.T) {
	if got := SessionKey("abc"); got != "user:session:abc" {
		t.Fatalf("got %q", got)
	}
}

func TestObjectStoreIgnoresForeignURLs(t *testing.T) {
	s := ObjectStore{Bucket: "media"}
	if s.Enabled() {
		t.Fatal("store without client must be disabled")
	}
	for _, u := range []string{"", "https://cdn.example.com/a.png", "https://storage.googleapis.com/other/a.png"} {
		if err := s.DeleteURL(context.Background(), u); err != nil {
			t.Fatalf("DeleteURL(%q) = %v", u, err)
		}
	}
}

func TestDeadLetterQueue(t *testing.T) {
	if got := DeadLetterQueue("emails"); got != "emails.dead" {
		t.Fatalf("got %q", got)
	}
}

func TestCookieManagerScopesRefreshCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/auth/login/", nil)

	NewCookieManager("localhost", true).SetPair(c, "a", time.Now().Add(time.Hour), "r", time.Now().Add(24*time.Hour))

	var access, refresh *http.Cookie
	for _, ck := range w.Result().Cookies() {
		switch ck.Name {
		case AccessCookie:
			access = ck
		case RefreshCookie:
			refresh = ck
		}
	}
	if access == nil || access.Path != "/" || !access.HttpOnly || !access.Secure {
		t.Fatalf("access cookie %+v", access)
	}
	if refresh == nil || refresh.Path != "/api/auth/" || refresh.Value != "r" {
		t.Fatalf("refresh cookie %+v", refresh)
	}
}
