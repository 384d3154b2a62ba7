package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	"github.com/oksasatya/blinkmaid-backend/pkg/helpers"
)

func init() { gin.SetMode(gin.TestMode) }

type envelope struct {
	Status    int    `json:"status"`
	Success   bool   `json:"success"`
	Detail    string `json:"detail"`
	RequestID string `json:"request_id"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return e
}

func protected(jwt *helpers.JWTManager, guards ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	chain := append([]gin.HandlerFunc{Auth(nil, jwt)}, guards...)
	chain = append(chain, func(c *gin.Context) {
		id := IdentityFrom(c)
		c.JSON(http.StatusOK, gin.H{"uid": id.UserID, "role": id.Role})
	})
	r.GET("/p", chain...)
	return r
}

func TestAuthAndRequireRole(t *testing.T) {
	jwt := helpers.NewJWTManager("a", "r", time.Hour, time.Hour)
	adminTok, _, _ := jwt.GenerateAccessToken("u-admin", string(entity.RoleAdmin), "s1")
	custTok, _, _ := jwt.GenerateAccessToken("u-cust", string(entity.RoleCustomer), "s2")
	refreshTok, _, _ := jwt.GenerateRefreshToken("u-admin", string(entity.RoleAdmin), "s1")

	r := protected(jwt, RequireRole(entity.RoleAdmin))

	cases := []struct {
		name   string
		header string
		cookie string
		want   int
	}{
		{"no credentials", "", "", http.StatusUnauthorized},
		{"garbage token", "Bearer nope", "", http.StatusUnauthorized},
		{"refresh token as access", "Bearer " + refreshTok, "", http.StatusUnauthorized},
		{"customer", "Bearer " + custTok, "", http.StatusForbidden},
		{"admin header", "Bearer " + adminTok, "", http.StatusOK},
		{"admin cookie", "", adminTok, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/p", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: helpers.AccessCookie, Value: tc.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tc.want, w.Body.String())
			}
			if tc.want != http.StatusOK {
				if e := decode(t, w); e.Success || e.Status != tc.want || e.RequestID == "" {
					t.Fatalf("envelope = %+v", e)
				}
			}
		})
	}
}

func TestRequireRoleWithoutAuth(t *testing.T) {
	r := gin.New()
	r.GET("/admin", RequireRole(entity.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
	if e := decode(t, w); e.Detail != "Authentication credentials were not provided." {
		t.Fatalf("detail = %q", e.Detail)
	}
}

func TestRealIP(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"cloudflare", map[string]string{"CF-Connecting-IP": "203.0.113.7", "X-Forwarded-For": "198.51.100.1"}, "203.0.113.7"},
		{"forwarded", map[string]string{"X-Forwarded-For": " 198.51.100.1 , 10.0.0.1"}, "198.51.100.1"},
		{"invalid cloudflare falls through", map[string]string{"CF-Connecting-IP": "nope", "X-Forwarded-For": "198.51.100.2"}, "198.51.100.2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			var got string
			r.GET("/", RealIP(), func(c *gin.Context) { got = c.GetString(CtxRealIPKey) })
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			r.ServeHTTP(httptest.NewRecorder(), req)
			if got != tc.want {
				t.Fatalf("real ip = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRequestIDReusesValidInbound(t *testing.T) {
	r := gin.New()
	r.GET("/", RequestID(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	const inbound = "0b6f0b4e-2f7e-4c8d-9a43-6a1b2c3d4e5f"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, inbound)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(HeaderRequestID); got != inbound {
		t.Fatalf("request id = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "not-a-uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(HeaderRequestID); got == "not-a-uuid" || got == "" {
		t.Fatalf("request id = %q", got)
	}
}

func TestRateLimitWithoutRedisPassesThrough(t *testing.T) {
	r := gin.New()
	r.GET("/", RateLimit(nil, 1, time.Minute, KeyByIPAndPath(), nil), func(c *gin.Context) { c.Status(http.StatusOK) })
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, w.Code)
		}
	}
}

func TestAllowPrivateIP(t *testing.T) {
	allow := AllowPrivateIP()
	for ip, want := range map[string]bool{"127.0.0.1": true, "10.1.2.3": true, "203.0.113.9": false, "": false} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.RemoteAddr = ""
		c.Set(CtxRealIPKey, ip)
		if ip == "" {
			c.Set(CtxRealIPKey, "unknown")
		}
		if got := allow(c); got != want {
			t.Fatalf("allow(%q) = %v, want %v", ip, got, want)
		}
	}
}
