package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() { gin.SetMode(gin.TestMode) }

func serve(h gin.HandlerFunc) *httptest.ResponseRecorder {
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(RequestIDKey, "rid-1") })
	r.GET("/x", h, func(c *gin.Context) { c.Header("X-After", "ran") })
	r.NoRoute(NotFound)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	return w
}

func TestSuccessEnvelope(t *testing.T) {
	w := serve(func(c *gin.Context) {
		Success(c, 0, map[string]int{"n": 1}, "ok", nil)
	})
	var got APIResponse[map[string]int]
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusOK || !got.Success || got.Status != 200 || got.Detail != "ok" || got.Data["n"] != 1 || got.RequestID != "rid-1" {
		t.Fatalf("unexpected envelope %+v", got)
	}
}

func TestErrorAborts(t *testing.T) {
	w := serve(func(c *gin.Context) {
		Error[any](c, 0, "bad", errors.New("x").Error())
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d", w.Code)
	}
	if w.Header().Get("X-After") != "" {
		t.Fatal("chain continued after error")
	}
	var got APIResponse[any]
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.Success || got.Detail != "bad" || got.Error != "x" {
		t.Fatalf("unexpected envelope %+v", got)
	}
}

func TestNotFound(t *testing.T) {
	r := gin.New()
	r.NoRoute(NotFound)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	var got APIResponse[any]
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if w.Code != http.StatusNotFound || got.Detail != "Not found." {
		t.Fatalf("got %d %+v", w.Code, got)
	}
}
