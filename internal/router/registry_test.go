package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type pingModule struct{}

func (pingModule) Register(rg *gin.RouterGroup) {
	rg.GET("/ping/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("mw")) })
}

func TestRegistryMountsUnderAPI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	reg := NewRegistry(engine)
	reg.Add(pingModule{})
	reg.Use(func(c *gin.Context) { c.Set("mw", "seen") })
	reg.RegisterAll()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping/", nil))
	if w.Code != http.StatusOK || w.Body.String() != "seen" {
		t.Fatalf("got %d %q", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping/", nil))
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), `"detail":"Not found."`) {
		t.Fatalf("route outside /api answered %d %s", w.Code, w.Body.String())
	}
}
