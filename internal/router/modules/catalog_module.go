package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/blinkmaid-backend/internal/interface/http"
	"github.com/oksasatya/blinkmaid-backend/pkg/helpers"
)

// CatalogModule mounts admin CRUD for locations, services, options and plans.
type CatalogModule struct {
	Handler *handlers.CatalogHandler
	Redis   *redis.Client
	JWT     *helpers.JWTManager
}

func NewCatalogModule(h *handlers.CatalogHandler, rdb *redis.Client, jwt *helpers.JWTManager) *CatalogModule {
	return &CatalogModule{Handler: h, Redis: rdb, JWT: jwt}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	admin := adminGroup(rg, m.Redis, m.JWT)
	mount(admin, "states", m.Handler.States())
	mount(admin, "cities", m.Handler.Cities())
	mount(admin, "services", m.Handler.Services())
	mount(admin, "service-options", m.Handler.Options())
	mount(admin, "subscriptions", m.Handler.Plans())
}

func mount(g *gin.RouterGroup, name string, res handlers.Resource) {
	g.GET("/"+name+"/", res.List)
	g.POST("/"+name+"/", res.Create)
	g.GET("/"+name+"/:id/", res.Get)
	g.PUT("/"+name+"/:id/", res.Update)
	g.DELETE("/"+name+"/:id/", res.Delete)
}
