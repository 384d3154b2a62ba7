package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/blinkmaid-backend/internal/interface/http"
	"github.com/oksasatya/blinkmaid-backend/pkg/helpers"
)

type ProviderModule struct {
	Handler *handlers.ProviderHandler
	Redis   *redis.Client
	JWT     *helpers.JWTManager
}

func NewProviderModule(h *handlers.ProviderHandler, rdb *redis.Client, jwt *helpers.JWTManager) *ProviderModule {
	return &ProviderModule{Handler: h, Redis: rdb, JWT: jwt}
}

func (m *ProviderModule) Register(rg *gin.RouterGroup) {
	admin := adminGroup(rg, m.Redis, m.JWT)
	admin.GET("/maids/", m.Handler.List)
	admin.GET("/maids/search/", m.Handler.Search)
	admin.GET("/maids/:id/", m.Handler.Get)
	admin.POST("/maids/:id/set_status/", m.Handler.SetStatus)
}
