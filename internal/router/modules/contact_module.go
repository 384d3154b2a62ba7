package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	handlers "github.com/oksasatya/blinkmaid-backend/internal/interface/http"
	"github.com/oksasatya/blinkmaid-backend/internal/interface/middleware"
	"github.com/oksasatya/blinkmaid-backend/pkg/helpers"
)

type ContactModule struct {
	Handler *handlers.ContactHandler
	Redis   *redis.Client
	JWT     *helpers.JWTManager
}

func NewContactModule(h *handlers.ContactHandler, rdb *redis.Client, jwt *helpers.JWTManager) *ContactModule {
	return &ContactModule{Handler: h, Redis: rdb, JWT: jwt}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	rg.POST("/contact/", middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath(), nil), m.Handler.Submit)

	admin := adminGroup(rg, m.Redis, m.JWT)
	admin.GET("/admin/contact-messages/", m.Handler.List)
}

// adminGroup returns a group that requires a valid session with the admin role.
func adminGroup(rg *gin.RouterGroup, rdb *redis.Client, jwt *helpers.JWTManager) *gin.RouterGroup {
	return rg.Group("/", middleware.Auth(rdb, jwt), middleware.RequireRole(entity.RoleAdmin))
}
