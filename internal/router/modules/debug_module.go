package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/blinkmaid-backend/pkg/helpers"
)

// DebugModule exposes expvar counters to admins.
type DebugModule struct {
	Redis *redis.Client
	JWT   *helpers.JWTManager
}

func NewDebugModule(rdb *redis.Client, jwt *helpers.JWTManager) *DebugModule {
	return &DebugModule{Redis: rdb, JWT: jwt}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	admin := adminGroup(rg, m.Redis, m.JWT)
	admin.GET("/debug/vars", gin.WrapH(expvar.Handler()))
}
