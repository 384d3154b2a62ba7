package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/blinkmaid-backend/internal/interface/http"
	"github.com/oksasatya/blinkmaid-backend/internal/interface/middleware"
	"github.com/oksasatya/blinkmaid-backend/pkg/helpers"
)

// UserModule mounts the signed-in user's dashboard and profile routes.
type UserModule struct {
	Handler *handlers.UserHandler
	Redis   *redis.Client
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, rdb *redis.Client, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, Redis: rdb, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Redis, m.JWT))
	{
		auth.GET("/dashboard/", m.Handler.Dashboard)
		auth.PUT("/profile/", m.Handler.UpdateProfile)
		auth.POST("/profile/image/",
			middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByUserID(), nil),
			m.Handler.UploadImage,
		)
	}
}
