package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/blinkmaid-backend/internal/interface/http"
	"github.com/oksasatya/blinkmaid-backend/internal/interface/middleware"
	"github.com/oksasatya/blinkmaid-backend/pkg/helpers"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	Redis   *redis.Client
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, rdb *redis.Client, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, Redis: rdb, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	registerLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(m.Redis, 20, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/register/", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login/", loginLimiter, m.Handler.Login)
	rg.POST("/auth/token/refresh/", loginLimiter, m.Handler.Refresh)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Redis, m.JWT))
	{
		auth.POST("/auth/logout/", m.Handler.Logout)
	}
}
