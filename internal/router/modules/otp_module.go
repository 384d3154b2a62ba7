package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/blinkmaid-backend/internal/interface/http"
	"github.com/oksasatya/blinkmaid-backend/internal/interface/middleware"
)

// OTPModule mounts the public password reset endpoints.
type OTPModule struct {
	Handler *handlers.OTPHandler
	Redis   *redis.Client
}

func NewOTPModule(h *handlers.OTPHandler, rdb *redis.Client) *OTPModule {
	return &OTPModule{Handler: h, Redis: rdb}
}

func (m *OTPModule) Register(rg *gin.RouterGroup) {
	requestLimiter := middleware.RateLimit(m.Redis, 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	verifyLimiter := middleware.RateLimit(m.Redis, 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/otp/request/", requestLimiter, m.Handler.RequestOTP)
	rg.POST("/otp/verify-reset/", verifyLimiter, m.Handler.VerifyReset)
}
