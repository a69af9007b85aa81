package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/gaienhofen/user-onboarding/internal/interface/http"
	"github.com/gaienhofen/user-onboarding/internal/interface/middleware"
)

// UserModule wires the onboarding endpoints:
// POST /api/users, GET /api/users?email=
type UserModule struct {
	Handler *handlers.UserHandler
	Redis   *redis.Client
}

func NewUserModule(h *handlers.UserHandler, rdb *redis.Client) *UserModule {
	return &UserModule{Handler: h, Redis: rdb}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	createLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	lookupLimiter := middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/users", createLimiter, m.Handler.Create)
	rg.GET("/users", lookupLimiter, m.Handler.FindByEmail)
}
