package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gaienhofen/user-onboarding/internal/container"
	"github.com/gaienhofen/user-onboarding/internal/interface/middleware"
	"github.com/gaienhofen/user-onboarding/pkg/validation"
)

// NewEngine builds the Gin engine with global middleware and all modules registered.
func NewEngine(c *container.Container) (*gin.Engine, error) {
	validation.Init()

	r := gin.New()
	if err := r.SetTrustedProxies(c.Config.TrustedProxyList()); err != nil {
		return nil, err
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	// cors panics on an empty origin list, so it is only mounted when configured
	if origins := c.Config.CORSOrigins(); len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
			ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	if c.Config.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	reg := NewRegistry(r)
	reg.Use(middleware.RealIP())
	if err := InitModules(reg, c); err != nil {
		return nil, err
	}
	reg.RegisterAll()
	return r, nil
}
