package router

import (
	"github.com/gaienhofen/user-onboarding/internal/container"
	handlers "github.com/gaienhofen/user-onboarding/internal/interface/http"
	"github.com/gaienhofen/user-onboarding/internal/router/modules"
)

// InitModules builds every feature module from c and adds it to the registry.
// Call once during startup, before RegisterAll.
func InitModules(r *Registry, c *container.Container) error {
	svc, err := c.UserService()
	if err != nil {
		return err
	}
	handler := handlers.NewUserHandler(svc, c.Logger)
	r.Add(modules.NewUserModule(handler, c.Redis))

	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(c.Redis))
	}
	return nil
}
