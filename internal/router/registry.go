package router

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/blinkmaid-backend/pkg/response"
)

// Module mounts one feature's routes on the API group.
type Module interface {
	Register(rg *gin.RouterGroup)
}

// Registry collects feature modules and group-wide middleware for the /api tree.
type Registry struct {
	Engine  *gin.Engine
	API     *gin.RouterGroup
	chain   []gin.HandlerFunc
	modules []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api")}
}

// Use queues middleware for the API group. It is applied in RegisterAll, ahead of any route.
func (r *Registry) Use(mw ...gin.HandlerFunc) { r.chain = append(r.chain, mw...) }

func (r *Registry) Add(mods ...Module) { r.modules = append(r.modules, mods...) }

// RegisterAll mounts every module and installs the envelope-style 404 for unknown paths.
func (r *Registry) RegisterAll() {
	r.API.Use(r.chain...)
	for _, m := range r.modules {
		m.Register(r.API)
	}
	r.Engine.NoRoute(response.NotFound)
}
