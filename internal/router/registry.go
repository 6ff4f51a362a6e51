package router

import "github.com/gin-gonic/gin"

// Registry collects feature modules and mounts them under the shared /api
// prefix. Middleware added with Use applies to the whole group and runs
// before any module-specific chain; the auth and role guards are attached
// per module instead.
type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api")}
}

// Use appends group-wide middleware. Call before RegisterAll.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

// Add queues a module for registration.
func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

// RegisterAll installs the queued middleware, then every module's routes,
// in the order they were added.
func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
