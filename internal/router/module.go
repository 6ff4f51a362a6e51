package router

import "github.com/gin-gonic/gin"

// Module is one feature area of the API: auth, tasks, admin, debug. Each
// module owns its routes and the middleware chain guarding them, and hooks
// them onto the shared /api group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
