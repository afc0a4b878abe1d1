package app

import "github.com/gin-gonic/gin"

// Module defines the contract for a self-registering business module.
// Each module receives three route groups split by access level: public
// routes require no authentication, authed routes require a valid token
// with any role, and admin routes additionally require the admin role.
// The auth and role middleware are attached to the groups before modules
// register, so modules never do their own access checks at the routing
// layer.
type Module interface {
	RegisterRoutes(public, authed, admin *gin.RouterGroup)
}
