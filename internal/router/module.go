package router

import "github.com/gin-gonic/gin"

// Module is a self-contained route bundle (users, products, images, health).
// Each module attaches its endpoints and per-route middleware to the group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
