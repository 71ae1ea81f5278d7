package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/application"
	"storefront/internal/container"
	handlers "storefront/internal/interface/http"
	"storefront/internal/interface/middleware"
)

// ProductModule wires catalog routes.
// Public: GET /v1/product/:id, GET /v1/product/search
// Protected (HTTP Basic): POST /v1/product, PUT/PATCH/DELETE /v1/product/:id

type ProductModule struct {
	Handler *handlers.ProductHandler
	Users   *application.UserService
}

func NewProductModule(h *handlers.ProductHandler, users *application.UserService) *ProductModule {
	return &ProductModule{Handler: h, Users: users}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	publicLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil)
	searchLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.GET("/v1/product/search", searchLimiter, m.Handler.Search)
	rg.GET("/v1/product/:id", publicLimiter, m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.BasicAuth(m.Users))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUser(), nil))
	{
		auth.POST("/v1/product", m.Handler.Create)
		auth.PUT("/v1/product/:id", m.Handler.Replace)
		auth.PATCH("/v1/product/:id", m.Handler.Patch)
		auth.DELETE("/v1/product/:id", m.Handler.Delete)
	}
}
