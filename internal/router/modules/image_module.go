package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/application"
	"storefront/internal/container"
	handlers "storefront/internal/interface/http"
	"storefront/internal/interface/middleware"
)

// ImageModule wires product image routes.
// Public: GET /v1/product/:id/image, GET /v1/product/:id/image/:imageId
// Protected (HTTP Basic): POST /v1/product/:id/image, DELETE .../:imageId

type ImageModule struct {
	Handler *handlers.ImageHandler
	Users   *application.UserService
}

func NewImageModule(h *handlers.ImageHandler, users *application.UserService) *ImageModule {
	return &ImageModule{Handler: h, Users: users}
}

func (m *ImageModule) Register(rg *gin.RouterGroup) {
	publicLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil)

	rg.GET("/v1/product/:id/image", publicLimiter, m.Handler.List)
	rg.GET("/v1/product/:id/image/:imageId", publicLimiter, m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.BasicAuth(m.Users))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUser(), nil))
	{
		auth.POST("/v1/product/:id/image", m.Handler.Upload)
		auth.DELETE("/v1/product/:id/image/:imageId", m.Handler.Delete)
	}
}
