package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/container"
	handlers "storefront/internal/interface/http"
	"storefront/internal/interface/middleware"
)

type HealthModule struct {
	Handler *handlers.HealthHandler
}

func NewHealthModule(h *handlers.HealthHandler) *HealthModule {
	return &HealthModule{Handler: h}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	// Monitors from inside the network bypass the limiter
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/healthz", rl, m.Handler.Check)
}
