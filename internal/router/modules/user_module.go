package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/application"
	"storefront/internal/container"
	handlers "storefront/internal/interface/http"
	"storefront/internal/interface/middleware"
)

// UserModule wires account routes.
// Public: POST /v1/user, GET /validateEmail
// Protected (HTTP Basic): GET/PUT /v1/user/:id

type UserModule struct {
	Handler      *handlers.UserHandler
	Verification *handlers.VerificationHandler
	Users        *application.UserService
}

func NewUserModule(h *handlers.UserHandler, v *handlers.VerificationHandler, users *application.UserService) *UserModule {
	return &UserModule{Handler: h, Verification: v, Users: users}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	verifyLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/v1/user", registerLimiter, m.Handler.Register)
	rg.GET("/validateEmail", verifyLimiter, m.Verification.Validate)

	auth := rg.Group("/")
	auth.Use(middleware.BasicAuth(m.Users))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUser(), nil))
	{
		auth.GET("/v1/user/:id", m.Handler.Get)
		auth.PUT("/v1/user/:id", m.Handler.Update)
	}
}
