package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/application"
)

type HealthHandler struct {
	Svc    *application.HealthService
	Logger *logrus.Logger
}

func NewHealthHandler(svc *application.HealthService, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{Svc: svc, Logger: logger}
}

// Check is deliberately strict: any query string or request body fails
// with 400 before the store is touched, so monitors cannot accidentally
// smuggle payloads through the probe.
func (h *HealthHandler) Check(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("X-Content-Type-Options", "nosniff")

	if c.Request.URL.RawQuery != "" {
		c.Status(http.StatusBadRequest)
		return
	}
	// ContentLength is -1 for chunked bodies.
	if c.Request.ContentLength > 0 || c.Request.ContentLength == -1 {
		c.Status(http.StatusBadRequest)
		return
	}

	if !h.Svc.Check(c.Request.Context()) {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	c.Status(http.StatusOK)
}
