package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/application"
	"storefront/pkg/response"
)

type VerificationHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewVerificationHandler(svc *application.UserService, logger *logrus.Logger) *VerificationHandler {
	return &VerificationHandler{Svc: svc, Logger: logger}
}

// Validate handles the link from the verification email. A wrong or
// expired token and a missing parameter both read as 400; only a store
// failure is 500.
func (h *VerificationHandler) Validate(c *gin.Context) {
	email := c.Query("email")
	token := c.Query("token")
	if email == "" || token == "" {
		response.Error(c, http.StatusBadRequest, "email and token are required", nil)
		return
	}

	ok, err := h.Svc.VerifyEmail(c.Request.Context(), email, token)
	if err != nil {
		h.Logger.WithError(err).Error("email verification failed")
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	if !ok {
		response.Error(c, http.StatusBadRequest, "verification link is invalid or expired", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "email verified"})
}
