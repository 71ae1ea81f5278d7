package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/application"
	"storefront/pkg/response"
)

// writeServiceError maps application sentinels onto HTTP statuses.
// Conflicts surface as 400, matching the public contract rather than 409.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrEmailTaken):
		response.Error(c, http.StatusBadRequest, "username already exists", nil)
	case errors.Is(err, application.ErrSKUTaken):
		response.Error(c, http.StatusBadRequest, "sku already exists", nil)
	case errors.Is(err, application.ErrEmptyFile):
		response.Error(c, http.StatusBadRequest, "file is empty", nil)
	case errors.Is(err, application.ErrUnsupportedFileType):
		response.Error(c, http.StatusBadRequest, "unsupported file type", nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		c.Header("WWW-Authenticate", `Basic realm="storefront"`)
		response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, application.ErrEmailNotVerified):
		response.Error(c, http.StatusForbidden, "account not verified", nil)
	case errors.Is(err, application.ErrAccessDenied):
		response.Error(c, http.StatusForbidden, "access denied", nil)
	case errors.Is(err, application.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, application.ErrProductNotFound):
		response.Error(c, http.StatusNotFound, "product not found", nil)
	case errors.Is(err, application.ErrImageNotFound):
		response.Error(c, http.StatusNotFound, "image not found", nil)
	default:
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
	}
}
