package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/application"
	"storefront/internal/domain/entity"
	"storefront/pkg/response"
)

const actorKey = "actor"

// BasicAuth authenticates every request with HTTP Basic credentials and
// sets the account in the Gin context on success. Credentials are
// verified against the database on each request; there are no sessions.
func BasicAuth(users *application.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, password, ok := c.Request.BasicAuth()
		if !ok {
			unauthorized(c, "missing credentials")
			return
		}
		u, err := users.Authenticate(c.Request.Context(), email, password)
		if errors.Is(err, application.ErrInvalidCredentials) {
			unauthorized(c, "invalid credentials")
			return
		}
		if err != nil {
			response.AbortError(c, http.StatusInternalServerError, "internal error", nil)
			return
		}
		c.Set(actorKey, u)
		c.Next()
	}
}

// Actor returns the authenticated account set by BasicAuth, or nil on
// routes that run without it.
func Actor(c *gin.Context) *entity.User {
	v, ok := c.Get(actorKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", `Basic realm="storefront"`)
	response.AbortError(c, http.StatusUnauthorized, msg, nil)
}
