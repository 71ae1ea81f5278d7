package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/application"
	"storefront/internal/domain/entity"
	"storefront/internal/interface/middleware"
	"storefront/pkg/response"
	"storefront/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Username  string `json:"username" binding:"required,email"`
	Password  string `json:"password" binding:"required,pwd"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// updateUserRequest rejects any attempt to change the username: the
// field is bound so its presence can be detected, never applied.
type updateUserRequest struct {
	Username  *string `json:"username"`
	Password  string  `json:"password"`
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name" binding:"required"`
}

func userBody(u *entity.User) gin.H {
	return gin.H{
		"id":              u.ID,
		"username":        u.Email,
		"first_name":      u.FirstName,
		"last_name":       u.LastName,
		"account_created": u.AccountCreated,
		"account_updated": u.AccountUpdated,
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:     req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, userBody(u))
}

func (h *UserHandler) Get(c *gin.Context) {
	actor := middleware.Actor(c)
	if err := application.RequireVerified(actor); err != nil {
		writeServiceError(c, err)
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	if actor.ID != id {
		response.Error(c, http.StatusForbidden, "access denied", nil)
		return
	}
	c.JSON(http.StatusOK, userBody(actor))
}

func (h *UserHandler) Update(c *gin.Context) {
	actor := middleware.Actor(c)
	if err := application.RequireVerified(actor); err != nil {
		writeServiceError(c, err)
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	if actor.ID != id {
		response.Error(c, http.StatusForbidden, "access denied", nil)
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if req.Username != nil {
		response.Error(c, http.StatusBadRequest, "username cannot be changed", nil)
		return
	}

	if _, err := h.Svc.UpdateProfile(c.Request.Context(), actor.Email, application.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	}); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
