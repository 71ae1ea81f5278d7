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

type ProductHandler struct {
	Svc    *application.ProductService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

type productRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	SKU          string `json:"sku" binding:"required"`
	Manufacturer string `json:"manufacturer" binding:"required"`
	Quantity     int    `json:"quantity" binding:"gte=0"`
}

type productPatchRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	SKU          *string `json:"sku"`
	Manufacturer *string `json:"manufacturer"`
	Quantity     *int    `json:"quantity"`
}

func productBody(p *entity.Product) gin.H {
	return gin.H{
		"id":                p.ID,
		"name":              p.Name,
		"description":       p.Description,
		"sku":               p.SKU,
		"manufacturer":      p.Manufacturer,
		"quantity":          p.Quantity,
		"owner_user_id":     p.OwnerUserID,
		"date_added":        p.DateAdded,
		"date_last_updated": p.DateLastUpdated,
	}
}

func productID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "invalid product id", nil)
		return 0, false
	}
	return id, true
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), middleware.Actor(c), application.ProductInput{
		Name:         req.Name,
		Description:  req.Description,
		SKU:          req.SKU,
		Manufacturer: req.Manufacturer,
		Quantity:     req.Quantity,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, productBody(p))
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, productBody(p))
}

func (h *ProductHandler) Replace(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	if _, err := h.Svc.Replace(c.Request.Context(), middleware.Actor(c), id, application.ProductInput{
		Name:         req.Name,
		Description:  req.Description,
		SKU:          req.SKU,
		Manufacturer: req.Manufacturer,
		Quantity:     req.Quantity,
	}); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) Patch(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	var req productPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	if _, err := h.Svc.Patch(c.Request.Context(), middleware.Actor(c), id, application.ProductPatch{
		Name:         req.Name,
		Description:  req.Description,
		SKU:          req.SKU,
		Manufacturer: req.Manufacturer,
		Quantity:     req.Quantity,
	}); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.Actor(c), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("product search failed")
		response.Error(c, http.StatusInternalServerError, "search unavailable", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": hits, "count": len(hits)})
}
