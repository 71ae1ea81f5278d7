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
)

type ImageHandler struct {
	Svc    *application.ImageService
	Logger *logrus.Logger
}

func NewImageHandler(svc *application.ImageService, logger *logrus.Logger) *ImageHandler {
	return &ImageHandler{Svc: svc, Logger: logger}
}

func imageBody(img *entity.Image) gin.H {
	return gin.H{
		"image_id":     img.ID,
		"product_id":   img.ProductID,
		"user_id":      img.UserID,
		"file_name":    img.FileName,
		"content_type": img.ContentType,
		"file_size":    img.FileSize,
		"storage_key":  img.StorageKey,
		"date_created": img.DateCreated,
	}
}

func imageID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("imageId"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "invalid image id", nil)
		return 0, false
	}
	return id, true
}

func (h *ImageHandler) Upload(c *gin.Context) {
	pid, ok := productID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "cannot read file", nil)
		return
	}
	defer f.Close()

	img, err := h.Svc.Upload(c.Request.Context(), middleware.Actor(c), pid, application.UploadInput{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, imageBody(img))
}

func (h *ImageHandler) List(c *gin.Context) {
	pid, ok := productID(c)
	if !ok {
		return
	}
	images, err := h.Svc.List(c.Request.Context(), pid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]gin.H, 0, len(images))
	for _, img := range images {
		out = append(out, imageBody(img))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ImageHandler) Get(c *gin.Context) {
	pid, ok := productID(c)
	if !ok {
		return
	}
	iid, ok := imageID(c)
	if !ok {
		return
	}
	img, err := h.Svc.Get(c.Request.Context(), pid, iid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, imageBody(img))
}

func (h *ImageHandler) Delete(c *gin.Context) {
	pid, ok := productID(c)
	if !ok {
		return
	}
	iid, ok := imageID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.Actor(c), pid, iid); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
