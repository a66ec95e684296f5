package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pantryplate/backend/internal/service"
)

// 10MB, matching the client-side upload limit.
const maxImageBytes = 10 << 20

// ImageHandler accepts recipe photo uploads and stores them in S3.
type ImageHandler struct {
	uploader service.ImageUploader
	log      *logrus.Logger
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(uploader service.ImageUploader, log *logrus.Logger) *ImageHandler {
	return &ImageHandler{uploader: uploader, log: log}
}

// RegisterRoutes mounts the upload endpoint on the API group.
func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/images", h.Upload)
}

// Upload handles POST /api/images (multipart field "image") and
// responds with the stored object's public URL.
func (h *ImageHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image size should be less than 10MB"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	url, err := h.uploader.UploadRecipeImage(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		var validation *service.ValidationError
		switch {
		case errors.Is(err, service.ErrStorageUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		case errors.As(err, &validation):
			c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
		default:
			h.log.WithError(err).Error("failed to upload image")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}
