package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pantryplate/backend/internal/ingredients"
	"github.com/pantryplate/backend/internal/middleware"
	"github.com/pantryplate/backend/internal/service"
)

// IngredientHandler turns uploaded photos (via the caption service) or
// raw captions into canonical ingredient names.
type IngredientHandler struct {
	captioner service.Captioner
	log       *logrus.Logger
}

// NewIngredientHandler creates a new IngredientHandler.
func NewIngredientHandler(captioner service.Captioner, log *logrus.Logger) *IngredientHandler {
	return &IngredientHandler{captioner: captioner, log: log}
}

// RegisterRoutes mounts the extraction endpoint, rate limited because
// every image request costs a captioning call upstream.
func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup, limiter *middleware.RateLimiter) {
	router.POST("/ingredients/extract", limiter.Middleware(), h.Extract)
}

// Extract handles POST /api/ingredients/extract. An empty ingredient
// list is a normal response ("try another image"), not an error.
func (h *IngredientHandler) Extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	caption := req.Caption
	if caption == "" {
		if req.Image == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "either image or caption is required"})
			return
		}

		generated, err := h.captioner.Caption(c.Request.Context(), req.Image)
		if err != nil {
			h.respondCaptionError(c, err)
			return
		}
		caption = generated
	}

	c.JSON(http.StatusOK, ExtractResponse{
		Caption:     caption,
		Ingredients: ingredients.Extract(caption),
	})
}

// respondCaptionError maps the caption error taxonomy onto status codes
// and user-facing messages that distinguish the cause.
func (h *IngredientHandler) respondCaptionError(c *gin.Context, err error) {
	var upstream *service.UpstreamError
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Invalid API key. Please check your API keys."})
	case errors.Is(err, service.ErrCaptionTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Request timed out. Please try again."})
	case errors.Is(err, service.ErrCaptionNetwork):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Network error. Please try again."})
	case errors.As(err, &upstream):
		msg := upstream.Message
		if msg == "" {
			msg = "Caption service error occurred."
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": msg})
	default:
		h.log.WithError(err).Error("caption request failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to process the image"})
	}
}
