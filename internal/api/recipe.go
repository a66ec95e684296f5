package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pantryplate/backend/internal/model"
	"github.com/pantryplate/backend/internal/service"
)

// RecipeHandler serves the recipe listing and review endpoints.
type RecipeHandler struct {
	recipes *service.RecipeService
	log     *logrus.Logger
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipes *service.RecipeService, log *logrus.Logger) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, log: log}
}

// RegisterRoutes mounts the recipe endpoints on the API group.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("/:id/reviews", h.AddReview)
	}
}

// ListRecipes handles GET /api/recipes with the six filter dimensions.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	filter, err := ParseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipes, err := h.recipes.SearchRecipes(c.Request.Context(), filter)
	if err != nil {
		h.log.WithError(err).Error("failed to fetch recipes")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	if recipes == nil {
		recipes = []model.Recipe{}
	}
	c.JSON(http.StatusOK, recipes)
}

// GetRecipe handles GET /api/recipes/:id.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipes.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		h.log.WithError(err).Error("failed to fetch recipe")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// AddReview handles POST /api/recipes/:id/reviews. On success the
// created review is returned and the recipe's mean rating has already
// been updated in the same transaction.
func (h *RecipeHandler) AddReview(c *gin.Context) {
	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.recipes.AddReview(c.Request.Context(), c.Param("id"), req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		default:
			h.log.WithError(err).Error("failed to add review")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add review"})
		}
		return
	}

	c.JSON(http.StatusOK, review)
}
