package api

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pantryplate/backend/internal/service"
)

// AddReviewRequest is the body of POST /api/recipes/:id/reviews.
type AddReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// ExtractRequest is the body of POST /api/ingredients/extract. Either a
// base64-encoded image (sent to the caption service) or a ready caption
// may be supplied.
type ExtractRequest struct {
	Image   string `json:"image"`
	Caption string `json:"caption"`
}

// ExtractResponse returns the caption that was matched and the
// canonical ingredient names found in it.
type ExtractResponse struct {
	Caption     string   `json:"caption"`
	Ingredients []string `json:"ingredients"`
}

// ParseFilter translates the list endpoint's query parameters into a
// service.Filter. Absent parameters, "all", and zero leave their
// dimension unconstrained.
func ParseFilter(c *gin.Context) (service.Filter, error) {
	var f service.Filter

	if raw := c.Query("ingredients"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part != "" {
				f.Ingredients = append(f.Ingredients, part)
			}
		}
	}

	if raw := c.Query("dietaryPreferences"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				f.DietaryPreferences = append(f.DietaryPreferences, part)
			}
		}
	}

	if raw := c.Query("timeFilter"); raw != "" && raw != "all" {
		suffix, ok := strings.CutPrefix(raw, "under")
		if !ok {
			return f, &service.ValidationError{Field: "timeFilter", Message: "must be \"all\" or \"under<minutes>\""}
		}
		minutes, err := strconv.Atoi(suffix)
		if err != nil || minutes <= 0 {
			return f, &service.ValidationError{Field: "timeFilter", Message: "must be \"all\" or \"under<minutes>\""}
		}
		f.MaxCookingTime = minutes
	}

	if raw := c.Query("difficultyFilter"); raw != "" && raw != "all" {
		f.Difficulty = raw
	}

	if raw := c.Query("cuisineFilter"); raw != "" && raw != "all" {
		f.Cuisine = raw
	}

	if raw := c.Query("ratingFilter"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, &service.ValidationError{Field: "ratingFilter", Message: "must be numeric"}
		}
		f.MinRating = rating
	}

	return f, nil
}
