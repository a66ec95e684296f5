package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pantryplate/backend/internal/model"
)

// Filter is one set of search constraints. Zero values mean
// "unconstrained" for their dimension; active dimensions AND together.
type Filter struct {
	// Ingredients matches a recipe when any of its ingredient strings
	// contains any listed value, case-insensitively.
	Ingredients []string
	// DietaryPreferences must all be present in the recipe's
	// dietaryRestrictions set.
	DietaryPreferences []string
	// MaxCookingTime keeps recipes with cookingTime strictly below it.
	MaxCookingTime int
	// Difficulty is an exact match against easy|medium|hard.
	Difficulty string
	// Cuisine is a case-insensitive substring match.
	Cuisine string
	// MinRating keeps recipes with rating >= MinRating.
	MinRating float64
}

// RecipeService handles recipe retrieval and review aggregation.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// jsonText returns the expression that exposes a JSONB column as plain
// text for LIKE matching, per dialect.
func (s *RecipeService) jsonText(column string) string {
	if s.db.Dialector.Name() == "postgres" {
		return column + "::text"
	}
	return column
}

// SearchRecipes returns the recipes matching every active dimension of
// f, in store-native order.
func (s *RecipeService) SearchRecipes(ctx context.Context, f Filter) ([]model.Recipe, error) {
	query := s.db.WithContext(ctx).Model(&model.Recipe{})

	if len(f.Ingredients) > 0 {
		col := s.jsonText("ingredients")
		var group *gorm.DB
		for _, ing := range f.Ingredients {
			like := "%" + strings.ToLower(strings.TrimSpace(ing)) + "%"
			cond := s.db.Where(fmt.Sprintf("LOWER(%s) LIKE ?", col), like)
			if group == nil {
				group = cond
			} else {
				group = group.Or(cond)
			}
		}
		query = query.Where(group)
	}

	if len(f.DietaryPreferences) > 0 {
		col := s.jsonText("dietary_restrictions")
		for _, pref := range f.DietaryPreferences {
			// Quote the JSON-encoded element so this is set
			// membership, not substring matching.
			like := `%"` + strings.TrimSpace(pref) + `"%`
			query = query.Where(fmt.Sprintf("%s LIKE ?", col), like)
		}
	}

	if f.MaxCookingTime > 0 {
		query = query.Where("cooking_time < ?", f.MaxCookingTime)
	}

	if f.Difficulty != "" {
		query = query.Where("difficulty = ?", f.Difficulty)
	}

	if f.Cuisine != "" {
		query = query.Where("LOWER(cuisine) LIKE ?", "%"+strings.ToLower(f.Cuisine)+"%")
	}

	if f.MinRating > 0 {
		query = query.Where("rating >= ?", f.MinRating)
	}

	var recipes []model.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe by its external id.
func (s *RecipeService) GetRecipe(ctx context.Context, recipeID string) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "recipe_id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return &recipe, nil
}

// AddReview appends a review to the recipe with the given external id
// and recomputes the mean rating, in a single transaction. Nothing is
// written when the recipe does not exist.
func (s *RecipeService) AddReview(ctx context.Context, recipeID string, rating int, comment string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	var review model.Review
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe model.Recipe
		if err := tx.First(&recipe, "recipe_id = ?", recipeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return fmt.Errorf("failed to load recipe: %w", err)
		}

		review = model.Review{
			ID:        uuid.NewString(),
			UserID:    model.PlaceholderUserID,
			Rating:    rating,
			Comment:   comment,
			CreatedAt: time.Now().UTC(),
		}
		recipe.Reviews = append(recipe.Reviews, review)
		recipe.RecalculateRating()

		if err := tx.Save(&recipe).Error; err != nil {
			return fmt.Errorf("failed to save review: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}
