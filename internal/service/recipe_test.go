package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantryplate/backend/internal/model"
	"github.com/pantryplate/backend/internal/testhelpers"
)

func newRecipe(id, name string) model.Recipe {
	return model.Recipe{
		RecipeID:            id,
		Name:                name,
		Description:         "test recipe",
		Ingredients:         model.JSONBStringArray{"2 cups rice", "1 onion"},
		Instructions:        model.JSONBStringArray{"step 1", "step 2"},
		CookingTime:         45,
		Servings:            4,
		Difficulty:          model.DifficultyMedium,
		DietaryRestrictions: model.JSONBStringArray{},
		Cuisine:             "International",
		ImageURL:            "https://example.com/image.jpg",
	}
}

func TestSearchRecipesNoFilters(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)

	testhelpers.CreateRecipe(t, db, newRecipe("r1", "One"))
	testhelpers.CreateRecipe(t, db, newRecipe("r2", "Two"))

	got, err := svc.SearchRecipes(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSearchRecipesIngredientSubstring(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)

	curry := newRecipe("curry", "Chicken Curry")
	curry.Ingredients = model.JSONBStringArray{"500g Chicken Breast", "coconut milk"}
	testhelpers.CreateRecipe(t, db, curry)

	salad := newRecipe("salad", "Green Salad")
	salad.Ingredients = model.JSONBStringArray{"lettuce", "cucumber"}
	testhelpers.CreateRecipe(t, db, salad)

	// Case-insensitive substring against any ingredient entry.
	got, err := svc.SearchRecipes(context.Background(), Filter{Ingredients: []string{"chicken"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "curry", got[0].RecipeID)

	// Multiple listed ingredients OR together.
	got, err = svc.SearchRecipes(context.Background(), Filter{Ingredients: []string{"chicken", "lettuce"}})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.SearchRecipes(context.Background(), Filter{Ingredients: []string{"tofu"}})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchRecipesDietaryRequiresAll(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)

	veganOnly := newRecipe("vegan-only", "Vegan Bowl")
	veganOnly.DietaryRestrictions = model.JSONBStringArray{"vegan"}
	testhelpers.CreateRecipe(t, db, veganOnly)

	all := newRecipe("all-tags", "Everything Bowl")
	all.DietaryRestrictions = model.JSONBStringArray{"vegan", "gluten-free", "keto"}
	testhelpers.CreateRecipe(t, db, all)

	got, err := svc.SearchRecipes(context.Background(), Filter{
		DietaryPreferences: []string{"vegan", "gluten-free"},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "all-tags", got[0].RecipeID)
}

func TestSearchRecipesTimeBoundary(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)

	r := newRecipe("thirty", "Thirty Minutes")
	r.CookingTime = 30
	testhelpers.CreateRecipe(t, db, r)

	// Strict less-than: 30 does not match under30.
	got, err := svc.SearchRecipes(context.Background(), Filter{MaxCookingTime: 30})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = svc.SearchRecipes(context.Background(), Filter{MaxCookingTime: 31})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSearchRecipesDifficulty(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)

	easy := newRecipe("easy", "Easy Dish")
	easy.Difficulty = model.DifficultyEasy
	testhelpers.CreateRecipe(t, db, easy)

	hard := newRecipe("hard", "Hard Dish")
	hard.Difficulty = model.DifficultyHard
	testhelpers.CreateRecipe(t, db, hard)

	got, err := svc.SearchRecipes(context.Background(), Filter{Difficulty: model.DifficultyEasy})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "easy", got[0].RecipeID)
}

func TestSearchRecipesCuisineSubstring(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)

	r := newRecipe("pasta", "Pasta")
	r.Cuisine = "Italian"
	testhelpers.CreateRecipe(t, db, r)

	got, err := svc.SearchRecipes(context.Background(), Filter{Cuisine: "ital"})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.SearchRecipes(context.Background(), Filter{Cuisine: "mexican"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchRecipesMinRatingInclusive(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)

	r := newRecipe("rated", "Rated Dish")
	r.Rating = 4.0
	testhelpers.CreateRecipe(t, db, r)

	got, err := svc.SearchRecipes(context.Background(), Filter{MinRating: 4.0})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.SearchRecipes(context.Background(), Filter{MinRating: 4.5})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchRecipesDimensionsCombineWithAnd(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)

	match := newRecipe("match", "Quick Vegan Pasta")
	match.CookingTime = 20
	match.Cuisine = "Italian"
	match.DietaryRestrictions = model.JSONBStringArray{"vegan"}
	testhelpers.CreateRecipe(t, db, match)

	slow := newRecipe("slow", "Slow Vegan Pasta")
	slow.CookingTime = 90
	slow.Cuisine = "Italian"
	slow.DietaryRestrictions = model.JSONBStringArray{"vegan"}
	testhelpers.CreateRecipe(t, db, slow)

	got, err := svc.SearchRecipes(context.Background(), Filter{
		DietaryPreferences: []string{"vegan"},
		MaxCookingTime:     30,
		Cuisine:            "italian",
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "match", got[0].RecipeID)
}

func TestAddReviewAggregatesMean(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()

	testhelpers.CreateRecipe(t, db, newRecipe("r1", "One"))

	before, err := svc.GetRecipe(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, before.Rating)

	_, err = svc.AddReview(ctx, "r1", 5, "great")
	require.NoError(t, err)
	_, err = svc.AddReview(ctx, "r1", 3, "okay")
	require.NoError(t, err)

	after, err := svc.GetRecipe(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 4.0, after.Rating)

	_, err = svc.AddReview(ctx, "r1", 4, "good")
	require.NoError(t, err)

	after, err = svc.GetRecipe(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 4.0, after.Rating)
	assert.Len(t, after.Reviews, 3)
}

func TestAddReviewFieldsAndOrder(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()

	testhelpers.CreateRecipe(t, db, newRecipe("r1", "One"))

	first, err := svc.AddReview(ctx, "r1", 5, "first")
	require.NoError(t, err)
	second, err := svc.AddReview(ctx, "r1", 2, "second")
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, model.PlaceholderUserID, first.UserID)
	assert.False(t, first.CreatedAt.IsZero())

	recipe, err := svc.GetRecipe(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, recipe.Reviews, 2)
	// Appended at the end, prior fields untouched.
	assert.Equal(t, "first", recipe.Reviews[0].Comment)
	assert.Equal(t, "second", recipe.Reviews[1].Comment)
	assert.Equal(t, "One", recipe.Name)
	assert.Equal(t, 45, recipe.CookingTime)
}

func TestAddReviewUnknownRecipe(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()

	testhelpers.CreateRecipe(t, db, newRecipe("existing", "Existing"))

	_, err := svc.AddReview(ctx, "missing", 4, "never stored")
	assert.ErrorIs(t, err, ErrRecipeNotFound)

	// The miss left the store untouched.
	recipe, err := svc.GetRecipe(ctx, "existing")
	require.NoError(t, err)
	assert.Empty(t, recipe.Reviews)
	assert.Equal(t, 0.0, recipe.Rating)
}

func TestAddReviewRatingBounds(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()

	testhelpers.CreateRecipe(t, db, newRecipe("r1", "One"))

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.AddReview(ctx, "r1", rating, "out of range")
		assert.ErrorIs(t, err, ErrInvalidRating)
	}

	_, err := svc.AddReview(ctx, "r1", 1, "lowest valid")
	assert.NoError(t, err)
	_, err = svc.AddReview(ctx, "r1", 5, "highest valid")
	assert.NoError(t, err)
}

func TestGetRecipeNotFound(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewRecipeService(db)

	_, err := svc.GetRecipe(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}
