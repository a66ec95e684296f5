package main

import (
	"github.com/sirupsen/logrus"

	"github.com/pantryplate/backend/config"
	"github.com/pantryplate/backend/internal/database"
	"github.com/pantryplate/backend/internal/model"
)

var seedRecipes = []model.Recipe{
	{
		RecipeID:    "classic-margherita-pizza",
		Name:        "Classic Margherita Pizza",
		Description: "A Neapolitan staple with fresh mozzarella, basil, and a simple tomato sauce.",
		Ingredients: model.JSONBStringArray{
			"500g pizza dough", "200g mozzarella cheese", "150ml tomato sauce",
			"fresh basil leaves", "2 tbsp olive oil", "salt",
		},
		Instructions: model.JSONBStringArray{
			"Preheat the oven to 250C with a pizza stone inside.",
			"Stretch the dough into a 30cm round.",
			"Spread the tomato sauce and tear the mozzarella over it.",
			"Bake for 8-10 minutes until the crust is blistered.",
			"Finish with basil leaves and a drizzle of olive oil.",
		},
		CookingTime:         25,
		Servings:            2,
		Difficulty:          model.DifficultyEasy,
		DietaryRestrictions: model.JSONBStringArray{"vegetarian"},
		Cuisine:             "Italian",
		Nutrition:           model.NutritionalInfo{Calories: 820, Protein: 32, Carbs: 98, Fat: 31},
		ImageURL:            "https://images.unsplash.com/photo-1574071318508-1cdbab80d002",
	},
	{
		RecipeID:    "thai-green-curry",
		Name:        "Thai Green Curry",
		Description: "Fragrant coconut curry with chicken, bamboo shoots, and Thai basil.",
		Ingredients: model.JSONBStringArray{
			"400g chicken breast", "400ml coconut milk", "3 tbsp green curry paste",
			"100g bamboo shoots", "2 kaffir lime leaves", "1 tbsp fish sauce", "thai basil",
		},
		Instructions: model.JSONBStringArray{
			"Fry the curry paste in a little coconut cream until fragrant.",
			"Add the chicken and seal on all sides.",
			"Pour in the remaining coconut milk and simmer 15 minutes.",
			"Season with fish sauce, add bamboo shoots and lime leaves.",
			"Garnish with thai basil and serve with jasmine rice.",
		},
		CookingTime:         40,
		Servings:            4,
		Difficulty:          model.DifficultyMedium,
		DietaryRestrictions: model.JSONBStringArray{"dairy-free", "gluten-free"},
		Cuisine:             "Thai",
		Nutrition:           model.NutritionalInfo{Calories: 540, Protein: 35, Carbs: 18, Fat: 38},
		ImageURL:            "https://images.unsplash.com/photo-1455619452474-d2be8b1e70cd",
	},
	{
		RecipeID:    "quinoa-buddha-bowl",
		Name:        "Quinoa Buddha Bowl",
		Description: "A quick bowl of quinoa, roasted sweet potato, avocado, and tahini dressing.",
		Ingredients: model.JSONBStringArray{
			"150g quinoa", "1 sweet potato", "1 avocado", "100g kale",
			"2 tbsp tahini", "1 lemon", "olive oil", "pumpkin seeds",
		},
		Instructions: model.JSONBStringArray{
			"Roast the cubed sweet potato at 200C for 20 minutes.",
			"Cook the quinoa in salted water.",
			"Massage the kale with olive oil and lemon juice.",
			"Whisk tahini with lemon juice and water into a dressing.",
			"Assemble the bowl and top with pumpkin seeds.",
		},
		CookingTime:         25,
		Servings:            2,
		Difficulty:          model.DifficultyEasy,
		DietaryRestrictions: model.JSONBStringArray{"vegan", "gluten-free"},
		Cuisine:             "International",
		Nutrition:           model.NutritionalInfo{Calories: 610, Protein: 18, Carbs: 72, Fat: 29},
		ImageURL:            "https://images.unsplash.com/photo-1512621776951-a57141f2eefd",
	},
	{
		RecipeID:    "beef-bourguignon",
		Name:        "Beef Bourguignon",
		Description: "Slow-braised beef in red wine with pearl onions, mushrooms, and pancetta.",
		Ingredients: model.JSONBStringArray{
			"1kg beef strips", "150g pancetta", "750ml red wine", "300g mushroom",
			"12 pearl onions", "2 carrots", "2 cloves garlic", "beef broth", "thyme", "bay leaf",
		},
		Instructions: model.JSONBStringArray{
			"Brown the pancetta and set aside, then sear the beef in batches.",
			"Soften the onions, carrots, and garlic in the same pot.",
			"Return the meat, pour in wine and broth, add thyme and bay leaf.",
			"Braise covered at 160C for 2.5 hours.",
			"Saute the mushrooms and fold them in before serving.",
		},
		CookingTime:         180,
		Servings:            6,
		Difficulty:          model.DifficultyHard,
		DietaryRestrictions: model.JSONBStringArray{"dairy-free"},
		Cuisine:             "French",
		Nutrition:           model.NutritionalInfo{Calories: 680, Protein: 48, Carbs: 16, Fat: 42},
		ImageURL:            "https://images.unsplash.com/photo-1534939561126-855b8675edd7",
	},
	{
		RecipeID:    "avocado-toast-poached-egg",
		Name:        "Avocado Toast with Poached Egg",
		Description: "Sourdough toast with smashed avocado, poached egg, and chili flakes.",
		Ingredients: model.JSONBStringArray{
			"2 slices bread", "1 avocado", "2 eggs", "1 lemon", "chili flakes", "salt", "black pepper",
		},
		Instructions: model.JSONBStringArray{
			"Toast the bread.",
			"Smash the avocado with lemon juice, salt, and pepper.",
			"Poach the eggs for 3 minutes.",
			"Pile the avocado on the toast, top with the eggs and chili flakes.",
		},
		CookingTime:         10,
		Servings:            1,
		Difficulty:          model.DifficultyEasy,
		DietaryRestrictions: model.JSONBStringArray{"vegetarian"},
		Cuisine:             "International",
		Nutrition:           model.NutritionalInfo{Calories: 420, Protein: 17, Carbs: 34, Fat: 26},
		ImageURL:            "https://images.unsplash.com/photo-1525351484163-7529414344d8",
	},
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	created := 0
	for _, recipe := range seedRecipes {
		result := db.Where("recipe_id = ?", recipe.RecipeID).FirstOrCreate(&recipe)
		if result.Error != nil {
			log.WithError(result.Error).WithField("recipe", recipe.RecipeID).Error("failed to seed recipe")
			continue
		}
		if result.RowsAffected > 0 {
			created++
		}
	}
	log.WithFields(logrus.Fields{"created": created, "total": len(seedRecipes)}).Info("seeding complete")
}
