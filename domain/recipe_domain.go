package domain

import (
	"errors"
)

var (
	MessageFailedGetRecipes           = "failed to get recipes"
	MessageFailedGetRecipeIngredients = "failed to get recipe ingredients"
	MessageFailedFilterRecipes        = "failed to filter recipes"
	MessageFailedGetRandomRecipe      = "failed to get random recipe"
	MessageNoRecipesFound             = "no recipes found"
	MessageInvalidRecipeID            = "invalid recipe id"
	MessageInvalidFilter              = "invalid filter request"

	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrInvalidRecipeID = errors.New("recipe id must be a positive integer")
)

type (
	// RecipeFilterRequest is the body of POST /api/recipes/filter. Nil fields
	// and an empty ingredient list do not constrain the result.
	RecipeFilterRequest struct {
		CategoryID          *int64  `json:"categoryId,omitempty" validate:"omitempty,gt=0"`
		RecipeTypeID        *int64  `json:"recipeTypeId,omitempty" validate:"omitempty,gt=0"`
		CuisineID           *int64  `json:"cuisineId,omitempty" validate:"omitempty,gt=0"`
		MaxCalories         *int    `json:"maxCalories,omitempty" validate:"omitempty,gte=0"`
		IngredientIDs       []int64 `json:"ingredientIds,omitempty" validate:"omitempty,dive,gt=0"`
		MatchAllIngredients bool    `json:"matchAllIngredients,omitempty"`
	}

	// Recipe is a recipe row with its category, cuisine and type names
	// denormalized in.
	Recipe struct {
		RecipeID        int64  `gorm:"column:recipe_id" json:"recipe_id"`
		RecipeName      string `gorm:"column:recipe_name" json:"recipe_name"`
		RecipeSteps     string `gorm:"column:recipe_steps" json:"recipe_steps"`
		Image           string `gorm:"column:image" json:"image,omitempty"`
		PreparationTime int    `gorm:"column:preparation_time" json:"preparation_time"`
		TotalCalories   int    `gorm:"column:total_calories" json:"total_calories"`
		Servings        int    `gorm:"column:servings" json:"servings"`
		CategoryID      int64  `gorm:"column:category_id" json:"category_id"`
		CategoryName    string `gorm:"column:category_name" json:"category_name"`
		CuisineID       int64  `gorm:"column:cuisine_id" json:"cuisine_id"`
		CuisineName     string `gorm:"column:cuisine_name" json:"cuisine_name"`
		RecipeTypeID    int64  `gorm:"column:recipe_type_id" json:"recipe_type_id"`
		RecipeTypeName  string `gorm:"column:recipe_type_name" json:"recipe_type_name"`
	}

	RecipeIngredient struct {
		RecipeIngredientID  int64  `gorm:"column:recipe_ingredient_id" json:"recipe_ingredient_id"`
		RecipeID            int64  `gorm:"column:recipe_id" json:"recipe_id"`
		IngredientID        int64  `gorm:"column:ingredient_id" json:"ingredient_id"`
		IngredientName      string `gorm:"column:ingredient_name" json:"ingredient_name"`
		Quantity            string `gorm:"column:quantity" json:"quantity"`
		CaloriesPerQuantity int    `gorm:"column:calories_per_quantity" json:"calories_per_quantity"`
		IngredientTypeID    int64  `gorm:"column:ingredient_type_id" json:"ingredient_type_id"`
		IngredientTypeName  string `gorm:"column:ingredient_type_name" json:"ingredient_type_name"`
		CookingMethodID     int64  `gorm:"column:cooking_method_id" json:"cooking_method_id"`
		CookingMethodName   string `gorm:"column:cooking_method_name" json:"cooking_method_name"`
	}
)

// IsEmpty reports whether the request carries no constraint at all.
func (r RecipeFilterRequest) IsEmpty() bool {
	return r.CategoryID == nil &&
		r.RecipeTypeID == nil &&
		r.CuisineID == nil &&
		r.MaxCalories == nil &&
		len(r.IngredientIDs) == 0
}
