package testutil

import (
	"Food-Recipes-Backend/pkg/seed"
)

// CatalogBundle is a small catalog:
//
//	pasta  500 kcal  Dinner/Italian/Vegetarian     tomato, spaghetti
//	stew   800 kcal  Dinner/Indian/Non-Vegetarian  tomato
//	risotto 300 kcal Lunch/Indian/Vegetarian       rice
func CatalogBundle() *seed.Bundle {
	return &seed.Bundle{
		Categories:      []seed.CategoryEntry{{CategoryName: "Dinner"}, {CategoryName: "Lunch"}},
		Cuisines:        []seed.CuisineEntry{{CuisineName: "Italian"}, {CuisineName: "Indian"}},
		RecipeTypes:     []seed.RecipeTypeEntry{{RecipeTypeName: "Vegetarian"}, {RecipeTypeName: "Non-Vegetarian"}},
		CookingMethods:  []seed.CookingMethodEntry{{CookingMethodName: "Raw"}, {CookingMethodName: "Boiled"}},
		IngredientTypes: []seed.IngredientTypeEntry{{IngredientTypeName: "Vegetable"}, {IngredientTypeName: "Grain"}},
		Ingredients: []seed.IngredientEntry{
			{IngredientName: "Tomato"},
			{IngredientName: "Spaghetti"},
			{IngredientName: "Rice"},
		},
		Recipes: []seed.RecipeEntry{
			{
				Key: "pasta", RecipeName: "Pasta Pomodoro", RecipeSteps: "Boil. Toss.",
				PreparationTime: 20, TotalCalories: 500, Servings: 2,
				CategoryID: 1, CuisineID: 1, RecipeTypeID: 1,
			},
			{
				Key: "stew", RecipeName: "Tomato Stew", RecipeSteps: "Simmer.",
				PreparationTime: 45, TotalCalories: 800, Servings: 4,
				CategoryID: 1, CuisineID: 2, RecipeTypeID: 2,
			},
			{
				Key: "risotto", RecipeName: "Rice Risotto", RecipeSteps: "Stir.",
				Image: "images/risotto.jpg", PreparationTime: 30, TotalCalories: 300, Servings: 3,
				CategoryID: 2, CuisineID: 2, RecipeTypeID: 1,
			},
		},
		RecipeIngredients: []seed.RecipeIngredientEntry{
			{RecipeKey: "pasta", IngredientID: 1, IngredientTypeID: 1, CookingMethodID: 1, Quantity: "3 pieces", CaloriesPerQuantity: 60},
			{RecipeKey: "pasta", IngredientID: 2, IngredientTypeID: 2, CookingMethodID: 2, Quantity: "200 g", CaloriesPerQuantity: 440},
			{RecipeKey: "stew", IngredientID: 1, IngredientTypeID: 1, CookingMethodID: 2, Quantity: "1 kg", CaloriesPerQuantity: 800},
			{RecipeKey: "risotto", IngredientID: 3, IngredientTypeID: 2, CookingMethodID: 2, Quantity: "1 cup", CaloriesPerQuantity: 300},
		},
	}
}
