package recipe

import (
	"Food-Recipes-Backend/domain"
	"Food-Recipes-Backend/entities"
	"Food-Recipes-Backend/internal/testutil"
	"Food-Recipes-Backend/pkg/seed"
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func seededRepository(t *testing.T) (RecipeRepository, *gorm.DB) {
	t.Helper()

	db := testutil.NewSQLiteDB(t)
	_, err := seed.NewLoader(db, validator.New(), zap.NewNop()).Load(context.Background(), testutil.CatalogBundle())
	require.NoError(t, err)

	return NewRecipeRepository(db), db
}

func ingredientID(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()

	var row entities.Ingredient
	require.NoError(t, db.Where("ingredient_name = ?", name).First(&row).Error)
	return row.IngredientID
}

func recipeID(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()

	var row entities.Recipe
	require.NoError(t, db.Where("recipe_name = ?", name).First(&row).Error)
	return row.RecipeID
}

func recipeNames(recipes []domain.Recipe) []string {
	names := make([]string, 0, len(recipes))
	for _, r := range recipes {
		names = append(names, r.RecipeName)
	}
	return names
}

func TestRecipeRepository_GetRecipes(t *testing.T) {
	repo, _ := seededRepository(t)

	recipes, err := repo.GetRecipes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Pasta Pomodoro", "Tomato Stew", "Rice Risotto"}, recipeNames(recipes))

	pasta := recipes[0]
	assert.Equal(t, "Dinner", pasta.CategoryName)
	assert.Equal(t, "Italian", pasta.CuisineName)
	assert.Equal(t, "Vegetarian", pasta.RecipeTypeName)
	assert.Equal(t, 500, pasta.TotalCalories)
	assert.Equal(t, 2, pasta.Servings)
	assert.Equal(t, "Boil. Toss.", pasta.RecipeSteps)

	risotto := recipes[2]
	assert.Equal(t, "Lunch", risotto.CategoryName)
	assert.Equal(t, "Indian", risotto.CuisineName)
	assert.Equal(t, "images/risotto.jpg", risotto.Image)
}

func TestRecipeRepository_JoinNamesMatchLookups(t *testing.T) {
	repo, db := seededRepository(t)

	recipes, err := repo.GetRecipes(context.Background())
	require.NoError(t, err)

	for _, r := range recipes {
		var category entities.Category
		require.NoError(t, db.First(&category, "category_id = ?", r.CategoryID).Error)
		assert.Equal(t, category.CategoryName, r.CategoryName)

		var cuisine entities.Cuisine
		require.NoError(t, db.First(&cuisine, "cuisine_id = ?", r.CuisineID).Error)
		assert.Equal(t, cuisine.CuisineName, r.CuisineName)

		var recipeType entities.RecipeType
		require.NoError(t, db.First(&recipeType, "recipe_type_id = ?", r.RecipeTypeID).Error)
		assert.Equal(t, recipeType.RecipeTypeName, r.RecipeTypeName)
	}
}

func TestRecipeRepository_FilterRecipes(t *testing.T) {
	repo, db := seededRepository(t)

	tomato := ingredientID(t, db, "Tomato")
	spaghetti := ingredientID(t, db, "Spaghetti")
	rice := ingredientID(t, db, "Rice")

	var dinner, lunch entities.Category
	require.NoError(t, db.First(&dinner, "category_name = ?", "Dinner").Error)
	require.NoError(t, db.First(&lunch, "category_name = ?", "Lunch").Error)
	var indian entities.Cuisine
	require.NoError(t, db.First(&indian, "cuisine_name = ?", "Indian").Error)
	var vegetarian entities.RecipeType
	require.NoError(t, db.First(&vegetarian, "recipe_type_name = ?", "Vegetarian").Error)

	tests := []struct {
		name string
		req  domain.RecipeFilterRequest
		want []string
	}{
		{
			name: "no filters",
			req:  domain.RecipeFilterRequest{},
			want: []string{"Pasta Pomodoro", "Tomato Stew", "Rice Risotto"},
		},
		{
			name: "match all with calorie bound",
			req: domain.RecipeFilterRequest{
				MaxCalories:         intPtr(600),
				IngredientIDs:       []int64{tomato, spaghetti},
				MatchAllIngredients: true,
			},
			want: []string{"Pasta Pomodoro"},
		},
		{
			name: "match any single ingredient",
			req:  domain.RecipeFilterRequest{IngredientIDs: []int64{spaghetti}},
			want: []string{"Pasta Pomodoro"},
		},
		{
			name: "calorie bound above every recipe",
			req:  domain.RecipeFilterRequest{MaxCalories: intPtr(900)},
			want: []string{"Pasta Pomodoro", "Tomato Stew", "Rice Risotto"},
		},
		{
			name: "calorie bound is inclusive",
			req:  domain.RecipeFilterRequest{MaxCalories: intPtr(500)},
			want: []string{"Pasta Pomodoro", "Rice Risotto"},
		},
		{
			name: "match any is set intersection",
			req:  domain.RecipeFilterRequest{IngredientIDs: []int64{tomato, rice}},
			want: []string{"Pasta Pomodoro", "Tomato Stew", "Rice Risotto"},
		},
		{
			name: "match all needs every ingredient",
			req:  domain.RecipeFilterRequest{IngredientIDs: []int64{tomato, rice}, MatchAllIngredients: true},
			want: []string{},
		},
		{
			name: "match all is superset not equality",
			req:  domain.RecipeFilterRequest{IngredientIDs: []int64{tomato}, MatchAllIngredients: true},
			want: []string{"Pasta Pomodoro", "Tomato Stew"},
		},
		{
			name: "duplicate ingredient ids count once",
			req: domain.RecipeFilterRequest{
				IngredientIDs:       []int64{tomato, tomato, spaghetti},
				MatchAllIngredients: true,
			},
			want: []string{"Pasta Pomodoro"},
		},
		{
			name: "category",
			req:  domain.RecipeFilterRequest{CategoryID: int64Ptr(lunch.CategoryID)},
			want: []string{"Rice Risotto"},
		},
		{
			name: "cuisine and type are conjunctive",
			req: domain.RecipeFilterRequest{
				CuisineID:    int64Ptr(indian.CuisineID),
				RecipeTypeID: int64Ptr(vegetarian.RecipeTypeID),
			},
			want: []string{"Rice Risotto"},
		},
		{
			name: "category with ingredient",
			req: domain.RecipeFilterRequest{
				CategoryID:    int64Ptr(dinner.CategoryID),
				IngredientIDs: []int64{tomato},
			},
			want: []string{"Pasta Pomodoro", "Tomato Stew"},
		},
		{
			name: "unknown ingredient",
			req:  domain.RecipeFilterRequest{IngredientIDs: []int64{9999}},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipes, err := repo.FilterRecipes(context.Background(), tt.req)
			require.NoError(t, err)
			require.NotNil(t, recipes)
			assert.Equal(t, tt.want, recipeNames(recipes))
		})
	}
}

func TestRecipeRepository_FilterMatchesListWhenEmpty(t *testing.T) {
	repo, _ := seededRepository(t)
	ctx := context.Background()

	all, err := repo.GetRecipes(ctx)
	require.NoError(t, err)
	filtered, err := repo.FilterRecipes(ctx, domain.RecipeFilterRequest{})
	require.NoError(t, err)

	assert.Equal(t, all, filtered)
}

func TestRecipeRepository_GetRecipeIngredients(t *testing.T) {
	repo, db := seededRepository(t)
	ctx := context.Background()

	lines, err := repo.GetRecipeIngredients(ctx, recipeID(t, db, "Pasta Pomodoro"))
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, "Tomato", lines[0].IngredientName)
	assert.Equal(t, "Vegetable", lines[0].IngredientTypeName)
	assert.Equal(t, "Raw", lines[0].CookingMethodName)
	assert.Equal(t, "3 pieces", lines[0].Quantity)
	assert.Equal(t, 60, lines[0].CaloriesPerQuantity)

	assert.Equal(t, "Spaghetti", lines[1].IngredientName)
	assert.Equal(t, "Grain", lines[1].IngredientTypeName)
	assert.Equal(t, "Boiled", lines[1].CookingMethodName)

	// The same ingredient carries recipe specific attributes elsewhere.
	stewLines, err := repo.GetRecipeIngredients(ctx, recipeID(t, db, "Tomato Stew"))
	require.NoError(t, err)
	require.Len(t, stewLines, 1)
	assert.Equal(t, lines[0].IngredientID, stewLines[0].IngredientID)
	assert.Equal(t, "Boiled", stewLines[0].CookingMethodName)
	assert.Equal(t, "1 kg", stewLines[0].Quantity)

	none, err := repo.GetRecipeIngredients(ctx, 9999)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestRecipeRepository_GetRandomRecipe(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		repo := NewRecipeRepository(testutil.NewSQLiteDB(t))

		recipe, err := repo.GetRandomRecipe(context.Background())
		assert.Nil(t, recipe)
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("returns a row of the table", func(t *testing.T) {
		repo, _ := seededRepository(t)
		ctx := context.Background()

		all, err := repo.GetRecipes(ctx)
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			recipe, err := repo.GetRandomRecipe(ctx)
			require.NoError(t, err)
			require.NotNil(t, recipe)
			assert.Contains(t, all, *recipe)
		}
	})
}
