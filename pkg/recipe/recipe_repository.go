package recipe

import (
	"Food-Recipes-Backend/domain"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		GetRecipes(ctx context.Context) ([]domain.Recipe, error)
		FilterRecipes(ctx context.Context, req domain.RecipeFilterRequest) ([]domain.Recipe, error)
		GetRecipeIngredients(ctx context.Context, recipeID int64) ([]domain.RecipeIngredient, error)
		GetRandomRecipe(ctx context.Context) (*domain.Recipe, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) GetRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return r.findRecipes(ctx, "list_recipes", ListRecipesQuery())
}

func (r *recipeRepository) FilterRecipes(ctx context.Context, req domain.RecipeFilterRequest) ([]domain.Recipe, error) {
	return r.findRecipes(ctx, "filter_recipes", FilterRecipesQuery(req))
}

func (r *recipeRepository) GetRecipeIngredients(ctx context.Context, recipeID int64) ([]domain.RecipeIngredient, error) {
	q := RecipeIngredientsQuery(recipeID)
	start := time.Now()

	lines := make([]domain.RecipeIngredient, 0)
	err := r.db.WithContext(ctx).Raw(q.SQL, q.Args...).Scan(&lines).Error
	observeQuery("recipe_ingredients", start, err)
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *recipeRepository) GetRandomRecipe(ctx context.Context) (*domain.Recipe, error) {
	q := RandomRecipeQuery()
	start := time.Now()

	var recipe domain.Recipe
	res := r.db.WithContext(ctx).Raw(q.SQL, q.Args...).Scan(&recipe)
	observeQuery("random_recipe", start, res.Error)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrRecipeNotFound
	}
	return &recipe, nil
}

func (r *recipeRepository) findRecipes(ctx context.Context, operation string, q Query) ([]domain.Recipe, error) {
	start := time.Now()

	recipes := make([]domain.Recipe, 0)
	err := r.db.WithContext(ctx).Raw(q.SQL, q.Args...).Scan(&recipes).Error
	observeQuery(operation, start, err)
	if err != nil {
		return nil, err
	}
	return recipes, nil
}
