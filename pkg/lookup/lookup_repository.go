package lookup

import (
	"Food-Recipes-Backend/entities"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type (
	LookupRepository interface {
		GetCategories(ctx context.Context) ([]entities.Category, error)
		GetCuisines(ctx context.Context) ([]entities.Cuisine, error)
		GetRecipeTypes(ctx context.Context) ([]entities.RecipeType, error)
		GetCookingMethods(ctx context.Context) ([]entities.CookingMethod, error)
		GetIngredientTypes(ctx context.Context) ([]entities.IngredientType, error)
		GetIngredients(ctx context.Context) ([]entities.Ingredient, error)
	}

	lookupRepository struct {
		db *gorm.DB
	}
)

func NewLookupRepository(db *gorm.DB) LookupRepository {
	return &lookupRepository{db: db}
}

func (r *lookupRepository) GetCategories(ctx context.Context) ([]entities.Category, error) {
	return listAll[entities.Category](ctx, r.db, "category", "category_id", "category_name")
}

func (r *lookupRepository) GetCuisines(ctx context.Context) ([]entities.Cuisine, error) {
	return listAll[entities.Cuisine](ctx, r.db, "cuisine", "cuisine_id", "cuisine_name")
}

func (r *lookupRepository) GetRecipeTypes(ctx context.Context) ([]entities.RecipeType, error) {
	return listAll[entities.RecipeType](ctx, r.db, "recipe_type", "recipe_type_id", "recipe_type_name")
}

func (r *lookupRepository) GetCookingMethods(ctx context.Context) ([]entities.CookingMethod, error) {
	return listAll[entities.CookingMethod](ctx, r.db, "cooking_method", "cooking_method_id", "cooking_method_name")
}

func (r *lookupRepository) GetIngredientTypes(ctx context.Context) ([]entities.IngredientType, error) {
	return listAll[entities.IngredientType](ctx, r.db, "ingredient_type", "ingredient_type_id", "ingredient_type_name")
}

func (r *lookupRepository) GetIngredients(ctx context.Context) ([]entities.Ingredient, error) {
	return listAll[entities.Ingredient](ctx, r.db, "ingredient", "ingredient_id", "ingredient_name")
}

// listAll reads a whole id/name table ordered by id. Table and column names
// are compile time constants, never user input.
func listAll[T any](ctx context.Context, db *gorm.DB, table, idColumn, nameColumn string) ([]T, error) {
	query := fmt.Sprintf("SELECT %s, %s FROM %s ORDER BY %s", idColumn, nameColumn, table, idColumn)

	rows := make([]T, 0)
	if err := db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	return rows, nil
}
