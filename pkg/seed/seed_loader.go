package seed

import (
	migration "Food-Recipes-Backend/cmd/database/migrate"
	"Food-Recipes-Backend/entities"
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	Loader interface {
		// Load replaces the whole catalog with the bundle contents. Tables are
		// dropped and recreated first; the first failed insert stops the load.
		Load(ctx context.Context, bundle *Bundle) (*Summary, error)
	}

	loader struct {
		db        *gorm.DB
		validator *validator.Validate
		logger    *zap.Logger
	}
)

func NewLoader(db *gorm.DB, validator *validator.Validate, logger *zap.Logger) Loader {
	return &loader{
		db:        db,
		validator: validator,
		logger:    logger,
	}
}

func (l *loader) Load(ctx context.Context, bundle *Bundle) (*Summary, error) {
	if err := bundle.Normalize(); err != nil {
		return nil, err
	}
	if err := l.validator.Struct(bundle); err != nil {
		return nil, fmt.Errorf("invalid seed bundle: %w", err)
	}

	if err := migration.Reset(l.db.WithContext(ctx), l.logger); err != nil {
		return nil, fmt.Errorf("reset schema: %w", err)
	}
	l.logger.Info("database tables recreated")

	lookups, err := l.insertLookups(ctx, bundle)
	if err != nil {
		return nil, err
	}

	ingredientIDs, err := l.insertIngredients(ctx, bundle.Ingredients)
	if err != nil {
		return nil, err
	}

	recipeIDs, err := l.insertRecipes(ctx, bundle.Recipes, lookups)
	if err != nil {
		return nil, err
	}

	lines, err := l.insertRecipeIngredients(ctx, bundle.RecipeIngredients, recipeIDs, ingredientIDs, lookups)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Categories:        len(lookups.Categories),
		Cuisines:          len(lookups.Cuisines),
		RecipeTypes:       len(lookups.RecipeTypes),
		CookingMethods:    len(lookups.CookingMethods),
		IngredientTypes:   len(lookups.IngredientTypes),
		Ingredients:       len(ingredientIDs),
		Recipes:           len(recipeIDs),
		RecipeIngredients: lines,
	}
	l.logger.Info("seed data inserted",
		zap.Int("categories", summary.Categories),
		zap.Int("cuisines", summary.Cuisines),
		zap.Int("recipe_types", summary.RecipeTypes),
		zap.Int("cooking_methods", summary.CookingMethods),
		zap.Int("ingredient_types", summary.IngredientTypes),
		zap.Int("ingredients", summary.Ingredients),
		zap.Int("recipes", summary.Recipes),
		zap.Int("recipe_ingredients", summary.RecipeIngredients),
	)
	return summary, nil
}

func (l *loader) insertLookups(ctx context.Context, bundle *Bundle) (LookupIDs, error) {
	var (
		ids LookupIDs
		err error
	)

	ids.Categories, err = insertAll(ctx, l.db, "category", bundle.Categories,
		func(e CategoryEntry) *entities.Category { return &entities.Category{CategoryName: e.CategoryName} },
		func(row *entities.Category) int64 { return row.CategoryID })
	if err != nil {
		return ids, err
	}

	ids.Cuisines, err = insertAll(ctx, l.db, "cuisine", bundle.Cuisines,
		func(e CuisineEntry) *entities.Cuisine { return &entities.Cuisine{CuisineName: e.CuisineName} },
		func(row *entities.Cuisine) int64 { return row.CuisineID })
	if err != nil {
		return ids, err
	}

	ids.RecipeTypes, err = insertAll(ctx, l.db, "recipe type", bundle.RecipeTypes,
		func(e RecipeTypeEntry) *entities.RecipeType { return &entities.RecipeType{RecipeTypeName: e.RecipeTypeName} },
		func(row *entities.RecipeType) int64 { return row.RecipeTypeID })
	if err != nil {
		return ids, err
	}

	ids.CookingMethods, err = insertAll(ctx, l.db, "cooking method", bundle.CookingMethods,
		func(e CookingMethodEntry) *entities.CookingMethod {
			return &entities.CookingMethod{CookingMethodName: e.CookingMethodName}
		},
		func(row *entities.CookingMethod) int64 { return row.CookingMethodID })
	if err != nil {
		return ids, err
	}

	ids.IngredientTypes, err = insertAll(ctx, l.db, "ingredient type", bundle.IngredientTypes,
		func(e IngredientTypeEntry) *entities.IngredientType {
			return &entities.IngredientType{IngredientTypeName: e.IngredientTypeName}
		},
		func(row *entities.IngredientType) int64 { return row.IngredientTypeID })
	return ids, err
}

func (l *loader) insertIngredients(ctx context.Context, entries []IngredientEntry) (IDList, error) {
	return insertAll(ctx, l.db, "ingredient", entries,
		func(e IngredientEntry) *entities.Ingredient { return &entities.Ingredient{IngredientName: e.IngredientName} },
		func(row *entities.Ingredient) int64 { return row.IngredientID })
}

// insertRecipes returns the generated recipe ids keyed by recipe key; the
// recipe ingredient lines can only be inserted with it.
func (l *loader) insertRecipes(ctx context.Context, entries []RecipeEntry, lookups LookupIDs) (RecipeIDs, error) {
	ids := make(RecipeIDs, len(entries))
	for _, e := range entries {
		categoryID, err := lookups.Categories.Resolve("category", e.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("recipe %q: %w", e.Key, err)
		}
		cuisineID, err := lookups.Cuisines.Resolve("cuisine", e.CuisineID)
		if err != nil {
			return nil, fmt.Errorf("recipe %q: %w", e.Key, err)
		}
		recipeTypeID, err := lookups.RecipeTypes.Resolve("recipe type", e.RecipeTypeID)
		if err != nil {
			return nil, fmt.Errorf("recipe %q: %w", e.Key, err)
		}

		row := &entities.Recipe{
			RecipeName:      e.RecipeName,
			RecipeSteps:     e.RecipeSteps,
			Image:           e.Image,
			PreparationTime: e.PreparationTime,
			TotalCalories:   e.TotalCalories,
			Servings:        e.Servings,
			CategoryID:      categoryID,
			CuisineID:       cuisineID,
			RecipeTypeID:    recipeTypeID,
		}
		if err := l.db.WithContext(ctx).Create(row).Error; err != nil {
			l.logger.Error("error inserting recipe", zap.String("key", e.Key), zap.Error(err))
			return nil, fmt.Errorf("insert recipe %q: %w", e.Key, err)
		}
		ids[e.Key] = row.RecipeID
	}
	return ids, nil
}

func (l *loader) insertRecipeIngredients(
	ctx context.Context,
	entries []RecipeIngredientEntry,
	recipeIDs RecipeIDs,
	ingredientIDs IDList,
	lookups LookupIDs,
) (int, error) {
	for i, e := range entries {
		recipeID, err := recipeIDs.Resolve(e.RecipeKey)
		if err != nil {
			return i, fmt.Errorf("recipe ingredient #%d: %w", i+1, err)
		}
		ingredientID, err := ingredientIDs.Resolve("ingredient", e.IngredientID)
		if err != nil {
			return i, fmt.Errorf("recipe ingredient #%d: %w", i+1, err)
		}
		ingredientTypeID, err := lookups.IngredientTypes.Resolve("ingredient type", e.IngredientTypeID)
		if err != nil {
			return i, fmt.Errorf("recipe ingredient #%d: %w", i+1, err)
		}
		cookingMethodID, err := lookups.CookingMethods.Resolve("cooking method", e.CookingMethodID)
		if err != nil {
			return i, fmt.Errorf("recipe ingredient #%d: %w", i+1, err)
		}

		row := &entities.RecipeIngredient{
			Quantity:            e.Quantity,
			CaloriesPerQuantity: e.CaloriesPerQuantity,
			RecipeID:            recipeID,
			IngredientID:        ingredientID,
			IngredientTypeID:    ingredientTypeID,
			CookingMethodID:     cookingMethodID,
		}
		if err := l.db.WithContext(ctx).Create(row).Error; err != nil {
			l.logger.Error("error inserting recipe ingredient", zap.String("recipe_key", e.RecipeKey), zap.Error(err))
			return i, fmt.Errorf("insert recipe ingredient #%d: %w", i+1, err)
		}
	}
	return len(entries), nil
}

func insertAll[E any, T any](
	ctx context.Context,
	db *gorm.DB,
	kind string,
	entries []E,
	build func(E) *T,
	id func(*T) int64,
) (IDList, error) {
	ids := make(IDList, 0, len(entries))
	for i, e := range entries {
		row := build(e)
		if err := db.WithContext(ctx).Create(row).Error; err != nil {
			return nil, fmt.Errorf("insert %s #%d: %w", kind, i+1, err)
		}
		ids = append(ids, id(row))
	}
	return ids, nil
}
