package lookup

import (
	"Food-Recipes-Backend/entities"
	"context"
)

type (
	LookupService interface {
		GetCategories(ctx context.Context) ([]entities.Category, error)
		GetCuisines(ctx context.Context) ([]entities.Cuisine, error)
		GetRecipeTypes(ctx context.Context) ([]entities.RecipeType, error)
		GetCookingMethods(ctx context.Context) ([]entities.CookingMethod, error)
		GetIngredientTypes(ctx context.Context) ([]entities.IngredientType, error)
		GetIngredients(ctx context.Context) ([]entities.Ingredient, error)
	}

	lookupService struct {
		lookupRepository LookupRepository
	}
)

func NewLookupService(lookupRepository LookupRepository) LookupService {
	return &lookupService{
		lookupRepository: lookupRepository,
	}
}

func (s *lookupService) GetCategories(ctx context.Context) ([]entities.Category, error) {
	return orEmpty(s.lookupRepository.GetCategories(ctx))
}

func (s *lookupService) GetCuisines(ctx context.Context) ([]entities.Cuisine, error) {
	return orEmpty(s.lookupRepository.GetCuisines(ctx))
}

func (s *lookupService) GetRecipeTypes(ctx context.Context) ([]entities.RecipeType, error) {
	return orEmpty(s.lookupRepository.GetRecipeTypes(ctx))
}

func (s *lookupService) GetCookingMethods(ctx context.Context) ([]entities.CookingMethod, error) {
	return orEmpty(s.lookupRepository.GetCookingMethods(ctx))
}

func (s *lookupService) GetIngredientTypes(ctx context.Context) ([]entities.IngredientType, error) {
	return orEmpty(s.lookupRepository.GetIngredientTypes(ctx))
}

func (s *lookupService) GetIngredients(ctx context.Context) ([]entities.Ingredient, error) {
	return orEmpty(s.lookupRepository.GetIngredients(ctx))
}

func orEmpty[T any](rows []T, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	if rows == nil {
		return []T{}, nil
	}
	return rows, nil
}
