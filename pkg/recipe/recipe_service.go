package recipe

import (
	"Food-Recipes-Backend/domain"
	"context"
	"fmt"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context) ([]domain.Recipe, error)
		FilterRecipes(ctx context.Context, req domain.RecipeFilterRequest) ([]domain.Recipe, error)
		GetRecipeIngredients(ctx context.Context, recipeID int64) ([]domain.RecipeIngredient, error)
		GetRandomRecipe(ctx context.Context) (*domain.Recipe, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return nonNil(recipes), nil
}

func (s *recipeService) FilterRecipes(ctx context.Context, req domain.RecipeFilterRequest) ([]domain.Recipe, error) {
	recipeFilterRequests.WithLabelValues(FilterMode(req)).Inc()

	// An empty filter is the plain listing.
	if req.IsEmpty() {
		return s.GetRecipes(ctx)
	}

	recipes, err := s.recipeRepository.FilterRecipes(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("filter recipes: %w", err)
	}
	return nonNil(recipes), nil
}

func (s *recipeService) GetRecipeIngredients(ctx context.Context, recipeID int64) ([]domain.RecipeIngredient, error) {
	if recipeID <= 0 {
		return nil, domain.ErrInvalidRecipeID
	}

	lines, err := s.recipeRepository.GetRecipeIngredients(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("get ingredients of recipe %d: %w", recipeID, err)
	}
	if lines == nil {
		lines = []domain.RecipeIngredient{}
	}
	return lines, nil
}

func (s *recipeService) GetRandomRecipe(ctx context.Context) (*domain.Recipe, error) {
	recipe, err := s.recipeRepository.GetRandomRecipe(ctx)
	if err != nil {
		return nil, fmt.Errorf("random recipe: %w", err)
	}
	return recipe, nil
}

func nonNil(recipes []domain.Recipe) []domain.Recipe {
	if recipes == nil {
		return []domain.Recipe{}
	}
	return recipes
}
