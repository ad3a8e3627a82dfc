package handlers

import (
	"Food-Recipes-Backend/domain"
	"Food-Recipes-Backend/internal/api/presenters"
	"Food-Recipes-Backend/internal/middleware"
	"Food-Recipes-Backend/pkg/recipe"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeIngredients(c *fiber.Ctx) error
		FilterRecipes(c *fiber.Ctx) error
		GetRandomRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
		logger        *zap.Logger
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate, logger *zap.Logger) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
		logger:        logger,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipes(c.Context())
	if err != nil {
		return h.serverError(c, domain.MessageFailedGetRecipes, err)
	}

	return presenters.JSONResponse(c, fiber.StatusOK, res)
}

func (h *recipeHandler) GetRecipeIngredients(c *fiber.Ctx) error {
	recipeID, err := c.ParamsInt("id")
	if err != nil || recipeID <= 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidRecipeID)
	}

	res, err := h.recipeService.GetRecipeIngredients(c.Context(), int64(recipeID))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRecipeID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidRecipeID)
		}
		return h.serverError(c, domain.MessageFailedGetRecipeIngredients, err)
	}

	return presenters.JSONResponse(c, fiber.StatusOK, res)
}

func (h *recipeHandler) FilterRecipes(c *fiber.Ctx) error {
	req := new(domain.RecipeFilterRequest)

	// An empty body is the same as {}.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidFilter+": "+err.Error())
	}

	res, err := h.recipeService.FilterRecipes(c.Context(), *req)
	if err != nil {
		return h.serverError(c, domain.MessageFailedFilterRecipes, err)
	}

	return presenters.JSONResponse(c, fiber.StatusOK, res)
}

func (h *recipeHandler) GetRandomRecipe(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRandomRecipe(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.MessageResponse(c, fiber.StatusNotFound, domain.MessageNoRecipesFound)
		}
		return h.serverError(c, domain.MessageFailedGetRandomRecipe, err)
	}

	return presenters.JSONResponse(c, fiber.StatusOK, res)
}

func (h *recipeHandler) serverError(c *fiber.Ctx, message string, err error) error {
	h.logger.Error(message,
		zap.String("path", c.Path()),
		zap.String("request_id", middleware.RequestID(c)),
		zap.Error(err),
	)
	return presenters.ErrorResponse(c, fiber.StatusInternalServerError, message)
}
