package handlers

import (
	"Food-Recipes-Backend/domain"
	"Food-Recipes-Backend/internal/api/presenters"
	"Food-Recipes-Backend/internal/middleware"
	"Food-Recipes-Backend/pkg/lookup"
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	LookupHandler interface {
		GetCategories(c *fiber.Ctx) error
		GetCuisines(c *fiber.Ctx) error
		GetRecipeTypes(c *fiber.Ctx) error
		GetCookingMethods(c *fiber.Ctx) error
		GetIngredientTypes(c *fiber.Ctx) error
		GetIngredients(c *fiber.Ctx) error
	}

	lookupHandler struct {
		lookupService lookup.LookupService
		logger        *zap.Logger
	}
)

func NewLookupHandler(lookupService lookup.LookupService, logger *zap.Logger) LookupHandler {
	return &lookupHandler{
		lookupService: lookupService,
		logger:        logger,
	}
}

func (h *lookupHandler) GetCategories(c *fiber.Ctx) error {
	return respond(c, h.logger, domain.MessageFailedGetCategories, h.lookupService.GetCategories)
}

func (h *lookupHandler) GetCuisines(c *fiber.Ctx) error {
	return respond(c, h.logger, domain.MessageFailedGetCuisines, h.lookupService.GetCuisines)
}

func (h *lookupHandler) GetRecipeTypes(c *fiber.Ctx) error {
	return respond(c, h.logger, domain.MessageFailedGetRecipeTypes, h.lookupService.GetRecipeTypes)
}

func (h *lookupHandler) GetCookingMethods(c *fiber.Ctx) error {
	return respond(c, h.logger, domain.MessageFailedGetCookingMethods, h.lookupService.GetCookingMethods)
}

func (h *lookupHandler) GetIngredientTypes(c *fiber.Ctx) error {
	return respond(c, h.logger, domain.MessageFailedGetIngredientTypes, h.lookupService.GetIngredientTypes)
}

func (h *lookupHandler) GetIngredients(c *fiber.Ctx) error {
	return respond(c, h.logger, domain.MessageFailedGetIngredients, h.lookupService.GetIngredients)
}

func respond[T any](c *fiber.Ctx, logger *zap.Logger, failure string, list func(context.Context) ([]T, error)) error {
	rows, err := list(c.Context())
	if err != nil {
		logger.Error(failure,
			zap.String("path", c.Path()),
			zap.String("request_id", middleware.RequestID(c)),
			zap.Error(err),
		)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, failure)
	}
	return presenters.JSONResponse(c, fiber.StatusOK, rows)
}
