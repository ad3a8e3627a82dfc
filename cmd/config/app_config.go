package config

import (
	"Food-Recipes-Backend/internal/api/handlers"
	"Food-Recipes-Backend/internal/api/routes"
	"Food-Recipes-Backend/internal/middleware"
	"Food-Recipes-Backend/internal/utils"
	"Food-Recipes-Backend/pkg/lookup"
	"Food-Recipes-Backend/pkg/recipe"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const AppName = "food-recipes-backend"

func NewApp(db *gorm.DB, cfg *utils.Config, logger *zap.Logger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:               AppName,
		DisableStartupMessage: true,
	})
	middlewares := middleware.NewMiddleware(middleware.Options{
		AllowOrigins:    cfg.CORSAllowOrigins,
		RateLimitMax:    cfg.RateLimitMax,
		RateLimitWindow: cfg.RateLimitWindow,
	}, logger)
	validator := utils.Validate

	// Repository
	recipeRepository := recipe.NewRecipeRepository(db)
	lookupRepository := lookup.NewLookupRepository(db)

	// Service
	recipeService := recipe.NewRecipeService(recipeRepository)
	lookupService := lookup.NewLookupService(lookupRepository)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator, logger)
	lookupHandler := handlers.NewLookupHandler(lookupService, logger)

	// routes
	routesConfig := routes.Config{
		App:           app,
		RecipeHandler: recipeHandler,
		LookupHandler: lookupHandler,
		Middleware:    middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
