package routes

import (
	"Food-Recipes-Backend/domain"
	"Food-Recipes-Backend/internal/api/handlers"
	"Food-Recipes-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App           *fiber.App
	RecipeHandler handlers.RecipeHandler
	LookupHandler handlers.LookupHandler
	Middleware    middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.RecoverMiddleware())
	c.App.Use(c.Middleware.RequestIDMiddleware())
	c.App.Use(c.Middleware.LoggerMiddleware())
	c.App.Use(c.Middleware.MetricsMiddleware())
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.App.Use(c.Middleware.LimiterMiddleware())
	c.Recipes()
	c.Lookups()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": domain.MessagePong})
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/random", c.RecipeHandler.GetRandomRecipe)
	recipes.Post("/filter", c.RecipeHandler.FilterRecipes)
	recipes.Get("/:id/ingredients", c.RecipeHandler.GetRecipeIngredients)
}

func (c *Config) Lookups() {
	api := c.App.Group("/api")
	api.Get("/categories", c.LookupHandler.GetCategories)
	api.Get("/cuisines", c.LookupHandler.GetCuisines)
	api.Get("/recipe-types", c.LookupHandler.GetRecipeTypes)
	api.Get("/cooking-methods", c.LookupHandler.GetCookingMethods)
	api.Get("/ingredient-types", c.LookupHandler.GetIngredientTypes)
	api.Get("/ingredients", c.LookupHandler.GetIngredients)
}
