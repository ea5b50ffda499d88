package routes

import (
	"Cookers-Backend/internal/api/handlers"
	"Cookers-Backend/internal/middleware"
	"Cookers-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	RecipeHandler   handlers.RecipeHandler
	RatingHandler   handlers.RatingHandler
	CommentHandler  handlers.CommentHandler
	FavoriteHandler handlers.FavoriteHandler
	HomeHandler     handlers.HomeHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Home()
	c.Recipes()
	c.Interactions()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Home() {
	c.App.Get("/api/v1/home", c.HomeHandler.GetHomeFeed)
	c.App.Get("/api/v1/lifestyle/:id", c.HomeHandler.GetLifestyleTip)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	// Public catalog surface; detail resolves the caller when a token is sent.
	recipes.Get("", c.HomeHandler.SearchRecipes)
	recipes.Get("/random", c.HomeHandler.GetRandomRecipe)
	recipes.Get("/search-by-ingredients", c.HomeHandler.SearchByIngredients)
	recipes.Get("/:id", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.HomeHandler.GetRecipeDetail)
	recipes.Get("/:id/comments", c.CommentHandler.GetRecipeComments)
	recipes.Get("/:id/rating", c.RatingHandler.GetRatingSummary)

	// Owner operations
	recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
	recipes.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.DeleteRecipe)
}

func (c *Config) Interactions() {
	authed := c.App.Group("/api/v1", c.Middleware.AuthMiddleware(c.JWTService))
	{
		authed.Get("/manage/recipes", c.RecipeHandler.GetUserRecipes)
		authed.Post("/ratings", c.RatingHandler.RateRecipe)
		authed.Post("/comments", c.CommentHandler.AddComment)
		authed.Post("/favorites", c.FavoriteHandler.AddFavorite)
		authed.Delete("/favorites", c.FavoriteHandler.RemoveFavorite)
		authed.Get("/favorites", c.FavoriteHandler.GetFavoriteRecipes)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
