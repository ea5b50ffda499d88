package config

import (
	"Cookers-Backend/internal/api/handlers"
	"Cookers-Backend/internal/api/routes"
	"Cookers-Backend/internal/middleware"
	"Cookers-Backend/internal/utils"
	"Cookers-Backend/pkg/comment"
	"Cookers-Backend/pkg/favorite"
	"Cookers-Backend/pkg/interaction"
	"Cookers-Backend/pkg/jwt"
	"Cookers-Backend/pkg/rating"
	"Cookers-Backend/pkg/recipe"
	"Cookers-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	ratingRepository := rating.NewRatingRepository(db)
	commentRepository := comment.NewCommentRepository(db)
	favoriteRepository := favorite.NewFavoriteRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	recipeService := recipe.NewRecipeService(recipeRepository)
	ratingService := rating.NewRatingService(ratingRepository)
	commentService := comment.NewCommentService(commentRepository)
	favoriteService := favorite.NewFavoriteService(favoriteRepository, recipeRepository)
	interactionService := interaction.NewInteractionService(
		recipeRepository,
		ratingRepository,
		commentService,
		favoriteRepository,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	ratingHandler := handlers.NewRatingHandler(ratingService, validator)
	commentHandler := handlers.NewCommentHandler(commentService, validator)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, validator)
	homeHandler := handlers.NewHomeHandler(interactionService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		RecipeHandler:   recipeHandler,
		RatingHandler:   ratingHandler,
		CommentHandler:  commentHandler,
		FavoriteHandler: favoriteHandler,
		HomeHandler:     homeHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
