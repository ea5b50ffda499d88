package domain

import "errors"

var (
	MessageSuccessRateRecipe       = "recipe rated successfully"
	MessageSuccessGetAverageRating = "success get average rating"

	MessageFailedRateRecipe       = "failed to rate recipe"
	MessageFailedGetAverageRating = "failed to get average rating"

	ErrRatingOutOfRange = errors.New("rating value must be between 1 and 5")
)

type (
	RateRecipeRequest struct {
		RecipeID uint `json:"recipe_id" validate:"required"`
		Value    int  `json:"value" validate:"required,min=1,max=5"`
	}

	RatingSummary struct {
		RecipeID      uint    `json:"recipe_id"`
		AverageRating float64 `json:"average_rating"`
		RatingCount   int64   `json:"rating_count"`
	}
)
