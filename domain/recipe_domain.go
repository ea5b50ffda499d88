package domain

import (
	"errors"
	"time"
)

const RecipeNameMaxLength = 100

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessSaveRecipe      = "recipe saved successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessSearchRecipes   = "success search recipes"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedSaveRecipe      = "failed to save recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedSearchRecipes   = "failed to search recipes"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrRecipeValidation         = errors.New("invalid recipe payload")
)

type (
	CreateRecipeRequest struct {
		Name        string   `json:"name" validate:"required,max=100"`
		Description string   `json:"description" validate:"required"`
		ImageURL    string   `json:"image_url" validate:"required"`
		Ingredients []string `json:"ingredients"`
	}

	UpdateRecipeRequest struct {
		Name        string   `json:"name" validate:"required,max=100"`
		Description string   `json:"description" validate:"required"`
		ImageURL    string   `json:"image_url" validate:"required"`
		Ingredients []string `json:"ingredients"`
	}

	Recipe struct {
		ID            uint      `json:"id"`
		Name          string    `json:"name"`
		Description   string    `json:"description"`
		ImageURL      string    `json:"image_url"`
		UserID        string    `json:"user_id,omitempty"`
		Ingredients   []string  `json:"ingredients"`
		AverageRating float64   `json:"average_rating"`
		CreatedAt     time.Time `json:"created_at"`
	}
)
