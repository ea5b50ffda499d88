package domain

var (
	MessageSuccessAddFavorite    = "recipe added to favorites"
	MessageSuccessRemoveFavorite = "recipe removed from favorites"
	MessageSuccessGetFavorites   = "success get favorites"

	MessageFailedAddFavorite    = "failed to add favorite"
	MessageFailedRemoveFavorite = "failed to remove favorite"
	MessageFailedGetFavorites   = "failed to get favorites"
)

type (
	FavoriteRequest struct {
		RecipeID uint `json:"recipe_id" validate:"required"`
	}
)
