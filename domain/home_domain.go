package domain

// PlaceholderImageURL substitutes for the image carousel when the catalog
// has no recipes yet.
const PlaceholderImageURL = "/images/placeholder.png"

var (
	MessageSuccessGetHomeFeed     = "success get home feed"
	MessageSuccessGetRandomRecipe = "success get random recipe"
	MessageSuccessGetLifestyleTip = "success get lifestyle tip"

	MessageFailedGetHomeFeed     = "failed to get home feed"
	MessageFailedGetRandomRecipe = "failed to get random recipe"
)

type (
	RecipeDetailResponse struct {
		Recipe             Recipe    `json:"recipe"`
		AverageRating      float64   `json:"average_rating"`
		RatingCount        int64     `json:"rating_count"`
		CallerRating       *int      `json:"caller_rating,omitempty"`
		CallerHasCommented bool      `json:"caller_has_commented"`
		IsFavorite         bool      `json:"is_favorite"`
		Comments           []Comment `json:"comments"`
	}

	HomeFeedResponse struct {
		Freshest []Recipe `json:"freshest"`
		TopRated []Recipe `json:"top_rated"`
		Images   []string `json:"images"`
	}

	LifestyleTip struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		ImageURL string `json:"image_url"`
	}
)
