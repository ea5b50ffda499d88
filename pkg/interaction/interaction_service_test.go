package interaction

import (
	"context"
	"testing"
	"time"

	"Cookers-Backend/domain"
	"Cookers-Backend/entities"
	"Cookers-Backend/pkg/comment"
	"Cookers-Backend/pkg/favorite"
	"Cookers-Backend/pkg/rating"
	"Cookers-Backend/pkg/recipe"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.Rating{},
		&entities.Comment{},
		&entities.Favorite{},
	))
	return db
}

func newService(db *gorm.DB) InteractionService {
	return NewInteractionService(
		recipe.NewRecipeRepository(db),
		rating.NewRatingRepository(db),
		comment.NewCommentService(comment.NewCommentRepository(db)),
		favorite.NewFavoriteRepository(db),
	)
}

func seedRecipe(t *testing.T, db *gorm.DB, name string, ingredients ...string) *entities.Recipe {
	t.Helper()

	r := &entities.Recipe{
		Name:        name,
		Description: "test recipe",
		ImageURL:    "/images/" + name + ".png",
	}
	for i, ing := range ingredients {
		r.Ingredients = append(r.Ingredients, entities.RecipeIngredient{Position: i, Name: ing})
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func TestGetRecipeDetailNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)

	_, err := service.GetRecipeDetail(context.Background(), 42, "")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestGetRecipeDetailAnonymous(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	ctx := context.Background()

	r := seedRecipe(t, db, "moussaka", "Eggplant", "Onion")
	rater := uuid.New()
	require.NoError(t, db.Create(&entities.Rating{UserID: rater, RecipeID: r.ID, Value: 4}).Error)
	require.NoError(t, db.Create(&entities.Comment{UserID: rater, RecipeID: r.ID, Content: "good", CreatedAt: time.Now()}).Error)

	res, err := service.GetRecipeDetail(ctx, r.ID, "")
	require.NoError(t, err)

	assert.Equal(t, r.ID, res.Recipe.ID)
	assert.Equal(t, []string{"Eggplant", "Onion"}, res.Recipe.Ingredients)
	assert.Equal(t, 4.0, res.AverageRating)
	assert.Equal(t, int64(1), res.RatingCount)
	require.Len(t, res.Comments, 1)

	// Anonymous callers get absent/false per-user state.
	assert.Nil(t, res.CallerRating)
	assert.False(t, res.CallerHasCommented)
	assert.False(t, res.IsFavorite)
}

func TestGetRecipeDetailWithCaller(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	ctx := context.Background()

	r := seedRecipe(t, db, "omelette", "Eggs")
	caller := uuid.New()
	other := uuid.New()

	require.NoError(t, db.Create(&entities.Rating{UserID: caller, RecipeID: r.ID, Value: 5}).Error)
	require.NoError(t, db.Create(&entities.Rating{UserID: other, RecipeID: r.ID, Value: 3}).Error)
	require.NoError(t, db.Create(&entities.Comment{UserID: caller, RecipeID: r.ID, Content: "mine", CreatedAt: time.Now()}).Error)
	require.NoError(t, db.Create(&entities.Favorite{UserID: caller, RecipeID: r.ID, CreatedAt: time.Now()}).Error)

	res, err := service.GetRecipeDetail(ctx, r.ID, caller.String())
	require.NoError(t, err)

	assert.Equal(t, 4.0, res.AverageRating)
	assert.Equal(t, int64(2), res.RatingCount)
	require.NotNil(t, res.CallerRating)
	assert.Equal(t, 5, *res.CallerRating)
	assert.True(t, res.CallerHasCommented)
	assert.True(t, res.IsFavorite)
}

func TestGetHomeFeedSingleRecipe(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	ctx := context.Background()

	r := seedRecipe(t, db, "only")

	res, err := service.GetHomeFeed(ctx, 5, 3)
	require.NoError(t, err)

	require.Len(t, res.Freshest, 1)
	assert.Equal(t, r.ID, res.Freshest[0].ID)
	assert.Equal(t, 0.0, res.Freshest[0].AverageRating)

	require.Len(t, res.TopRated, 1)
	assert.Equal(t, r.ID, res.TopRated[0].ID)
	assert.Equal(t, 0.0, res.TopRated[0].AverageRating)

	assert.Equal(t, []string{r.ImageURL}, res.Images)
}

func TestGetHomeFeedEmptyCatalog(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)

	res, err := service.GetHomeFeed(context.Background(), 5, 3)
	require.NoError(t, err)

	assert.Empty(t, res.Freshest)
	assert.Empty(t, res.TopRated)
	assert.Equal(t, []string{domain.PlaceholderImageURL}, res.Images)
}

func TestGetHomeFeedOrdering(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	ctx := context.Background()

	first := seedRecipe(t, db, "first")
	second := seedRecipe(t, db, "second")
	third := seedRecipe(t, db, "third")

	// second is the clear winner; first and third tie at 0 and rank by id.
	require.NoError(t, db.Create(&entities.Rating{UserID: uuid.New(), RecipeID: second.ID, Value: 5}).Error)

	res, err := service.GetHomeFeed(ctx, 2, 3)
	require.NoError(t, err)

	// Freshest: newest ids first, capped at the requested count.
	require.Len(t, res.Freshest, 2)
	assert.Equal(t, third.ID, res.Freshest[0].ID)
	assert.Equal(t, second.ID, res.Freshest[1].ID)

	require.Len(t, res.TopRated, 3)
	assert.Equal(t, second.ID, res.TopRated[0].ID)
	assert.Equal(t, 5.0, res.TopRated[0].AverageRating)
	assert.Equal(t, first.ID, res.TopRated[1].ID)
	assert.Equal(t, third.ID, res.TopRated[2].ID)

	// Image carousel walks the catalog from the oldest id.
	assert.Equal(t, []string{first.ImageURL, second.ImageURL}, res.Images)
}

func TestSearchByIngredients(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	ctx := context.Background()

	moussaka := seedRecipe(t, db, "moussaka", "Eggplant", "Onion")
	salad := seedRecipe(t, db, "salad", "Lettuce")

	res, err := service.SearchByIngredients(ctx, []string{"egg"})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, moussaka.ID, res[0].ID)

	// No terms means no filter.
	res, err = service.SearchByIngredients(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, res, 2)

	res, err = service.SearchByIngredients(ctx, []string{"lettuce", "missing"})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, salad.ID, res[0].ID)
}

func TestSearchByNameAttachesAverages(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	ctx := context.Background()

	soup := seedRecipe(t, db, "Chicken Soup")
	seedRecipe(t, db, "Greek Salad")
	require.NoError(t, db.Create(&entities.Rating{UserID: uuid.New(), RecipeID: soup.ID, Value: 3}).Error)
	require.NoError(t, db.Create(&entities.Rating{UserID: uuid.New(), RecipeID: soup.ID, Value: 5}).Error)

	res, err := service.SearchByName(ctx, "chicken")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, soup.ID, res[0].ID)
	assert.Equal(t, 4.0, res[0].AverageRating)
}

func TestGetRandomRecipeDelegates(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	ctx := context.Background()

	_, err := service.GetRandomRecipe(ctx)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	r := seedRecipe(t, db, "solo")
	require.NoError(t, db.Create(&entities.Rating{UserID: uuid.New(), RecipeID: r.ID, Value: 2}).Error)

	res, err := service.GetRandomRecipe(ctx)
	require.NoError(t, err)
	assert.Equal(t, r.ID, res.ID)
	assert.Equal(t, 2.0, res.AverageRating)
}
