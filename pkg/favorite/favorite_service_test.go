package favorite

import (
	"context"
	"testing"

	"Cookers-Backend/domain"
	"Cookers-Backend/entities"
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

func newService(db *gorm.DB) FavoriteService {
	return NewFavoriteService(NewFavoriteRepository(db), recipe.NewRecipeRepository(db))
}

func seedRecipe(t *testing.T, db *gorm.DB, name string) *entities.Recipe {
	t.Helper()

	r := &entities.Recipe{
		Name:        name,
		Description: "test recipe",
		ImageURL:    "/images/" + name + ".png",
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func TestAddFavoriteIdempotent(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	ctx := context.Background()

	r := seedRecipe(t, db, "moussaka")
	userID := uuid.NewString()

	require.NoError(t, service.AddFavorite(ctx, domain.FavoriteRequest{RecipeID: r.ID}, userID))
	require.NoError(t, service.AddFavorite(ctx, domain.FavoriteRequest{RecipeID: r.ID}, userID))

	ids, err := service.GetFavoriteRecipeIDs(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []uint{r.ID}, ids)

	isFav, err := service.IsFavorite(ctx, userID, r.ID)
	require.NoError(t, err)
	assert.True(t, isFav)
}

func TestRemoveFavoriteIdempotent(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	ctx := context.Background()

	r := seedRecipe(t, db, "omelette")
	userID := uuid.NewString()

	// Removing a favorite that was never added succeeds and changes nothing.
	require.NoError(t, service.RemoveFavorite(ctx, domain.FavoriteRequest{RecipeID: r.ID}, userID))

	ids, err := service.GetFavoriteRecipeIDs(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, service.AddFavorite(ctx, domain.FavoriteRequest{RecipeID: r.ID}, userID))
	require.NoError(t, service.RemoveFavorite(ctx, domain.FavoriteRequest{RecipeID: r.ID}, userID))
	require.NoError(t, service.RemoveFavorite(ctx, domain.FavoriteRequest{RecipeID: r.ID}, userID))

	isFav, err := service.IsFavorite(ctx, userID, r.ID)
	require.NoError(t, err)
	assert.False(t, isFav)
}

func TestFavoriteRequiresIdentity(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	ctx := context.Background()

	r := seedRecipe(t, db, "salad")

	err := service.AddFavorite(ctx, domain.FavoriteRequest{RecipeID: r.ID}, "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	err = service.AddFavorite(ctx, domain.FavoriteRequest{RecipeID: r.ID}, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestGetFavoriteRecipes(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	ctx := context.Background()

	kept := seedRecipe(t, db, "kept")
	gone := seedRecipe(t, db, "gone")
	userID := uuid.NewString()

	require.NoError(t, service.AddFavorite(ctx, domain.FavoriteRequest{RecipeID: kept.ID}, userID))
	require.NoError(t, service.AddFavorite(ctx, domain.FavoriteRequest{RecipeID: gone.ID}, userID))

	// A favorite whose recipe was deleted is treated as absent.
	require.NoError(t, db.Delete(&entities.Recipe{}, gone.ID).Error)

	recipes, err := service.GetFavoriteRecipes(ctx, userID)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, kept.ID, recipes[0].ID)
	assert.Equal(t, "kept", recipes[0].Name)
}
