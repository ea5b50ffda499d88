package comment

import (
	"context"
	"testing"
	"time"

	"Cookers-Backend/domain"
	"Cookers-Backend/entities"

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

func seedRecipe(t *testing.T, db *gorm.DB, name string) *entities.Recipe {
	t.Helper()

	recipe := &entities.Recipe{
		Name:        name,
		Description: "test recipe",
		ImageURL:    "/images/" + name + ".png",
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}

func TestAddCommentRejectsDuplicate(t *testing.T) {
	db := setupTestDB(t)
	service := NewCommentService(NewCommentRepository(db))
	ctx := context.Background()

	recipe := seedRecipe(t, db, "moussaka")
	userID := uuid.NewString()

	first, err := service.AddComment(ctx, domain.AddCommentRequest{RecipeID: recipe.ID, Content: "nice"}, userID)
	require.NoError(t, err)
	assert.Equal(t, "nice", first.Content)

	// The second attempt is rejected, not merged.
	_, err = service.AddComment(ctx, domain.AddCommentRequest{RecipeID: recipe.ID, Content: "again"}, userID)
	assert.ErrorIs(t, err, domain.ErrDuplicateComment)

	comments, err := service.GetRecipeComments(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "nice", comments[0].Content)
	assert.Equal(t, userID, comments[0].UserID)
}

func TestAddCommentValidation(t *testing.T) {
	db := setupTestDB(t)
	service := NewCommentService(NewCommentRepository(db))
	ctx := context.Background()

	recipe := seedRecipe(t, db, "omelette")

	_, err := service.AddComment(ctx, domain.AddCommentRequest{RecipeID: recipe.ID, Content: "tasty"}, "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = service.AddComment(ctx, domain.AddCommentRequest{RecipeID: recipe.ID, Content: "   "}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrEmptyComment)
}

func TestAddCommentTrimsContent(t *testing.T) {
	db := setupTestDB(t)
	service := NewCommentService(NewCommentRepository(db))
	ctx := context.Background()

	recipe := seedRecipe(t, db, "salad")

	res, err := service.AddComment(ctx, domain.AddCommentRequest{RecipeID: recipe.ID, Content: "  lovely  "}, uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, "lovely", res.Content)
	assert.False(t, res.CreatedAt.IsZero())
}

func TestGetRecipeCommentsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	service := NewCommentService(repo)
	ctx := context.Background()

	recipe := seedRecipe(t, db, "soup")
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	older := &entities.Comment{UserID: uuid.New(), RecipeID: recipe.ID, Content: "older", CreatedAt: base}
	newer := &entities.Comment{UserID: uuid.New(), RecipeID: recipe.ID, Content: "newer", CreatedAt: base.Add(time.Hour)}
	tiedA := &entities.Comment{UserID: uuid.New(), RecipeID: recipe.ID, Content: "tied-first", CreatedAt: base.Add(2 * time.Hour)}
	tiedB := &entities.Comment{UserID: uuid.New(), RecipeID: recipe.ID, Content: "tied-second", CreatedAt: base.Add(2 * time.Hour)}

	for _, c := range []*entities.Comment{older, newer, tiedA, tiedB} {
		require.NoError(t, repo.CreateComment(ctx, c))
	}

	comments, err := service.GetRecipeComments(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, comments, 4)

	// Newest first; equal timestamps keep insertion order.
	assert.Equal(t, "tied-first", comments[0].Content)
	assert.Equal(t, "tied-second", comments[1].Content)
	assert.Equal(t, "newer", comments[2].Content)
	assert.Equal(t, "older", comments[3].Content)
}

func TestHasCommented(t *testing.T) {
	db := setupTestDB(t)
	service := NewCommentService(NewCommentRepository(db))
	ctx := context.Background()

	recipe := seedRecipe(t, db, "stew")
	userID := uuid.NewString()

	has, err := service.HasCommented(ctx, userID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, has)

	_, err = service.AddComment(ctx, domain.AddCommentRequest{RecipeID: recipe.ID, Content: "good"}, userID)
	require.NoError(t, err)

	has, err = service.HasCommented(ctx, userID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, has)

	// Anonymous callers never have a comment.
	has, err = service.HasCommented(ctx, "", recipe.ID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestConcurrentDuplicateInsertSurfacesDuplicateKey(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	recipe := seedRecipe(t, db, "pie")
	userID := uuid.New()

	first := &entities.Comment{UserID: userID, RecipeID: recipe.ID, Content: "one", CreatedAt: time.Now()}
	second := &entities.Comment{UserID: userID, RecipeID: recipe.ID, Content: "two", CreatedAt: time.Now()}

	require.NoError(t, repo.CreateComment(ctx, first))

	// The pre-check in the service can race; the unique index is the
	// backstop that makes the loser observable.
	err := repo.CreateComment(ctx, second)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
