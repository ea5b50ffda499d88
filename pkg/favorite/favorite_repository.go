package favorite

import (
	"Cookers-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FavoriteRepository interface {
		AddFavorite(ctx context.Context, userID uuid.UUID, recipeID uint) error
		RemoveFavorite(ctx context.Context, userID uuid.UUID, recipeID uint) error
		IsFavorite(ctx context.Context, userID uuid.UUID, recipeID uint) (bool, error)
		GetFavoriteRecipeIDs(ctx context.Context, userID uuid.UUID) ([]uint, error)
	}

	favoriteRepository struct {
		db *gorm.DB
	}
)

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// AddFavorite is idempotent: an existing favorite leaves the set unchanged.
// The unique index on (user_id, recipe_id) closes the race between two
// concurrent adds, and the loser's duplicate-key error is swallowed.
func (r *favoriteRepository) AddFavorite(ctx context.Context, userID uuid.UUID, recipeID uint) error {
	var existing entities.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	favorite := entities.Favorite{
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}

// RemoveFavorite is a no-op when the favorite does not exist.
func (r *favoriteRepository) RemoveFavorite(ctx context.Context, userID uuid.UUID, recipeID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.Favorite{}).Error
}

func (r *favoriteRepository) IsFavorite(ctx context.Context, userID uuid.UUID, recipeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *favoriteRepository) GetFavoriteRecipeIDs(ctx context.Context, userID uuid.UUID) ([]uint, error) {
	var recipeIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&entities.Favorite{}).
		Where("user_id = ?", userID).
		Order("id asc").
		Pluck("recipe_id", &recipeIDs).Error; err != nil {
		return nil, err
	}
	return recipeIDs, nil
}
