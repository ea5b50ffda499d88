package rating

import (
	"Cookers-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// RecipeAverage pairs a recipe with its mean rating. Unrated recipes
	// carry 0.
	RecipeAverage struct {
		RecipeID uint
		Average  float64
	}

	RatingRepository interface {
		UpsertRating(ctx context.Context, rating *entities.Rating) error
		GetAverageRating(ctx context.Context, recipeID uint) (float64, error)
		CountRatings(ctx context.Context, recipeID uint) (int64, error)
		GetUserRating(ctx context.Context, userID uuid.UUID, recipeID uint) (*entities.Rating, error)
		GetAverageRatings(ctx context.Context, recipeIDs []uint) (map[uint]float64, error)
		GetTopRecipeAverages(ctx context.Context, limit int) ([]RecipeAverage, error)
	}

	ratingRepository struct {
		db *gorm.DB
	}
)

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// UpsertRating inserts the rating or, when the (user_id, recipe_id) pair
// already exists, overwrites the value in place. The conflict target is the
// unique index on the pair, so two concurrent calls never produce two rows.
func (r *ratingRepository) UpsertRating(ctx context.Context, rating *entities.Rating) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(rating).Error
}

func (r *ratingRepository) GetAverageRating(ctx context.Context, recipeID uint) (float64, error) {
	var average float64
	if err := r.db.WithContext(ctx).
		Model(&entities.Rating{}).
		Where("recipe_id = ?", recipeID).
		Select("COALESCE(AVG(value), 0)").
		Scan(&average).Error; err != nil {
		return 0, err
	}
	return average, nil
}

func (r *ratingRepository) CountRatings(ctx context.Context, recipeID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Rating{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ratingRepository) GetUserRating(ctx context.Context, userID uuid.UUID, recipeID uint) (*entities.Rating, error) {
	var rating entities.Rating
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) GetAverageRatings(ctx context.Context, recipeIDs []uint) (map[uint]float64, error) {
	averages := make(map[uint]float64, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return averages, nil
	}

	var rows []RecipeAverage
	if err := r.db.WithContext(ctx).
		Model(&entities.Rating{}).
		Select("recipe_id, AVG(value) as average").
		Where("recipe_id IN ?", recipeIDs).
		Group("recipe_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		averages[row.RecipeID] = row.Average
	}
	return averages, nil
}

// GetTopRecipeAverages ranks every recipe by mean rating, unrated recipes
// included at 0. Ties are broken by ascending recipe id so the ranking is
// deterministic.
func (r *ratingRepository) GetTopRecipeAverages(ctx context.Context, limit int) ([]RecipeAverage, error) {
	var rows []RecipeAverage
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select("recipes.id as recipe_id, COALESCE(AVG(ratings.value), 0) as average").
		Joins("LEFT JOIN ratings ON ratings.recipe_id = recipes.id").
		Group("recipes.id").
		Order("average desc, recipes.id asc").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
