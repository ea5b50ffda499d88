package comment

import (
	"Cookers-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CommentRepository interface {
		CreateComment(ctx context.Context, comment *entities.Comment) error
		HasCommented(ctx context.Context, userID uuid.UUID, recipeID uint) (bool, error)
		GetCommentsByRecipe(ctx context.Context, recipeID uint) ([]*entities.Comment, error)
	}

	commentRepository struct {
		db *gorm.DB
	}
)

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// CreateComment relies on the unique index over (user_id, recipe_id):
// when two inserts race, exactly one succeeds and the other surfaces
// gorm.ErrDuplicatedKey.
func (r *commentRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) HasCommented(ctx context.Context, userID uuid.UUID, recipeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetCommentsByRecipe returns comments newest-first. Equal timestamps keep
// insertion order via the ascending id tie-break.
func (r *commentRepository) GetCommentsByRecipe(ctx context.Context, recipeID uint) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at desc, id asc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
