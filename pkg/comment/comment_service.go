package comment

import (
	"Cookers-Backend/domain"
	"Cookers-Backend/entities"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CommentService interface {
		AddComment(ctx context.Context, req domain.AddCommentRequest, userID string) (*domain.Comment, error)
		GetRecipeComments(ctx context.Context, recipeID uint) ([]domain.Comment, error)
		HasCommented(ctx context.Context, userID string, recipeID uint) (bool, error)
	}

	commentService struct {
		commentRepository CommentRepository
	}
)

func NewCommentService(commentRepository CommentRepository) CommentService {
	return &commentService{commentRepository: commentRepository}
}

func toDomain(comment *entities.Comment) domain.Comment {
	return domain.Comment{
		ID:        comment.ID,
		UserID:    comment.UserID.String(),
		RecipeID:  comment.RecipeID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}

// AddComment stores the caller's one comment for a recipe. A second attempt
// is rejected with ErrDuplicateComment, never merged or overwritten.
func (s *commentService) AddComment(ctx context.Context, req domain.AddCommentRequest, userID string) (*domain.Comment, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, domain.ErrEmptyComment
	}

	exists, err := s.commentRepository.HasCommented(ctx, userUUID, req.RecipeID)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	if exists {
		return nil, domain.ErrDuplicateComment
	}

	comment := &entities.Comment{
		UserID:    userUUID,
		RecipeID:  req.RecipeID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.commentRepository.CreateComment(ctx, comment); err != nil {
		// Lost the race against a concurrent comment from the same user.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateComment
		}
		return nil, domain.StoreError(err)
	}

	res := toDomain(comment)
	return &res, nil
}

func (s *commentService) GetRecipeComments(ctx context.Context, recipeID uint) ([]domain.Comment, error) {
	comments, err := s.commentRepository.GetCommentsByRecipe(ctx, recipeID)
	if err != nil {
		return nil, domain.StoreError(err)
	}

	res := make([]domain.Comment, 0, len(comments))
	for _, comment := range comments {
		res = append(res, toDomain(comment))
	}
	return res, nil
}

func (s *commentService) HasCommented(ctx context.Context, userID string, recipeID uint) (bool, error) {
	if userID == "" {
		return false, nil
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return false, domain.ErrParseUUID
	}

	exists, err := s.commentRepository.HasCommented(ctx, userUUID, recipeID)
	if err != nil {
		return false, domain.StoreError(err)
	}
	return exists, nil
}
