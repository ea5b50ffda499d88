package rating

import (
	"Cookers-Backend/domain"
	"Cookers-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RatingService interface {
		RateRecipe(ctx context.Context, req domain.RateRecipeRequest, userID string) error
		GetRatingSummary(ctx context.Context, recipeID uint) (domain.RatingSummary, error)
		GetUserRating(ctx context.Context, userID string, recipeID uint) (int, bool, error)
	}

	ratingService struct {
		ratingRepository RatingRepository
	}
)

func NewRatingService(ratingRepository RatingRepository) RatingService {
	return &ratingService{ratingRepository: ratingRepository}
}

// RateRecipe records the caller's rating. A repeat rating from the same user
// for the same recipe overwrites the previous value rather than adding a row.
func (s *ratingService) RateRecipe(ctx context.Context, req domain.RateRecipeRequest, userID string) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if req.Value < 1 || req.Value > 5 {
		return domain.ErrRatingOutOfRange
	}

	rating := &entities.Rating{
		UserID:   userUUID,
		RecipeID: req.RecipeID,
		Value:    req.Value,
	}
	if err := s.ratingRepository.UpsertRating(ctx, rating); err != nil {
		return domain.StoreError(err)
	}
	return nil
}

// GetRatingSummary returns the mean and the rating count. An unrated recipe
// averages 0; callers distinguish that from a genuine low score via the
// count.
func (s *ratingService) GetRatingSummary(ctx context.Context, recipeID uint) (domain.RatingSummary, error) {
	average, err := s.ratingRepository.GetAverageRating(ctx, recipeID)
	if err != nil {
		return domain.RatingSummary{}, domain.StoreError(err)
	}

	count, err := s.ratingRepository.CountRatings(ctx, recipeID)
	if err != nil {
		return domain.RatingSummary{}, domain.StoreError(err)
	}

	return domain.RatingSummary{
		RecipeID:      recipeID,
		AverageRating: average,
		RatingCount:   count,
	}, nil
}

func (s *ratingService) GetUserRating(ctx context.Context, userID string, recipeID uint) (int, bool, error) {
	if userID == "" {
		return 0, false, domain.ErrUnauthenticated
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return 0, false, domain.ErrParseUUID
	}

	rating, err := s.ratingRepository.GetUserRating(ctx, userUUID, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, domain.StoreError(err)
	}
	return rating.Value, true, nil
}
