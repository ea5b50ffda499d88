package interaction

import (
	"Cookers-Backend/domain"
	"Cookers-Backend/entities"
	"Cookers-Backend/pkg/comment"
	"Cookers-Backend/pkg/favorite"
	"Cookers-Backend/pkg/ingredient"
	"Cookers-Backend/pkg/rating"
	"Cookers-Backend/pkg/recipe"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// InteractionService answers the composite read queries: recipe detail
	// with the caller's own interaction state, the home feed, and the search
	// surfaces that attach average ratings.
	InteractionService interface {
		GetRecipeDetail(ctx context.Context, recipeID uint, userID string) (*domain.RecipeDetailResponse, error)
		GetHomeFeed(ctx context.Context, freshCount, topRatedCount int) (*domain.HomeFeedResponse, error)
		SearchByName(ctx context.Context, query string) ([]domain.Recipe, error)
		SearchByIngredients(ctx context.Context, terms []string) ([]domain.Recipe, error)
		GetRandomRecipe(ctx context.Context) (*domain.Recipe, error)
	}

	interactionService struct {
		recipeRepository   recipe.RecipeRepository
		ratingRepository   rating.RatingRepository
		commentService     comment.CommentService
		favoriteRepository favorite.FavoriteRepository
	}
)

func NewInteractionService(
	recipeRepository recipe.RecipeRepository,
	ratingRepository rating.RatingRepository,
	commentService comment.CommentService,
	favoriteRepository favorite.FavoriteRepository,
) InteractionService {
	return &interactionService{
		recipeRepository:   recipeRepository,
		ratingRepository:   ratingRepository,
		commentService:     commentService,
		favoriteRepository: favoriteRepository,
	}
}

func (s *interactionService) attachAverages(ctx context.Context, recipes []*entities.Recipe) ([]domain.Recipe, error) {
	ids := make([]uint, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}

	averages, err := s.ratingRepository.GetAverageRatings(ctx, ids)
	if err != nil {
		return nil, domain.StoreError(err)
	}

	res := recipe.ToDomainList(recipes)
	for i := range res {
		res[i].AverageRating = averages[res[i].ID]
	}
	return res, nil
}

func (s *interactionService) GetRecipeDetail(ctx context.Context, recipeID uint, userID string) (*domain.RecipeDetailResponse, error) {
	found, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, domain.StoreError(err)
	}

	average, err := s.ratingRepository.GetAverageRating(ctx, recipeID)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	count, err := s.ratingRepository.CountRatings(ctx, recipeID)
	if err != nil {
		return nil, domain.StoreError(err)
	}

	comments, err := s.commentService.GetRecipeComments(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	res := &domain.RecipeDetailResponse{
		Recipe:        recipe.ToDomain(found),
		AverageRating: average,
		RatingCount:   count,
		Comments:      comments,
	}
	res.Recipe.AverageRating = average

	// Anonymous callers get absent/false without touching per-user state.
	if userID == "" {
		return res, nil
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	userRating, err := s.ratingRepository.GetUserRating(ctx, userUUID, recipeID)
	if err == nil {
		value := userRating.Value
		res.CallerRating = &value
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.StoreError(err)
	}

	hasCommented, err := s.commentService.HasCommented(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}
	res.CallerHasCommented = hasCommented

	isFavorite, err := s.favoriteRepository.IsFavorite(ctx, userUUID, recipeID)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	res.IsFavorite = isFavorite

	return res, nil
}

func (s *interactionService) GetHomeFeed(ctx context.Context, freshCount, topRatedCount int) (*domain.HomeFeedResponse, error) {
	freshRecipes, err := s.recipeRepository.GetFreshestRecipes(ctx, freshCount)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	freshest, err := s.attachAverages(ctx, freshRecipes)
	if err != nil {
		return nil, err
	}

	topRows, err := s.ratingRepository.GetTopRecipeAverages(ctx, topRatedCount)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	topIDs := make([]uint, 0, len(topRows))
	for _, row := range topRows {
		topIDs = append(topIDs, row.RecipeID)
	}
	topRecipes, err := s.recipeRepository.GetRecipesByIDs(ctx, topIDs)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	byID := make(map[uint]*entities.Recipe, len(topRecipes))
	for _, r := range topRecipes {
		byID[r.ID] = r
	}
	topRated := make([]domain.Recipe, 0, len(topRows))
	for _, row := range topRows {
		r, ok := byID[row.RecipeID]
		if !ok {
			continue
		}
		res := recipe.ToDomain(r)
		res.AverageRating = row.Average
		topRated = append(topRated, res)
	}

	images, err := s.recipeRepository.GetFirstRecipeImages(ctx, freshCount)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	if len(images) == 0 {
		images = append(images, domain.PlaceholderImageURL)
	}

	return &domain.HomeFeedResponse{
		Freshest: freshest,
		TopRated: topRated,
		Images:   images,
	}, nil
}

func (s *interactionService) SearchByName(ctx context.Context, query string) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.SearchByName(ctx, query)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	return s.attachAverages(ctx, recipes)
}

func (s *interactionService) SearchByIngredients(ctx context.Context, terms []string) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetAllRecipes(ctx)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	return s.attachAverages(ctx, ingredient.Filter(recipes, terms))
}

func (s *interactionService) GetRandomRecipe(ctx context.Context) (*domain.Recipe, error) {
	found, err := s.recipeRepository.GetRandomRecipe(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, domain.StoreError(err)
	}

	res := recipe.ToDomain(found)
	average, err := s.ratingRepository.GetAverageRating(ctx, found.ID)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	res.AverageRating = average
	return &res, nil
}
