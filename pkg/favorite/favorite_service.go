package favorite

import (
	"Cookers-Backend/domain"
	"Cookers-Backend/pkg/recipe"
	"context"

	"github.com/google/uuid"
)

type (
	FavoriteService interface {
		AddFavorite(ctx context.Context, req domain.FavoriteRequest, userID string) error
		RemoveFavorite(ctx context.Context, req domain.FavoriteRequest, userID string) error
		IsFavorite(ctx context.Context, userID string, recipeID uint) (bool, error)
		GetFavoriteRecipeIDs(ctx context.Context, userID string) ([]uint, error)
		GetFavoriteRecipes(ctx context.Context, userID string) ([]domain.Recipe, error)
	}

	favoriteService struct {
		favoriteRepository FavoriteRepository
		recipeRepository   recipe.RecipeRepository
	}
)

func NewFavoriteService(favoriteRepository FavoriteRepository, recipeRepository recipe.RecipeRepository) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		recipeRepository:   recipeRepository,
	}
}

func (s *favoriteService) parseUser(userID string) (uuid.UUID, error) {
	if userID == "" {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, domain.ErrParseUUID
	}
	return userUUID, nil
}

func (s *favoriteService) AddFavorite(ctx context.Context, req domain.FavoriteRequest, userID string) error {
	userUUID, err := s.parseUser(userID)
	if err != nil {
		return err
	}
	if err := s.favoriteRepository.AddFavorite(ctx, userUUID, req.RecipeID); err != nil {
		return domain.StoreError(err)
	}
	return nil
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, req domain.FavoriteRequest, userID string) error {
	userUUID, err := s.parseUser(userID)
	if err != nil {
		return err
	}
	if err := s.favoriteRepository.RemoveFavorite(ctx, userUUID, req.RecipeID); err != nil {
		return domain.StoreError(err)
	}
	return nil
}

func (s *favoriteService) IsFavorite(ctx context.Context, userID string, recipeID uint) (bool, error) {
	userUUID, err := s.parseUser(userID)
	if err != nil {
		return false, err
	}
	isFavorite, err := s.favoriteRepository.IsFavorite(ctx, userUUID, recipeID)
	if err != nil {
		return false, domain.StoreError(err)
	}
	return isFavorite, nil
}

func (s *favoriteService) GetFavoriteRecipeIDs(ctx context.Context, userID string) ([]uint, error) {
	userUUID, err := s.parseUser(userID)
	if err != nil {
		return nil, err
	}
	recipeIDs, err := s.favoriteRepository.GetFavoriteRecipeIDs(ctx, userUUID)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	return recipeIDs, nil
}

// GetFavoriteRecipes resolves the favorite set to full recipes. A favorite
// whose recipe has since been deleted is simply absent from the result.
func (s *favoriteService) GetFavoriteRecipes(ctx context.Context, userID string) ([]domain.Recipe, error) {
	recipeIDs, err := s.GetFavoriteRecipeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	recipes, err := s.recipeRepository.GetRecipesByIDs(ctx, recipeIDs)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	return recipe.ToDomainList(recipes), nil
}
