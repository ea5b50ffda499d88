package recipe

import (
	"Cookers-Backend/domain"
	"Cookers-Backend/entities"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (*domain.Recipe, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest, userID string) (*domain.Recipe, error)
		DeleteRecipe(ctx context.Context, id uint, userID string) error
		GetRecipeByID(ctx context.Context, id uint) (*domain.Recipe, error)
		SearchRecipes(ctx context.Context, query string) ([]domain.Recipe, error)
		GetUserRecipes(ctx context.Context, userID string) ([]domain.Recipe, error)
		GetRandomRecipe(ctx context.Context) (*domain.Recipe, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

// ownsRecipe is the single ownership predicate behind every mutating
// operation. Ownerless seed recipes belong to nobody.
func ownsRecipe(recipe *entities.Recipe, userID uuid.UUID) bool {
	return recipe.UserID != nil && *recipe.UserID == userID
}

func validatePayload(name, description, imageURL string) error {
	if strings.TrimSpace(name) == "" ||
		strings.TrimSpace(description) == "" ||
		strings.TrimSpace(imageURL) == "" {
		return domain.ErrRecipeValidation
	}
	if len(name) > domain.RecipeNameMaxLength {
		return domain.ErrRecipeValidation
	}
	return nil
}

func buildIngredients(recipeID uint, names []string) []entities.RecipeIngredient {
	ingredients := make([]entities.RecipeIngredient, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		ingredients = append(ingredients, entities.RecipeIngredient{
			RecipeID: recipeID,
			Position: len(ingredients),
			Name:     name,
		})
	}
	return ingredients
}

// ToDomain maps a recipe entity to its response shape. The average rating is
// filled in by callers that have one.
func ToDomain(recipe *entities.Recipe) domain.Recipe {
	res := domain.Recipe{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Description: recipe.Description,
		ImageURL:    recipe.ImageURL,
		Ingredients: recipe.IngredientNames(),
		CreatedAt:   recipe.CreatedAt,
	}
	if recipe.UserID != nil {
		res.UserID = recipe.UserID.String()
	}
	return res
}

func ToDomainList(recipes []*entities.Recipe) []domain.Recipe {
	res := make([]domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, ToDomain(recipe))
	}
	return res
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (*domain.Recipe, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if err := validatePayload(req.Name, req.Description, req.ImageURL); err != nil {
		return nil, err
	}

	recipe := &entities.Recipe{
		UserID:      &userUUID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Ingredients: buildIngredients(0, req.Ingredients),
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return nil, domain.StoreError(err)
	}

	res := ToDomain(recipe)
	return &res, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest, userID string) (*domain.Recipe, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if err := validatePayload(req.Name, req.Description, req.ImageURL); err != nil {
		return nil, err
	}

	existing, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, domain.StoreError(err)
	}

	if !ownsRecipe(existing, userUUID) {
		return nil, domain.ErrUnauthorizedRecipeAccess
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.ImageURL = req.ImageURL
	ingredients := buildIngredients(existing.ID, req.Ingredients)

	if err := s.recipeRepository.UpdateRecipe(ctx, existing, ingredients); err != nil {
		return nil, domain.StoreError(err)
	}

	existing.Ingredients = ingredients
	res := ToDomain(existing)
	return &res, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint, userID string) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	existing, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return domain.StoreError(err)
	}

	if !ownsRecipe(existing, userUUID) {
		return domain.ErrUnauthorizedRecipeAccess
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		return domain.StoreError(err)
	}
	return nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id uint) (*domain.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, domain.StoreError(err)
	}
	res := ToDomain(recipe)
	return &res, nil
}

func (s *recipeService) SearchRecipes(ctx context.Context, query string) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.SearchByName(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, domain.StoreError(err)
	}
	return ToDomainList(recipes), nil
}

func (s *recipeService) GetUserRecipes(ctx context.Context, userID string) ([]domain.Recipe, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipes, err := s.recipeRepository.GetRecipesByOwner(ctx, userUUID)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	return ToDomainList(recipes), nil
}

func (s *recipeService) GetRandomRecipe(ctx context.Context) (*domain.Recipe, error) {
	recipe, err := s.recipeRepository.GetRandomRecipe(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, domain.StoreError(err)
	}
	res := ToDomain(recipe)
	return &res, nil
}
