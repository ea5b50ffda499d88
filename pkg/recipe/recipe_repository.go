package recipe

import (
	"Cookers-Backend/entities"
	"context"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		GetRecipesByIDs(ctx context.Context, ids []uint) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []entities.RecipeIngredient) error
		DeleteRecipe(ctx context.Context, id uint) error
		SearchByName(ctx context.Context, query string) ([]*entities.Recipe, error)
		GetRecipesByOwner(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error)
		GetAllRecipes(ctx context.Context) ([]*entities.Recipe, error)
		GetFreshestRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error)
		GetFirstRecipeImages(ctx context.Context, limit int) ([]string, error)
		GetRandomRecipe(ctx context.Context) (*entities.Recipe, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func withIngredients(db *gorm.DB) *gorm.DB {
	return db.Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc")
	})
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := withIngredients(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipesByIDs(ctx context.Context, ids []uint) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if len(ids) == 0 {
		return recipes, nil
	}
	if err := withIngredients(r.db.WithContext(ctx)).
		Where("id IN ?", ids).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// UpdateRecipe replaces the recipe fields and its ingredient rows in a single
// transaction so a partially applied update is never visible.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Recipe{}).
			Where("id = ?", recipe.ID).
			Updates(map[string]interface{}{
				"name":        recipe.Name,
				"description": recipe.Description,
				"image_url":   recipe.ImageURL,
			}).Error; err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).
			Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if len(ingredients) == 0 {
			return nil
		}
		return tx.Create(&ingredients).Error
	})
}

// DeleteRecipe removes the recipe and cascades to its ratings, comments,
// favorites and ingredient rows.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Recipe{}).Error
	})
}

func (r *recipeRepository) SearchByName(ctx context.Context, query string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	db := withIngredients(r.db.WithContext(ctx))
	if query != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}

	if err := db.Order("id asc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesByOwner(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := withIngredients(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetAllRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	return r.SearchByName(ctx, "")
}

func (r *recipeRepository) GetFreshestRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := withIngredients(r.db.WithContext(ctx)).
		Order("id desc").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetFirstRecipeImages(ctx context.Context, limit int) ([]string, error) {
	var images []string
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Order("id asc").
		Limit(limit).
		Pluck("image_url", &images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// GetRandomRecipe draws a uniform random index over the catalog. Count and
// read happen in one transaction so the draw never uses a stale count.
func (r *recipeRepository) GetRandomRecipe(ctx context.Context) (*entities.Recipe, error) {
	var recipe entities.Recipe
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.Recipe{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return withIngredients(tx).
			Order("id asc").
			Offset(rand.Intn(int(count))).
			First(&recipe).Error
	})
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}
