package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	UserID      *uuid.UUID `gorm:"index" json:"user_id,omitempty"`
	Name        string     `gorm:"size:100" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	ImageURL    string     `json:"image_url"`

	// One row per ingredient, ordered by Position. An ingredient may itself
	// contain a comma, so the list is never stored as a joined string.
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

// IngredientNames flattens the ingredient rows in stored order.
func (r *Recipe) IngredientNames() []string {
	names := make([]string, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		names = append(names, ing.Name)
	}
	return names
}

type RecipeIngredient struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	RecipeID uint   `gorm:"index" json:"recipe_id"`
	Position int    `json:"position"`
	Name     string `json:"name"`
}
