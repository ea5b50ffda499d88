package entities

import (
	"github.com/google/uuid"
)

type Rating struct {
	ID       uint      `gorm:"primarykey" json:"id"`
	UserID   uuid.UUID `gorm:"uniqueIndex:idx_rating_user_recipe" json:"user_id"`
	RecipeID uint      `gorm:"uniqueIndex:idx_rating_user_recipe" json:"recipe_id"`
	Value    int       `json:"value"`

	User   *User   `gorm:"foreignKey:UserID" json:"-"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
