package entities

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_comment_user_recipe" json:"user_id"`
	RecipeID  uint      `gorm:"uniqueIndex:idx_comment_user_recipe" json:"recipe_id"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID" json:"-"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}
