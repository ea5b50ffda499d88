package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddComment  = "comment added successfully"
	MessageSuccessGetComments = "success get comments"

	MessageFailedAddComment  = "failed to add comment"
	MessageFailedGetComments = "failed to get comments"

	ErrEmptyComment     = errors.New("comment content must not be empty")
	ErrDuplicateComment = errors.New("user has already commented on this recipe")
)

type (
	AddCommentRequest struct {
		RecipeID uint   `json:"recipe_id" validate:"required"`
		Content  string `json:"content" validate:"required"`
	}

	Comment struct {
		ID        uint      `json:"id"`
		UserID    string    `json:"user_id"`
		RecipeID  uint      `json:"recipe_id"`
		Content   string    `json:"content"`
		CreatedAt time.Time `json:"created_at"`
	}
)
