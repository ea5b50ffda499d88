package handlers

import (
	"Cookers-Backend/domain"
	"Cookers-Backend/internal/api/presenters"
	"Cookers-Backend/pkg/comment"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CommentHandler interface {
		AddComment(c *fiber.Ctx) error
		GetRecipeComments(c *fiber.Ctx) error
	}

	commentHandler struct {
		commentService comment.CommentService
		validator      *validator.Validate
	}
)

func NewCommentHandler(commentService comment.CommentService, validator *validator.Validate) CommentHandler {
	return &commentHandler{
		commentService: commentService,
		validator:      validator,
	}
}

func (h *commentHandler) AddComment(c *fiber.Ctx) error {
	userID := callerID(c)
	req := new(domain.AddCommentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddComment, err)
	}

	res, err := h.commentService.AddComment(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddComment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddComment)
}

func (h *commentHandler) GetRecipeComments(c *fiber.Ctx) error {
	id, err := recipeIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetComments, err)
	}

	res, err := h.commentService.GetRecipeComments(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetComments, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetComments)
}
