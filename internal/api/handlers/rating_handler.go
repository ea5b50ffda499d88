package handlers

import (
	"Cookers-Backend/domain"
	"Cookers-Backend/internal/api/presenters"
	"Cookers-Backend/pkg/rating"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RatingHandler interface {
		RateRecipe(c *fiber.Ctx) error
		GetRatingSummary(c *fiber.Ctx) error
	}

	ratingHandler struct {
		ratingService rating.RatingService
		validator     *validator.Validate
	}
)

func NewRatingHandler(ratingService rating.RatingService, validator *validator.Validate) RatingHandler {
	return &ratingHandler{
		ratingService: ratingService,
		validator:     validator,
	}
}

func (h *ratingHandler) RateRecipe(c *fiber.Ctx) error {
	userID := callerID(c)
	req := new(domain.RateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRateRecipe, err)
	}

	if err := h.ratingService.RateRecipe(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedRateRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRateRecipe)
}

func (h *ratingHandler) GetRatingSummary(c *fiber.Ctx) error {
	id, err := recipeIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetAverageRating, err)
	}

	res, err := h.ratingService.GetRatingSummary(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetAverageRating, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAverageRating)
}
