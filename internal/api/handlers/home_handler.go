package handlers

import (
	"Cookers-Backend/domain"
	"Cookers-Backend/internal/api/presenters"
	"Cookers-Backend/pkg/interaction"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultFreshCount    = 5
	defaultTopRatedCount = 3
	maxSearchIngredients = 7
)

type (
	HomeHandler interface {
		GetHomeFeed(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		GetRandomRecipe(c *fiber.Ctx) error
		SearchRecipes(c *fiber.Ctx) error
		SearchByIngredients(c *fiber.Ctx) error
		GetLifestyleTip(c *fiber.Ctx) error
	}

	homeHandler struct {
		interactionService interaction.InteractionService
	}
)

func NewHomeHandler(interactionService interaction.InteractionService) HomeHandler {
	return &homeHandler{interactionService: interactionService}
}

func countQuery(c *fiber.Ctx, key string, fallback int) int {
	count, err := strconv.Atoi(c.Query(key, ""))
	if err != nil || count < 1 {
		return fallback
	}
	return count
}

func (h *homeHandler) GetHomeFeed(c *fiber.Ctx) error {
	fresh := countQuery(c, "fresh", defaultFreshCount)
	top := countQuery(c, "top", defaultTopRatedCount)

	res, err := h.interactionService.GetHomeFeed(c.Context(), fresh, top)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetHomeFeed, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHomeFeed)
}

func (h *homeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	userID := callerID(c)
	id, err := recipeIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
	}

	res, err := h.interactionService.GetRecipeDetail(c.Context(), id, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *homeHandler) GetRandomRecipe(c *fiber.Ctx) error {
	res, err := h.interactionService.GetRandomRecipe(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetRandomRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRandomRecipe)
}

func (h *homeHandler) SearchRecipes(c *fiber.Ctx) error {
	query := c.Query("q", "")

	res, err := h.interactionService.SearchByName(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSearchRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchRecipes)
}

func (h *homeHandler) SearchByIngredients(c *fiber.Ctx) error {
	terms := make([]string, 0, maxSearchIngredients)
	for i := 1; i <= maxSearchIngredients; i++ {
		if term := c.Query(fmt.Sprintf("ingredient%d", i), ""); term != "" {
			terms = append(terms, term)
		}
	}

	res, err := h.interactionService.SearchByIngredients(c.Context(), terms)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSearchRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchRecipes)
}

func (h *homeHandler) GetLifestyleTip(c *fiber.Ctx) error {
	var tip domain.LifestyleTip
	switch c.Params("id") {
	case "1":
		tip = domain.LifestyleTip{Title: "Healthy Eating", Content: "Discover nutritious recipes and tips for balanced meals.", ImageURL: "/images/lifestyle/healthy-eating.jpg"}
	case "2":
		tip = domain.LifestyleTip{Title: "Active Living", Content: "Incorporate more movement into your daily routine.", ImageURL: "/images/lifestyle/active-living.jpg"}
	case "3":
		tip = domain.LifestyleTip{Title: "Mental Wellbeing", Content: "Tips for stress management and mental health awareness.", ImageURL: "/images/lifestyle/mental-wellbeing.jpg"}
	case "4":
		tip = domain.LifestyleTip{Title: "Stay Hydrated", Content: "The importance of drinking water throughout the day.", ImageURL: "/images/lifestyle/stay-hydrated.jpg"}
	default:
		tip = domain.LifestyleTip{Title: "Unknown", Content: "This tip is not available.", ImageURL: domain.PlaceholderImageURL}
	}

	return presenters.SuccessResponse(c, tip, fiber.StatusOK, domain.MessageSuccessGetLifestyleTip)
}
