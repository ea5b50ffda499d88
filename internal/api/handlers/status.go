package handlers

import (
	"Cookers-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps the service error taxonomy to HTTP statuses: validation
// and bad identifiers to 400, missing identity to 401, ownership failures
// to 403, missing records to 404, comment uniqueness to 409 and store
// failures to 503.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedRecipeAccess):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrCredentialsInvalid),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrDuplicateComment):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusBadRequest
	}
}

// callerID returns the authenticated user id, or "" for anonymous requests.
func callerID(c *fiber.Ctx) string {
	if userID, ok := c.Locals("user_id").(string); ok {
		return userID
	}
	return ""
}
