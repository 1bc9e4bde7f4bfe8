package handlers

import (
	"My-Supps-Backend/domain"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSupplementNotFound),
		errors.Is(err, domain.ErrUserSupplementNotFound),
		errors.Is(err, domain.ErrNutrientNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyOwned):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrInvalidWeight),
		errors.Is(err, domain.ErrInvalidGender),
		errors.Is(err, domain.ErrInvalidProductURL),
		errors.Is(err, domain.ErrMissingSupplementRef):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrReferenceDataUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		log.Errorf("unhandled error: %v", err)
		return fiber.StatusInternalServerError
	}
}

func userIDFrom(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}
