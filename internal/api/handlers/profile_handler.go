package handlers

import (
	"My-Supps-Backend/domain"
	"My-Supps-Backend/internal/api/presenters"
	"My-Supps-Backend/pkg/user"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProfileHandler interface {
		GetProfile(c *fiber.Ctx) error
		UpdateProfile(c *fiber.Ctx) error
	}

	profileHandler struct {
		profileService user.ProfileService
		validator      *validator.Validate
	}
)

func NewProfileHandler(profileService user.ProfileService, validator *validator.Validate) ProfileHandler {
	return &profileHandler{
		profileService: profileService,
		validator:      validator,
	}
}

func (h *profileHandler) GetProfile(c *fiber.Ctx) error {
	res, err := h.profileService.GetProfile(c.Context(), userIDFrom(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetProfile, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProfile)
}

func (h *profileHandler) UpdateProfile(c *fiber.Ctx) error {
	req := new(domain.UpdateProfileRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProfile, err)
	}

	res, err := h.profileService.UpdateProfile(c.Context(), userIDFrom(c), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateProfile, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateProfile)
}
