package handlers

import (
	"My-Supps-Backend/domain"
	"My-Supps-Backend/internal/api/presenters"
	"My-Supps-Backend/pkg/supplement"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MySuppsHandler interface {
		GetMySupps(c *fiber.Ctx) error
		AddMySupp(c *fiber.Ctx) error
		UpdateMySupp(c *fiber.Ctx) error
		RemoveMySupp(c *fiber.Ctx) error
	}

	mySuppsHandler struct {
		mySuppsService supplement.MySuppsService
		validator      *validator.Validate
	}
)

func NewMySuppsHandler(mySuppsService supplement.MySuppsService, validator *validator.Validate) MySuppsHandler {
	return &mySuppsHandler{
		mySuppsService: mySuppsService,
		validator:      validator,
	}
}

func (h *mySuppsHandler) GetMySupps(c *fiber.Ctx) error {
	res, err := h.mySuppsService.GetMySupps(c.Context(), userIDFrom(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetMySupps, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMySupps)
}

func (h *mySuppsHandler) AddMySupp(c *fiber.Ctx) error {
	req := new(domain.AddMySuppRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMySupp, err)
	}

	res, err := h.mySuppsService.AddMySupp(c.Context(), userIDFrom(c), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddMySupp, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddMySupp)
}

func (h *mySuppsHandler) UpdateMySupp(c *fiber.Ctx) error {
	req := new(domain.UpdateMySuppRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMySupp, err)
	}

	res, err := h.mySuppsService.UpdateMySupp(c.Context(), userIDFrom(c), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateMySupp, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMySupp)
}

func (h *mySuppsHandler) RemoveMySupp(c *fiber.Ctx) error {
	if err := h.mySuppsService.RemoveMySupp(c.Context(), userIDFrom(c), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedRemoveMySupp, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveMySupp)
}
