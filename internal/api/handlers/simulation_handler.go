package handlers

import (
	"My-Supps-Backend/domain"
	"My-Supps-Backend/internal/api/presenters"
	"My-Supps-Backend/pkg/simulation"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SimulationHandler interface {
		GetSimulation(c *fiber.Ctx) error
		AddProduct(c *fiber.Ctx) error
		RemoveProduct(c *fiber.Ctx) error
		Clear(c *fiber.Ctx) error
		SetWeight(c *fiber.Ctx) error
		Run(c *fiber.Ctx) error
	}

	simulationHandler struct {
		simulationService simulation.SimulationService
		validator         *validator.Validate
	}
)

func NewSimulationHandler(simulationService simulation.SimulationService, validator *validator.Validate) SimulationHandler {
	return &simulationHandler{
		simulationService: simulationService,
		validator:         validator,
	}
}

func (h *simulationHandler) GetSimulation(c *fiber.Ctx) error {
	res, err := h.simulationService.GetSimulation(c.Context(), userIDFrom(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAnalyzeSimulation, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAnalyzeSimulation)
}

func (h *simulationHandler) AddProduct(c *fiber.Ctx) error {
	req := new(domain.AddSimulationProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToSimulation, err)
	}

	res, err := h.simulationService.AddProduct(c.Context(), userIDFrom(c), req.SupplementID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddToSimulation, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddToSimulation)
}

func (h *simulationHandler) RemoveProduct(c *fiber.Ctx) error {
	res, err := h.simulationService.RemoveProduct(c.Context(), userIDFrom(c), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedRemoveFromSim, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRemoveFromSim)
}

func (h *simulationHandler) Clear(c *fiber.Ctx) error {
	res, err := h.simulationService.Clear(c.Context(), userIDFrom(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedClearSimulation, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessClearSimulation)
}

func (h *simulationHandler) SetWeight(c *fiber.Ctx) error {
	req := new(domain.SetWeightRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetWeight, err)
	}

	res, err := h.simulationService.SetWeight(c.Context(), userIDFrom(c), req.WeightKg)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSetWeight, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSetWeight)
}

func (h *simulationHandler) Run(c *fiber.Ctx) error {
	req := new(domain.RunSimulationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyzeSimulation, err)
	}

	res, err := h.simulationService.Simulate(c.Context(), userIDFrom(c), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAnalyzeSimulation, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAnalyzeSimulation)
}
