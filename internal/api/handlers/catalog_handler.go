package handlers

import (
	"My-Supps-Backend/domain"
	"My-Supps-Backend/internal/api/presenters"
	"My-Supps-Backend/pkg/catalog"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"strconv"
)

type (
	CatalogHandler interface {
		GetNutrients(c *fiber.Ctx) error
		GetSupplements(c *fiber.Ctx) error
		GetSupplementDetail(c *fiber.Ctx) error
		LookupSupplement(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
		validator      *validator.Validate
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService, validator *validator.Validate) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
		validator:      validator,
	}
}

func (h *catalogHandler) GetNutrients(c *fiber.Ctx) error {
	nutrients, err := h.catalogService.GetNutrients(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetNutrients, err)
	}
	return presenters.SuccessResponse(c, nutrients, fiber.StatusOK, domain.MessageSuccessGetNutrients)
}

func (h *catalogHandler) GetSupplements(c *fiber.Ctx) error {
	query := c.Query("q")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	supplements, count, err := h.catalogService.GetSupplements(c.Context(), query, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetSupplements, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items":      supplements,
		"pagination": domain.NewPagination(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetSupplements)
}

func (h *catalogHandler) GetSupplementDetail(c *fiber.Ctx) error {
	detail, err := h.catalogService.GetSupplementDetail(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetSupplementDetail, err)
	}
	return presenters.SuccessResponse(c, detail, fiber.StatusOK, domain.MessageSuccessGetSupplementDetail)
}

func (h *catalogHandler) LookupSupplement(c *fiber.Ctx) error {
	req := new(domain.LookupSupplementRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLookupSupplement, err)
	}

	res, err := h.catalogService.LookupByURL(c.Context(), req.URL)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedLookupSupplement, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLookupSupplement)
}
