package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/importador-clientes/internal/application/customer"
	"github.com/jhoicas/importador-clientes/internal/application/dto"
	"github.com/jhoicas/importador-clientes/internal/domain"
)

// CustomerHandler consultas HTTP de clientes (protegido).
type CustomerHandler struct {
	uc *customer.QueryUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *customer.QueryUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// GetByTaxID GET /api/customers/:tax_id
func (h *CustomerHandler) GetByTaxID(c *fiber.Ctx) error {
	out, err := h.uc.GetByTaxID(c.Context(), c.Params("tax_id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tax_id inválido"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List GET /api/customers?limit=20&offset=0
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
