package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/dto"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/stock"
	"github.com/HarshvardhanPondkule/InventoTrack/pkg/validator"
)

// StockHandler handles the two stock adjustment endpoints (protected).
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler builds the handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Replenish godoc
// @Summary      Replenish stock (IN transaction)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReplenishRequest  true  "Product and quantity"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/replenish [post]
func (h *StockHandler) Replenish(c *fiber.Ctx) error {
	var in dto.ReplenishRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: fmt.Sprintf("field %s failed on %s", errs[0].FailedField, errs[0].Tag),
		})
	}
	if err := h.uc.Replenish(c.Context(), GetEmail(c), in); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Deduct godoc
// @Summary      Deduct stock across order lines (all-or-nothing)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeductRequest  true  "Order lines"
// @Success      200   {object}  dto.DeductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "insufficient stock; nothing was applied"
// @Router       /api/stock/deduct [post]
func (h *StockHandler) Deduct(c *fiber.Ctx) error {
	var in dto.DeductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: fmt.Sprintf("field %s failed on %s", errs[0].FailedField, errs[0].Tag),
		})
	}
	out, err := h.uc.Deduct(c.Context(), GetEmail(c), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
