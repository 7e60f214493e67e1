package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/usecase"
)

// AssociationHandler handles tenant resolution endpoints.
type AssociationHandler struct {
	uc *usecase.AssociationUseCase
}

// NewAssociationHandler builds the handler.
func NewAssociationHandler(uc *usecase.AssociationUseCase) *AssociationHandler {
	return &AssociationHandler{uc: uc}
}

// Session godoc
// @Summary      Ensure the caller's association exists (create on first login)
// @Tags         associations
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AssociationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/session [post]
func (h *AssociationHandler) Session(c *fiber.Ctx) error {
	out, err := h.uc.EnsureForLogin(GetEmail(c), GetName(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Resolve the caller's association
// @Tags         associations
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AssociationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/associations/me [get]
func (h *AssociationHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.GetByEmail(GetEmail(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
