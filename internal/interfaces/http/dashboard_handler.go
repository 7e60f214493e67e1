package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/reporting"
)

// DashboardHandler serves the read-side projections (protected).
type DashboardHandler struct {
	uc *reporting.UseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *reporting.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Transactions godoc
// @Summary      List transactions, most recent first
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Cap the number of rows (0 = all)"
// @Success      200    {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *DashboardHandler) Transactions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		limit = 0
	}
	out, err := h.uc.Transactions(GetEmail(c), limit)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Overview godoc
// @Summary      Overview stats (counts and total stock value)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OverviewStatsResponse
// @Router       /api/dashboard/overview [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(GetEmail(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// CategoryDistribution godoc
// @Summary      Top 5 categories by product count
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CategoryDistributionResponse
// @Router       /api/dashboard/category-distribution [get]
func (h *DashboardHandler) CategoryDistribution(c *fiber.Ctx) error {
	out, err := h.uc.CategoryDistribution(GetEmail(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// StockSummary godoc
// @Summary      Stock tier counts and critical products
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockSummaryResponse
// @Router       /api/dashboard/stock-summary [get]
func (h *DashboardHandler) StockSummary(c *fiber.Ctx) error {
	out, err := h.uc.StockSummary(GetEmail(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// StockSummaryPDF godoc
// @Summary      Stock summary report as PDF
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/dashboard/stock-summary.pdf [get]
func (h *DashboardHandler) StockSummaryPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.StockSummaryPDF(c.Context(), GetEmail(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-summary.pdf"`)
	return c.Send(pdfBytes)
}
