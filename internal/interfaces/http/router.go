package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/media"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/reporting"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/stock"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AssociationUC *usecase.AssociationUseCase
	CategoryUC    *usecase.CategoryUseCase
	ProductUC     *usecase.ProductUseCase
	StockUC       *stock.UseCase
	ReportingUC   *reporting.UseCase
	Uploader      media.Uploader // nil disables the upload endpoints
	JWTSecret     string
}

// Router registers the API routes. Everything under /api requires a Bearer
// token from the identity provider.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	associationHandler := NewAssociationHandler(deps.AssociationUC)
	api.Post("/session", associationHandler.Session)
	api.Get("/associations/me", associationHandler.Me)

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Post("/replenish", stockHandler.Replenish)
	stockGroup.Post("/deduct", stockHandler.Deduct)

	dashboardHandler := NewDashboardHandler(deps.ReportingUC)
	api.Get("/transactions", dashboardHandler.Transactions)
	dashboard := api.Group("/dashboard")
	dashboard.Get("/overview", dashboardHandler.Overview)
	dashboard.Get("/category-distribution", dashboardHandler.CategoryDistribution)
	dashboard.Get("/stock-summary", dashboardHandler.StockSummary)
	dashboard.Get("/stock-summary.pdf", dashboardHandler.StockSummaryPDF)

	if deps.Uploader != nil {
		uploadHandler := NewUploadHandler(deps.Uploader)
		api.Post("/uploads", uploadHandler.Upload)
		api.Delete("/uploads/:publicId", uploadHandler.Delete)
	}
}
