// Package reporting contains the read-side projections behind the
// dashboard: recent transactions, overview stats, category distribution and
// the stock summary. All of them are pure reads scoped to the caller's
// association.
package reporting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/dto"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain/entity"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain/repository"
)

const distributionTopN = 5 // slices shown in the category chart

// PDFGenerator renders the stock summary report. Implemented by the maroto
// adapter in infrastructure/pdf.
type PDFGenerator interface {
	GenerateStockReport(ctx context.Context, associationName string, summary *dto.StockSummaryResponse, generatedAt time.Time) ([]byte, error)
}

// UseCase builds the dashboard projections.
type UseCase struct {
	associationRepo repository.AssociationRepository
	productRepo     repository.ProductRepository
	categoryRepo    repository.CategoryRepository
	transactionRepo repository.TransactionRepository
	pdf             PDFGenerator
}

// NewUseCase builds the usecase. pdf may be nil when the report export is
// not wired (the PDF endpoint then returns an error).
func NewUseCase(
	associationRepo repository.AssociationRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	transactionRepo repository.TransactionRepository,
	pdf PDFGenerator,
) *UseCase {
	return &UseCase{
		associationRepo: associationRepo,
		productRepo:     productRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		pdf:             pdf,
	}
}

func (uc *UseCase) resolveAssociation(email string) (*entity.Association, error) {
	if email == "" {
		return nil, domain.ErrMissingInput
	}
	association, err := uc.associationRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if association == nil {
		return nil, domain.ErrAssociationNotFound
	}
	return association, nil
}

// Transactions returns ledger entries most recent first, capped to limit
// when limit > 0.
func (uc *UseCase) Transactions(email string, limit int) (*dto.TransactionListResponse, error) {
	association, err := uc.resolveAssociation(email)
	if err != nil {
		return nil, err
	}
	transactions, err := uc.transactionRepo.ListByAssociation(association.ID, limit)
	if err != nil {
		return nil, err
	}
	out := &dto.TransactionListResponse{Items: make([]dto.TransactionResponse, 0, len(transactions))}
	for _, t := range transactions {
		out.Items = append(out.Items, dto.TransactionResponse{
			ID:           t.ID,
			Type:         t.Type,
			Quantity:     t.Quantity,
			ProductID:    t.ProductID,
			ProductName:  t.ProductName,
			CategoryName: t.CategoryName,
			Unit:         t.Unit,
			Price:        t.Price,
			ImageURL:     t.ImageURL,
			CreatedAt:    t.CreatedAt,
		})
	}
	return out, nil
}

// Overview computes the headline stats: product count, distinct categories
// among products, transaction count and total stock value (Σ price × qty).
func (uc *UseCase) Overview(email string) (*dto.OverviewStatsResponse, error) {
	association, err := uc.resolveAssociation(email)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListByAssociation(association.ID)
	if err != nil {
		return nil, err
	}
	transactionCount, err := uc.transactionRepo.CountByAssociation(association.ID)
	if err != nil {
		return nil, err
	}

	stockValue := decimal.Zero
	categories := make(map[string]struct{})
	for _, p := range products {
		stockValue = stockValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
		categories[p.CategoryID] = struct{}{}
	}

	return &dto.OverviewStatsResponse{
		TotalProducts:     len(products),
		TotalCategories:   len(categories),
		TotalTransactions: transactionCount,
		StockValue:        stockValue,
	}, nil
}

// CategoryDistribution returns the top categories by product count, ordered
// count descending then name ascending.
func (uc *UseCase) CategoryDistribution(email string) (*dto.CategoryDistributionResponse, error) {
	association, err := uc.resolveAssociation(email)
	if err != nil {
		return nil, err
	}
	distribution, err := uc.categoryRepo.TopByProductCount(association.ID, distributionTopN)
	if err != nil {
		return nil, err
	}
	out := &dto.CategoryDistributionResponse{Items: make([]dto.CategorySlice, 0, len(distribution))}
	for _, d := range distribution {
		out.Items = append(out.Items, dto.CategorySlice{Name: d.Name, Value: d.ProductCount})
	}
	return out, nil
}

// StockSummary partitions products into tiers — in stock (>5), low (1–5),
// out (0) — and lists the low and out products as critical.
func (uc *UseCase) StockSummary(email string) (*dto.StockSummaryResponse, error) {
	association, err := uc.resolveAssociation(email)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListByAssociation(association.ID)
	if err != nil {
		return nil, err
	}

	out := &dto.StockSummaryResponse{CriticalProducts: []dto.ProductResponse{}}
	var lowStock, outOfStock []*entity.Product
	for _, p := range products {
		switch p.StockTier() {
		case entity.TierInStock:
			out.InStockCount++
		case entity.TierLowStock:
			out.LowStockCount++
			lowStock = append(lowStock, p)
		case entity.TierOutOfStock:
			out.OutOfStockCount++
			outOfStock = append(outOfStock, p)
		}
	}
	for _, p := range append(lowStock, outOfStock...) {
		out.CriticalProducts = append(out.CriticalProducts, dto.ProductResponse{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			Price:        p.Price,
			Quantity:     p.Quantity,
			Unit:         p.Unit,
			ImageURL:     p.ImageURL,
			CategoryID:   p.CategoryID,
			CategoryName: p.CategoryName,
			CreatedAt:    p.CreatedAt,
			UpdatedAt:    p.UpdatedAt,
		})
	}
	return out, nil
}

// StockSummaryPDF renders the stock summary as a PDF report.
func (uc *UseCase) StockSummaryPDF(ctx context.Context, email string) ([]byte, error) {
	association, err := uc.resolveAssociation(email)
	if err != nil {
		return nil, err
	}
	if uc.pdf == nil {
		return nil, domain.ErrInvalidInput
	}
	summary, err := uc.StockSummary(email)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateStockReport(ctx, association.Name, summary, time.Now())
}
