package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionResponse one ledger row for the recent-transactions widget.
// Product fields are the write-time snapshot, so rows stay displayable after
// the product is deleted (product_id is then empty).
type TransactionResponse struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"` // IN | OUT
	Quantity     int             `json:"quantity"`
	ProductID    string          `json:"product_id,omitempty"`
	ProductName  string          `json:"product_name"`
	CategoryName string          `json:"category_name"`
	Unit         string          `json:"unit"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url"`
	CreatedAt    time.Time       `json:"created_at"`
}

// TransactionListResponse ledger rows, most recent first.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
}

// OverviewStatsResponse headline dashboard numbers.
type OverviewStatsResponse struct {
	TotalProducts     int             `json:"total_products"`
	TotalCategories   int             `json:"total_categories"` // distinct categories among products
	TotalTransactions int             `json:"total_transactions"`
	StockValue        decimal.Decimal `json:"stock_value"` // Σ price × quantity
}

// CategorySlice one slice of the category distribution chart.
type CategorySlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"` // product count
}

// CategoryDistributionResponse top categories by product count.
type CategoryDistributionResponse struct {
	Items []CategorySlice `json:"items"`
}

// StockSummaryResponse stock tier counts plus the critical products list
// (low or out of stock, unbounded).
type StockSummaryResponse struct {
	InStockCount     int               `json:"in_stock_count"`  // quantity > 5
	LowStockCount    int               `json:"low_stock_count"` // quantity 1–5
	OutOfStockCount  int               `json:"out_of_stock_count"`
	CriticalProducts []ProductResponse `json:"critical_products"`
}
