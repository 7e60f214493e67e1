package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a stocked item. Quantity is never written directly by the
// product update flow: it only changes through stock operations, each paired
// with a ledger Transaction.
type Product struct {
	ID            string
	AssociationID string
	CategoryID    string
	Name          string
	Description   string
	Price         decimal.Decimal
	Quantity      int // current stock on hand, never negative
	Unit          string
	ImageURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// CategoryName is filled by list/get queries (join), not persisted on
	// the products table.
	CategoryName string
}

// Stock tiers for the dashboard summary.
const (
	LowStockThreshold = 5 // quantity 1..5 counts as low
)

// StockTier returns which summary tier the product falls in.
func (p *Product) StockTier() StockTier {
	switch {
	case p.Quantity == 0:
		return TierOutOfStock
	case p.Quantity <= LowStockThreshold:
		return TierLowStock
	default:
		return TierInStock
	}
}

// StockTier partitions products by quantity on hand.
type StockTier int

const (
	TierInStock StockTier = iota
	TierLowStock
	TierOutOfStock
)

// Critical reports whether the product belongs in the critical list
// (low or out of stock).
func (p *Product) Critical() bool {
	return p.Quantity <= LowStockThreshold
}
