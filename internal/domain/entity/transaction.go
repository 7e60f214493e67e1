package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types.
const (
	TransactionTypeIN  = "IN"  // replenishment
	TransactionTypeOUT = "OUT" // deduction / sale
)

// Transaction is an immutable ledger entry recording a single stock change.
// Summing the signed quantities of a product's transactions reconciles with
// its current quantity.
//
// ProductName, CategoryName, Unit, Price and ImageURL are snapshotted at
// write time so the ledger stays meaningful after the product is deleted;
// ProductID then becomes empty (FK set to NULL).
type Transaction struct {
	ID            string
	AssociationID string
	ProductID     string
	Type          string // IN | OUT
	Quantity      int    // always positive; Type carries the direction
	ProductName   string
	CategoryName  string
	Unit          string
	Price         decimal.Decimal
	ImageURL      string
	CreatedAt     time.Time
}
