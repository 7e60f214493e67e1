package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest input to create a product. Quantity defaults to 0
// when absent; subsequent stock changes go through the stock endpoints.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity" validate:"min=0"`
	Unit        string          `json:"unit"`
	ImageURL    string          `json:"image_url"`
	CategoryID  string          `json:"category_id" validate:"required"`
}

// UpdateProductRequest input to update a product's descriptive fields and
// price. Quantity is intentionally absent: stock only moves through
// replenish/deduct so the ledger stays consistent.
type UpdateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	ImageURL    string          `json:"image_url"`
}

// ProductResponse output for a product, annotated with its category name.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	Unit         string          `json:"unit"`
	ImageURL     string          `json:"image_url"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse list of the association's products.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
