package dto

// ReplenishRequest input for an IN stock adjustment.
type ReplenishRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// OrderItem one line of a deduction order.
type OrderItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// DeductRequest input for an OUT stock adjustment across one or more lines.
// Either every line applies or none do.
type DeductRequest struct {
	Items []OrderItem `json:"items" validate:"required,min=1,dive"`
}

// DeductResponse success indicator for a deduction.
type DeductResponse struct {
	Success bool `json:"success"`
}
