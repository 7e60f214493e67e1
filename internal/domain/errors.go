package domain

import (
	"errors"
	"fmt"
)

// Domain errors (no external dependencies).
var (
	ErrNotFound            = errors.New("resource not found")
	ErrAssociationNotFound = errors.New("no association found")
	ErrMissingInput        = errors.New("required input missing")
	ErrInvalidInput        = errors.New("invalid input")
	ErrDuplicate           = errors.New("duplicate resource")
	ErrForbidden           = errors.New("access denied")
	ErrInsufficientStock   = errors.New("insufficient stock")
)

// InsufficientStockError reports which product made a deduction fail. The
// whole batch is aborted, so callers need the offending line to surface it.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock or invalid product: %s", e.ProductName)
}

// Is makes errors.Is(err, ErrInsufficientStock) match.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
