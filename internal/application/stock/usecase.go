// Package stock implements the two operations that mutate Product.Quantity.
// Both pair the quantity change with exactly one ledger Transaction inside a
// single database transaction, with the product rows locked FOR UPDATE, so
// summing a product's ledger always reconciles with its current quantity.
package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/dto"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain/entity"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain/repository"
)

// UseCase registers stock adjustments (replenish and deduct).
type UseCase struct {
	txRunner        TxRunner
	associationRepo repository.AssociationRepository
}

// NewUseCase builds the usecase.
func NewUseCase(txRunner TxRunner, associationRepo repository.AssociationRepository) *UseCase {
	return &UseCase{txRunner: txRunner, associationRepo: associationRepo}
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

// Replenish increments a product's quantity and appends one IN transaction.
// Both writes happen in the same database transaction on a row locked
// FOR UPDATE; a crash can never leave an inflated quantity without its
// ledger entry.
func (uc *UseCase) Replenish(ctx context.Context, email string, in dto.ReplenishRequest) error {
	association, err := uc.resolveAssociation(email)
	if err != nil {
		return err
	}
	if in.ProductID == "" {
		return domain.ErrMissingInput
	}
	if in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}

	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		transactionRepo repository.TransactionRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.AssociationID != association.ID {
			return domain.ErrForbidden
		}
		if err := productRepo.UpdateQuantity(product.ID, product.Quantity+in.Quantity); err != nil {
			return err
		}
		return transactionRepo.Create(ledgerEntry(association.ID, product, entity.TransactionTypeIN, in.Quantity))
	})
}

// Deduct applies a multi-line order. Every line is validated against the
// current stock inside the same transaction that writes, on rows locked
// FOR UPDATE — two concurrent deductions cannot both pass the check against
// a stale quantity. Any failing line rolls back the whole order.
func (uc *UseCase) Deduct(ctx context.Context, email string, in dto.DeductRequest) (*dto.DeductResponse, error) {
	association, err := uc.resolveAssociation(email)
	if err != nil {
		return nil, err
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrMissingInput
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		transactionRepo repository.TransactionRepository,
	) error {
		// Validate and lock every line before mutating anything. Quantities
		// are consumed in-memory as lines validate, so repeated product IDs
		// within one order are checked against the remaining stock, not the
		// original read.
		locked := make(map[string]*entity.Product)
		for _, item := range in.Items {
			product, ok := locked[item.ProductID]
			if !ok {
				var err error
				product, err = productRepo.GetForUpdate(item.ProductID)
				if err != nil {
					return err
				}
				if product != nil {
					locked[item.ProductID] = product
				}
			}
			if product == nil || product.AssociationID != association.ID ||
				item.Quantity <= 0 || product.Quantity < item.Quantity {
				name := item.ProductID
				if product != nil {
					name = product.Name
				}
				return &domain.InsufficientStockError{ProductName: name}
			}
			product.Quantity -= item.Quantity
		}

		for _, item := range in.Items {
			product := locked[item.ProductID]
			if err := transactionRepo.Create(ledgerEntry(association.ID, product, entity.TransactionTypeOUT, item.Quantity)); err != nil {
				return err
			}
		}
		for _, product := range locked {
			if err := productRepo.UpdateQuantity(product.ID, product.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.DeductResponse{Success: true}, nil
}

// ledgerEntry snapshots the product's display fields onto the transaction
// row, so the ledger stays meaningful after the product is deleted.
func ledgerEntry(associationID string, product *entity.Product, txType string, quantity int) *entity.Transaction {
	return &entity.Transaction{
		ID:            uuid.New().String(),
		AssociationID: associationID,
		ProductID:     product.ID,
		Type:          txType,
		Quantity:      quantity,
		ProductName:   product.Name,
		CategoryName:  product.CategoryName,
		Unit:          product.Unit,
		Price:         product.Price,
		ImageURL:      product.ImageURL,
		CreatedAt:     time.Now(),
	}
}
