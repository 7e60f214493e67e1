package repository

import "github.com/HarshvardhanPondkule/InventoTrack/internal/domain/entity"

// ProductRepository defines the persistence port for Product (DIP).
// Stock is only mutated through UpdateQuantity inside a transaction started
// by the TxRunner; Update never touches it.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate loads the product row locked with SELECT ... FOR UPDATE.
	// Only meaningful on a repository bound to an open transaction.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(id string, quantity int) error
	ListByAssociation(associationID string) ([]*entity.Product, error)
	Delete(id string) error
}
