package repository

import "github.com/HarshvardhanPondkule/InventoTrack/internal/domain/entity"

// CategoryDistribution is one slice of the dashboard category chart.
type CategoryDistribution struct {
	Name         string
	ProductCount int
}

// CategoryRepository defines the persistence port for Category (DIP).
// Delete relies on the schema's ON DELETE CASCADE to remove the category's
// products.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	ListByAssociation(associationID string) ([]*entity.Category, error)
	Delete(id string) error

	// TopByProductCount returns up to limit categories ordered by product
	// count descending, ties broken by name ascending.
	TopByProductCount(associationID string, limit int) ([]CategoryDistribution, error)
}
