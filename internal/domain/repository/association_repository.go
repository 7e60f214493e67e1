package repository

import "github.com/HarshvardhanPondkule/InventoTrack/internal/domain/entity"

// AssociationRepository defines the persistence port for Association (DIP).
type AssociationRepository interface {
	Create(association *entity.Association) error
	GetByEmail(email string) (*entity.Association, error)
	GetByID(id string) (*entity.Association, error)
}
