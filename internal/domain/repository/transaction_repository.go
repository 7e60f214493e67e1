package repository

import "github.com/HarshvardhanPondkule/InventoTrack/internal/domain/entity"

// TransactionRepository defines the persistence port for the append-only
// transaction ledger. Rows are never updated or deleted.
type TransactionRepository interface {
	Create(transaction *entity.Transaction) error
	// ListByAssociation returns transactions most recent first. limit <= 0
	// means no cap.
	ListByAssociation(associationID string, limit int) ([]*entity.Transaction, error)
	CountByAssociation(associationID string) (int, error)
}
