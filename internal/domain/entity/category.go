package entity

import "time"

// Category groups products inside an association. Deleting a category
// cascades to its products (enforced by the schema's referential action).
type Category struct {
	ID            string
	AssociationID string
	Name          string
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
