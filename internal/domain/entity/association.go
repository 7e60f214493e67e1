package entity

import "time"

// Association is the tenant root: every category, product and transaction
// belongs to exactly one association. The email is unique and acts as the
// tenant key — operations resolve the association whose email matches the
// authenticated user's email. Created on first login, never updated or
// deleted in normal operation.
type Association struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}
