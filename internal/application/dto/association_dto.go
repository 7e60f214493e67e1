package dto

import "time"

// AssociationResponse output for the tenant resolved from the caller's email.
type AssociationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
