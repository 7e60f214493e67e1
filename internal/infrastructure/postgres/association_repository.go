package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain/entity"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain/repository"
)

var _ repository.AssociationRepository = (*AssociationRepo)(nil)

// AssociationRepo implements AssociationRepository on PostgreSQL (usable
// with pool or tx).
type AssociationRepo struct {
	q Querier
}

// NewAssociationRepository builds the persistence adapter. Pass pool or tx
// (Querier).
func NewAssociationRepository(q Querier) *AssociationRepo {
	return &AssociationRepo{q: q}
}

// Create persists a new association. The email is unique across tenants.
func (r *AssociationRepo) Create(association *entity.Association) error {
	query := `
		INSERT INTO associations (id, name, email, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		association.ID, association.Name, association.Email, association.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert association: %w", err)
	}
	return nil
}

// GetByEmail resolves the association by its tenant key.
func (r *AssociationRepo) GetByEmail(email string) (*entity.Association, error) {
	query := `
		SELECT id, name, email, created_at
		FROM associations WHERE email = $1`
	var a entity.Association
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&a.ID, &a.Name, &a.Email, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get association by email: %w", err)
	}
	return &a, nil
}

// GetByID fetches an association by ID.
func (r *AssociationRepo) GetByID(id string) (*entity.Association, error) {
	query := `
		SELECT id, name, email, created_at
		FROM associations WHERE id = $1`
	var a entity.Association
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Name, &a.Email, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get association: %w", err)
	}
	return &a, nil
}
