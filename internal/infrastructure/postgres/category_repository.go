package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain/entity"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implements CategoryRepository on PostgreSQL (usable with pool
// or tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository builds the persistence adapter. Pass pool or tx
// (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persists a new category.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, association_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.AssociationID, category.Name, category.Description,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID fetches a category by ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `
		SELECT id, association_id, name, description, created_at, updated_at
		FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.AssociationID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Update rewrites name and description.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, description = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// ListByAssociation lists the association's categories, newest first.
func (r *CategoryRepo) ListByAssociation(associationID string) ([]*entity.Category, error) {
	query := `
		SELECT id, association_id, name, description, created_at, updated_at
		FROM categories WHERE association_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, associationID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.AssociationID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete removes a category. The categories→products foreign key carries
// ON DELETE CASCADE, so the category's products disappear with it.
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// TopByProductCount aggregates product counts per category. Ties are broken
// by name so the chart order is deterministic.
func (r *CategoryRepo) TopByProductCount(associationID string, limit int) ([]repository.CategoryDistribution, error) {
	query := `
		SELECT c.name, COUNT(p.id) AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		WHERE c.association_id = $1
		GROUP BY c.id, c.name
		ORDER BY product_count DESC, c.name ASC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, associationID, limit)
	if err != nil {
		return nil, fmt.Errorf("category distribution: %w", err)
	}
	defer rows.Close()
	var list []repository.CategoryDistribution
	for rows.Next() {
		var d repository.CategoryDistribution
		if err := rows.Scan(&d.Name, &d.ProductCount); err != nil {
			return nil, fmt.Errorf("scan distribution: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
