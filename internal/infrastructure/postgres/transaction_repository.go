package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain/entity"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implements the append-only ledger on PostgreSQL (usable
// with pool or tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository builds the persistence adapter. Pass pool or tx
// (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create appends a ledger entry. product_name, category_name, unit, price
// and image_url are written as a snapshot of the product at this moment.
func (r *TransactionRepo) Create(transaction *entity.Transaction) error {
	if transaction.ID == "" {
		transaction.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transactions (id, association_id, product_id, type, quantity, product_name, category_name, unit, price, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	productID := (*string)(nil)
	if transaction.ProductID != "" {
		productID = &transaction.ProductID
	}
	_, err := r.q.Exec(context.Background(), query,
		transaction.ID, transaction.AssociationID, productID, transaction.Type,
		transaction.Quantity, transaction.ProductName, transaction.CategoryName,
		transaction.Unit, transaction.Price, transaction.ImageURL, transaction.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListByAssociation returns ledger entries most recent first; limit <= 0
// means no cap.
func (r *TransactionRepo) ListByAssociation(associationID string, limit int) ([]*entity.Transaction, error) {
	query := `
		SELECT id, association_id, product_id, type, quantity, product_name, category_name, unit, price, image_url, created_at
		FROM transactions WHERE association_id = $1 ORDER BY created_at DESC`
	args := []any{associationID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		var productID *string
		if err := rows.Scan(
			&t.ID, &t.AssociationID, &productID, &t.Type, &t.Quantity,
			&t.ProductName, &t.CategoryName, &t.Unit, &t.Price, &t.ImageURL, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if productID != nil {
			t.ProductID = *productID
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// CountByAssociation counts the association's ledger entries.
func (r *TransactionRepo) CountByAssociation(associationID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM transactions WHERE association_id = $1`,
		associationID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return count, nil
}
