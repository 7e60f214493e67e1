package stock

import (
	"context"

	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain/repository"
)

// TxRunner executes a function inside one database transaction, passing
// repositories bound to that transaction. It is what makes a stock change
// and its ledger insert a single atomic unit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		transactionRepo repository.TransactionRepository,
	) error) error
}
