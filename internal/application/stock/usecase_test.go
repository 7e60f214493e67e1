package stock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/dto"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/stock"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain/entity"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeAssociationRepo struct {
	byEmail map[string]*entity.Association
}

func (r *fakeAssociationRepo) Create(a *entity.Association) error {
	r.byEmail[a.Email] = a
	return nil
}

func (r *fakeAssociationRepo) GetByEmail(email string) (*entity.Association, error) {
	return r.byEmail[email], nil
}

func (r *fakeAssociationRepo) GetByID(id string) (*entity.Association, error) {
	for _, a := range r.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(id string, quantity int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *fakeProductRepo) ListByAssociation(associationID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.AssociationID == associationID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(tx *entity.Transaction) error {
	cp := *tx
	r.transactions = append(r.transactions, &cp)
	return nil
}

func (r *fakeTransactionRepo) ListByAssociation(associationID string, limit int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for i := len(r.transactions) - 1; i >= 0; i-- {
		if r.transactions[i].AssociationID == associationID {
			out = append(out, r.transactions[i])
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) CountByAssociation(associationID string) (int, error) {
	n := 0
	for _, tx := range r.transactions {
		if tx.AssociationID == associationID {
			n++
		}
	}
	return n, nil
}

// fakeTxRunner emulates transactional semantics: when fn returns an error,
// every write made inside it is rolled back.
type fakeTxRunner struct {
	products     *fakeProductRepo
	transactions *fakeTransactionRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	transactionRepo repository.TransactionRepository,
) error) error {
	productSnapshot := make(map[string]*entity.Product, len(r.products.products))
	for id, p := range r.products.products {
		cp := *p
		productSnapshot[id] = &cp
	}
	txSnapshot := make([]*entity.Transaction, len(r.transactions.transactions))
	copy(txSnapshot, r.transactions.transactions)

	if err := fn(r.products, r.transactions); err != nil {
		r.products.products = productSnapshot
		r.transactions.transactions = txSnapshot
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc           *stock.UseCase
	products     *fakeProductRepo
	transactions *fakeTransactionRepo
}

const (
	ownerEmail = "owner@acme.com"
	ownerID    = "assoc-1"
	otherEmail = "other@rival.com"
	otherID    = "assoc-2"
)

func newFixture(t *testing.T, products ...*entity.Product) *fixture {
	t.Helper()
	associations := &fakeAssociationRepo{byEmail: map[string]*entity.Association{
		ownerEmail: {ID: ownerID, Name: "Acme", Email: ownerEmail},
		otherEmail: {ID: otherID, Name: "Rival", Email: otherEmail},
	}}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		require.NoError(t, productRepo.Create(p))
	}
	transactionRepo := &fakeTransactionRepo{}
	runner := &fakeTxRunner{products: productRepo, transactions: transactionRepo}
	return &fixture{
		uc:           stock.NewUseCase(runner, associations),
		products:     productRepo,
		transactions: transactionRepo,
	}
}

func steelPipe(quantity int) *entity.Product {
	return &entity.Product{
		ID:            "prod-steel",
		AssociationID: ownerID,
		CategoryID:    "cat-pipes",
		CategoryName:  "pipes",
		Name:          "Steel Pipe",
		Price:         decimal.NewFromInt(120),
		Quantity:      quantity,
		Unit:          "meters",
	}
}

func pvcPipe(quantity int) *entity.Product {
	return &entity.Product{
		ID:            "prod-pvc",
		AssociationID: ownerID,
		CategoryID:    "cat-pipes",
		CategoryName:  "pipes",
		Name:          "PVC Pipe",
		Price:         decimal.NewFromInt(60),
		Quantity:      quantity,
		Unit:          "meters",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Replenish
// ──────────────────────────────────────────────────────────────────────────────

func TestReplenish_IncrementsStockAndAppendsINTransaction(t *testing.T) {
	f := newFixture(t, steelPipe(10))

	err := f.uc.Replenish(context.Background(), ownerEmail, dto.ReplenishRequest{
		ProductID: "prod-steel",
		Quantity:  5,
	})
	require.NoError(t, err)

	p, _ := f.products.GetByID("prod-steel")
	assert.Equal(t, 15, p.Quantity)

	require.Len(t, f.transactions.transactions, 1)
	tx := f.transactions.transactions[0]
	assert.Equal(t, entity.TransactionTypeIN, tx.Type)
	assert.Equal(t, 5, tx.Quantity)
	assert.Equal(t, "Steel Pipe", tx.ProductName)
	assert.Equal(t, "pipes", tx.CategoryName)
	assert.Equal(t, "meters", tx.Unit)
	assert.True(t, tx.Price.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, ownerID, tx.AssociationID)
}

func TestReplenish_NonPositiveQuantityRejected(t *testing.T) {
	f := newFixture(t, steelPipe(10))

	for _, q := range []int{0, -3} {
		err := f.uc.Replenish(context.Background(), ownerEmail, dto.ReplenishRequest{
			ProductID: "prod-steel",
			Quantity:  q,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	p, _ := f.products.GetByID("prod-steel")
	assert.Equal(t, 10, p.Quantity, "stock must be untouched")
	assert.Empty(t, f.transactions.transactions)
}

func TestReplenish_UnknownProductReturnsNotFound(t *testing.T) {
	f := newFixture(t)

	err := f.uc.Replenish(context.Background(), ownerEmail, dto.ReplenishRequest{
		ProductID: "prod-missing",
		Quantity:  3,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.transactions.transactions)
}

func TestReplenish_CrossTenantForbidden(t *testing.T) {
	f := newFixture(t, steelPipe(10))

	err := f.uc.Replenish(context.Background(), otherEmail, dto.ReplenishRequest{
		ProductID: "prod-steel",
		Quantity:  3,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	p, _ := f.products.GetByID("prod-steel")
	assert.Equal(t, 10, p.Quantity)
	assert.Empty(t, f.transactions.transactions)
}

func TestReplenish_UnknownEmailReturnsAssociationNotFound(t *testing.T) {
	f := newFixture(t, steelPipe(10))

	err := f.uc.Replenish(context.Background(), "nobody@nowhere.com", dto.ReplenishRequest{
		ProductID: "prod-steel",
		Quantity:  3,
	})
	assert.ErrorIs(t, err, domain.ErrAssociationNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Deduct
// ──────────────────────────────────────────────────────────────────────────────

func TestDeduct_AppliesOrderAndAppendsOUTTransactions(t *testing.T) {
	f := newFixture(t, steelPipe(10), pvcPipe(8))

	resp, err := f.uc.Deduct(context.Background(), ownerEmail, dto.DeductRequest{
		Items: []dto.OrderItem{
			{ProductID: "prod-steel", Quantity: 4},
			{ProductID: "prod-pvc", Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	steel, _ := f.products.GetByID("prod-steel")
	pvc, _ := f.products.GetByID("prod-pvc")
	assert.Equal(t, 6, steel.Quantity)
	assert.Equal(t, 6, pvc.Quantity)

	require.Len(t, f.transactions.transactions, 2)
	for _, tx := range f.transactions.transactions {
		assert.Equal(t, entity.TransactionTypeOUT, tx.Type)
	}
}

func TestDeduct_InsufficientStockRollsBackWholeOrder(t *testing.T) {
	f := newFixture(t, steelPipe(10), pvcPipe(1))

	// First line would fit, second exceeds stock: nothing may be written.
	resp, err := f.uc.Deduct(context.Background(), ownerEmail, dto.DeductRequest{
		Items: []dto.OrderItem{
			{ProductID: "prod-steel", Quantity: 4},
			{ProductID: "prod-pvc", Quantity: 5},
		},
	})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "PVC Pipe", insufficient.ProductName)

	steel, _ := f.products.GetByID("prod-steel")
	pvc, _ := f.products.GetByID("prod-pvc")
	assert.Equal(t, 10, steel.Quantity, "no partial deduction may survive")
	assert.Equal(t, 1, pvc.Quantity)
	assert.Empty(t, f.transactions.transactions)
}

func TestDeduct_SequentialOrdersCheckAgainstUpdatedStock(t *testing.T) {
	f := newFixture(t, steelPipe(10))

	_, err := f.uc.Deduct(context.Background(), ownerEmail, dto.DeductRequest{
		Items: []dto.OrderItem{{ProductID: "prod-steel", Quantity: 4}},
	})
	require.NoError(t, err)

	p, _ := f.products.GetByID("prod-steel")
	require.Equal(t, 6, p.Quantity)

	// A second order for 10 must fail against the updated stock of 6.
	_, err = f.uc.Deduct(context.Background(), ownerEmail, dto.DeductRequest{
		Items: []dto.OrderItem{{ProductID: "prod-steel", Quantity: 10}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ = f.products.GetByID("prod-steel")
	assert.Equal(t, 6, p.Quantity)
	assert.Len(t, f.transactions.transactions, 1, "only the first order may have a ledger entry")
}

func TestDeduct_ExactStockDrainsToZero(t *testing.T) {
	f := newFixture(t, steelPipe(10))

	resp, err := f.uc.Deduct(context.Background(), ownerEmail, dto.DeductRequest{
		Items: []dto.OrderItem{{ProductID: "prod-steel", Quantity: 10}},
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	p, _ := f.products.GetByID("prod-steel")
	assert.Equal(t, 0, p.Quantity)
}

func TestDeduct_RepeatedLinesValidateAgainstRemainingStock(t *testing.T) {
	f := newFixture(t, steelPipe(10))

	// 6 + 6 exceeds the 10 on hand even though each line alone would pass.
	_, err := f.uc.Deduct(context.Background(), ownerEmail, dto.DeductRequest{
		Items: []dto.OrderItem{
			{ProductID: "prod-steel", Quantity: 6},
			{ProductID: "prod-steel", Quantity: 6},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := f.products.GetByID("prod-steel")
	assert.Equal(t, 10, p.Quantity)
	assert.Empty(t, f.transactions.transactions)
}

func TestDeduct_RepeatedLinesWithinStockApplyBoth(t *testing.T) {
	f := newFixture(t, steelPipe(10))

	resp, err := f.uc.Deduct(context.Background(), ownerEmail, dto.DeductRequest{
		Items: []dto.OrderItem{
			{ProductID: "prod-steel", Quantity: 4},
			{ProductID: "prod-steel", Quantity: 3},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	p, _ := f.products.GetByID("prod-steel")
	assert.Equal(t, 3, p.Quantity)
	require.Len(t, f.transactions.transactions, 2)
}

func TestDeduct_UnknownProductFailsWithInsufficientStock(t *testing.T) {
	f := newFixture(t, steelPipe(10))

	_, err := f.uc.Deduct(context.Background(), ownerEmail, dto.DeductRequest{
		Items: []dto.OrderItem{{ProductID: "prod-ghost", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestDeduct_CrossTenantProductRejected(t *testing.T) {
	foreign := steelPipe(10)
	foreign.ID = "prod-foreign"
	foreign.AssociationID = otherID
	f := newFixture(t, foreign)

	_, err := f.uc.Deduct(context.Background(), ownerEmail, dto.DeductRequest{
		Items: []dto.OrderItem{{ProductID: "prod-foreign", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := f.products.GetByID("prod-foreign")
	assert.Equal(t, 10, p.Quantity)
}

func TestDeduct_EmptyOrderRejected(t *testing.T) {
	f := newFixture(t, steelPipe(10))

	_, err := f.uc.Deduct(context.Background(), ownerEmail, dto.DeductRequest{})
	assert.ErrorIs(t, err, domain.ErrMissingInput)
}

func TestDeduct_NonPositiveLineQuantityRejected(t *testing.T) {
	f := newFixture(t, steelPipe(10))

	_, err := f.uc.Deduct(context.Background(), ownerEmail, dto.DeductRequest{
		Items: []dto.OrderItem{{ProductID: "prod-steel", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := f.products.GetByID("prod-steel")
	assert.Equal(t, 10, p.Quantity)
}

func TestDeduct_PropagatesRepositoryError(t *testing.T) {
	f := newFixture(t)

	// Missing association email short-circuits before the transaction runs.
	_, err := f.uc.Deduct(context.Background(), "", dto.DeductRequest{
		Items: []dto.OrderItem{{ProductID: "prod-steel", Quantity: 1}},
	})
	assert.True(t, errors.Is(err, domain.ErrMissingInput))
}
