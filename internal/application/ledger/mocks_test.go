package ledger

import (
	"context"

	"github.com/bukubiz/backend/internal/domain/ledger"
	"github.com/bukubiz/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// mockBusinessRepository is an in-memory ledger.BusinessRepository. FindByID
// returns copies so the stored state only changes through UpdateBalance, like
// a real store.
type mockBusinessRepository struct {
	businesses       map[uuid.UUID]*ledger.Business
	findErr          error
	updateBalanceErr error
	balanceWrites    int
}

func newMockBusinessRepository() *mockBusinessRepository {
	return &mockBusinessRepository{businesses: make(map[uuid.UUID]*ledger.Business)}
}

func (m *mockBusinessRepository) add(b *ledger.Business) {
	m.businesses[b.ID] = b
}

func (m *mockBusinessRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Business, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	b, ok := m.businesses[id]
	if !ok {
		return nil, ledger.NewNotFoundError("business", id)
	}
	clone := *b
	return &clone, nil
}

func (m *mockBusinessRepository) Save(ctx context.Context, business *ledger.Business) error {
	clone := *business
	m.businesses[business.ID] = &clone
	return nil
}

func (m *mockBusinessRepository) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	if m.updateBalanceErr != nil {
		return m.updateBalanceErr
	}
	b, ok := m.businesses[id]
	if !ok {
		return ledger.NewNotFoundError("business", id)
	}
	b.Balance = balance
	m.balanceWrites++
	return nil
}

// stockWrite records one UpdateStock call for rollback assertions
type stockWrite struct {
	productID uuid.UUID
	stock     int64
	status    ledger.ProductStatus
}

// mockProductRepository is an in-memory ledger.ProductRepository with
// per-product write failure injection.
type mockProductRepository struct {
	products          map[uuid.UUID]*ledger.Product
	findErr           error
	updateStockErrFor  map[uuid.UUID]error
	updateStatusErrFor map[uuid.UUID]error
	stockWrites        []stockWrite
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{
		products:           make(map[uuid.UUID]*ledger.Product),
		updateStockErrFor:  make(map[uuid.UUID]error),
		updateStatusErrFor: make(map[uuid.UUID]error),
	}
}

func (m *mockProductRepository) add(p *ledger.Product) {
	m.products[p.ID] = p
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Product, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	p, ok := m.products[id]
	if !ok {
		return nil, ledger.NewNotFoundError("product", id)
	}
	clone := *p
	return &clone, nil
}

func (m *mockProductRepository) FindAllByBusiness(ctx context.Context, businessID uuid.UUID, filter shared.Filter) ([]ledger.Product, error) {
	return m.FindByBusiness(ctx, businessID)
}

func (m *mockProductRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]ledger.Product, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var products []ledger.Product
	for _, p := range m.products {
		if p.BusinessID == businessID {
			products = append(products, *p)
		}
	}
	return products, nil
}

func (m *mockProductRepository) Save(ctx context.Context, product *ledger.Product) error {
	clone := *product
	m.products[product.ID] = &clone
	return nil
}

func (m *mockProductRepository) UpdateStock(ctx context.Context, id uuid.UUID, stock int64, status ledger.ProductStatus) error {
	if err := m.updateStockErrFor[id]; err != nil {
		return err
	}
	p, ok := m.products[id]
	if !ok {
		return ledger.NewNotFoundError("product", id)
	}
	p.Stock = stock
	p.Status = status
	m.stockWrites = append(m.stockWrites, stockWrite{productID: id, stock: stock, status: status})
	return nil
}

func (m *mockProductRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status ledger.ProductStatus) error {
	if err := m.updateStatusErrFor[id]; err != nil {
		return err
	}
	p, ok := m.products[id]
	if !ok {
		return ledger.NewNotFoundError("product", id)
	}
	p.Status = status
	return nil
}

// mockTransactionRepository is an in-memory ledger.TransactionRepository
type mockTransactionRepository struct {
	transactions map[uuid.UUID]*ledger.Transaction
	createErr    error
	softDeleted  map[uuid.UUID]bool
	hardDeleted  []uuid.UUID
}

func newMockTransactionRepository() *mockTransactionRepository {
	return &mockTransactionRepository{
		transactions: make(map[uuid.UUID]*ledger.Transaction),
		softDeleted:  make(map[uuid.UUID]bool),
	}
}

func (m *mockTransactionRepository) add(tx *ledger.Transaction) {
	m.transactions[tx.ID] = tx
}

func (m *mockTransactionRepository) Create(ctx context.Context, tx *ledger.Transaction) error {
	if m.createErr != nil {
		return m.createErr
	}
	clone := *tx
	m.transactions[tx.ID] = &clone
	return nil
}

func (m *mockTransactionRepository) FindByIDWithLines(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	tx, ok := m.transactions[id]
	if !ok || m.softDeleted[id] {
		return nil, ledger.NewNotFoundError("transaction", id)
	}
	clone := *tx
	return &clone, nil
}

func (m *mockTransactionRepository) FindAllByBusiness(ctx context.Context, businessID uuid.UUID, filter ledger.TransactionFilter) ([]ledger.Transaction, error) {
	var out []ledger.Transaction
	for id, tx := range m.transactions {
		if tx.BusinessID != businessID || m.softDeleted[id] {
			continue
		}
		if filter.Kind != nil && tx.Kind != *filter.Kind {
			continue
		}
		if filter.Status != nil && tx.Status != *filter.Status {
			continue
		}
		if filter.Category != nil && tx.Category != *filter.Category {
			continue
		}
		out = append(out, *tx)
	}
	return out, nil
}

func (m *mockTransactionRepository) CountByBusiness(ctx context.Context, businessID uuid.UUID, filter ledger.TransactionFilter) (int64, error) {
	txs, err := m.FindAllByBusiness(ctx, businessID, filter)
	return int64(len(txs)), err
}

func (m *mockTransactionRepository) UpdateFields(ctx context.Context, id uuid.UUID, update ledger.TransactionUpdate) error {
	tx, ok := m.transactions[id]
	if !ok {
		return ledger.NewNotFoundError("transaction", id)
	}
	if update.Amount != nil {
		tx.Amount = *update.Amount
	}
	if update.Category != nil {
		tx.Category = *update.Category
	}
	if update.Description != nil {
		tx.Description = *update.Description
	}
	if update.OccurredAt != nil {
		tx.OccurredAt = *update.OccurredAt
	}
	return nil
}

func (m *mockTransactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status ledger.TransactionStatus) error {
	tx, ok := m.transactions[id]
	if !ok {
		return ledger.NewNotFoundError("transaction", id)
	}
	tx.Status = status
	return nil
}

func (m *mockTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.transactions, id)
	m.hardDeleted = append(m.hardDeleted, id)
	return nil
}

func (m *mockTransactionRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.transactions[id]; !ok {
		return ledger.NewNotFoundError("transaction", id)
	}
	m.softDeleted[id] = true
	return nil
}
