package ledger

import (
	"context"
	"time"

	"github.com/bukubiz/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The repositories below are the data access facade the orchestrator runs
// against. Each call is a single-record operation; no multi-record
// transaction primitive is assumed anywhere. Cross-record consistency is the
// orchestrator's job.

// BusinessRepository persists the Business aggregate
type BusinessRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Business, error)
	Save(ctx context.Context, business *Business) error
	// UpdateBalance writes an absolute balance. Callers compute the new value
	// from a fresh read; this is a plain overwrite, not a compare-and-swap.
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
}

// ProductRepository persists the Product aggregate
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindAllByBusiness(ctx context.Context, businessID uuid.UUID, filter shared.Filter) ([]Product, error)
	// FindByBusiness returns every non-deleted product of the business. Used
	// by the batch status resync, which must see the whole catalog.
	FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]Product, error)
	Save(ctx context.Context, product *Product) error
	// UpdateStock writes the stock quantity together with its derived status
	// so the two columns never drift on orchestrated paths.
	UpdateStock(ctx context.Context, id uuid.UUID, stock int64, status ProductStatus) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status ProductStatus) error
}

// TransactionUpdate is a partial update of a transaction's editable fields.
// Nil fields are left untouched. Status is deliberately absent: status
// transitions go through the cancel and delete operations only.
type TransactionUpdate struct {
	Amount      *decimal.Decimal
	Category    *string
	Description *string
	OccurredAt  *time.Time
}

// TransactionFilter narrows transaction list queries
type TransactionFilter struct {
	shared.Filter
	Kind     *TransactionKind
	Status   *TransactionStatus
	Category *string
}

// TransactionRepository persists transactions and their owned lines
type TransactionRepository interface {
	// Create inserts the header and then the lines as two independent
	// writes. If the line insert fails the header is removed before the
	// error is returned, so no orphan headers survive.
	Create(ctx context.Context, tx *Transaction) error
	FindByIDWithLines(ctx context.Context, id uuid.UUID) (*Transaction, error)
	FindAllByBusiness(ctx context.Context, businessID uuid.UUID, filter TransactionFilter) ([]Transaction, error)
	CountByBusiness(ctx context.Context, businessID uuid.UUID, filter TransactionFilter) (int64, error)
	UpdateFields(ctx context.Context, id uuid.UUID, update TransactionUpdate) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status TransactionStatus) error
	// Delete removes the transaction and its lines outright. Only used to
	// roll back a just-created, not-yet-committed transaction.
	Delete(ctx context.Context, id uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
