package ledger

import (
	"time"

	"github.com/bukubiz/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind classifies a ledger entry as money in or money out
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "INCOME"
	TransactionKindExpense TransactionKind = "EXPENSE"
)

// TransactionStatus is the lifecycle state of a ledger entry. Soft deletion
// is tracked separately and is orthogonal to the status.
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "PENDING"
	TransactionStatusComplete TransactionStatus = "COMPLETE"
	TransactionStatusCancel   TransactionStatus = "CANCEL"
)

// Categories assigned by the orchestrator for product-linked transactions
const (
	CategorySales         = "Sales"
	CategoryStockPurchase = "Stock Purchase"
)

// TransactionLine is a product line owned exclusively by its transaction.
// UnitPrice is frozen at creation time and never recalculated from the
// product's current list price.
type TransactionLine struct {
	shared.BaseEntity
	TransactionID uuid.UUID
	ProductID     uuid.UUID
	Quantity      int64
	UnitPrice     decimal.Decimal
}

// Subtotal returns quantity times the frozen unit price
func (l TransactionLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// Transaction is a ledger entry for a business. For product-linked
// transactions Amount always equals the sum of the line subtotals.
type Transaction struct {
	shared.BaseEntity
	BusinessID  uuid.UUID
	Kind        TransactionKind
	Category    string
	Description string
	Amount      decimal.Decimal
	Status      TransactionStatus
	OccurredAt  time.Time
	Lines       []TransactionLine
}

// LineInput describes one requested product line before it is priced into a
// transaction.
type LineInput struct {
	ProductID uuid.UUID
	Quantity  int64
	UnitPrice decimal.Decimal
}

// newLines builds owned lines from inputs, validating quantity and price
func newLines(transactionID uuid.UUID, inputs []LineInput) ([]TransactionLine, error) {
	lines := make([]TransactionLine, 0, len(inputs))
	for _, in := range inputs {
		if in.ProductID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Line product ID cannot be empty")
		}
		if in.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Line quantity must be positive")
		}
		if in.UnitPrice.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PRICE", "Line unit price cannot be negative")
		}
		lines = append(lines, TransactionLine{
			BaseEntity:    shared.NewBaseEntity(),
			TransactionID: transactionID,
			ProductID:     in.ProductID,
			Quantity:      in.Quantity,
			UnitPrice:     in.UnitPrice,
		})
	}
	return lines, nil
}

// NewSaleTransaction creates a COMPLETE income transaction whose amount is
// the sum of its line subtotals.
func NewSaleTransaction(businessID uuid.UUID, inputs []LineInput, description string) (*Transaction, error) {
	return newProductTransaction(businessID, TransactionKindIncome, CategorySales, inputs, description)
}

// NewPurchaseTransaction creates a COMPLETE expense transaction whose amount
// is the sum of its line subtotals.
func NewPurchaseTransaction(businessID uuid.UUID, inputs []LineInput, description string) (*Transaction, error) {
	return newProductTransaction(businessID, TransactionKindExpense, CategoryStockPurchase, inputs, description)
}

func newProductTransaction(businessID uuid.UUID, kind TransactionKind, category string, inputs []LineInput, description string) (*Transaction, error) {
	if businessID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BUSINESS", "Business ID cannot be empty")
	}
	if len(inputs) == 0 {
		return nil, shared.NewDomainError("INVALID_LINES", "Transaction requires at least one line")
	}

	tx := &Transaction{
		BaseEntity:  shared.NewBaseEntity(),
		BusinessID:  businessID,
		Kind:        kind,
		Category:    category,
		Description: description,
		Status:      TransactionStatusComplete,
		OccurredAt:  time.Now(),
	}

	lines, err := newLines(tx.ID, inputs)
	if err != nil {
		return nil, err
	}
	tx.Lines = lines

	amount := decimal.Zero
	for _, line := range lines {
		amount = amount.Add(line.Subtotal())
	}
	tx.Amount = amount

	return tx, nil
}

// NewGeneralTransaction creates a transaction with no lines, e.g. rent or a
// cash injection.
func NewGeneralTransaction(businessID uuid.UUID, kind TransactionKind, amount decimal.Decimal, category, description string, status TransactionStatus) (*Transaction, error) {
	if businessID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BUSINESS", "Business ID cannot be empty")
	}
	if kind != TransactionKindIncome && kind != TransactionKindExpense {
		return nil, shared.NewDomainError("INVALID_KIND", "Transaction kind must be INCOME or EXPENSE")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Transaction amount must be positive")
	}
	switch status {
	case TransactionStatusPending, TransactionStatusComplete:
	case "":
		status = TransactionStatusPending
	default:
		return nil, shared.NewDomainError("INVALID_STATUS", "New transactions must be PENDING or COMPLETE")
	}

	return &Transaction{
		BaseEntity:  shared.NewBaseEntity(),
		BusinessID:  businessID,
		Kind:        kind,
		Category:    category,
		Description: description,
		Amount:      amount,
		Status:      status,
		OccurredAt:  time.Now(),
	}, nil
}

// HasLines reports whether the transaction is product-linked
func (t *Transaction) HasLines() bool {
	return len(t.Lines) > 0
}

// IsComplete reports whether the transaction has settled against balance and
// stock.
func (t *Transaction) IsComplete() bool {
	return t.Status == TransactionStatusComplete
}

// Cancel flips the status to CANCEL. It does not reverse stock or balance:
// cancellation is a label change, not an undo. Delete is the reversing
// operation.
func (t *Transaction) Cancel() error {
	if t.Status == TransactionStatusCancel {
		return shared.NewDomainError("INVALID_STATE", "Transaction is already cancelled")
	}
	t.Status = TransactionStatusCancel
	t.Touch()
	return nil
}

// BalanceEffect returns the signed delta this transaction applies to the
// business balance when it completes: positive for income, negative for
// expense.
func (t *Transaction) BalanceEffect() decimal.Decimal {
	if t.Kind == TransactionKindIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// StockEffect returns the signed stock delta one line applies when the
// transaction completes: sales consume stock, purchases add it.
func (t *Transaction) StockEffect(line TransactionLine) int64 {
	if t.Kind == TransactionKindIncome {
		return -line.Quantity
	}
	return line.Quantity
}
