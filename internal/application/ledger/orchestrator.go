package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/bukubiz/backend/internal/domain/ledger"
	"github.com/bukubiz/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LedgerOrchestrator coordinates multi-record ledger operations over a store
// that is only atomic per record. Each operation validates first, then runs
// an ordered list of (apply, compensate) steps; a failure at step k
// compensates steps k-1..1 in reverse order before surfacing the error.
//
// Within one call all I/O is sequential. Two concurrent calls touching the
// same product or business can interleave reads and writes; see the
// BalanceService and the stock steps below for the known races.
type LedgerOrchestrator struct {
	transactions ledger.TransactionRepository
	products     ledger.ProductRepository
	businesses   ledger.BusinessRepository
	balance      *BalanceService
	log          *zap.Logger
}

// NewLedgerOrchestrator creates a new LedgerOrchestrator
func NewLedgerOrchestrator(
	transactions ledger.TransactionRepository,
	products ledger.ProductRepository,
	businesses ledger.BusinessRepository,
	balance *BalanceService,
	log *zap.Logger,
) *LedgerOrchestrator {
	return &LedgerOrchestrator{
		transactions: transactions,
		products:     products,
		businesses:   businesses,
		balance:      balance,
		log:          log.Named("ledger"),
	}
}

// RecordSale records a completed sale: creates the transaction with its
// lines, decrements stock per line, then credits the balance with the total.
// Validation runs before any write; if any line's product is missing or its
// stock is short, nothing is written.
func (o *LedgerOrchestrator) RecordSale(ctx context.Context, businessID uuid.UUID, req RecordSaleRequest) (*TransactionResponse, error) {
	inputs := toLineInputs(req.Lines)

	for _, in := range inputs {
		product, err := o.products.FindByID(ctx, in.ProductID)
		if err != nil {
			return nil, err
		}
		if product.Stock < in.Quantity {
			return nil, ledger.NewInsufficientStockError(product.ID, product.Stock, in.Quantity)
		}
	}

	tx, err := ledger.NewSaleTransaction(businessID, inputs, req.Description)
	if err != nil {
		return nil, err
	}
	return o.applyProductTransaction(ctx, tx)
}

// RecordPurchase records a completed stock purchase: creates the transaction
// with its lines, increments stock per line, then debits the balance with
// the total. Purchases only add stock, so no availability check is needed;
// every product must still exist.
func (o *LedgerOrchestrator) RecordPurchase(ctx context.Context, businessID uuid.UUID, req RecordPurchaseRequest) (*TransactionResponse, error) {
	inputs := toLineInputs(req.Lines)

	for _, in := range inputs {
		if _, err := o.products.FindByID(ctx, in.ProductID); err != nil {
			return nil, err
		}
	}

	tx, err := ledger.NewPurchaseTransaction(businessID, inputs, req.Description)
	if err != nil {
		return nil, err
	}
	return o.applyProductTransaction(ctx, tx)
}

// applyProductTransaction runs the shared saga for sales and purchases:
// create transaction+lines, apply stock per line in order, apply balance.
func (o *LedgerOrchestrator) applyProductTransaction(ctx context.Context, tx *ledger.Transaction) (*TransactionResponse, error) {
	sg := newSaga(o.log.With(
		zap.String("category", tx.Category),
		zap.Stringer("transaction_id", tx.ID),
	))

	if err := sg.run(ctx, sagaStep{
		name: "create transaction",
		apply: func(ctx context.Context) error {
			return o.transactions.Create(ctx, tx)
		},
		compensate: func(ctx context.Context) error {
			return o.transactions.Delete(ctx, tx.ID)
		},
	}); err != nil {
		return nil, err
	}

	for _, line := range tx.Lines {
		line := line
		if err := sg.run(ctx, sagaStep{
			name: fmt.Sprintf("apply stock for product %s", line.ProductID),
			apply: func(ctx context.Context) error {
				// Re-fetch: stock may have moved since validation. The gap
				// between this read and the write below is the documented
				// time-of-check-to-time-of-use race.
				product, err := o.products.FindByID(ctx, line.ProductID)
				if err != nil {
					return err
				}
				next := product.Stock + tx.StockEffect(line)
				return o.products.UpdateStock(ctx, line.ProductID, next, ledger.ResolveStockStatus(next))
			},
			compensate: func(ctx context.Context) error {
				product, err := o.products.FindByID(ctx, line.ProductID)
				if err != nil {
					return err
				}
				restored := product.Stock - tx.StockEffect(line)
				return o.products.UpdateStock(ctx, line.ProductID, restored, ledger.ResolveStockStatus(restored))
			},
		}); err != nil {
			return nil, err
		}
	}

	if err := sg.run(ctx, sagaStep{
		name: "apply balance",
		apply: func(ctx context.Context) error {
			_, err := o.balance.ApplyDelta(ctx, tx.BusinessID, tx.BalanceEffect())
			return err
		},
	}); err != nil {
		return nil, err
	}

	return toTransactionResponse(tx), nil
}

// CreateGeneralTransaction creates a transaction with no product lines. The
// balance is only touched when the transaction is created COMPLETE.
func (o *LedgerOrchestrator) CreateGeneralTransaction(ctx context.Context, businessID uuid.UUID, req CreateTransactionRequest) (*TransactionResponse, error) {
	status := ledger.TransactionStatus(req.Status)
	tx, err := ledger.NewGeneralTransaction(
		businessID,
		ledger.TransactionKind(req.Kind),
		req.Amount,
		req.Category,
		req.Description,
		status,
	)
	if err != nil {
		return nil, err
	}

	sg := newSaga(o.log.With(
		zap.String("category", tx.Category),
		zap.Stringer("transaction_id", tx.ID),
	))

	if err := sg.run(ctx, sagaStep{
		name: "create transaction",
		apply: func(ctx context.Context) error {
			return o.transactions.Create(ctx, tx)
		},
		compensate: func(ctx context.Context) error {
			return o.transactions.Delete(ctx, tx.ID)
		},
	}); err != nil {
		return nil, err
	}

	if tx.IsComplete() {
		if err := sg.run(ctx, sagaStep{
			name: "apply balance",
			apply: func(ctx context.Context) error {
				_, err := o.balance.ApplyDelta(ctx, businessID, tx.BalanceEffect())
				return err
			},
		}); err != nil {
			return nil, err
		}
	}

	return toTransactionResponse(tx), nil
}

// UpdateGeneralTransaction updates the editable fields of a transaction.
// When the amount changes on an already COMPLETE transaction the balance is
// adjusted by the difference: revert the old amount's effect, then apply the
// new one, as two sequential deltas. The status is never changed here.
func (o *LedgerOrchestrator) UpdateGeneralTransaction(ctx context.Context, transactionID uuid.UUID, req UpdateTransactionRequest) (*TransactionResponse, error) {
	tx, err := o.transactions.FindByIDWithLines(ctx, transactionID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ledger.NewInvalidStateError("cannot edit a transaction that does not exist")
		}
		return nil, err
	}

	if req.Amount != nil && !req.Amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Transaction amount must be positive")
	}

	amountChanges := req.Amount != nil && !req.Amount.Equal(tx.Amount)

	sg := newSaga(o.log.With(
		zap.String("category", tx.Category),
		zap.Stringer("transaction_id", tx.ID),
	))

	if amountChanges && tx.IsComplete() {
		oldEffect := tx.BalanceEffect()
		updated := *tx
		updated.Amount = *req.Amount
		newEffect := updated.BalanceEffect()

		if err := sg.run(ctx, sagaStep{
			name: "revert old amount effect",
			apply: func(ctx context.Context) error {
				_, err := o.balance.ApplyDelta(ctx, tx.BusinessID, oldEffect.Neg())
				return err
			},
			compensate: func(ctx context.Context) error {
				_, err := o.balance.ApplyDelta(ctx, tx.BusinessID, oldEffect)
				return err
			},
		}); err != nil {
			return nil, err
		}

		if err := sg.run(ctx, sagaStep{
			name: "apply new amount effect",
			apply: func(ctx context.Context) error {
				_, err := o.balance.ApplyDelta(ctx, tx.BusinessID, newEffect)
				return err
			},
			compensate: func(ctx context.Context) error {
				_, err := o.balance.ApplyDelta(ctx, tx.BusinessID, newEffect.Neg())
				return err
			},
		}); err != nil {
			return nil, err
		}
	}

	update := ledger.TransactionUpdate{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		OccurredAt:  req.OccurredAt,
	}
	if err := sg.run(ctx, sagaStep{
		name: "update transaction fields",
		apply: func(ctx context.Context) error {
			return o.transactions.UpdateFields(ctx, transactionID, update)
		},
	}); err != nil {
		return nil, err
	}

	if req.Amount != nil {
		tx.Amount = *req.Amount
	}
	if req.Category != nil {
		tx.Category = *req.Category
	}
	if req.Description != nil {
		tx.Description = *req.Description
	}
	if req.OccurredAt != nil {
		tx.OccurredAt = *req.OccurredAt
	}
	return toTransactionResponse(tx), nil
}

// CancelTransaction flips the status to CANCEL and nothing else. Stock and
// balance keep their post-transaction values; cancel is a label change, not
// an undo. Delete is the operation that reverses side effects.
func (o *LedgerOrchestrator) CancelTransaction(ctx context.Context, transactionID uuid.UUID) (*TransactionResponse, error) {
	tx, err := o.transactions.FindByIDWithLines(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if err := tx.Cancel(); err != nil {
		return nil, err
	}
	if err := o.transactions.UpdateStatus(ctx, transactionID, ledger.TransactionStatusCancel); err != nil {
		return nil, err
	}

	return toTransactionResponse(tx), nil
}

// DeleteTransaction soft-deletes a transaction. If it was COMPLETE at the
// time of deletion its balance and per-line stock effects are reversed
// first; PENDING and CANCEL transactions are deleted without reversal.
// Reversal is best-effort: a failed reversing write is logged and the
// soft-delete still proceeds.
func (o *LedgerOrchestrator) DeleteTransaction(ctx context.Context, businessID, transactionID uuid.UUID) error {
	tx, err := o.transactions.FindByIDWithLines(ctx, transactionID)
	if err != nil {
		return err
	}
	if tx.BusinessID != businessID {
		return ledger.NewNotFoundError("transaction", transactionID)
	}

	if tx.IsComplete() {
		o.reverseSideEffects(ctx, tx)
	}

	return o.transactions.SoftDelete(ctx, transactionID)
}

// reverseSideEffects undoes the balance and stock effects of a completed
// transaction. Individual failures are logged, not escalated; the delete
// must not be blocked by a partially failed reversal.
func (o *LedgerOrchestrator) reverseSideEffects(ctx context.Context, tx *ledger.Transaction) {
	log := o.log.With(zap.Stringer("transaction_id", tx.ID))

	if _, err := o.balance.ApplyDelta(ctx, tx.BusinessID, tx.BalanceEffect().Neg()); err != nil {
		log.Error("balance reversal failed during delete", zap.Error(err))
	}

	for _, line := range tx.Lines {
		product, err := o.products.FindByID(ctx, line.ProductID)
		if err != nil {
			log.Error("stock reversal failed during delete",
				zap.Stringer("product_id", line.ProductID),
				zap.Error(err),
			)
			continue
		}
		restored := product.Stock - tx.StockEffect(line)
		if err := o.products.UpdateStock(ctx, line.ProductID, restored, ledger.ResolveStockStatus(restored)); err != nil {
			log.Error("stock reversal failed during delete",
				zap.Stringer("product_id", line.ProductID),
				zap.Error(err),
			)
		}
	}
}
