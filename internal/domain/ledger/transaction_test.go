package ledger

import (
	"errors"
	"testing"

	"github.com/bukubiz/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleInputs() []LineInput {
	return []LineInput{
		{ProductID: uuid.New(), Quantity: 5, UnitPrice: decimal.NewFromInt(75_000)},
		{ProductID: uuid.New(), Quantity: 2, UnitPrice: decimal.NewFromInt(18_000)},
	}
}

func TestNewSaleTransaction(t *testing.T) {
	businessID := uuid.New()

	t.Run("amount is the sum of line subtotals", func(t *testing.T) {
		tx, err := NewSaleTransaction(businessID, saleInputs(), "pagi")
		require.NoError(t, err)

		assert.Equal(t, TransactionKindIncome, tx.Kind)
		assert.Equal(t, CategorySales, tx.Category)
		assert.Equal(t, TransactionStatusComplete, tx.Status)
		assert.True(t, tx.Amount.Equal(decimal.NewFromInt(411_000)))
		assert.True(t, tx.HasLines())
	})

	t.Run("lines are owned by the transaction", func(t *testing.T) {
		tx, err := NewSaleTransaction(businessID, saleInputs(), "")
		require.NoError(t, err)
		for _, line := range tx.Lines {
			assert.Equal(t, tx.ID, line.TransactionID)
		}
	})

	t.Run("rejects empty lines", func(t *testing.T) {
		_, err := NewSaleTransaction(businessID, nil, "")
		require.Error(t, err)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewSaleTransaction(businessID, []LineInput{
			{ProductID: uuid.New(), Quantity: 0, UnitPrice: decimal.NewFromInt(1_000)},
		}, "")
		require.Error(t, err)
	})

	t.Run("rejects negative unit price", func(t *testing.T) {
		_, err := NewSaleTransaction(businessID, []LineInput{
			{ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.NewFromInt(-1)},
		}, "")
		require.Error(t, err)
	})

	t.Run("rejects empty business", func(t *testing.T) {
		_, err := NewSaleTransaction(uuid.Nil, saleInputs(), "")
		require.Error(t, err)
	})
}

func TestNewPurchaseTransaction(t *testing.T) {
	tx, err := NewPurchaseTransaction(uuid.New(), []LineInput{
		{ProductID: uuid.New(), Quantity: 20, UnitPrice: decimal.NewFromInt(60_000)},
	}, "restock")
	require.NoError(t, err)

	assert.Equal(t, TransactionKindExpense, tx.Kind)
	assert.Equal(t, CategoryStockPurchase, tx.Category)
	assert.Equal(t, TransactionStatusComplete, tx.Status)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(1_200_000)))
}

func TestNewGeneralTransaction(t *testing.T) {
	businessID := uuid.New()
	amount := decimal.NewFromInt(400_000)

	t.Run("defaults to PENDING", func(t *testing.T) {
		tx, err := NewGeneralTransaction(businessID, TransactionKindExpense, amount, "Rent", "", "")
		require.NoError(t, err)
		assert.Equal(t, TransactionStatusPending, tx.Status)
		assert.False(t, tx.HasLines())
	})

	t.Run("accepts COMPLETE", func(t *testing.T) {
		tx, err := NewGeneralTransaction(businessID, TransactionKindIncome, amount, "Consulting", "", TransactionStatusComplete)
		require.NoError(t, err)
		assert.True(t, tx.IsComplete())
	})

	t.Run("rejects CANCEL at creation", func(t *testing.T) {
		_, err := NewGeneralTransaction(businessID, TransactionKindIncome, amount, "Consulting", "", TransactionStatusCancel)
		require.Error(t, err)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := NewGeneralTransaction(businessID, "TRANSFER", amount, "Misc", "", "")
		require.Error(t, err)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewGeneralTransaction(businessID, TransactionKindIncome, decimal.Zero, "Misc", "", "")
		require.Error(t, err)
	})
}

func TestTransaction_Cancel(t *testing.T) {
	tx, err := NewGeneralTransaction(uuid.New(), TransactionKindIncome, decimal.NewFromInt(100), "Misc", "", TransactionStatusComplete)
	require.NoError(t, err)

	require.NoError(t, tx.Cancel())
	assert.Equal(t, TransactionStatusCancel, tx.Status)

	err = tx.Cancel()
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrInvalidState))
}

func TestTransaction_Effects(t *testing.T) {
	line := TransactionLine{Quantity: 5, UnitPrice: decimal.NewFromInt(75_000)}

	t.Run("income credits balance and consumes stock", func(t *testing.T) {
		tx := &Transaction{Kind: TransactionKindIncome, Amount: decimal.NewFromInt(375_000)}
		assert.True(t, tx.BalanceEffect().Equal(decimal.NewFromInt(375_000)))
		assert.Equal(t, int64(-5), tx.StockEffect(line))
	})

	t.Run("expense debits balance and adds stock", func(t *testing.T) {
		tx := &Transaction{Kind: TransactionKindExpense, Amount: decimal.NewFromInt(375_000)}
		assert.True(t, tx.BalanceEffect().Equal(decimal.NewFromInt(-375_000)))
		assert.Equal(t, int64(5), tx.StockEffect(line))
	})

	t.Run("effects are exact inverses across delete", func(t *testing.T) {
		tx := &Transaction{Kind: TransactionKindIncome, Amount: decimal.NewFromInt(375_000)}
		assert.True(t, tx.BalanceEffect().Add(tx.BalanceEffect().Neg()).IsZero())
		assert.Zero(t, tx.StockEffect(line)+(-tx.StockEffect(line)))
	})
}

func TestTransactionLine_Subtotal(t *testing.T) {
	line := TransactionLine{Quantity: 3, UnitPrice: decimal.RequireFromString("12500.50")}
	assert.True(t, line.Subtotal().Equal(decimal.RequireFromString("37501.50")))
}
