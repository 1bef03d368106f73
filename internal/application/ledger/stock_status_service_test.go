package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/bukubiz/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStockStatusService_BatchResync(t *testing.T) {
	ctx := context.Background()

	addProduct := func(t *testing.T, repo *mockProductRepository, businessID uuid.UUID, stock int64, status ledger.ProductStatus) *ledger.Product {
		t.Helper()
		product, err := ledger.NewProduct(businessID, "Produk", decimal.NewFromInt(10_000), stock)
		require.NoError(t, err)
		product.Status = status
		repo.add(product)
		return product
	}

	t.Run("corrects only drifted statuses", func(t *testing.T) {
		repo := newMockProductRepository()
		businessID := uuid.New()

		drifted := addProduct(t, repo, businessID, 0, ledger.ProductStatusActive)
		alsoDrifted := addProduct(t, repo, businessID, 5, ledger.ProductStatusActive)
		inSync := addProduct(t, repo, businessID, 50, ledger.ProductStatusActive)

		service := NewStockStatusService(repo, zap.NewNop())
		corrected, err := service.BatchResync(ctx, businessID)

		require.NoError(t, err)
		assert.Equal(t, 2, corrected)
		assert.Equal(t, ledger.ProductStatusOut, repo.products[drifted.ID].Status)
		assert.Equal(t, ledger.ProductStatusLow, repo.products[alsoDrifted.ID].Status)
		assert.Equal(t, ledger.ProductStatusActive, repo.products[inSync.ID].Status)
	})

	t.Run("resync overwrites a manual INACTIVE flag", func(t *testing.T) {
		repo := newMockProductRepository()
		businessID := uuid.New()
		product := addProduct(t, repo, businessID, 20, ledger.ProductStatusInactive)

		service := NewStockStatusService(repo, zap.NewNop())
		corrected, err := service.BatchResync(ctx, businessID)

		require.NoError(t, err)
		assert.Equal(t, 1, corrected)
		assert.Equal(t, ledger.ProductStatusActive, repo.products[product.ID].Status)
	})

	t.Run("clean catalog needs no writes", func(t *testing.T) {
		repo := newMockProductRepository()
		businessID := uuid.New()
		addProduct(t, repo, businessID, 0, ledger.ProductStatusOut)
		addProduct(t, repo, businessID, 9, ledger.ProductStatusLow)
		addProduct(t, repo, businessID, 10, ledger.ProductStatusActive)

		service := NewStockStatusService(repo, zap.NewNop())
		corrected, err := service.BatchResync(ctx, businessID)

		require.NoError(t, err)
		assert.Zero(t, corrected)
	})

	t.Run("a failed write is skipped, the rest still heals", func(t *testing.T) {
		repo := newMockProductRepository()
		businessID := uuid.New()
		failing := addProduct(t, repo, businessID, 0, ledger.ProductStatusActive)
		healing := addProduct(t, repo, businessID, 3, ledger.ProductStatusActive)
		repo.updateStatusErrFor[failing.ID] = errors.New("connection reset")

		service := NewStockStatusService(repo, zap.NewNop())
		corrected, err := service.BatchResync(ctx, businessID)

		require.NoError(t, err)
		assert.Equal(t, 1, corrected)
		assert.Equal(t, ledger.ProductStatusActive, repo.products[failing.ID].Status)
		assert.Equal(t, ledger.ProductStatusLow, repo.products[healing.ID].Status)
	})

	t.Run("catalog read failure aborts the resync", func(t *testing.T) {
		repo := newMockProductRepository()
		repo.findErr = errors.New("connection reset")

		service := NewStockStatusService(repo, zap.NewNop())
		_, err := service.BatchResync(ctx, uuid.New())

		require.Error(t, err)
	})
}
