package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStockStatus(t *testing.T) {
	tests := []struct {
		name  string
		stock int64
		want  ProductStatus
	}{
		{"zero stock is OUT", 0, ProductStatusOut},
		{"one unit is LOW", 1, ProductStatusLow},
		{"nine units is LOW", 9, ProductStatusLow},
		{"ten units is ACTIVE", 10, ProductStatusActive},
		{"large stock is ACTIVE", 100_000, ProductStatusActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveStockStatus(tt.stock))
		})
	}
}

func TestNewProduct(t *testing.T) {
	businessID := uuid.New()

	t.Run("derives status from initial stock", func(t *testing.T) {
		product, err := NewProduct(businessID, "Kopi Bubuk 250g", decimal.NewFromInt(75_000), 12)
		require.NoError(t, err)
		assert.Equal(t, ProductStatusActive, product.Status)
		assert.True(t, product.StatusInSync())
	})

	t.Run("zero initial stock starts OUT", func(t *testing.T) {
		product, err := NewProduct(businessID, "Teh Celup", decimal.NewFromInt(10_000), 0)
		require.NoError(t, err)
		assert.Equal(t, ProductStatusOut, product.Status)
	})

	t.Run("rejects empty business", func(t *testing.T) {
		_, err := NewProduct(uuid.Nil, "Teh Celup", decimal.NewFromInt(10_000), 1)
		require.Error(t, err)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := NewProduct(businessID, "   ", decimal.NewFromInt(10_000), 1)
		require.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct(businessID, "Teh Celup", decimal.NewFromInt(-1), 1)
		require.Error(t, err)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		_, err := NewProduct(businessID, "Teh Celup", decimal.NewFromInt(10_000), -1)
		require.Error(t, err)
	})
}

func TestProduct_SetStock(t *testing.T) {
	product, err := NewProduct(uuid.New(), "Gula Pasir 1kg", decimal.NewFromInt(18_000), 20)
	require.NoError(t, err)

	t.Run("re-derives the status", func(t *testing.T) {
		require.NoError(t, product.SetStock(3))
		assert.Equal(t, int64(3), product.Stock)
		assert.Equal(t, ProductStatusLow, product.Status)

		require.NoError(t, product.SetStock(0))
		assert.Equal(t, ProductStatusOut, product.Status)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		err := product.SetStock(-1)
		require.Error(t, err)
		assert.Equal(t, int64(0), product.Stock)
	})
}

func TestProduct_Deactivate(t *testing.T) {
	product, err := NewProduct(uuid.New(), "Sabun Batang", decimal.NewFromInt(4_000), 20)
	require.NoError(t, err)

	product.Deactivate()

	assert.Equal(t, ProductStatusInactive, product.Status)
	assert.False(t, product.StatusInSync())

	// The next stock mutation re-derives the status and drops the flag.
	require.NoError(t, product.SetStock(20))
	assert.Equal(t, ProductStatusActive, product.Status)
}
