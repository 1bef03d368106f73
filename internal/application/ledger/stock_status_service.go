package ledger

import (
	"context"

	"github.com/bukubiz/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StockStatusService heals drift between the stored stock-status label and
// the value derived from the stock quantity. Every orchestrated stock
// mutation already writes the derived status, so corrections should trend to
// zero unless something writes stock out of band.
type StockStatusService struct {
	products ledger.ProductRepository
	log      *zap.Logger
}

// NewStockStatusService creates a new StockStatusService
func NewStockStatusService(products ledger.ProductRepository, log *zap.Logger) *StockStatusService {
	return &StockStatusService{
		products: products,
		log:      log.Named("stock_status"),
	}
}

// BatchResync recomputes the status of every non-deleted product of the
// business and writes back only the ones whose stored status differs.
// Corrections are independent and idempotent; a failed write is logged and
// skipped so the rest of the catalog still heals. Returns the number of
// corrections written.
func (s *StockStatusService) BatchResync(ctx context.Context, businessID uuid.UUID) (int, error) {
	products, err := s.products.FindByBusiness(ctx, businessID)
	if err != nil {
		return 0, err
	}

	corrected := 0
	for _, product := range products {
		resolved := ledger.ResolveStockStatus(product.Stock)
		if product.Status == resolved {
			continue
		}
		if err := s.products.UpdateStatus(ctx, product.ID, resolved); err != nil {
			s.log.Error("status correction failed",
				zap.Stringer("product_id", product.ID),
				zap.String("stored", string(product.Status)),
				zap.String("resolved", string(resolved)),
				zap.Error(err),
			)
			continue
		}
		corrected++
	}

	if corrected > 0 {
		s.log.Info("stock status resync corrected drift",
			zap.Stringer("business_id", businessID),
			zap.Int("corrections", corrected),
		)
	}
	return corrected, nil
}
