package ledger

import (
	"context"

	"github.com/bukubiz/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BalanceService is the single mutation path for a business's cash balance.
// Nothing else writes the balance column.
type BalanceService struct {
	businesses ledger.BusinessRepository
	log        *zap.Logger
}

// NewBalanceService creates a new BalanceService
func NewBalanceService(businesses ledger.BusinessRepository, log *zap.Logger) *BalanceService {
	return &BalanceService{
		businesses: businesses,
		log:        log.Named("balance"),
	}
}

// ApplyDelta reads the current balance, adds the signed delta, and writes the
// result back. Two concurrent deltas on the same business can race and lose
// one update; the store-side fix is a conditional
// `UPDATE businesses SET balance = balance + ?` instead of this
// read-modify-write.
func (s *BalanceService) ApplyDelta(ctx context.Context, businessID uuid.UUID, delta decimal.Decimal) (*ledger.Business, error) {
	business, err := s.businesses.FindByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	business.ApplyBalanceDelta(delta)
	if err := s.businesses.UpdateBalance(ctx, businessID, business.Balance); err != nil {
		return nil, err
	}

	s.log.Debug("balance delta applied",
		zap.Stringer("business_id", businessID),
		zap.String("delta", delta.String()),
		zap.String("balance", business.Balance.String()),
	)
	return business, nil
}
