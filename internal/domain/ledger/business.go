package ledger

import (
	"strings"

	"github.com/bukubiz/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Business is the aggregate owning a cash balance. The balance is a shared
// mutable resource: it changes only through the balance accumulator applying
// signed deltas, never by direct field writes from other paths.
type Business struct {
	shared.BaseEntity
	OwnerID uuid.UUID
	Name    string
	Balance decimal.Decimal
}

// NewBusiness creates a new business with a zero balance
func NewBusiness(ownerID uuid.UUID, name string) (*Business, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Business name cannot be empty")
	}
	return &Business{
		BaseEntity: shared.NewBaseEntity(),
		OwnerID:    ownerID,
		Name:       name,
		Balance:    decimal.Zero,
	}, nil
}

// ApplyBalanceDelta adds a signed delta to the balance. The balance may go
// negative; expenses are recorded even when the till cannot cover them.
func (b *Business) ApplyBalanceDelta(delta decimal.Decimal) {
	b.Balance = b.Balance.Add(delta)
	b.Touch()
}
