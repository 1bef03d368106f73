package ledger

import (
	"fmt"

	"github.com/bukubiz/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// NotFoundError reports which entity was missing. It matches
// shared.ErrNotFound via errors.Is and exposes the embedded DomainError to
// errors.As for HTTP code mapping.
type NotFoundError struct {
	*shared.DomainError
	Entity string
	ID     uuid.UUID
}

// NewNotFoundError creates a NotFoundError for the given entity and ID
func NewNotFoundError(entity string, id uuid.UUID) *NotFoundError {
	return &NotFoundError{
		DomainError: shared.NewDomainError(shared.ErrNotFound.Code, fmt.Sprintf("%s %s not found", entity, id)),
		Entity:      entity,
		ID:          id,
	}
}

// Unwrap exposes the embedded DomainError to errors.As
func (e *NotFoundError) Unwrap() error {
	return e.DomainError
}

// InsufficientStockError reports available versus requested quantity for a
// sale line that exceeds stock.
type InsufficientStockError struct {
	*shared.DomainError
	ProductID uuid.UUID
	Available int64
	Requested int64
}

// NewInsufficientStockError creates an InsufficientStockError
func NewInsufficientStockError(productID uuid.UUID, available, requested int64) *InsufficientStockError {
	return &InsufficientStockError{
		DomainError: shared.NewDomainError(
			shared.ErrInsufficientStock.Code,
			fmt.Sprintf("insufficient stock for product %s: %d available, %d requested", productID, available, requested),
		),
		ProductID: productID,
		Available: available,
		Requested: requested,
	}
}

// Unwrap exposes the embedded DomainError to errors.As
func (e *InsufficientStockError) Unwrap() error {
	return e.DomainError
}

// WriteFailureError wraps a rejected store write with the entity and
// operation that failed.
type WriteFailureError struct {
	*shared.DomainError
	Entity string
	Op     string
	Cause  error
}

// NewWriteFailureError creates a WriteFailureError wrapping the store error
func NewWriteFailureError(entity, op string, cause error) *WriteFailureError {
	return &WriteFailureError{
		DomainError: shared.NewDomainError(
			shared.ErrWriteFailure.Code,
			fmt.Sprintf("failed to %s %s: %v", op, entity, cause),
		),
		Entity: entity,
		Op:     op,
		Cause:  cause,
	}
}

// Unwrap exposes both the DomainError and the underlying store error
func (e *WriteFailureError) Unwrap() []error {
	return []error{e.DomainError, e.Cause}
}

// NewInvalidStateError creates an InvalidState domain error with a contextual
// message.
func NewInvalidStateError(message string) *shared.DomainError {
	return shared.NewDomainError(shared.ErrInvalidState.Code, message)
}
