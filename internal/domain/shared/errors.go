package shared

// DomainError represents a domain-level error with a stable machine-readable code.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is matches two domain errors by code, so structured errors that embed or
// wrap a DomainError compare equal to the shared sentinels via errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Closed error taxonomy for the ledger core. Every error surfaced by the
// orchestrator matches exactly one of these through errors.Is.
var (
	ErrNotFound          = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInsufficientStock = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrWriteFailure      = NewDomainError("WRITE_FAILURE", "Backing store rejected the write")
	ErrInvalidState      = NewDomainError("INVALID_STATE", "Operation not allowed in current state")

	ErrAlreadyExists = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "Invalid input provided")
)
