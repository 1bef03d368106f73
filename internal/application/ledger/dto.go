package ledger

import (
	"time"

	"github.com/bukubiz/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineRequest represents one requested product line in a sale or purchase
type LineRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"dgte0"`
}

// RecordSaleRequest represents a request to record a sale
type RecordSaleRequest struct {
	Lines       []LineRequest `json:"lines" binding:"required,min=1,dive"`
	Description string        `json:"description" binding:"max=500"`
}

// RecordPurchaseRequest represents a request to record a stock purchase
type RecordPurchaseRequest struct {
	Lines       []LineRequest `json:"lines" binding:"required,min=1,dive"`
	Description string        `json:"description" binding:"max=500"`
}

// CreateTransactionRequest represents a request to create a general
// transaction with no product lines
type CreateTransactionRequest struct {
	Kind        string          `json:"kind" binding:"required,oneof=INCOME EXPENSE"`
	Amount      decimal.Decimal `json:"amount" binding:"dgt0"`
	Category    string          `json:"category" binding:"required,max=100"`
	Description string          `json:"description" binding:"max=500"`
	Status      string          `json:"status" binding:"omitempty,oneof=PENDING COMPLETE"`
}

// UpdateTransactionRequest represents a partial update of a general
// transaction. Status is not editable here; use cancel or delete.
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category" binding:"omitempty,max=100"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	OccurredAt  *time.Time       `json:"occurred_at"`
}

// TransactionLineResponse represents a transaction line in API responses
type TransactionLineResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID          uuid.UUID                 `json:"id"`
	BusinessID  uuid.UUID                 `json:"business_id"`
	Kind        string                    `json:"kind"`
	Category    string                    `json:"category"`
	Description string                    `json:"description,omitempty"`
	Amount      decimal.Decimal           `json:"amount"`
	Status      string                    `json:"status"`
	OccurredAt  time.Time                 `json:"occurred_at"`
	Lines       []TransactionLineResponse `json:"lines,omitempty"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

// TransactionListFilter defines filtering options for transaction lists
type TransactionListFilter struct {
	Kind     string `form:"kind" binding:"omitempty,oneof=INCOME EXPENSE"`
	Status   string `form:"status" binding:"omitempty,oneof=PENDING COMPLETE CANCEL"`
	Category string `form:"category"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ProductListFilter defines filtering options for product lists
type ProductListFilter struct {
	Search   string `form:"search" binding:"omitempty,max=100"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// BusinessResponse represents a business in API responses
type BusinessResponse struct {
	ID        uuid.UUID       `json:"id"`
	OwnerID   uuid.UUID       `json:"owner_id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int64           `json:"stock"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func toLineInputs(lines []LineRequest) []ledger.LineInput {
	inputs := make([]ledger.LineInput, len(lines))
	for i, line := range lines {
		inputs[i] = ledger.LineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		}
	}
	return inputs
}

func toTransactionResponse(tx *ledger.Transaction) *TransactionResponse {
	lines := make([]TransactionLineResponse, len(tx.Lines))
	for i, line := range tx.Lines {
		lines[i] = TransactionLineResponse{
			ID:        line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  line.Subtotal(),
		}
	}
	return &TransactionResponse{
		ID:          tx.ID,
		BusinessID:  tx.BusinessID,
		Kind:        string(tx.Kind),
		Category:    tx.Category,
		Description: tx.Description,
		Amount:      tx.Amount,
		Status:      string(tx.Status),
		OccurredAt:  tx.OccurredAt,
		Lines:       lines,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

func toBusinessResponse(b *ledger.Business) *BusinessResponse {
	return &BusinessResponse{
		ID:        b.ID,
		OwnerID:   b.OwnerID,
		Name:      b.Name,
		Balance:   b.Balance,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toProductResponse(p *ledger.Product) *ProductResponse {
	return &ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
