package ledger

import (
	"context"

	"github.com/bukubiz/backend/internal/domain/ledger"
	"github.com/bukubiz/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// LedgerQueryService serves the read side: business detail, product catalog,
// and transaction history. It never mutates anything.
type LedgerQueryService struct {
	businesses   ledger.BusinessRepository
	products     ledger.ProductRepository
	transactions ledger.TransactionRepository
}

// NewLedgerQueryService creates a new LedgerQueryService
func NewLedgerQueryService(
	businesses ledger.BusinessRepository,
	products ledger.ProductRepository,
	transactions ledger.TransactionRepository,
) *LedgerQueryService {
	return &LedgerQueryService{
		businesses:   businesses,
		products:     products,
		transactions: transactions,
	}
}

// GetBusiness returns a business with its current balance
func (s *LedgerQueryService) GetBusiness(ctx context.Context, businessID uuid.UUID) (*BusinessResponse, error) {
	business, err := s.businesses.FindByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return toBusinessResponse(business), nil
}

// ListProducts returns a page of the business's products
func (s *LedgerQueryService) ListProducts(ctx context.Context, businessID uuid.UUID, filter shared.Filter) ([]ProductResponse, error) {
	products, err := s.products.FindAllByBusiness(ctx, businessID, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = *toProductResponse(&products[i])
	}
	return responses, nil
}

// GetTransaction returns a transaction with its lines
func (s *LedgerQueryService) GetTransaction(ctx context.Context, transactionID uuid.UUID) (*TransactionResponse, error) {
	tx, err := s.transactions.FindByIDWithLines(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// ListTransactions returns a page of the business's transactions plus the
// total count for pagination
func (s *LedgerQueryService) ListTransactions(ctx context.Context, businessID uuid.UUID, filter TransactionListFilter) ([]TransactionResponse, int64, error) {
	domainFilter := ledger.TransactionFilter{}
	domainFilter.Page = filter.Page
	domainFilter.PageSize = filter.PageSize
	if filter.Kind != "" {
		kind := ledger.TransactionKind(filter.Kind)
		domainFilter.Kind = &kind
	}
	if filter.Status != "" {
		status := ledger.TransactionStatus(filter.Status)
		domainFilter.Status = &status
	}
	if filter.Category != "" {
		category := filter.Category
		domainFilter.Category = &category
	}

	transactions, err := s.transactions.FindAllByBusiness(ctx, businessID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.transactions.CountByBusiness(ctx, businessID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = *toTransactionResponse(&transactions[i])
	}
	return responses, total, nil
}
