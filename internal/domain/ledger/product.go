package ledger

import (
	"strings"

	"github.com/bukubiz/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus is the denormalized stock-status label stored next to the
// stock quantity.
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "ACTIVE"
	ProductStatusLow      ProductStatus = "LOW"
	ProductStatusOut      ProductStatus = "OUT"
	ProductStatusInactive ProductStatus = "INACTIVE"
)

// lowStockThreshold is the boundary below which stock counts as LOW.
const lowStockThreshold = 10

// ResolveStockStatus maps a stock quantity to its status label. Pure and
// total over non-negative stock; it never returns INACTIVE, which is a
// manual catalog flag rather than a derived value.
func ResolveStockStatus(stock int64) ProductStatus {
	switch {
	case stock == 0:
		return ProductStatusOut
	case stock < lowStockThreshold:
		return ProductStatusLow
	default:
		return ProductStatusActive
	}
}

// Product is the aggregate owning a stock quantity. Status must equal
// ResolveStockStatus(Stock) except transiently during a multi-step update;
// stock must never go negative.
type Product struct {
	shared.BaseEntity
	BusinessID uuid.UUID
	Name       string
	Price      decimal.Decimal
	Stock      int64
	Status     ProductStatus
}

// NewProduct creates a product with its status derived from the initial stock
func NewProduct(businessID uuid.UUID, name string, price decimal.Decimal, stock int64) (*Product, error) {
	if businessID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BUSINESS", "Business ID cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Product stock cannot be negative")
	}
	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		BusinessID: businessID,
		Name:       name,
		Price:      price,
		Stock:      stock,
		Status:     ResolveStockStatus(stock),
	}, nil
}

// SetStock replaces the stock quantity and re-derives the status
func (p *Product) SetStock(stock int64) error {
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Product stock cannot be negative")
	}
	p.Stock = stock
	p.Status = ResolveStockStatus(stock)
	p.Touch()
	return nil
}

// StatusInSync reports whether the stored status matches the derived one
func (p *Product) StatusInSync() bool {
	return p.Status == ResolveStockStatus(p.Stock)
}

// Deactivate marks the product as manually disabled. The flag survives until
// the next stock mutation or batch resync re-derives the status.
func (p *Product) Deactivate() {
	p.Status = ProductStatusInactive
	p.Touch()
}
