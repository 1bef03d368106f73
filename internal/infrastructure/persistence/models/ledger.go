package models

import (
	"time"

	"github.com/bukubiz/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BusinessModel is the persistence model for the Business aggregate
type BusinessModel struct {
	BaseModel
	OwnerID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name    string          `gorm:"type:varchar(200);not null"`
	Balance decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (BusinessModel) TableName() string {
	return "businesses"
}

// ToDomain converts the persistence model to a domain Business
func (m *BusinessModel) ToDomain() *ledger.Business {
	return &ledger.Business{
		BaseEntity: m.BaseModel.ToDomain(),
		OwnerID:    m.OwnerID,
		Name:       m.Name,
		Balance:    m.Balance,
	}
}

// FromDomain populates the persistence model from a domain Business
func (m *BusinessModel) FromDomain(b *ledger.Business) {
	m.FromDomainBaseEntity(b.BaseEntity)
	m.OwnerID = b.OwnerID
	m.Name = b.Name
	m.Balance = b.Balance
}

// ProductModel is the persistence model for the Product aggregate
type ProductModel struct {
	BaseModel
	BusinessID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(200);not null"`
	Price      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Stock      int64           `gorm:"not null;default:0"`
	Status     string          `gorm:"type:varchar(20);not null;index"`
	DeletedAt  gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product
func (m *ProductModel) ToDomain() *ledger.Product {
	return &ledger.Product{
		BaseEntity: m.BaseModel.ToDomain(),
		BusinessID: m.BusinessID,
		Name:       m.Name,
		Price:      m.Price,
		Stock:      m.Stock,
		Status:     ledger.ProductStatus(m.Status),
	}
}

// FromDomain populates the persistence model from a domain Product
func (m *ProductModel) FromDomain(p *ledger.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.BusinessID = p.BusinessID
	m.Name = p.Name
	m.Price = p.Price
	m.Stock = p.Stock
	m.Status = string(p.Status)
}

// TransactionModel is the persistence model for a ledger transaction header.
// DeletedAt carries the soft-delete marker, orthogonal to Status.
type TransactionModel struct {
	BaseModel
	BusinessID  uuid.UUID              `gorm:"type:uuid;not null;index"`
	Kind        string                 `gorm:"type:varchar(10);not null;index"`
	Category    string                 `gorm:"type:varchar(100);not null;index"`
	Description string                 `gorm:"type:text"`
	Amount      decimal.Decimal        `gorm:"type:decimal(18,2);not null"`
	Status      string                 `gorm:"type:varchar(10);not null;index"`
	OccurredAt  time.Time              `gorm:"not null;index"`
	DeletedAt   gorm.DeletedAt         `gorm:"index"`
	Lines       []TransactionLineModel `gorm:"foreignKey:TransactionID;references:ID"`
}

// TableName returns the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts the persistence model to a domain Transaction with lines
func (m *TransactionModel) ToDomain() *ledger.Transaction {
	lines := make([]ledger.TransactionLine, len(m.Lines))
	for i := range m.Lines {
		lines[i] = *m.Lines[i].ToDomain()
	}
	return &ledger.Transaction{
		BaseEntity:  m.BaseModel.ToDomain(),
		BusinessID:  m.BusinessID,
		Kind:        ledger.TransactionKind(m.Kind),
		Category:    m.Category,
		Description: m.Description,
		Amount:      m.Amount,
		Status:      ledger.TransactionStatus(m.Status),
		OccurredAt:  m.OccurredAt,
		Lines:       lines,
	}
}

// FromDomain populates the persistence model from a domain Transaction.
// Lines are mapped separately; they are written by their own insert.
func (m *TransactionModel) FromDomain(t *ledger.Transaction) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.BusinessID = t.BusinessID
	m.Kind = string(t.Kind)
	m.Category = t.Category
	m.Description = t.Description
	m.Amount = t.Amount
	m.Status = string(t.Status)
	m.OccurredAt = t.OccurredAt
}

// TransactionLineModel is the persistence model for a transaction line
type TransactionLineModel struct {
	BaseModel
	TransactionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity      int64           `gorm:"not null"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (TransactionLineModel) TableName() string {
	return "transaction_lines"
}

// ToDomain converts the persistence model to a domain TransactionLine
func (m *TransactionLineModel) ToDomain() *ledger.TransactionLine {
	return &ledger.TransactionLine{
		BaseEntity:    m.BaseModel.ToDomain(),
		TransactionID: m.TransactionID,
		ProductID:     m.ProductID,
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
	}
}

// FromDomain populates the persistence model from a domain TransactionLine
func (m *TransactionLineModel) FromDomain(l *ledger.TransactionLine) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.TransactionID = l.TransactionID
	m.ProductID = l.ProductID
	m.Quantity = l.Quantity
	m.UnitPrice = l.UnitPrice
}

// All returns every model for schema auto-migration in tests and dev setups
func All() []any {
	return []any{
		&BusinessModel{},
		&ProductModel{},
		&TransactionModel{},
		&TransactionLineModel{},
	}
}
