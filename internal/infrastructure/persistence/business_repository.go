package persistence

import (
	"context"
	"errors"

	"github.com/bukubiz/backend/internal/domain/ledger"
	"github.com/bukubiz/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormBusinessRepository implements ledger.BusinessRepository using GORM
type GormBusinessRepository struct {
	db *gorm.DB
}

// NewGormBusinessRepository creates a new GormBusinessRepository
func NewGormBusinessRepository(db *gorm.DB) *GormBusinessRepository {
	return &GormBusinessRepository{db: db}
}

// FindByID finds a business by its ID
func (r *GormBusinessRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Business, error) {
	var model models.BusinessModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.NewNotFoundError("business", id)
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save inserts or updates a business
func (r *GormBusinessRepository) Save(ctx context.Context, business *ledger.Business) error {
	var model models.BusinessModel
	model.FromDomain(business)
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return ledger.NewWriteFailureError("business", "save", err)
	}
	return nil
}

// UpdateBalance writes an absolute balance for the business. A plain
// overwrite: the caller is expected to have just read the current value.
func (r *GormBusinessRepository) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&models.BusinessModel{}).
		Where("id = ?", id).
		Update("balance", balance)
	if result.Error != nil {
		return ledger.NewWriteFailureError("business", "update balance", result.Error)
	}
	if result.RowsAffected == 0 {
		return ledger.NewNotFoundError("business", id)
	}
	return nil
}
