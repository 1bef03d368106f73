package persistence

import (
	"context"
	"errors"

	"github.com/bukubiz/backend/internal/domain/ledger"
	"github.com/bukubiz/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTransactionRepository implements ledger.TransactionRepository using
// GORM. Header and lines are written as independent single-record inserts;
// there is no wrapping store transaction.
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Create inserts the transaction header, then its lines. If the line insert
// fails the header is removed before returning, so no orphan header
// survives a partial create.
func (r *GormTransactionRepository) Create(ctx context.Context, tx *ledger.Transaction) error {
	var header models.TransactionModel
	header.FromDomain(tx)
	if err := r.db.WithContext(ctx).Create(&header).Error; err != nil {
		return ledger.NewWriteFailureError("transaction", "create", err)
	}

	if len(tx.Lines) == 0 {
		return nil
	}

	lineModels := make([]models.TransactionLineModel, len(tx.Lines))
	for i := range tx.Lines {
		lineModels[i].FromDomain(&tx.Lines[i])
	}
	if err := r.db.WithContext(ctx).Create(&lineModels).Error; err != nil {
		if delErr := r.Delete(ctx, tx.ID); delErr != nil {
			return ledger.NewWriteFailureError("transaction lines", "create (orphan header left behind)", err)
		}
		return ledger.NewWriteFailureError("transaction lines", "create", err)
	}
	return nil
}

// FindByIDWithLines finds a non-deleted transaction with its lines
func (r *GormTransactionRepository) FindByIDWithLines(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	var model models.TransactionModel
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.NewNotFoundError("transaction", id)
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllByBusiness returns a page of the business's transactions, newest
// first by occurrence date
func (r *GormTransactionRepository) FindAllByBusiness(ctx context.Context, businessID uuid.UUID, filter ledger.TransactionFilter) ([]ledger.Transaction, error) {
	var txModels []models.TransactionModel
	query := r.applyFilter(r.db.WithContext(ctx), businessID, filter).
		Preload("Lines").
		Order("occurred_at desc").
		Limit(filter.Limit()).
		Offset(filter.Offset())
	if err := query.Find(&txModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]ledger.Transaction, len(txModels))
	for i := range txModels {
		transactions[i] = *txModels[i].ToDomain()
	}
	return transactions, nil
}

// CountByBusiness counts the business's transactions matching the filter
func (r *GormTransactionRepository) CountByBusiness(ctx context.Context, businessID uuid.UUID, filter ledger.TransactionFilter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.TransactionModel{}), businessID, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormTransactionRepository) applyFilter(query *gorm.DB, businessID uuid.UUID, filter ledger.TransactionFilter) *gorm.DB {
	query = query.Where("business_id = ?", businessID)
	if filter.Kind != nil {
		query = query.Where("kind = ?", string(*filter.Kind))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	return query
}

// UpdateFields applies a partial update. Nil fields are left untouched.
func (r *GormTransactionRepository) UpdateFields(ctx context.Context, id uuid.UUID, update ledger.TransactionUpdate) error {
	fields := map[string]any{}
	if update.Amount != nil {
		fields["amount"] = *update.Amount
	}
	if update.Category != nil {
		fields["category"] = *update.Category
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.OccurredAt != nil {
		fields["occurred_at"] = *update.OccurredAt
	}
	if len(fields) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return ledger.NewWriteFailureError("transaction", "update fields", result.Error)
	}
	if result.RowsAffected == 0 {
		return ledger.NewNotFoundError("transaction", id)
	}
	return nil
}

// UpdateStatus writes the lifecycle status
func (r *GormTransactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status ledger.TransactionStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return ledger.NewWriteFailureError("transaction", "update status", result.Error)
	}
	if result.RowsAffected == 0 {
		return ledger.NewNotFoundError("transaction", id)
	}
	return nil
}

// Delete hard-deletes the transaction and its lines. Rollback path only: it
// removes a just-created transaction that never committed.
func (r *GormTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("transaction_id = ?", id).
		Delete(&models.TransactionLineModel{}).Error; err != nil {
		return ledger.NewWriteFailureError("transaction lines", "delete", err)
	}
	if err := r.db.WithContext(ctx).
		Unscoped().
		Where("id = ?", id).
		Delete(&models.TransactionModel{}).Error; err != nil {
		return ledger.NewWriteFailureError("transaction", "delete", err)
	}
	return nil
}

// SoftDelete sets the deletion marker on the header. Lines stay in place;
// they are only reachable through their header.
func (r *GormTransactionRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.TransactionModel{})
	if result.Error != nil {
		return ledger.NewWriteFailureError("transaction", "soft delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return ledger.NewNotFoundError("transaction", id)
	}
	return nil
}
