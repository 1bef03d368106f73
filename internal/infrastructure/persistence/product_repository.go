package persistence

import (
	"context"
	"errors"

	"github.com/bukubiz/backend/internal/domain/ledger"
	"github.com/bukubiz/backend/internal/domain/shared"
	"github.com/bukubiz/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ledger.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.NewNotFoundError("product", id)
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllByBusiness returns a page of the business's products
func (r *GormProductRepository) FindAllByBusiness(ctx context.Context, businessID uuid.UUID, filter shared.Filter) ([]ledger.Product, error) {
	var productModels []models.ProductModel
	query := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at desc").
		Limit(filter.Limit()).
		Offset(filter.Offset())
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if err := query.Find(&productModels).Error; err != nil {
		return nil, err
	}
	return toProducts(productModels), nil
}

// FindByBusiness returns every non-deleted product of the business
func (r *GormProductRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]ledger.Product, error) {
	var productModels []models.ProductModel
	if err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Find(&productModels).Error; err != nil {
		return nil, err
	}
	return toProducts(productModels), nil
}

// Save inserts or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *ledger.Product) error {
	var model models.ProductModel
	model.FromDomain(product)
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return ledger.NewWriteFailureError("product", "save", err)
	}
	return nil
}

// UpdateStock writes the stock quantity and its derived status in one update
// so the two columns never drift on this path.
func (r *GormProductRepository) UpdateStock(ctx context.Context, id uuid.UUID, stock int64, status ledger.ProductStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"stock": stock, "status": string(status)})
	if result.Error != nil {
		return ledger.NewWriteFailureError("product", "update stock", result.Error)
	}
	if result.RowsAffected == 0 {
		return ledger.NewNotFoundError("product", id)
	}
	return nil
}

// UpdateStatus writes only the status label, used by the batch resync
func (r *GormProductRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status ledger.ProductStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return ledger.NewWriteFailureError("product", "update status", result.Error)
	}
	if result.RowsAffected == 0 {
		return ledger.NewNotFoundError("product", id)
	}
	return nil
}

func toProducts(productModels []models.ProductModel) []ledger.Product {
	products := make([]ledger.Product, len(productModels))
	for i := range productModels {
		products[i] = *productModels[i].ToDomain()
	}
	return products
}
