package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockledger/backend/internal/domain/shared"
	"github.com/stockledger/backend/internal/domain/stock"
	"gorm.io/gorm"
)

// GormSaleRepository implements stock.SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale by its ID
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*stock.Sale, error) {
	var sale stock.Sale
	if err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "Sale not found")
	}
	return &sale, nil
}

// FindAll lists sales; the date window applies to sale_date
func (r *GormSaleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]stock.Sale, error) {
	var sales []stock.Sale
	query := saleList.apply(r.db.WithContext(ctx).Model(&stock.Sale{}), filter)
	if err := query.Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// Create inserts a sale
func (r *GormSaleRepository) Create(ctx context.Context, sale *stock.Sale) error {
	return translateError(r.db.WithContext(ctx).Create(sale).Error, "Sale not found")
}

// UpdateQuantity persists a resized sale. Only quantity_sold and updated_at change.
func (r *GormSaleRepository) UpdateQuantity(ctx context.Context, sale *stock.Sale) error {
	res := r.db.WithContext(ctx).Model(&stock.Sale{}).
		Where("id = ?", sale.ID).
		Updates(map[string]any{
			"quantity_sold": sale.QuantitySold,
			"updated_at":    sale.UpdatedAt,
		})
	if res.Error != nil {
		return translateError(res.Error, "Sale not found")
	}
	if res.RowsAffected == 0 {
		return shared.NotFound("Sale not found")
	}
	return nil
}

// Delete removes a sale
func (r *GormSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&stock.Sale{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.NotFound("Sale not found")
	}
	return nil
}

var _ stock.SaleRepository = (*GormSaleRepository)(nil)
