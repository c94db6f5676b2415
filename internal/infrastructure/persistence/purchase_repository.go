package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockledger/backend/internal/domain/shared"
	"github.com/stockledger/backend/internal/domain/stock"
	"gorm.io/gorm"
)

// GormPurchaseRepository implements stock.PurchaseRepository using GORM
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRepository creates a new GormPurchaseRepository
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// FindByID finds a purchase by its ID
func (r *GormPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*stock.Purchase, error) {
	var purchase stock.Purchase
	if err := r.db.WithContext(ctx).First(&purchase, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "Purchase not found")
	}
	return &purchase, nil
}

// FindAll lists purchases; the date window applies to purchase_date
func (r *GormPurchaseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]stock.Purchase, error) {
	var purchases []stock.Purchase
	query := purchaseList.apply(r.db.WithContext(ctx).Model(&stock.Purchase{}), filter)
	if err := query.Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

// Create inserts a purchase
func (r *GormPurchaseRepository) Create(ctx context.Context, purchase *stock.Purchase) error {
	return translateError(r.db.WithContext(ctx).Create(purchase).Error, "Purchase not found")
}

// Delete removes a purchase
func (r *GormPurchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&stock.Purchase{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.NotFound("Purchase not found")
	}
	return nil
}

var _ stock.PurchaseRepository = (*GormPurchaseRepository)(nil)
