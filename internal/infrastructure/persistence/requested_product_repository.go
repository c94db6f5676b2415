package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockledger/backend/internal/domain/request"
	"github.com/stockledger/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormRequestedProductRepository implements request.Repository using GORM
type GormRequestedProductRepository struct {
	db *gorm.DB
}

// NewGormRequestedProductRepository creates a new GormRequestedProductRepository
func NewGormRequestedProductRepository(db *gorm.DB) *GormRequestedProductRepository {
	return &GormRequestedProductRepository{db: db}
}

func (r *GormRequestedProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*request.RequestedProduct, error) {
	var rp request.RequestedProduct
	if err := r.db.WithContext(ctx).First(&rp, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "Requested product not found")
	}
	return &rp, nil
}

func (r *GormRequestedProductRepository) FindAll(ctx context.Context) ([]request.RequestedProduct, error) {
	var list []request.RequestedProduct
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormRequestedProductRepository) Create(ctx context.Context, rp *request.RequestedProduct) error {
	return translateError(r.db.WithContext(ctx).Create(rp).Error, "Requested product not found")
}

func (r *GormRequestedProductRepository) Save(ctx context.Context, rp *request.RequestedProduct) error {
	return translateError(r.db.WithContext(ctx).Save(rp).Error, "Requested product not found")
}

func (r *GormRequestedProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&request.RequestedProduct{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.NotFound("Requested product not found")
	}
	return nil
}

var _ request.Repository = (*GormRequestedProductRepository)(nil)
