package telemetry

import (
	"context"
	"fmt"

	"github.com/stockledger/backend/internal/domain/stock"
	"gorm.io/gorm"
)

// GormStockLevelProvider reads stock levels straight from the holder tables
type GormStockLevelProvider struct {
	db *gorm.DB
}

// NewGormStockLevelProvider creates a new GormStockLevelProvider
func NewGormStockLevelProvider(db *gorm.DB) *GormStockLevelProvider {
	return &GormStockLevelProvider{db: db}
}

func (p *GormStockLevelProvider) model(source stock.Source) (any, error) {
	switch source {
	case stock.SourceProduct:
		return &stock.Product{}, nil
	case stock.SourceShop:
		return &stock.Shop{}, nil
	default:
		return nil, fmt.Errorf("unknown stock source %q", source)
	}
}

// StockOnHand sums quantity over live holders
func (p *GormStockLevelProvider) StockOnHand(ctx context.Context, source stock.Source) (int64, error) {
	model, err := p.model(source)
	if err != nil {
		return 0, err
	}
	var total int64
	err = p.db.WithContext(ctx).Model(model).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}

// LowStockCount counts live holders with quantity <= threshold
func (p *GormStockLevelProvider) LowStockCount(ctx context.Context, source stock.Source, threshold int64) (int64, error) {
	model, err := p.model(source)
	if err != nil {
		return 0, err
	}
	var count int64
	err = p.db.WithContext(ctx).Model(model).
		Where("quantity <= ?", threshold).
		Count(&count).Error
	return count, err
}

var _ StockLevelProvider = (*GormStockLevelProvider)(nil)
