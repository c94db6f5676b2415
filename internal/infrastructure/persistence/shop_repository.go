package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockledger/backend/internal/domain/shared"
	"github.com/stockledger/backend/internal/domain/stock"
	"gorm.io/gorm"
)

// GormShopRepository implements stock.ShopRepository using GORM
type GormShopRepository struct {
	db    *gorm.DB
	store holderStore[stock.Shop]
}

// NewGormShopRepository creates a new GormShopRepository
func NewGormShopRepository(db *gorm.DB) *GormShopRepository {
	return &GormShopRepository{
		db:    db,
		store: holderStore[stock.Shop]{db: db, notFoundMsg: "Shop item not found"},
	}
}

func (r *GormShopRepository) FindByID(ctx context.Context, id uuid.UUID) (*stock.Shop, error) {
	return r.store.findByID(ctx, id)
}

func (r *GormShopRepository) FindHolder(ctx context.Context, id uuid.UUID) (stock.Holder, error) {
	s, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// FindAll lists live shop batches; the date window applies to date_added
func (r *GormShopRepository) FindAll(ctx context.Context, filter shared.Filter) ([]stock.Shop, error) {
	var shops []stock.Shop
	query := shopList.apply(r.db.WithContext(ctx).Model(&stock.Shop{}), filter)
	if err := query.Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

func (r *GormShopRepository) Create(ctx context.Context, shop *stock.Shop) error {
	return translateError(r.db.WithContext(ctx).Create(shop).Error, "Shop item not found")
}

func (r *GormShopRepository) Update(ctx context.Context, id uuid.UUID, u stock.ShopUpdate) (*stock.Shop, error) {
	var cols []string
	if u.ProductName != nil {
		cols = append(cols, "product_name")
	}
	if u.BatchNumber != nil {
		cols = append(cols, "batch_number")
	}
	if u.Quantity != nil {
		cols = append(cols, "quantity")
	}
	if u.SellingPrice != nil {
		cols = append(cols, "selling_price")
	}
	if u.UserName != nil {
		cols = append(cols, "user_name")
	}
	return r.store.update(ctx, id, cols, func(s *stock.Shop) error {
		return s.Apply(u)
	})
}

func (r *GormShopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.hardDelete(ctx, id)
}

func (r *GormShopRepository) Decrement(ctx context.Context, id uuid.UUID, n int64) (int64, error) {
	return r.store.decrement(ctx, id, n)
}

func (r *GormShopRepository) Increment(ctx context.Context, id uuid.UUID, n int64) error {
	return r.store.increment(ctx, id, n)
}

func (r *GormShopRepository) Deplete(ctx context.Context, id uuid.UUID) error {
	return r.store.deplete(ctx, id)
}

var _ stock.ShopRepository = (*GormShopRepository)(nil)
