package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockledger/backend/internal/domain/shared"
	"github.com/stockledger/backend/internal/domain/stock"
	"gorm.io/gorm"
)

// GormProductRepository implements stock.ProductRepository using GORM
type GormProductRepository struct {
	db    *gorm.DB
	store holderStore[stock.Product]
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{
		db:    db,
		store: holderStore[stock.Product]{db: db, notFoundMsg: "Product not found"},
	}
}

// FindByID finds a live product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*stock.Product, error) {
	return r.store.findByID(ctx, id)
}

// FindHolder implements stock.HolderRepository
func (r *GormProductRepository) FindHolder(ctx context.Context, id uuid.UUID) (stock.Holder, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// FindAll lists live products, optionally restricted to a date window
func (r *GormProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]stock.Product, error) {
	var products []stock.Product
	query := productList.apply(r.db.WithContext(ctx).Model(&stock.Product{}), filter)
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create inserts a new product
func (r *GormProductRepository) Create(ctx context.Context, product *stock.Product) error {
	return translateError(r.db.WithContext(ctx).Create(product).Error, "Product not found")
}

// Update writes the fields set in u to a live product
func (r *GormProductRepository) Update(ctx context.Context, id uuid.UUID, u stock.ProductUpdate) (*stock.Product, error) {
	var cols []string
	if u.Name != nil {
		cols = append(cols, "name")
	}
	if u.Quantity != nil {
		cols = append(cols, "quantity")
	}
	if u.BuyingPrice != nil {
		cols = append(cols, "buying_price")
	}
	if u.SellingPrice != nil {
		cols = append(cols, "selling_price")
	}
	return r.store.update(ctx, id, cols, func(p *stock.Product) error {
		return p.Apply(u)
	})
}

// Delete removes the product permanently
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.hardDelete(ctx, id)
}

// Decrement implements stock.HolderRepository
func (r *GormProductRepository) Decrement(ctx context.Context, id uuid.UUID, n int64) (int64, error) {
	return r.store.decrement(ctx, id, n)
}

// Increment implements stock.HolderRepository
func (r *GormProductRepository) Increment(ctx context.Context, id uuid.UUID, n int64) error {
	return r.store.increment(ctx, id, n)
}

// Deplete implements stock.HolderRepository
func (r *GormProductRepository) Deplete(ctx context.Context, id uuid.UUID) error {
	return r.store.deplete(ctx, id)
}

var _ stock.ProductRepository = (*GormProductRepository)(nil)
