package stock

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockledger/backend/internal/domain/shared"
)

// HolderRepository performs the quantity moves on a stock-holding table.
// Decrement must be a single conditional update so that concurrent withdrawals
// can never take quantity below zero.
type HolderRepository interface {
	// FindHolder loads a live holder or returns shared.ErrNotFound
	FindHolder(ctx context.Context, id uuid.UUID) (Holder, error)
	// Decrement withdraws n if at least n is available and returns what is
	// left. It fails with INSUFFICIENT_STOCK when the row holds less than n and
	// with NOT_FOUND when the row does not exist.
	Decrement(ctx context.Context, id uuid.UUID, n int64) (int64, error)
	// Increment adds n, reviving the row if it was depleted. NOT_FOUND when the
	// row was removed outright.
	Increment(ctx context.Context, id uuid.UUID, n int64) error
	// Deplete removes a holder whose quantity is exactly zero from the live set
	Deplete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository persists products
type ProductRepository interface {
	HolderRepository
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	Create(ctx context.Context, product *Product) error
	// Update changes only the fields set in u and returns the stored row
	Update(ctx context.Context, id uuid.UUID, u ProductUpdate) (*Product, error)
	// Delete removes the product permanently
	Delete(ctx context.Context, id uuid.UUID) error
}

// ShopRepository persists point-of-sale stock
type ShopRepository interface {
	HolderRepository
	FindByID(ctx context.Context, id uuid.UUID) (*Shop, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Shop, error)
	Create(ctx context.Context, shop *Shop) error
	Update(ctx context.Context, id uuid.UUID, u ShopUpdate) (*Shop, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PurchaseRepository persists purchases
type PurchaseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Purchase, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Purchase, error)
	Create(ctx context.Context, purchase *Purchase) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SaleRepository persists sales
type SaleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Sale, error)
	Create(ctx context.Context, sale *Sale) error
	UpdateQuantity(ctx context.Context, sale *Sale) error
	Delete(ctx context.Context, id uuid.UUID) error
}
