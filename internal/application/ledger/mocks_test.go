package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockledger/backend/internal/domain/shared"
	"github.com/stockledger/backend/internal/domain/stock"
	"github.com/stretchr/testify/mock"
)

// MockHolderRepository implements the quantity moves shared by products and shops
type MockHolderRepository struct {
	mock.Mock
}

func (m *MockHolderRepository) FindHolder(ctx context.Context, id uuid.UUID) (stock.Holder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(stock.Holder), args.Error(1)
}

func (m *MockHolderRepository) Decrement(ctx context.Context, id uuid.UUID, n int64) (int64, error) {
	args := m.Called(ctx, id, n)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHolderRepository) Increment(ctx context.Context, id uuid.UUID, n int64) error {
	args := m.Called(ctx, id, n)
	return args.Error(0)
}

func (m *MockHolderRepository) Deplete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductRepository implements stock.ProductRepository for testing
type MockProductRepository struct {
	MockHolderRepository
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*stock.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]stock.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]stock.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, p *stock.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, id uuid.UUID, u stock.ProductUpdate) (*stock.Product, error) {
	args := m.Called(ctx, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockShopRepository implements stock.ShopRepository for testing
type MockShopRepository struct {
	MockHolderRepository
}

func (m *MockShopRepository) FindByID(ctx context.Context, id uuid.UUID) (*stock.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Shop), args.Error(1)
}

func (m *MockShopRepository) FindAll(ctx context.Context, filter shared.Filter) ([]stock.Shop, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]stock.Shop), args.Error(1)
}

func (m *MockShopRepository) Create(ctx context.Context, s *stock.Shop) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShopRepository) Update(ctx context.Context, id uuid.UUID, u stock.ShopUpdate) (*stock.Shop, error) {
	args := m.Called(ctx, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Shop), args.Error(1)
}

func (m *MockShopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockPurchaseRepository implements stock.PurchaseRepository for testing
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*stock.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]stock.Purchase, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]stock.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) Create(ctx context.Context, p *stock.Purchase) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPurchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockSaleRepository implements stock.SaleRepository for testing
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*stock.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]stock.Sale, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]stock.Sale), args.Error(1)
}

func (m *MockSaleRepository) Create(ctx context.Context, s *stock.Sale) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSaleRepository) UpdateQuantity(ctx context.Context, s *stock.Sale) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockRecorder captures ledger operations
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RecordLedgerOperation(ctx context.Context, op Operation, source stock.Source, quantity int64, err error) {
	m.Called(ctx, op, source, quantity, err)
}
