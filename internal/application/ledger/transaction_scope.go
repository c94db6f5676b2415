package ledger

import (
	"context"

	"github.com/stockledger/backend/internal/domain/stock"
)

// TransactionScope provides transactional access to the ledger repositories.
// All repository calls made inside fn commit or roll back together.
type TransactionScope interface {
	// Execute runs fn within a database transaction. A non-nil error from fn
	// rolls the transaction back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories bound to one transaction
type TransactionalRepositories interface {
	ProductRepo() stock.ProductRepository
	ShopRepo() stock.ShopRepository
	PurchaseRepo() stock.PurchaseRepository
	SaleRepo() stock.SaleRepository
}

// NoOpTransactionScope runs fn against plain repositories without a
// transaction. Used in unit tests.
type NoOpTransactionScope struct {
	productRepo  stock.ProductRepository
	shopRepo     stock.ShopRepository
	purchaseRepo stock.PurchaseRepository
	saleRepo     stock.SaleRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	productRepo stock.ProductRepository,
	shopRepo stock.ShopRepository,
	purchaseRepo stock.PurchaseRepository,
	saleRepo stock.SaleRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		productRepo:  productRepo,
		shopRepo:     shopRepo,
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) ProductRepo() stock.ProductRepository   { return s.productRepo }
func (s *NoOpTransactionScope) ShopRepo() stock.ShopRepository         { return s.shopRepo }
func (s *NoOpTransactionScope) PurchaseRepo() stock.PurchaseRepository { return s.purchaseRepo }
func (s *NoOpTransactionScope) SaleRepo() stock.SaleRepository         { return s.saleRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
