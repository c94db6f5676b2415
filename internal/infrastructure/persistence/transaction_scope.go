package persistence

import (
	"context"

	"github.com/stockledger/backend/internal/application/ledger"
	"github.com/stockledger/backend/internal/domain/stock"
	"gorm.io/gorm"
)

// GormTransactionScope implements ledger.TransactionScope using GORM transactions.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn within a database transaction. An error from fn rolls back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos ledger.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories hands out repositories bound to one transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) ProductRepo() stock.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormTransactionalRepositories) ShopRepo() stock.ShopRepository {
	return NewGormShopRepository(r.tx)
}

func (r *gormTransactionalRepositories) PurchaseRepo() stock.PurchaseRepository {
	return NewGormPurchaseRepository(r.tx)
}

func (r *gormTransactionalRepositories) SaleRepo() stock.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

var (
	_ ledger.TransactionScope          = (*GormTransactionScope)(nil)
	_ ledger.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
)
