package integration

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stockledger/backend/internal/application/ledger"
	"github.com/stockledger/backend/internal/domain/shared"
	"github.com/stockledger/backend/internal/domain/stock"
	"github.com/stockledger/backend/internal/infrastructure/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerEnv struct {
	db       *TestDB
	svc      *ledger.LedgerService
	products *persistence.GormProductRepository
}

func newLedgerEnv(t *testing.T, source stock.Source) *ledgerEnv {
	t.Helper()
	tdb := NewTestDB(t)
	db := tdb.DB
	return &ledgerEnv{
		db: tdb,
		svc: ledger.NewLedgerService(
			persistence.NewGormTransactionScope(db),
			persistence.NewGormPurchaseRepository(db),
			persistence.NewGormSaleRepository(db),
			source,
		),
		products: persistence.NewGormProductRepository(db),
	}
}

func (e *ledgerEnv) stocked(t *testing.T, qty int64) *stock.Product {
	t.Helper()
	p, err := stock.NewProduct("Rice", decimal.NewFromInt(50), decimal.NewFromInt(80))
	require.NoError(t, err)
	require.NoError(t, e.products.Create(context.Background(), p))
	_, err = e.svc.RecordPurchase(context.Background(), ledger.RecordPurchaseRequest{ProductID: p.ID, Quantity: qty})
	require.NoError(t, err)
	return p
}

func (e *ledgerEnv) quantity(t *testing.T, table string, id any) int64 {
	t.Helper()
	var qty int64
	require.NoError(t, e.db.DB.Table(table).Select("quantity").Where("id = ?", id).Scan(&qty).Error)
	return qty
}

func TestLedger_PostgreSQL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()
	env := newLedgerEnv(t, stock.SourceProduct)

	t.Run("concurrent sales never oversell", func(t *testing.T) {
		p := env.stocked(t, 10)

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
		)
		for i := 0; i < 25; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := env.svc.RecordSale(ctx, ledger.RecordSaleRequest{StockID: p.ID, QuantitySold: 1}); err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 10, succeeded)
		assert.Equal(t, int64(0), env.quantity(t, "products", p.ID))

		var sold int64
		require.NoError(t, env.db.DB.Table("sales").Select("COALESCE(SUM(quantity_sold), 0)").
			Where("stock_id = ?", p.ID).Scan(&sold).Error)
		assert.Equal(t, int64(10), sold)
	})

	t.Run("depleted product is restored by deleting its sale", func(t *testing.T) {
		p := env.stocked(t, 3)
		res, err := env.svc.RecordSale(ctx, ledger.RecordSaleRequest{StockID: p.ID, QuantitySold: 3})
		require.NoError(t, err)
		assert.True(t, res.HolderDepleted)

		_, err = env.products.FindByID(ctx, p.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		del, err := env.svc.DeleteSale(ctx, res.Sale.ID)
		require.NoError(t, err)
		assert.True(t, del.StockAdjusted)

		found, err := env.products.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), found.Quantity)
	})

	t.Run("oversell is rejected", func(t *testing.T) {
		p := env.stocked(t, 2)
		_, err := env.svc.RecordSale(ctx, ledger.RecordSaleRequest{StockID: p.ID, QuantitySold: 3})
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.Equal(t, int64(2), env.quantity(t, "products", p.ID))
	})

	t.Run("check constraint rejects negative quantity", func(t *testing.T) {
		p := env.stocked(t, 1)
		err := env.db.DB.Exec("UPDATE products SET quantity = -1 WHERE id = ?", p.ID).Error
		assert.Error(t, err)
	})
}

func TestMigrations_DownAndUp(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	tdb := NewTestDB(t)
	m := tdb.Migrator()

	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	require.NoError(t, m.Down())
	assert.False(t, tdb.DB.Migrator().HasTable("sales"))

	require.NoError(t, m.Up())
	for _, table := range []string{"users", "products", "shops", "purchases", "sales", "requested_products"} {
		assert.True(t, tdb.DB.Migrator().HasTable(table), table)
	}
	require.NoError(t, m.Up(), "second up is a no-op")
}
