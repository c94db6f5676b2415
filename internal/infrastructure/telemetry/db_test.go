package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockledger/backend/internal/domain/stock"
	"github.com/stockledger/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&stock.Product{}, &stock.Shop{}))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, qty int64) *stock.Product {
	t.Helper()
	p, err := stock.NewProduct(name, decimal.NewFromInt(10), decimal.NewFromInt(15))
	require.NoError(t, err)
	p.Quantity = qty
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestGormStockLevelProvider(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedProduct(t, db, "Rice", 40)
	seedProduct(t, db, "Beans", 3)
	gone := seedProduct(t, db, "Salt", 0)
	require.NoError(t, db.Delete(gone).Error)

	levels := NewGormStockLevelProvider(db)

	total, err := levels.StockOnHand(ctx, stock.SourceProduct)
	require.NoError(t, err)
	assert.Equal(t, int64(43), total)

	low, err := levels.LowStockCount(ctx, stock.SourceProduct, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), low)

	total, err = levels.StockOnHand(ctx, stock.SourceShop)
	require.NoError(t, err)
	assert.Zero(t, total)

	_, err = levels.StockOnHand(ctx, stock.Source("warehouse"))
	assert.Error(t, err)
}

func TestRegisterDBMetrics(t *testing.T) {
	db := newTestDB(t)
	meter, reader := newTestMeter(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	_, err = RegisterDBMetrics(db, sqlDB, meter, time.Second, zap.NewNop())
	require.NoError(t, err)

	seedProduct(t, db, "Rice", 1)
	var products []stock.Product
	require.NoError(t, db.Find(&products).Error)

	rm := collect(t, reader)
	assert.Equal(t, int64(1), int64Value(t, rm, "db_query_total",
		attribute.String("operation", "insert"), attribute.String("table", "products")))
	assert.Equal(t, int64(1), int64Value(t, rm, "db_query_total",
		attribute.String("operation", "select"), attribute.String("status", "ok")))
	assert.Equal(t, int64(1), int64Value(t, rm, "db_pool_connections_max"))
}

func TestDetectOperation(t *testing.T) {
	assert.Equal(t, "select", detectOperation("SELECT * FROM products"))
	assert.Equal(t, "select", detectOperation("  with x as (select 1) select * from x"))
	assert.Equal(t, "update", detectOperation("UPDATE products SET quantity = 1"))
	assert.Equal(t, "other", detectOperation(""))
}

func TestDBTracing_Register(t *testing.T) {
	sr := setupTestTracer(t)

	db := newTestDB(t)
	tracing := NewDBTracing(config.TelemetryConfig{}, "sqlite", zap.NewNop())
	require.NoError(t, tracing.Register(db))
	assert.Equal(t, defaultSlowQueryThreshold, tracing.slowThresh)

	ctx, span := StartServiceSpan(context.Background(), "test", "count")
	var count int64
	require.NoError(t, db.WithContext(ctx).Model(&stock.Product{}).Count(&count).Error)
	EndSpan(span, nil)

	assert.GreaterOrEqual(t, len(sr.Ended()), 2)
}
