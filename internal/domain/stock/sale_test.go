package stock

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stockledger/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShop(t *testing.T) *Shop {
	t.Helper()
	p, err := NewProduct("Tea", decimal.NewFromInt(1), decimal.RequireFromString("2.50"))
	require.NoError(t, err)
	s, err := NewShopFromTransfer(p, "BATCH-9", 3, "bob")
	require.NoError(t, err)
	return s
}

func TestNewSale_SnapshotsHolder(t *testing.T) {
	shop := newShop(t)

	sale, err := NewSale(shop, 2, "bob")
	require.NoError(t, err)
	assert.Equal(t, SourceShop, sale.StockSource)
	assert.Equal(t, shop.ID, sale.StockID)
	assert.Equal(t, "Tea", sale.ProductName)
	assert.Equal(t, "BATCH-9", sale.BatchNumber)
	assert.True(t, sale.SellingPrice.Equal(decimal.RequireFromString("2.50")))
	assert.True(t, sale.Amount().Equal(decimal.NewFromInt(5)))

	shop.SellingPrice = decimal.NewFromInt(100)
	assert.True(t, sale.SellingPrice.Equal(decimal.RequireFromString("2.50")), "later price changes do not leak into the sale")
}

func TestNewSale_RejectsNonPositive(t *testing.T) {
	_, err := NewSale(newShop(t), 0, "bob")
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestSaleResize(t *testing.T) {
	sale, err := NewSale(newShop(t), 2, "bob")
	require.NoError(t, err)

	delta, err := sale.Resize(5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), delta)

	delta, err = sale.Resize(5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), delta)

	delta, err = sale.Resize(1)
	require.NoError(t, err)
	assert.Equal(t, int64(-4), delta)
	assert.Equal(t, int64(1), sale.QuantitySold)

	_, err = sale.Resize(0)
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestTotals(t *testing.T) {
	sales := []Sale{
		{SellingPrice: decimal.NewFromInt(8), QuantitySold: 10},
		{SellingPrice: decimal.RequireFromString("2.5"), QuantitySold: 2},
	}
	purchases := []Purchase{
		{BuyingPrice: decimal.NewFromInt(5), Quantity: 10},
		{BuyingPrice: decimal.RequireFromString("0.25"), Quantity: 4},
	}

	assert.True(t, SalesTotal(sales).Equal(decimal.NewFromInt(85)))
	assert.True(t, PurchasesTotal(purchases).Equal(decimal.NewFromInt(51)))
	assert.True(t, SalesTotal(nil).IsZero())
}
