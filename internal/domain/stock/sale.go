package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockledger/backend/internal/domain/shared"
)

// Sale records quantity leaving a stock holder
type Sale struct {
	shared.BaseEntity
	StockSource  Source          `gorm:"type:varchar(16);not null" json:"stock_source"`
	StockID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"stock_id"`
	ProductName  string          `gorm:"type:varchar(200);not null" json:"product_name"`
	BatchNumber  string          `gorm:"type:varchar(100)" json:"batch_number,omitempty"`
	QuantitySold int64           `gorm:"not null;check:chk_sales_quantity_sold,quantity_sold > 0" json:"quantity_sold"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"selling_price"`
	SaleDate     time.Time       `gorm:"not null;index" json:"sale_date"`
	UserName     string          `gorm:"type:varchar(200)" json:"user_name"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// NewSale snapshots name, batch and price from the holder
func NewSale(h Holder, quantitySold int64, userName string) (*Sale, error) {
	if err := ValidateQuantity("Quantity sold", quantitySold); err != nil {
		return nil, err
	}
	s := &Sale{
		BaseEntity:   shared.NewBaseEntity(),
		StockSource:  h.HolderSource(),
		StockID:      h.HolderID(),
		ProductName:  h.DisplayName(),
		BatchNumber:  h.Batch(),
		QuantitySold: quantitySold,
		SellingPrice: h.UnitSellingPrice(),
		UserName:     userName,
	}
	s.SaleDate = s.CreatedAt
	return s, nil
}

// Amount is selling price times quantity sold
func (s *Sale) Amount() decimal.Decimal {
	return s.SellingPrice.Mul(decimal.NewFromInt(s.QuantitySold))
}

// Resize changes the sold quantity and returns the stock delta to withdraw
// from the holder (negative when stock goes back).
func (s *Sale) Resize(newQuantitySold int64) (int64, error) {
	if err := ValidateQuantity("Quantity sold", newQuantitySold); err != nil {
		return 0, err
	}
	delta := newQuantitySold - s.QuantitySold
	s.QuantitySold = newQuantitySold
	s.Touch()
	return delta, nil
}
