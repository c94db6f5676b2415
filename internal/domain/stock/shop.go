package stock

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockledger/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// Shop is a batch of stock moved from the store into point-of-sale availability
type Shop struct {
	shared.BaseEntity
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName  string          `gorm:"type:varchar(200);not null" json:"product_name"`
	BatchNumber  string          `gorm:"type:varchar(100);not null;index" json:"batch_number"`
	Quantity     int64           `gorm:"not null;default:0;check:chk_shops_quantity,quantity >= 0" json:"quantity"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"selling_price"`
	UserName     string          `gorm:"type:varchar(200)" json:"user_name"`
	DateAdded    time.Time       `gorm:"not null;index" json:"date_added"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
}

// TableName returns the table name for GORM
func (Shop) TableName() string {
	return "shops"
}

// NewShopFromTransfer creates the shop batch for a transfer out of product.
// Name and price come from the product, never from the caller.
func NewShopFromTransfer(product *Product, batchNumber string, quantity int64, userName string) (*Shop, error) {
	if err := ValidateQuantity("Quantity", quantity); err != nil {
		return nil, err
	}
	batchNumber = strings.TrimSpace(batchNumber)
	if batchNumber == "" {
		return nil, shared.Validation("Batch number is required")
	}
	s := &Shop{
		BaseEntity:   shared.NewBaseEntity(),
		ProductID:    product.ID,
		ProductName:  product.Name,
		BatchNumber:  batchNumber,
		Quantity:     quantity,
		SellingPrice: product.SellingPrice,
		UserName:     userName,
	}
	s.DateAdded = s.CreatedAt
	return s, nil
}

// ShopUpdate carries optional field changes; nil fields keep their value
type ShopUpdate struct {
	ProductName  *string
	BatchNumber  *string
	Quantity     *int64
	SellingPrice *decimal.Decimal
	UserName     *string
}

// Apply validates and applies the update
func (s *Shop) Apply(u ShopUpdate) error {
	if u.ProductName != nil {
		if strings.TrimSpace(*u.ProductName) == "" {
			return shared.Validation("Product name cannot be empty")
		}
		s.ProductName = strings.TrimSpace(*u.ProductName)
	}
	if u.BatchNumber != nil {
		if strings.TrimSpace(*u.BatchNumber) == "" {
			return shared.Validation("Batch number cannot be empty")
		}
		s.BatchNumber = strings.TrimSpace(*u.BatchNumber)
	}
	if u.Quantity != nil {
		if *u.Quantity < 0 {
			return shared.Validation("Quantity cannot be negative")
		}
		s.Quantity = *u.Quantity
	}
	if u.SellingPrice != nil {
		if u.SellingPrice.IsNegative() {
			return shared.Validation("Selling price cannot be negative")
		}
		s.SellingPrice = *u.SellingPrice
	}
	if u.UserName != nil {
		s.UserName = *u.UserName
	}
	s.Touch()
	return nil
}

func (s *Shop) HolderID() uuid.UUID               { return s.ID }
func (s *Shop) HolderSource() Source              { return SourceShop }
func (s *Shop) DisplayName() string               { return s.ProductName }
func (s *Shop) Batch() string                     { return s.BatchNumber }
func (s *Shop) UnitSellingPrice() decimal.Decimal { return s.SellingPrice }
func (s *Shop) Available() int64                  { return s.Quantity }

var _ Holder = (*Shop)(nil)
