package persistence

import (
	"strings"

	"github.com/stockledger/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// ValidateSortOrder normalizes the sort order to ASC or DESC, defaulting to DESC.
func ValidateSortOrder(orderDir string) string {
	if strings.ToUpper(strings.TrimSpace(orderDir)) == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField checks sortField against a whitelist and falls back to defaultField.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

var (
	ProductSortFields = map[string]bool{
		"created_at": true, "updated_at": true, "name": true, "quantity": true,
		"buying_price": true, "selling_price": true, "date": true,
	}
	ShopSortFields = map[string]bool{
		"created_at": true, "updated_at": true, "product_name": true, "batch_number": true,
		"quantity": true, "selling_price": true, "date_added": true,
	}
	PurchaseSortFields = map[string]bool{
		"created_at": true, "product_name": true, "quantity": true,
		"buying_price": true, "purchase_date": true,
	}
	SaleSortFields = map[string]bool{
		"created_at": true, "updated_at": true, "product_name": true,
		"quantity_sold": true, "selling_price": true, "sale_date": true,
	}
)

// listQuery describes how a table is filtered and ordered
type listQuery struct {
	allowed    map[string]bool
	dateColumn string
}

// apply restricts query to filter's date range on the table's business date
// column and orders it. Ties break on id so listings are stable.
func (l listQuery) apply(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Range != nil {
		query = query.Where(l.dateColumn+" BETWEEN ? AND ?", filter.Range.From, filter.Range.To)
	}
	field := ValidateSortField(filter.OrderBy, l.allowed, "created_at")
	return query.Order(field + " " + ValidateSortOrder(filter.OrderDir)).Order("id ASC")
}

var (
	productList  = listQuery{allowed: ProductSortFields, dateColumn: "date"}
	shopList     = listQuery{allowed: ShopSortFields, dateColumn: "date_added"}
	purchaseList = listQuery{allowed: PurchaseSortFields, dateColumn: "purchase_date"}
	saleList     = listQuery{allowed: SaleSortFields, dateColumn: "sale_date"}
)
