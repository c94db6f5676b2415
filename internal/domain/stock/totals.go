package stock

import "github.com/shopspring/decimal"

// SalesTotal sums selling price times quantity sold
func SalesTotal(sales []Sale) decimal.Decimal {
	total := decimal.Zero
	for i := range sales {
		total = total.Add(sales[i].Amount())
	}
	return total
}

// PurchasesTotal sums buying price times quantity
func PurchasesTotal(purchases []Purchase) decimal.Decimal {
	total := decimal.Zero
	for i := range purchases {
		total = total.Add(purchases[i].Amount())
	}
	return total
}
