// Package stock holds the entities whose quantities the ledger moves between
// store stock, point-of-sale stock and the outside world.
package stock

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockledger/backend/internal/domain/shared"
)

// Source names the kind of record that currently holds sellable quantity
type Source string

const (
	SourceProduct Source = "product"
	SourceShop    Source = "shop"
)

// ParseSource validates a configured stock source
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceProduct, SourceShop:
		return Source(s), nil
	default:
		return "", fmt.Errorf("unknown stock source %q (want %q or %q)", s, SourceProduct, SourceShop)
	}
}

// Holder is a record that owns sellable quantity. Product and Shop implement it.
type Holder interface {
	HolderID() uuid.UUID
	HolderSource() Source
	DisplayName() string
	Batch() string
	UnitSellingPrice() decimal.Decimal
	Available() int64
}

// EnsureAvailable rejects a withdrawal larger than the holder's quantity
func EnsureAvailable(h Holder, qty int64) error {
	if qty > h.Available() {
		return shared.InsufficientStock(fmt.Sprintf(
			"Not enough stock available: requested %d, available %d", qty, h.Available()))
	}
	return nil
}

// ValidateQuantity rejects zero or negative quantities on ledger input
func ValidateQuantity(field string, qty int64) error {
	if qty <= 0 {
		return shared.Validation(fmt.Sprintf("%s must be greater than zero", field))
	}
	return nil
}
