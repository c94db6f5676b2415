package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stockledger/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// holderStore implements the quantity moves shared by every stock-holding
// table. T must carry a quantity column and a gorm.DeletedAt.
type holderStore[T any] struct {
	db          *gorm.DB
	notFoundMsg string
}

func (s holderStore[T]) model() *T {
	var m T
	return &m
}

// decrement withdraws n with a single conditional UPDATE and returns what is
// left. Zero affected rows are disambiguated into NOT_FOUND or INSUFFICIENT_STOCK.
func (s holderStore[T]) decrement(ctx context.Context, id uuid.UUID, n int64) (int64, error) {
	res := s.db.WithContext(ctx).Model(s.model()).
		Where("id = ? AND quantity >= ?", id, n).
		Updates(map[string]any{
			"quantity":   gorm.Expr("quantity - ?", n),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return 0, translateError(res.Error, s.notFoundMsg)
	}

	available, err := s.quantity(ctx, id)
	if err != nil {
		return 0, err
	}
	if res.RowsAffected == 0 {
		return 0, shared.InsufficientStock(fmt.Sprintf(
			"Not enough stock available: requested %d, available %d", n, available))
	}
	return available, nil
}

// quantity reads the live quantity of a row. Depleted rows report zero,
// rows removed outright are NOT_FOUND.
func (s holderStore[T]) quantity(ctx context.Context, id uuid.UUID) (int64, error) {
	var row struct {
		Quantity  int64
		DeletedAt gorm.DeletedAt
	}
	err := s.db.WithContext(ctx).Unscoped().Model(s.model()).
		Select("quantity", "deleted_at").
		Where("id = ?", id).
		Take(&row).Error
	if err != nil {
		return 0, translateError(err, s.notFoundMsg)
	}
	if row.DeletedAt.Valid {
		return 0, nil
	}
	return row.Quantity, nil
}

// increment adds n and revives the row if a depletion had removed it
func (s holderStore[T]) increment(ctx context.Context, id uuid.UUID, n int64) error {
	res := s.db.WithContext(ctx).Unscoped().Model(s.model()).
		Where("id = ?", id).
		Updates(map[string]any{
			"quantity":   gorm.Expr("quantity + ?", n),
			"deleted_at": nil,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return translateError(res.Error, s.notFoundMsg)
	}
	if res.RowsAffected == 0 {
		return shared.NotFound(s.notFoundMsg)
	}
	return nil
}

// deplete soft-deletes the row, but only while its quantity is exactly zero
func (s holderStore[T]) deplete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("id = ? AND quantity = 0", id).Delete(s.model())
	if res.Error != nil {
		return translateError(res.Error, s.notFoundMsg)
	}
	if res.RowsAffected == 0 {
		return shared.NewDomainError("INVALID_STATE", "Only empty stock can be depleted")
	}
	return nil
}

// findByID loads a live row
func (s holderStore[T]) findByID(ctx context.Context, id uuid.UUID) (*T, error) {
	m := s.model()
	if err := s.db.WithContext(ctx).First(m, "id = ?", id).Error; err != nil {
		return nil, translateError(err, s.notFoundMsg)
	}
	return m, nil
}

// update locks the live row, lets apply change it in memory and writes back
// only cols. Quantity moved by the ledger in the meantime is never overwritten
// and a depleted row stays depleted.
func (s holderStore[T]) update(ctx context.Context, id uuid.UUID, cols []string, apply func(*T) error) (*T, error) {
	m := s.model()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(m, "id = ?", id).Error; err != nil {
			return translateError(err, s.notFoundMsg)
		}
		if err := apply(m); err != nil {
			return err
		}
		if len(cols) == 0 {
			return nil
		}
		res := tx.Model(m).Select(append(cols, "updated_at")).Updates(m)
		if res.Error != nil {
			return translateError(res.Error, s.notFoundMsg)
		}
		if res.RowsAffected == 0 {
			return shared.NotFound(s.notFoundMsg)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// hardDelete removes a row permanently, depleted or not
func (s holderStore[T]) hardDelete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Unscoped().Delete(s.model(), "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error, s.notFoundMsg)
	}
	if res.RowsAffected == 0 {
		return shared.NotFound(s.notFoundMsg)
	}
	return nil
}
