package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockledger/backend/internal/domain/shared"
	"github.com/stockledger/backend/internal/domain/stock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormProductRepository_Decrement_SQL(t *testing.T) {
	t.Run("withdraws with a single conditional update", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(db.DB)
		id := uuid.New()

		mock.ExpectExec(`UPDATE "products" SET "quantity"=quantity - \$1,"updated_at"=\$2 WHERE \(id = \$3 AND quantity >= \$4\) AND "products"."deleted_at" IS NULL`).
			WithArgs(int64(3), sqlmock.AnyArg(), id, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT "quantity","deleted_at" FROM "products" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"quantity", "deleted_at"}).AddRow(7, nil))

		remaining, err := repo.Decrement(context.Background(), id, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(7), remaining)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no affected row with a live row is insufficient stock", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(db.DB)

		mock.ExpectExec(`UPDATE "products" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT "quantity","deleted_at" FROM "products"`).
			WillReturnRows(sqlmock.NewRows([]string{"quantity", "deleted_at"}).AddRow(2, nil))

		_, err := repo.Decrement(context.Background(), uuid.New(), 5)
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.Contains(t, err.Error(), "requested 5, available 2")
	})

	t.Run("missing row is not found", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(db.DB)

		mock.ExpectExec(`UPDATE "products" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT "quantity","deleted_at" FROM "products"`).
			WillReturnRows(sqlmock.NewRows([]string{"quantity", "deleted_at"}))

		_, err := repo.Decrement(context.Background(), uuid.New(), 5)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func createProduct(t *testing.T, repo *GormProductRepository, qty int64) *stock.Product {
	t.Helper()
	p, err := stock.NewProduct("Rice", decimal.NewFromInt(50), decimal.NewFromInt(80))
	require.NoError(t, err)
	p.Quantity = qty
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestHolderStore_SQLite(t *testing.T) {
	ctx := context.Background()

	t.Run("decrement never goes below zero", func(t *testing.T) {
		repo := NewGormProductRepository(newTestDB(t))
		p := createProduct(t, repo, 5)

		left, err := repo.Decrement(ctx, p.ID, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(0), left)

		_, err = repo.Decrement(ctx, p.ID, 1)
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
	})

	t.Run("deplete hides the row and increment revives it", func(t *testing.T) {
		repo := NewGormProductRepository(newTestDB(t))
		p := createProduct(t, repo, 2)

		_, err := repo.Decrement(ctx, p.ID, 2)
		require.NoError(t, err)
		require.NoError(t, repo.Deplete(ctx, p.ID))

		_, err = repo.FindByID(ctx, p.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		require.NoError(t, repo.Increment(ctx, p.ID, 2))
		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), found.Quantity)
	})

	t.Run("deplete refuses a row that still holds stock", func(t *testing.T) {
		repo := NewGormProductRepository(newTestDB(t))
		p := createProduct(t, repo, 1)

		err := repo.Deplete(ctx, p.ID)
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})

	t.Run("increment of a removed row is not found", func(t *testing.T) {
		repo := NewGormProductRepository(newTestDB(t))
		p := createProduct(t, repo, 1)
		require.NoError(t, repo.Delete(ctx, p.ID))

		err := repo.Increment(ctx, p.ID, 1)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("delete is permanent and reports missing rows", func(t *testing.T) {
		repo := NewGormProductRepository(newTestDB(t))
		p := createProduct(t, repo, 0)

		require.NoError(t, repo.Delete(ctx, p.ID))
		assert.ErrorIs(t, repo.Delete(ctx, p.ID), shared.ErrNotFound)
	})
}
