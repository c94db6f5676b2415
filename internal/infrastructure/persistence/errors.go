package persistence

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stockledger/backend/internal/domain/shared"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation    = "23505"
	pgCheckViolation     = "23514"
	mysqlDuplicateEntry  = 1062
	mysqlCheckConstraint = 3819
)

// translateError maps driver and GORM errors to domain errors.
// Errors it does not recognise are returned unchanged.
func translateError(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.NotFound(notFoundMsg)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.ErrAlreadyExists
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return shared.Validation("Quantity constraint violated")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return shared.ErrAlreadyExists
		case pgCheckViolation:
			return shared.Validation("Quantity constraint violated")
		}
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry:
			return shared.ErrAlreadyExists
		case mysqlCheckConstraint:
			return shared.Validation("Quantity constraint violated")
		}
	}
	return err
}
