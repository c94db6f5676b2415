package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/stockledger/backend/internal/infrastructure/config"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

type queryStartKey struct{}

// DBTracing adds otelgorm spans plus slow query marking to a GORM handle
type DBTracing struct {
	dbSystem   string
	fullSQL    bool
	slowThresh time.Duration
	logger     *zap.Logger
}

// NewDBTracing builds DBTracing from telemetry settings. dbSystem is the
// configured driver name.
func NewDBTracing(cfg config.TelemetryConfig, dbSystem string, logger *zap.Logger) *DBTracing {
	thresh := cfg.DBSlowQueryThresh
	if thresh <= 0 {
		thresh = defaultSlowQueryThreshold
	}
	return &DBTracing{
		dbSystem:   dbSystem,
		fullSQL:    cfg.DBLogFullSQL,
		slowThresh: thresh,
		logger:     logger,
	}
}

// Register installs the plugin and callbacks on db
func (t *DBTracing) Register(db *gorm.DB) error {
	opts := []otelgorm.Option{otelgorm.WithDBName(t.dbSystem)}
	if !t.fullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	cb := db.Callback()
	before := func(db *gorm.DB) {
		if db.Statement.Context != nil {
			db.Statement.Context = context.WithValue(db.Statement.Context, queryStartKey{}, time.Now())
		}
	}
	regs := []struct {
		register func(string, func(*gorm.DB)) error
		name     string
		fn       func(*gorm.DB)
	}{
		{cb.Create().Before("gorm:create").Register, "ledger_trace:before_create", before},
		{cb.Query().Before("gorm:query").Register, "ledger_trace:before_query", before},
		{cb.Update().Before("gorm:update").Register, "ledger_trace:before_update", before},
		{cb.Delete().Before("gorm:delete").Register, "ledger_trace:before_delete", before},
		{cb.Row().Before("gorm:row").Register, "ledger_trace:before_row", before},
		{cb.Raw().Before("gorm:raw").Register, "ledger_trace:before_raw", before},
		{cb.Create().After("gorm:create").Register, "ledger_trace:after_create", t.after},
		{cb.Query().After("gorm:query").Register, "ledger_trace:after_query", t.after},
		{cb.Update().After("gorm:update").Register, "ledger_trace:after_update", t.after},
		{cb.Delete().After("gorm:delete").Register, "ledger_trace:after_delete", t.after},
		{cb.Row().After("gorm:row").Register, "ledger_trace:after_row", t.after},
		{cb.Raw().After("gorm:raw").Register, "ledger_trace:after_raw", t.after},
	}
	for _, r := range regs {
		if err := r.register(r.name, r.fn); err != nil {
			return err
		}
	}

	t.logger.Info("Database tracing enabled",
		zap.String("db_system", t.dbSystem),
		zap.Duration("slow_query_threshold", t.slowThresh))
	return nil
}

func (t *DBTracing) after(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
		span.RecordError(db.Error)
	}

	start, ok := ctx.Value(queryStartKey{}).(time.Time)
	if !ok {
		return
	}
	if elapsed := time.Since(start); elapsed > t.slowThresh {
		span.SetAttributes(
			attribute.Bool("db.slow_query", true),
			attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
		)
		span.AddEvent("slow_query", trace.WithAttributes(
			attribute.Int64("threshold_ms", t.slowThresh.Milliseconds()),
		))
	}
}
