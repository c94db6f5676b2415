package telemetry

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// dbDurationBuckets are query latency buckets in seconds
var dbDurationBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}

type metricsStartKey struct{}

// DBMetrics observes the connection pool and times every statement
type DBMetrics struct {
	queries    *Counter
	duration   *Histogram
	slow       *Counter
	slowThresh time.Duration
	logger     *zap.Logger
}

// RegisterDBMetrics instruments db. Pool gauges are read from sqlDB on each
// collection cycle.
func RegisterDBMetrics(db *gorm.DB, sqlDB *sql.DB, meter metric.Meter, slowThresh time.Duration, logger *zap.Logger) (*DBMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}
	if slowThresh <= 0 {
		slowThresh = defaultSlowQueryThreshold
	}

	queries, err := NewCounter(meter, "db_query_total", "Database statements by operation", "{query}")
	if err != nil {
		return nil, err
	}
	duration, err := NewHistogram(meter, "db_query_duration_seconds", "Database statement latency", "s", dbDurationBuckets...)
	if err != nil {
		return nil, err
	}
	slow, err := NewCounter(meter, "db_slow_query_total", "Statements slower than the threshold", "{query}")
	if err != nil {
		return nil, err
	}
	m := &DBMetrics{queries: queries, duration: duration, slow: slow, slowThresh: slowThresh, logger: logger}

	if sqlDB != nil {
		if err := observePool(meter, sqlDB); err != nil {
			return nil, err
		}
	}
	if err := m.registerCallbacks(db); err != nil {
		return nil, err
	}
	return m, nil
}

func observePool(meter metric.Meter, sqlDB *sql.DB) error {
	conns, err := meter.Int64ObservableGauge("db_pool_connections",
		metric.WithDescription("Connections in the pool by state"), metric.WithUnit("{connection}"))
	if err != nil {
		return err
	}
	maxConns, err := meter.Int64ObservableGauge("db_pool_connections_max",
		metric.WithDescription("Maximum open connections"), metric.WithUnit("{connection}"))
	if err != nil {
		return err
	}
	_, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		stats := sqlDB.Stats()
		o.ObserveInt64(maxConns, int64(stats.MaxOpenConnections))
		o.ObserveInt64(conns, int64(stats.Idle), metric.WithAttributes(attribute.String("state", "idle")))
		o.ObserveInt64(conns, int64(stats.InUse), metric.WithAttributes(attribute.String("state", "in_use")))
		o.ObserveInt64(conns, int64(stats.OpenConnections), metric.WithAttributes(attribute.String("state", "open")))
		return nil
	}, conns, maxConns)
	return err
}

func (m *DBMetrics) registerCallbacks(db *gorm.DB) error {
	before := func(db *gorm.DB) {
		if db.Statement.Context != nil {
			db.Statement.Context = context.WithValue(db.Statement.Context, metricsStartKey{}, time.Now())
		}
	}
	cb := db.Callback()
	for _, reg := range []struct {
		before, after func(string, func(*gorm.DB)) error
		op            string
	}{
		{cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register, "insert"},
		{cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register, "select"},
		{cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register, "update"},
		{cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register, "delete"},
		{cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register, ""},
		{cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register, ""},
	} {
		op := reg.op
		name := op
		if name == "" {
			name = "raw"
		}
		if err := reg.before("ledger_metrics:before_"+name, before); err != nil {
			return err
		}
		if err := reg.after("ledger_metrics:after_"+name, func(db *gorm.DB) { m.record(db, op) }); err != nil {
			return err
		}
	}
	return nil
}

func (m *DBMetrics) record(db *gorm.DB, op string) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	start, ok := ctx.Value(metricsStartKey{}).(time.Time)
	if !ok {
		return
	}
	if op == "" {
		op = detectOperation(db.Statement.SQL.String())
	}
	status := "ok"
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		status = "error"
	}

	elapsed := time.Since(start)
	attrs := []attribute.KeyValue{
		attribute.String("operation", op),
		attribute.String("table", db.Statement.Table),
	}
	m.queries.Inc(ctx, append(attrs, attribute.String("status", status))...)
	m.duration.RecordDuration(ctx, elapsed, attrs...)
	if elapsed > m.slowThresh {
		m.slow.Inc(ctx, attrs...)
		m.logger.Debug("Slow query", zap.String("operation", op), zap.Duration("elapsed", elapsed))
	}
}

func detectOperation(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "other"
	}
	switch strings.ToLower(fields[0]) {
	case "select", "with":
		return "select"
	case "insert":
		return "insert"
	case "update":
		return "update"
	case "delete":
		return "delete"
	default:
		return "other"
	}
}
