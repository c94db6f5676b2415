package telemetry

import (
	"context"
	"errors"

	"github.com/stockledger/backend/internal/application/ledger"
	"github.com/stockledger/backend/internal/domain/shared"
	"github.com/stockledger/backend/internal/domain/stock"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const outcomeOK = "ok"

var _ ledger.Recorder = (*LedgerMetrics)(nil)

// StockLevelProvider reports current stock for the observable gauges
type StockLevelProvider interface {
	// StockOnHand returns the summed quantity held by live holders of source
	StockOnHand(ctx context.Context, source stock.Source) (int64, error)
	// LowStockCount returns how many live holders of source have at most
	// threshold units left
	LowStockCount(ctx context.Context, source stock.Source, threshold int64) (int64, error)
}

// LedgerMetricsConfig configures LedgerMetrics
type LedgerMetricsConfig struct {
	Meter             metric.Meter
	Logger            *zap.Logger
	Levels            StockLevelProvider
	LowStockThreshold int64
}

// LedgerMetrics counts ledger operations and observes stock levels
type LedgerMetrics struct {
	operations *Counter
	moved      *Counter
	logger     *zap.Logger
}

// NewLedgerMetrics registers the ledger instruments on cfg.Meter
func NewLedgerMetrics(cfg LedgerMetricsConfig) (*LedgerMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	operations, err := NewCounter(cfg.Meter,
		"ledger_operations_total", "Ledger operations by outcome", "{operations}")
	if err != nil {
		return nil, err
	}
	moved, err := NewCounter(cfg.Meter,
		"ledger_quantity_moved_total", "Units moved by successful ledger operations", "{units}")
	if err != nil {
		return nil, err
	}
	m := &LedgerMetrics{operations: operations, moved: moved, logger: logger}

	if cfg.Levels != nil {
		if err := m.observeLevels(cfg.Meter, cfg.Levels, cfg.LowStockThreshold); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RecordLedgerOperation implements ledger.Recorder
func (m *LedgerMetrics) RecordLedgerOperation(ctx context.Context, op ledger.Operation, source stock.Source, quantity int64, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("operation", string(op)),
		attribute.String("stock_source", string(source)),
	}
	m.operations.Inc(ctx, append(attrs, attribute.String("outcome", Outcome(err)))...)
	if err == nil && quantity > 0 {
		m.moved.Add(ctx, quantity, attrs...)
	}
}

// Outcome labels an operation result by its domain error code
func Outcome(err error) string {
	if err == nil {
		return outcomeOK
	}
	var de *shared.DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return "error"
}

func (m *LedgerMetrics) observeLevels(meter metric.Meter, levels StockLevelProvider, threshold int64) error {
	onHand, err := meter.Int64ObservableGauge("ledger_stock_on_hand",
		metric.WithDescription("Units currently held"), metric.WithUnit("{units}"))
	if err != nil {
		return err
	}
	low, err := meter.Int64ObservableGauge("ledger_low_stock_holders",
		metric.WithDescription("Holders at or below the low stock threshold"), metric.WithUnit("{holders}"))
	if err != nil {
		return err
	}

	_, err = meter.RegisterCallback(func(ctx context.Context, o metric.Observer) error {
		for _, source := range []stock.Source{stock.SourceProduct, stock.SourceShop} {
			set := metric.WithAttributes(attribute.String("stock_source", string(source)))
			if total, err := levels.StockOnHand(ctx, source); err == nil {
				o.ObserveInt64(onHand, total, set)
			} else {
				m.logger.Warn("Failed to collect stock on hand", zap.String("source", string(source)), zap.Error(err))
			}
			if count, err := levels.LowStockCount(ctx, source, threshold); err == nil {
				o.ObserveInt64(low, count, set)
			} else {
				m.logger.Warn("Failed to collect low stock count", zap.String("source", string(source)), zap.Error(err))
			}
		}
		return nil
	}, onHand, low)
	return err
}
