// Package report aggregates the ledger into period summaries.
package report

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockledger/backend/internal/domain/shared"
	"github.com/stockledger/backend/internal/domain/stock"
	"github.com/stockledger/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ArchiveStorage stores rendered reports and hands out download links
type ArchiveStorage interface {
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)
}

// Summary is the money view of a period
type Summary struct {
	From           time.Time       `json:"from"`
	To             time.Time       `json:"to"`
	SalesTotal     decimal.Decimal `json:"sales_total"`
	SalesCount     int             `json:"sales_count"`
	PurchasesTotal decimal.Decimal `json:"purchases_total"`
	PurchasesCount int             `json:"purchases_count"`
	Gross          decimal.Decimal `json:"gross"`
}

// ArchiveResult points at an archived report
type ArchiveResult struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Service builds summaries from sales and purchases
type Service struct {
	sales     stock.SaleRepository
	purchases stock.PurchaseRepository
	archive   ArchiveStorage
	keyPrefix string
	now       func() time.Time
	logger    *zap.Logger
}

// Option configures a Service
type Option func(*Service)

// WithArchive enables Archive using storage; keys are placed under prefix
func WithArchive(storage ArchiveStorage, prefix string) Option {
	return func(s *Service) {
		s.archive = storage
		s.keyPrefix = prefix
	}
}

// WithClock overrides the time source used for the default period
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a report service
func NewService(sales stock.SaleRepository, purchases stock.PurchaseRepository, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		sales:     sales,
		purchases: purchases,
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summary totals the period. A nil range means today.
func (s *Service) Summary(ctx context.Context, rng *shared.DateRange) (summary *Summary, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "report", "summary")
	defer func() { telemetry.EndSpan(span, err) }()

	period := s.period(rng)
	if !period.Valid() {
		return nil, shared.Validation("Start date must not be after end date")
	}

	var (
		sales     []stock.Sale
		purchases []stock.Purchase
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sales, err = s.sales.FindAll(gctx, shared.DefaultFilter().WithRange(period))
		return err
	})
	g.Go(func() error {
		var err error
		purchases, err = s.purchases.FindAll(gctx, shared.DefaultFilter().WithRange(period))
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to load report data", zap.Error(err))
		return nil, err
	}

	salesTotal := stock.SalesTotal(sales)
	purchasesTotal := stock.PurchasesTotal(purchases)
	return &Summary{
		From:           period.From,
		To:             period.To,
		SalesTotal:     salesTotal,
		SalesCount:     len(sales),
		PurchasesTotal: purchasesTotal,
		PurchasesCount: len(purchases),
		Gross:          salesTotal.Sub(purchasesTotal),
	}, nil
}

// SummaryPDF renders the period summary as a PDF document
func (s *Service) SummaryPDF(ctx context.Context, rng *shared.DateRange) ([]byte, *Summary, error) {
	summary, err := s.Summary(ctx, rng)
	if err != nil {
		return nil, nil, err
	}
	data, err := RenderPDF(summary)
	if err != nil {
		return nil, nil, err
	}
	return data, summary, nil
}

// Archive renders the summary, uploads it and returns a presigned link
func (s *Service) Archive(ctx context.Context, rng *shared.DateRange) (result *ArchiveResult, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "report", "archive")
	defer func() { telemetry.EndSpan(span, err) }()

	if s.archive == nil {
		return nil, shared.NewDomainError("STORAGE_DISABLED", "Report archiving is not configured")
	}
	data, summary, err := s.SummaryPDF(ctx, rng)
	if err != nil {
		return nil, err
	}

	key := path.Join(s.keyPrefix, fmt.Sprintf("summary_%s_%s_%d.pdf",
		summary.From.Format("20060102"),
		summary.To.Format("20060102"),
		s.now().Unix()))
	if err := s.archive.Upload(ctx, key, data, pdfContentType); err != nil {
		s.logger.Error("Failed to archive report", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	url, expiresAt, err := s.archive.GenerateDownloadURL(ctx, key, 0)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Report archived", zap.String("key", key), zap.Int("bytes", len(data)))
	return &ArchiveResult{Key: key, URL: url, ExpiresAt: expiresAt}, nil
}

func (s *Service) period(rng *shared.DateRange) shared.DateRange {
	if rng == nil {
		return shared.SingleDay(s.now())
	}
	return *rng
}
