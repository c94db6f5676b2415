// Package ledger moves stock quantities between products, shop batches, and
// purchase and sale records without ever letting a holder go negative.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stockledger/backend/internal/domain/shared"
	"github.com/stockledger/backend/internal/domain/stock"
	"go.uber.org/zap"
)

// Operation names a ledger operation for metrics and logs
type Operation string

const (
	OpRecordPurchase Operation = "record_purchase"
	OpDeletePurchase Operation = "delete_purchase"
	OpTransferToShop Operation = "transfer_to_shop"
	OpRecordSale     Operation = "record_sale"
	OpEditSale       Operation = "edit_sale"
	OpDeleteSale     Operation = "delete_sale"
)

// Recorder observes completed ledger operations
type Recorder interface {
	RecordLedgerOperation(ctx context.Context, op Operation, source stock.Source, quantity int64, err error)
}

type nopRecorder struct{}

func (nopRecorder) RecordLedgerOperation(context.Context, Operation, stock.Source, int64, error) {}

// LedgerService implements the stock ledger operations
type LedgerService struct {
	scope        TransactionScope
	purchaseRepo stock.PurchaseRepository
	saleRepo     stock.SaleRepository
	source       stock.Source
	recorder     Recorder
	logger       *zap.Logger
}

// NewLedgerService creates a LedgerService selling from source
func NewLedgerService(
	scope TransactionScope,
	purchaseRepo stock.PurchaseRepository,
	saleRepo stock.SaleRepository,
	source stock.Source,
) *LedgerService {
	return &LedgerService{
		scope:        scope,
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
		source:       source,
		recorder:     nopRecorder{},
		logger:       zap.NewNop(),
	}
}

// SetRecorder sets the operation recorder
func (s *LedgerService) SetRecorder(r Recorder) {
	if r != nil {
		s.recorder = r
	}
}

// SetLogger sets the service logger
func (s *LedgerService) SetLogger(l *zap.Logger) {
	if l != nil {
		s.logger = l
	}
}

// StockSource returns the holder kind sales are made from
func (s *LedgerService) StockSource() stock.Source {
	return s.source
}

// RecordPurchase records an acquisition and adds its quantity to the product
func (s *LedgerService) RecordPurchase(ctx context.Context, req RecordPurchaseRequest) (result *stock.Purchase, err error) {
	defer func() {
		s.recorder.RecordLedgerOperation(ctx, OpRecordPurchase, stock.SourceProduct, req.Quantity, err)
	}()

	if err := stock.ValidateQuantity("Quantity", req.Quantity); err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByID(ctx, req.ProductID)
		if err != nil {
			return notFoundAs(err, "Product not found")
		}
		purchase, err := stock.NewPurchase(product, req.Quantity, req.BuyingPrice)
		if err != nil {
			return err
		}
		if err := repos.PurchaseRepo().Create(ctx, purchase); err != nil {
			return err
		}
		if err := repos.ProductRepo().Increment(ctx, product.ID, purchase.Quantity); err != nil {
			return notFoundAs(err, "Product not found")
		}
		result = purchase
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeletePurchase reverses a purchase. The product decrement is conditional: a
// purchase whose stock has already been moved on cannot be deleted.
func (s *LedgerService) DeletePurchase(ctx context.Context, id uuid.UUID) (result *DeleteResult, err error) {
	var qty int64
	defer func() { s.recorder.RecordLedgerOperation(ctx, OpDeletePurchase, stock.SourceProduct, qty, err) }()

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		purchase, err := repos.PurchaseRepo().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, "Purchase not found")
		}
		qty = purchase.Quantity

		adjusted := true
		_, err = repos.ProductRepo().Decrement(ctx, purchase.ProductID, purchase.Quantity)
		switch {
		case errors.Is(err, shared.ErrNotFound):
			adjusted = false
			s.logger.Warn("Deleting purchase of a removed product",
				zap.String("purchase_id", purchase.ID.String()),
				zap.String("product_id", purchase.ProductID.String()),
			)
		case errors.Is(err, shared.ErrInsufficientStock):
			return shared.InsufficientStock(fmt.Sprintf(
				"Cannot delete purchase: fewer than %d units of %s remain in stock", purchase.Quantity, purchase.ProductName))
		case err != nil:
			return err
		}

		if err := repos.PurchaseRepo().Delete(ctx, purchase.ID); err != nil {
			return err
		}
		result = &DeleteResult{ID: purchase.ID, StockAdjusted: adjusted}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// TransferToShop moves quantity out of a product into a new shop batch. Name
// and selling price of the batch are taken from the product.
func (s *LedgerService) TransferToShop(ctx context.Context, req TransferRequest) (result *TransferResult, err error) {
	defer func() {
		s.recorder.RecordLedgerOperation(ctx, OpTransferToShop, stock.SourceProduct, req.Quantity, err)
	}()

	if err := stock.ValidateQuantity("Quantity", req.Quantity); err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		products := repos.ProductRepo()
		product, err := products.FindByID(ctx, req.ProductID)
		if err != nil {
			return notFoundAs(err, "Product not found in the store")
		}
		if err := stock.EnsureAvailable(product, req.Quantity); err != nil {
			return err
		}
		shop, err := stock.NewShopFromTransfer(product, req.BatchNumber, req.Quantity, req.UserName)
		if err != nil {
			return err
		}

		remaining, depleted, err := withdraw(ctx, products, product.ID, req.Quantity)
		if err != nil {
			return err
		}
		if err := repos.ShopRepo().Create(ctx, shop); err != nil {
			return err
		}
		result = &TransferResult{Shop: shop, RemainingQuantity: remaining, ProductDepleted: depleted}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RecordSale sells from the configured stock holder, snapshotting its name and
// price onto the sale.
func (s *LedgerService) RecordSale(ctx context.Context, req RecordSaleRequest) (result *SaleResult, err error) {
	defer func() { s.recorder.RecordLedgerOperation(ctx, OpRecordSale, s.source, req.QuantitySold, err) }()

	if err := stock.ValidateQuantity("Quantity sold", req.QuantitySold); err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		holders := s.holders(repos)
		holder, err := holders.FindHolder(ctx, req.StockID)
		if err != nil {
			return notFoundAs(err, s.holderNotFoundMessage())
		}
		if err := stock.EnsureAvailable(holder, req.QuantitySold); err != nil {
			return err
		}
		sale, err := stock.NewSale(holder, req.QuantitySold, req.UserName)
		if err != nil {
			return err
		}

		remaining, depleted, err := withdraw(ctx, holders, holder.HolderID(), req.QuantitySold)
		if err != nil {
			return err
		}
		if err := repos.SaleRepo().Create(ctx, sale); err != nil {
			return err
		}
		result = &SaleResult{Sale: sale, RemainingQuantity: remaining, HolderDepleted: depleted}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// EditSale changes the quantity sold and moves the difference to or from the
// stock holder. Repeating the same edit is a no-op.
func (s *LedgerService) EditSale(ctx context.Context, id uuid.UUID, newQuantitySold int64) (result *stock.Sale, err error) {
	var moved int64
	defer func() { s.recorder.RecordLedgerOperation(ctx, OpEditSale, s.source, moved, err) }()

	if err := stock.ValidateQuantity("Quantity sold", newQuantitySold); err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		sale, err := repos.SaleRepo().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, "Sale not found")
		}
		if err := s.checkSource(sale); err != nil {
			return err
		}
		delta, err := sale.Resize(newQuantitySold)
		if err != nil {
			return err
		}
		if delta == 0 {
			result = sale
			return nil
		}
		moved = delta

		holders := s.holders(repos)
		if delta > 0 {
			if _, _, err := withdraw(ctx, holders, sale.StockID, delta); err != nil {
				if errors.Is(err, shared.ErrInsufficientStock) {
					return shared.InsufficientStock("Not enough stock available to update the sale")
				}
				return err
			}
		} else if err := holders.Increment(ctx, sale.StockID, -delta); err != nil {
			return notFoundAs(err, "Stock record for this sale no longer exists")
		}

		if err := repos.SaleRepo().UpdateQuantity(ctx, sale); err != nil {
			return err
		}
		result = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteSale removes a sale and returns its quantity to the stock holder,
// reviving a holder that the sale had depleted.
func (s *LedgerService) DeleteSale(ctx context.Context, id uuid.UUID) (result *DeleteResult, err error) {
	var qty int64
	defer func() { s.recorder.RecordLedgerOperation(ctx, OpDeleteSale, s.source, qty, err) }()

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		sale, err := repos.SaleRepo().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, "Sale not found")
		}
		if err := s.checkSource(sale); err != nil {
			return err
		}
		qty = sale.QuantitySold

		adjusted := true
		if err := s.holders(repos).Increment(ctx, sale.StockID, sale.QuantitySold); err != nil {
			if !errors.Is(err, shared.ErrNotFound) {
				return err
			}
			adjusted = false
			s.logger.Warn("Deleting sale whose stock record was removed",
				zap.String("sale_id", sale.ID.String()),
				zap.String("stock_id", sale.StockID.String()),
			)
		}

		if err := repos.SaleRepo().Delete(ctx, sale.ID); err != nil {
			return err
		}
		result = &DeleteResult{ID: sale.ID, StockAdjusted: adjusted}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetPurchase returns a purchase by id
func (s *LedgerService) GetPurchase(ctx context.Context, id uuid.UUID) (*stock.Purchase, error) {
	p, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Purchase not found")
	}
	return p, nil
}

// ListPurchases lists purchases, newest first
func (s *LedgerService) ListPurchases(ctx context.Context, filter shared.Filter) ([]stock.Purchase, error) {
	return s.purchaseRepo.FindAll(ctx, filter)
}

// GetSale returns a sale by id
func (s *LedgerService) GetSale(ctx context.Context, id uuid.UUID) (*stock.Sale, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Sale not found")
	}
	return sale, nil
}

// ListSales lists sales, newest first
func (s *LedgerService) ListSales(ctx context.Context, filter shared.Filter) ([]stock.Sale, error) {
	return s.saleRepo.FindAll(ctx, filter)
}

func (s *LedgerService) holders(repos TransactionalRepositories) stock.HolderRepository {
	if s.source == stock.SourceShop {
		return repos.ShopRepo()
	}
	return repos.ProductRepo()
}

func (s *LedgerService) holderNotFoundMessage() string {
	if s.source == stock.SourceShop {
		return "Shop item not found"
	}
	return "Product not found"
}

func (s *LedgerService) checkSource(sale *stock.Sale) error {
	if sale.StockSource != s.source {
		return shared.NewDomainError(shared.ErrStockSourceMismatch.Code, fmt.Sprintf(
			"Sale was recorded against %s stock but this deployment sells from %s stock", sale.StockSource, s.source))
	}
	return nil
}

// withdraw decrements a holder and removes it from the live set when it hits
// exactly zero.
func withdraw(ctx context.Context, holders stock.HolderRepository, id uuid.UUID, qty int64) (int64, bool, error) {
	remaining, err := holders.Decrement(ctx, id, qty)
	if err != nil {
		return 0, false, err
	}
	if remaining != 0 {
		return remaining, false, nil
	}
	if err := holders.Deplete(ctx, id); err != nil {
		return 0, false, err
	}
	return 0, true, nil
}

// notFoundAs replaces a generic NOT_FOUND with a resource specific message
func notFoundAs(err error, message string) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NotFound(message)
	}
	return err
}
