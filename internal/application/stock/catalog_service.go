// Package stock manages the product and shop records that the ledger moves
// quantity between.
package stock

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stockledger/backend/internal/domain/shared"
	"github.com/stockledger/backend/internal/domain/stock"
	"go.uber.org/zap"
)

// CatalogService handles product and shop maintenance. Quantity moves between
// records go through the ledger service instead.
type CatalogService struct {
	productRepo stock.ProductRepository
	shopRepo    stock.ShopRepository
	logger      *zap.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(productRepo stock.ProductRepository, shopRepo stock.ShopRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		shopRepo:    shopRepo,
		logger:      logger,
	}
}

// CreateProduct creates a product with zero quantity
func (s *CatalogService) CreateProduct(ctx context.Context, req CreateProductRequest) (*stock.Product, error) {
	product, err := stock.NewProduct(req.Name, req.BuyingPrice, req.SellingPrice)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	s.logger.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name))
	return product, nil
}

// GetProduct returns a live product
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*stock.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// ListProducts lists live products
func (s *CatalogService) ListProducts(ctx context.Context, filter shared.Filter) ([]stock.Product, error) {
	return s.productRepo.FindAll(ctx, filter)
}

// UpdateProduct applies the given changes; omitted fields keep their value
func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*stock.Product, error) {
	if req.Quantity != nil {
		if err := stock.ValidateQuantity("Quantity", *req.Quantity); err != nil {
			return nil, err
		}
	}
	return s.productRepo.Update(ctx, id, stock.ProductUpdate{
		Name:         req.Name,
		Quantity:     req.Quantity,
		BuyingPrice:  req.BuyingPrice,
		SellingPrice: req.SellingPrice,
	})
}

// DeleteProduct removes a product permanently. Sales and purchases referencing
// it keep their snapshots.
func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}

// GetShop returns a live shop batch
func (s *CatalogService) GetShop(ctx context.Context, id uuid.UUID) (*stock.Shop, error) {
	shop, err := s.shopRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Shop item not found")
	}
	return shop, nil
}

// ListShops lists live shop batches
func (s *CatalogService) ListShops(ctx context.Context, filter shared.Filter) ([]stock.Shop, error) {
	return s.shopRepo.FindAll(ctx, filter)
}

// UpdateShop applies the given changes; omitted fields keep their value
func (s *CatalogService) UpdateShop(ctx context.Context, id uuid.UUID, req UpdateShopRequest) (*stock.Shop, error) {
	if req.Quantity != nil {
		if err := stock.ValidateQuantity("Quantity", *req.Quantity); err != nil {
			return nil, err
		}
	}
	shop, err := s.shopRepo.Update(ctx, id, stock.ShopUpdate{
		ProductName:  req.ProductName,
		BatchNumber:  req.BatchNumber,
		Quantity:     req.Quantity,
		SellingPrice: req.SellingPrice,
		UserName:     req.UserName,
	})
	if err != nil {
		return nil, notFoundAs(err, "Shop item not found")
	}
	return shop, nil
}

// DeleteShop removes a shop batch permanently
func (s *CatalogService) DeleteShop(ctx context.Context, id uuid.UUID) error {
	if err := s.shopRepo.Delete(ctx, id); err != nil {
		return notFoundAs(err, "Shop item not found")
	}
	s.logger.Info("Shop item deleted", zap.String("shop_id", id.String()))
	return nil
}

func notFoundAs(err error, message string) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NotFound(message)
	}
	return err
}
