// Package request handles customer product requests raised by staff.
package request

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stockledger/backend/internal/domain/identity"
	"github.com/stockledger/backend/internal/domain/request"
	"github.com/stockledger/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CreateRequest is the input of Create. A zero Quantity means 1.
type CreateRequest struct {
	Product     string
	Description string
	Quantity    int64
}

// UpdateRequest carries optional changes
type UpdateRequest struct {
	Product     *string
	Description *string
	Quantity    *int64
}

// Service handles requested products. Changes are limited to the creator
// and to principals holding requests:manage.
type Service struct {
	repo   request.Repository
	logger *zap.Logger
}

// NewService creates a new Service
func NewService(repo request.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create records a request owned by the caller
func (s *Service) Create(ctx context.Context, caller identity.Principal, req CreateRequest) (*request.RequestedProduct, error) {
	rp, err := request.NewRequestedProduct(caller.UserID, req.Product, req.Description, req.Quantity)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, rp); err != nil {
		return nil, err
	}
	return rp, nil
}

// List returns every request, newest first
func (s *Service) List(ctx context.Context) ([]request.RequestedProduct, error) {
	return s.repo.FindAll(ctx)
}

// Update changes a request; omitted fields keep their value
func (s *Service) Update(ctx context.Context, caller identity.Principal, id uuid.UUID, req UpdateRequest) (*request.RequestedProduct, error) {
	rp, err := s.loadForChange(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if err := rp.Apply(request.Update{
		Product:     req.Product,
		Description: req.Description,
		Quantity:    req.Quantity,
	}); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, rp); err != nil {
		return nil, err
	}
	return rp, nil
}

// Delete removes a request
func (s *Service) Delete(ctx context.Context, caller identity.Principal, id uuid.UUID) error {
	if _, err := s.loadForChange(ctx, caller, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Requested product deleted",
		zap.String("request_id", id.String()),
		zap.String("by", caller.UserID.String()))
	return nil
}

func (s *Service) loadForChange(ctx context.Context, caller identity.Principal, id uuid.UUID) (*request.RequestedProduct, error) {
	rp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NotFound("Requested product not found")
		}
		return nil, err
	}
	if d := identity.AuthorizeOwner(caller, rp.UserID, identity.CapRequestsManage); !d.Allowed {
		return nil, shared.Forbidden("Not authorized to modify this request")
	}
	return rp, nil
}
