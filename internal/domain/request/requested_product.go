// Package request models products that staff ask to have stocked.
package request

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/stockledger/backend/internal/domain/shared"
)

// RequestedProduct is a wish-list entry owned by the user who created it
type RequestedProduct struct {
	shared.BaseEntity
	Product     string    `gorm:"type:varchar(200);not null" json:"product"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Quantity    int64     `gorm:"not null;default:1" json:"quantity"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
}

// TableName returns the table name for GORM
func (RequestedProduct) TableName() string {
	return "requested_products"
}

// NewRequestedProduct validates input; a zero quantity defaults to 1
func NewRequestedProduct(userID uuid.UUID, product, description string, quantity int64) (*RequestedProduct, error) {
	product = strings.TrimSpace(product)
	description = strings.TrimSpace(description)
	if product == "" || description == "" {
		return nil, shared.Validation("Please provide both product name and description")
	}
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, shared.Validation("Quantity must be at least 1")
	}
	return &RequestedProduct{
		BaseEntity:  shared.NewBaseEntity(),
		Product:     product,
		Description: description,
		Quantity:    quantity,
		UserID:      userID,
	}, nil
}

// Update carries optional changes; nil fields keep their value
type Update struct {
	Product     *string
	Description *string
	Quantity    *int64
}

// Apply validates and applies the update
func (r *RequestedProduct) Apply(u Update) error {
	if u.Product != nil {
		if strings.TrimSpace(*u.Product) == "" {
			return shared.Validation("Product name cannot be empty")
		}
		r.Product = strings.TrimSpace(*u.Product)
	}
	if u.Description != nil {
		if strings.TrimSpace(*u.Description) == "" {
			return shared.Validation("Description cannot be empty")
		}
		r.Description = strings.TrimSpace(*u.Description)
	}
	if u.Quantity != nil {
		if *u.Quantity < 1 {
			return shared.Validation("Quantity must be at least 1")
		}
		r.Quantity = *u.Quantity
	}
	r.Touch()
	return nil
}

// Repository persists requested products
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestedProduct, error)
	FindAll(ctx context.Context) ([]RequestedProduct, error)
	Create(ctx context.Context, r *RequestedProduct) error
	Save(ctx context.Context, r *RequestedProduct) error
	Delete(ctx context.Context, id uuid.UUID) error
}
