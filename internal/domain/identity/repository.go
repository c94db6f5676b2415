package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository persists users
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsPrimaryAdmin(ctx context.Context) (bool, error)
	Create(ctx context.Context, user *User) error
	Save(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
