package request

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stockledger/backend/internal/domain/identity"
	"github.com/stockledger/backend/internal/domain/request"
	"github.com/stockledger/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (*request.RequestedProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.RequestedProduct), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context) ([]request.RequestedProduct, error) {
	args := m.Called(ctx)
	return args.Get(0).([]request.RequestedProduct), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, r *request.RequestedProduct) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRepository) Save(ctx context.Context, r *request.RequestedProduct) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	caller := identity.Principal{UserID: uuid.New(), Role: identity.RoleUser}

	t.Run("defaults quantity to one and records the owner", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, mock.AnythingOfType("*request.RequestedProduct")).Return(nil)
		svc := NewService(repo, zap.NewNop())

		rp, err := svc.Create(ctx, caller, CreateRequest{Product: "Yeast", Description: "500g"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), rp.Quantity)
		assert.Equal(t, caller.UserID, rp.UserID)
	})

	t.Run("requires product and description", func(t *testing.T) {
		svc := NewService(new(MockRepository), zap.NewNop())

		_, err := svc.Create(ctx, caller, CreateRequest{Product: "Yeast"})
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrValidation)
		assert.Equal(t, "Please provide both product name and description", err.Error())
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	owner := identity.Principal{UserID: uuid.New(), Role: identity.RoleUser}
	rp, err := request.NewRequestedProduct(owner.UserID, "Yeast", "500g", 2)
	require.NoError(t, err)

	tests := []struct {
		name    string
		caller  identity.Principal
		wantErr error
	}{
		{name: "owner", caller: owner},
		{name: "admin override", caller: identity.Principal{UserID: uuid.New(), Role: identity.RoleAdmin}},
		{name: "another user", caller: identity.Principal{UserID: uuid.New(), Role: identity.RoleUser}, wantErr: shared.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			repo.On("FindByID", ctx, rp.ID).Return(rp, nil)
			repo.On("Delete", ctx, rp.ID).Return(nil)
			svc := NewService(repo, zap.NewNop())

			err := svc.Delete(ctx, tt.caller, rp.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Delete", ctx, rp.ID)
				return
			}
			require.NoError(t, err)
			repo.AssertCalled(t, "Delete", ctx, rp.ID)
		})
	}

	t.Run("unknown id", func(t *testing.T) {
		repo := new(MockRepository)
		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		err := NewService(repo, zap.NewNop()).Delete(ctx, owner, id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	owner := identity.Principal{UserID: uuid.New(), Role: identity.RoleUser}
	rp, err := request.NewRequestedProduct(owner.UserID, "Yeast", "500g", 2)
	require.NoError(t, err)

	repo := new(MockRepository)
	repo.On("FindByID", ctx, rp.ID).Return(rp, nil)
	repo.On("Save", ctx, rp).Return(nil)
	svc := NewService(repo, zap.NewNop())

	qty := int64(5)
	updated, err := svc.Update(ctx, owner, rp.ID, UpdateRequest{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, int64(5), updated.Quantity)
	assert.Equal(t, "Yeast", updated.Product)
}
