package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/stockledger/backend/internal/domain/identity"
	"github.com/stockledger/backend/internal/domain/shared"
	"github.com/stockledger/backend/internal/infrastructure/auth"
	"github.com/stockledger/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// UserService manages profiles and user administration
type UserService struct {
	userRepo  identity.UserRepository
	blacklist auth.TokenBlacklist
	logger    *zap.Logger
}

// NewUserService creates a new UserService. Deleting a user revokes their
// outstanding tokens through blacklist.
func NewUserService(userRepo identity.UserRepository, blacklist auth.TokenBlacklist, logger *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, blacklist: blacklist, logger: logger}
}

// GetProfile returns the caller's own profile
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	info := ToUserInfo(user)
	return &info, nil
}

// UpdateProfile changes the caller's name, email or password; omitted fields
// keep their value
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*UserInfo, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && strings.TrimSpace(*input.Email) != "" &&
		!strings.EqualFold(strings.TrimSpace(*input.Email), user.Email) {
		taken, err := s.userRepo.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, shared.NewDomainError(shared.ErrAlreadyExists.Code, "Email is already in use")
		}
	}

	if err := user.ApplyProfile(identity.ProfileUpdate{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	}); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	info := ToUserInfo(user)
	return &info, nil
}

// ListUsers returns all users
func (s *UserService) ListUsers(ctx context.Context) ([]UserInfo, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserInfo, 0, len(users))
	for i := range users {
		out = append(out, ToUserInfo(&users[i]))
	}
	return out, nil
}

// DeleteUser removes a user. Callers cannot delete themselves, and nobody can
// delete the primary admin.
func (s *UserService) DeleteUser(ctx context.Context, caller identity.Principal, id uuid.UUID) error {
	if caller.UserID == id {
		return shared.NewDomainError("CANNOT_DELETE_SELF", "You cannot delete your own account")
	}
	user, err := s.findUser(ctx, id)
	if err != nil {
		return err
	}
	if user.IsPrimaryAdmin {
		return shared.NewDomainError("CANNOT_DELETE_PRIMARY_ADMIN", "The primary admin cannot be deleted")
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.blacklist.AddUserTokensToBlacklist(ctx, id.String(), 0); err != nil {
		s.logger.Warn("Failed to revoke tokens of deleted user", zap.Error(err))
	}
	s.logger.Info("User deleted",
		zap.String("user_id", id.String()),
		zap.String("by", caller.UserID.String()))
	return nil
}

// EnsurePrimaryAdmin seeds the super administrator from configuration when
// none exists yet. An empty email disables seeding.
func (s *UserService) EnsurePrimaryAdmin(ctx context.Context, cfg config.PrimaryAdminConfig) error {
	if cfg.Email == "" {
		return nil
	}
	exists, err := s.userRepo.ExistsPrimaryAdmin(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	admin, err := identity.NewPrimaryAdmin(cfg.Name, cfg.Email, cfg.Password)
	if err != nil {
		return err
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return err
	}
	s.logger.Info("Primary admin created", zap.String("user_id", admin.ID.String()))
	return nil
}

func (s *UserService) findUser(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
