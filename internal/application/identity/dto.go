package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/stockledger/backend/internal/domain/identity"
)

// RegisterInput contains the input for self-registration
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput contains the input for user login
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult contains the session token and the user it belongs to
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	TokenType string    `json:"token_type"`
	User      UserInfo  `json:"user"`
}

// LogoutInput identifies the token to revoke. An empty TokenJTI only clears
// the client side.
type LogoutInput struct {
	UserID   uuid.UUID
	TokenJTI string
	TokenTTL time.Duration
}

// UpdateProfileInput carries optional profile changes
type UpdateProfileInput struct {
	Name     *string
	Email    *string
	Password *string
}

// UserInfo is the public view of a user
type UserInfo struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Role           identity.Role `json:"role"`
	IsPrimaryAdmin bool          `json:"is_primary_admin"`
	CreatedAt      time.Time     `json:"created_at"`
}

// ToUserInfo converts a domain user to its public view
func ToUserInfo(u *identity.User) UserInfo {
	return UserInfo{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		IsPrimaryAdmin: u.IsPrimaryAdmin,
		CreatedAt:      u.CreatedAt,
	}
}
