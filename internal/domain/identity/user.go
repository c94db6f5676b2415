package identity

import (
	"regexp"
	"strings"

	"github.com/stockledger/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

var (
	emailRegex     = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	passwordLetter = regexp.MustCompile(`[a-zA-Z]`)
	passwordNumber = regexp.MustCompile(`[0-9]`)
)

// User is an account that can sign in to the back office
type User struct {
	shared.BaseEntity
	Name           string `gorm:"type:varchar(100);not null" json:"name"`
	Email          string `gorm:"type:varchar(200);not null;uniqueIndex" json:"email"`
	PasswordHash   string `gorm:"type:varchar(255);not null" json:"-"`
	Role           Role   `gorm:"type:varchar(20);not null;default:user" json:"role"`
	IsPrimaryAdmin bool   `gorm:"not null;default:false" json:"is_primary_admin"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a user with the plain user role
func NewUser(name, email, password string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot exceed 100 characters")
	}
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         RoleUser,
	}, nil
}

// NewPrimaryAdmin creates the undeletable super administrator
func NewPrimaryAdmin(name, email, password string) (*User, error) {
	u, err := NewUser(name, email, password)
	if err != nil {
		return nil, err
	}
	u.Role = RoleSuperAdmin
	u.IsPrimaryAdmin = true
	return u, nil
}

// ProfileUpdate carries optional profile changes; nil fields keep their value
type ProfileUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

// ApplyProfile validates and applies a profile update
func (u *User) ApplyProfile(p ProfileUpdate) error {
	if p.Name != nil && strings.TrimSpace(*p.Name) != "" {
		u.Name = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil && strings.TrimSpace(*p.Email) != "" {
		email := normalizeEmail(*p.Email)
		if err := validateEmail(email); err != nil {
			return err
		}
		u.Email = email
	}
	if p.Password != nil && *p.Password != "" {
		if err := u.SetPassword(*p.Password); err != nil {
			return err
		}
	}
	u.Touch()
	return nil
}

// SetPassword replaces the password hash
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = hash
	u.Touch()
	return nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// Principal returns the identity used for authorization decisions
func (u *User) Principal() Principal {
	return Principal{UserID: u.ID, Name: u.Name, Role: u.Role}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	if !passwordLetter.MatchString(password) || !passwordNumber.MatchString(password) {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must contain at least one letter and one number")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
