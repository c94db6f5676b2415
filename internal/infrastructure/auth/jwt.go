// Package auth issues and validates the session tokens used by the HTTP API.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stockledger/backend/internal/domain/identity"
	"github.com/stockledger/backend/internal/infrastructure/config"
)

// Common errors
var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidClaims    = errors.New("invalid token claims")
	ErrTokenNotYetValid = errors.New("token is not yet valid")
	ErrTokenBlacklisted = errors.New("token has been revoked")
)

// Claims carries the authenticated user's identity
type Claims struct {
	jwt.RegisteredClaims
	UserID string        `json:"user_id"`
	Name   string        `json:"name"`
	Role   identity.Role `json:"role"`
}

// Principal converts the claims into the domain's authorization subject
func (c *Claims) Principal() (identity.Principal, error) {
	id, err := uuid.Parse(c.UserID)
	if err != nil {
		return identity.Principal{}, ErrInvalidClaims
	}
	return identity.Principal{UserID: id, Name: c.Name, Role: c.Role}, nil
}

// Token is a signed session token
type Token struct {
	Value     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	TokenType string    `json:"token_type"`
}

// JWTService handles JWT token operations
type JWTService struct {
	secret     []byte
	expiration time.Duration
	issuer     string
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{
		secret:     []byte(cfg.Secret),
		expiration: cfg.Expiration,
		issuer:     cfg.Issuer,
	}
}

// Expiration returns the lifetime of issued tokens
func (s *JWTService) Expiration() time.Duration {
	return s.expiration
}

// Generate signs a session token for p
func (s *JWTService) Generate(p identity.Principal) (*Token, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiration)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   p.UserID.String(),
			Audience:  jwt.ClaimStrings{s.issuer},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: p.UserID.String(),
		Name:   p.Name,
		Role:   p.Role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}
	return &Token{Value: signed, ExpiresAt: expiresAt, TokenType: "Bearer"}, nil
}

// Validate parses tokenString and checks signature, lifetime and issuer
func (s *JWTService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithAudience(s.issuer))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, ErrTokenNotYetValid
		default:
			return nil, ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}
	if claims.UserID == "" || !claims.Role.Valid() {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}

// RemainingTTL returns how long the claims stay valid, at least one second
func (c *Claims) RemainingTTL() time.Duration {
	if c.ExpiresAt == nil {
		return time.Second
	}
	if ttl := time.Until(c.ExpiresAt.Time); ttl > time.Second {
		return ttl
	}
	return time.Second
}
