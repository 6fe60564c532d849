package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
// UserID falls back to the subject claim when the token has no uid.
type Claims struct {
	UserID uuid.UUID `json:"uid,omitempty"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService validates the access tokens issued by the identity provider.
type TokenService interface {
	// ValidateToken parses the token and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
