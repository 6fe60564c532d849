// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"places/config"
	"places/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const accessTokenType = "access"

// Errors returned by ValidateToken.
var (
	ErrInvalidToken   = errors.New("invalid access token")
	ErrWrongTokenType = errors.New("token is not an access token")
)

// jwtService validates HS256 access tokens signed with the configured secret.
type jwtService struct {
	accessSecret []byte
	parser       *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// ValidateToken checks the signature and expiry of an access token and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Type != "" && claims.Type != accessTokenType {
		return nil, ErrWrongTokenType
	}

	if claims.UserID == uuid.Nil {
		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidToken, "subject is not a user id")
		}
		claims.UserID = userID
	}

	return claims, nil
}
