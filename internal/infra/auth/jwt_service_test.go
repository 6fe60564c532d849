package auth

import (
	"testing"
	"time"

	"places/config"
	"places/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T) service.TokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testAccessSecret

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	return jwtService
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_ValidateToken(t *testing.T) {
	jwtService := newTestJWTService(t)
	userID := uuid.New()

	tests := []struct {
		name   string
		claims jwt.Claims
	}{
		{
			name: "uid claim",
			claims: &service.Claims{
				UserID: userID,
				Type:   "access",
				RegisteredClaims: jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
			},
		},
		{
			name: "subject claim",
			claims: jwt.MapClaims{
				"sub":  userID.String(),
				"type": "access",
				"exp":  time.Now().Add(time.Hour).Unix(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), tt.claims)

			claims, err := jwtService.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
		})
	}
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := newTestJWTService(t)
	userID := uuid.New()
	valid := jwt.MapClaims{
		"sub":  userID.String(),
		"type": "access",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "garbage",
			token: "invalid.token.string",
		},
		{
			name:  "wrong secret",
			token: signToken(t, jwt.SigningMethodHS256, []byte("another_secret"), valid),
		},
		{
			name:  "wrong algorithm",
			token: signToken(t, jwt.SigningMethodHS512, []byte(testAccessSecret), valid),
		},
		{
			name: "expired",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), jwt.MapClaims{
				"sub": userID.String(),
				"exp": time.Now().Add(-time.Minute).Unix(),
			}),
		},
		{
			name: "missing expiry",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), jwt.MapClaims{
				"sub": userID.String(),
			}),
		},
		{
			name: "refresh token",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), jwt.MapClaims{
				"sub":  userID.String(),
				"type": "refresh",
				"exp":  time.Now().Add(time.Hour).Unix(),
			}),
		},
		{
			name: "subject is not a uuid",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), jwt.MapClaims{
				"sub": "alice",
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
