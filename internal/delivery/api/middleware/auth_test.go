package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"places/internal/delivery/api/response"
	"places/internal/domain/service"
	mockService "places/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, uuid.UUID, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/places", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var userID uuid.UUID
	var called bool
	handler := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
		called = true
		userID, _ = GetUserID(c)

		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec, userID, called
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().ValidateToken("good-token").Return(&service.Claims{UserID: userID}, nil)

	rec, gotUserID, called := runAuthenticate(t, tokenSvc, "Bearer good-token")
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotUserID)
}

func TestAuthMiddleware_Authenticate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(*mockService.MockTokenService)
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic dXNlcjpwYXNz"},
		{name: "empty token", header: "Bearer "},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			rec, _, called := runAuthenticate(t, tokenSvc, tt.header)
			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "UNAUTHENTICATED", body.Error)
		})
	}
}
