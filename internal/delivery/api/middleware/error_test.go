package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"places/internal/delivery/api/response"
	domainerrors "places/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "app error with details",
			err:         domainerrors.ErrValidationFailed.WithDetails("owner.type must be USER or GROUP"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_ERROR",
			wantMessage: "Request validation failed: owner.type must be USER or GROUP",
		},
		{
			name:        "forbidden hides details",
			err:         domainerrors.ErrUnauthorized.WithDetails("caller is not a member of the group"),
			wantStatus:  http.StatusForbidden,
			wantCode:    "UNAUTHORIZED",
			wantMessage: domainerrors.ErrUnauthorized.Message(),
		},
		{
			name:       "wrapped app error",
			err:        errors.Wrap(domainerrors.ErrPlaceNotFound, "lookup"),
			wantStatus: http.StatusNotFound,
			wantCode:   "PLACE_NOT_FOUND",
		},
		{
			name:       "database error",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("conn refused"), "failed"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
		{
			name:       "echo not found",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/places", nil), rec)

			NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error)
			assert.NotEmpty(t, body.Message)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, body.Message)
			}
			require.NotNil(t, body.Meta)
			assert.NotEmpty(t, body.Meta.RequestID)
		})
	}
}
