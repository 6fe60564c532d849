// Package response renders HTTP bodies for the places API.
package response

import (
	"net/http"

	deliverycontext "places/internal/delivery/context"
	domainerrors "places/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Error tags shared by handlers and the error middleware.
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeInternal        = "INTERNAL_ERROR"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error   string    `json:"error"`   // Machine-readable error tag, e.g. "PLACE_NOT_FOUND"
	Message string    `json:"message"` // Human-readable detail
	Meta    *MetaInfo `json:"meta"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Success writes data as the bare JSON body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Empty writes a status with no body.
func Empty(c echo.Context, statusCode int) error {
	return c.NoContent(statusCode)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BadRequest returns a 400 validation error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, CodeValidation, message)
}

// Unauthenticated returns a 401 error
func Unauthenticated(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, CodeUnauthenticated, message)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, CodeInternal, "Internal server error, please try again later")
}

// AppError renders a domain error. Details are only exposed for client errors
// other than 401 and 403.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	status := appErr.HTTPCode()

	message := appErr.Message()
	if status < http.StatusInternalServerError && status != http.StatusUnauthorized && status != http.StatusForbidden {
		message = appErr.Error()
	}

	code := appErr.ErrorCode()
	if status >= http.StatusInternalServerError {
		code = CodeInternal
	}

	return Error(c, status, code, message)
}

// HandleAppError renders domain errors and passes anything else to the error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
