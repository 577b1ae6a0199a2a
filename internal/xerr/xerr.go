package xerr

import (
	"context"
	"errors"
	"net/http"

	"github.com/zeromicro/go-zero/core/logx"

	"stockdeck-api/internal/storage"
	"stockdeck-api/pkg/market"
)

// APIError carries an HTTP status plus the JSON body the client sees.
// Fields is populated only for validation failures.
type APIError struct {
	Status  int               `json:"-"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// NotFound builds a 404 error.
func NotFound(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message}
}

// Invalid builds a 400 error with per-field messages.
func Invalid(message string, fields map[string]string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message, Fields: fields}
}

// Internal builds a 500 error. The underlying cause stays in the logs.
func Internal(message string) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Message: message}
}

// Handler converts errors into status codes and JSON bodies for
// httpx.SetErrorHandlerCtx. Unrecognized errors become opaque 500s.
func Handler(ctx context.Context, err error) (int, interface{}) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status, apiErr
	}
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, market.ErrNotFound) {
		return http.StatusNotFound, &APIError{Message: err.Error()}
	}
	logx.WithContext(ctx).Errorf("unhandled error: %v", err)
	return http.StatusInternalServerError, &APIError{Message: "internal server error"}
}
