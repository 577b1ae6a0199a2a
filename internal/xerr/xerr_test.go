package xerr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"stockdeck-api/internal/storage"
)

func TestHandlerAPIError(t *testing.T) {
	status, body := Handler(context.Background(), Invalid("validation failed", map[string]string{"name": "required"}))
	require.Equal(t, http.StatusBadRequest, status)

	apiErr, ok := body.(*APIError)
	require.True(t, ok)
	require.Equal(t, "validation failed", apiErr.Message)
	require.Equal(t, "required", apiErr.Fields["name"])
}

func TestHandlerStorageNotFound(t *testing.T) {
	status, _ := Handler(context.Background(), fmt.Errorf("watchlist 9: %w", storage.ErrNotFound))
	require.Equal(t, http.StatusNotFound, status)
}

func TestHandlerOpaqueInternal(t *testing.T) {
	status, body := Handler(context.Background(), errors.New("pq: connection refused"))
	require.Equal(t, http.StatusInternalServerError, status)

	apiErr, ok := body.(*APIError)
	require.True(t, ok)
	require.Equal(t, "internal server error", apiErr.Message, "internal causes never leak to clients")
}
