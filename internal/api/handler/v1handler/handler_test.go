package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"tenantfinder/internal/api/handler/v1handler"
	"tenantfinder/pkg/serrors"
)

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), errors.New("boom"))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := serrors.With(serrors.ErrBadRequest, "tenant identifier must not be empty")
	res := h.NewError(context.Background(), err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "tenant identifier must not be empty", res.Response.Message)
}

func TestNewError_WrappedKeepsMessageNotCause(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := fmt.Errorf("could not enqueue: %w",
		serrors.Wrap(serrors.ErrConflict, errors.New("duplicate key"), "discovery already exists"))
	res := h.NewError(context.Background(), err)
	require.Equal(t, 409, res.StatusCode)
	require.Equal(t, "discovery already exists", res.Response.Message)
}

func TestNewError_StatusMapping(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	tests := []struct {
		err    error
		status int
	}{
		{serrors.KindOnly(serrors.ErrRateLimited), 429},
		{serrors.KindOnly(serrors.ErrUnavailable), 503},
		{serrors.KindOnly(serrors.ErrTransient), 503},
		{serrors.KindOnly(serrors.ErrTimeout), 504},
		{fmt.Errorf("probe: %w", context.DeadlineExceeded), 504},
		{serrors.KindOnly(serrors.ErrInternal), 500},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			require.Equal(t, tt.status, h.NewError(context.Background(), tt.err).StatusCode)
		})
	}
}
