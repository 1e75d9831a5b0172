package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"vantage/internal/api/handler/v1handler"
	"vantage/pkg/logger"
	"vantage/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})
	ctx := context.Background()

	res := h.NewError(ctx, errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})
	ctx := context.Background()

	// Pass the Kind sentinel directly
	res := h.NewError(ctx, serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})
	ctx := context.Background()

	err := serrors.With(serrors.ErrBadRequest, "Assessment cannot be modified in its current status")
	res := h.NewError(ctx, err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "Assessment cannot be modified in its current status", res.Response.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})
	ctx := context.Background()

	cause := errors.New("bad token")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "Could not validate credentials")
	res := h.NewError(ctx, err)
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
	// Should include provided message, not the cause
	require.Equal(t, "Could not validate credentials", res.Response.Message)
}

func TestNewError_WrappedWithFmt_Forbidden(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	err := fmt.Errorf("could not load response: %w",
		serrors.With(serrors.ErrForbidden, "Access denied. Response does not belong to your assessment"))
	res := h.NewError(context.Background(), err)
	require.Equal(t, 403, res.StatusCode)
	require.Equal(t, "Access denied. Response does not belong to your assessment", res.Response.Message)
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})
	ctx := context.Background()

	res := h.NewError(ctx, serrors.KindOnly(serrors.ErrInternal))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}
