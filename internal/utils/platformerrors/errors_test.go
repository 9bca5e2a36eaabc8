package platformerrors

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	ctx := context.WithValue(context.Background(), "requestID", "req-123")

	err := NewError(ctx, LayerDomain, ErrorTypeValidation, "item name is required", nil, "")
	require.NotNil(t, err)
	assert.Equal(t, LayerDomain, err.Layer)
	assert.Equal(t, ErrorTypeValidation, err.GetErrorType())
	assert.Equal(t, "req-123", err.GetRequestID())
	assert.NotEmpty(t, err.GetUUID())
	assert.Contains(t, err.Error(), "item name is required")
}

func TestAsErrorPreservesTypeAndUUID(t *testing.T) {
	ctx := context.Background()
	inner := NewError(ctx, LayerRepository, ErrorTypeNotFound, "trader not found", nil, "")

	wrapped := AsError(ctx, LayerHandler, inner, "trust rating")
	require.NotNil(t, wrapped)
	assert.Equal(t, ErrorTypeNotFound, wrapped.GetErrorType())
	assert.Equal(t, inner.GetUUID(), wrapped.GetUUID())
	assert.Equal(t, LayerHandler, wrapped.Layer)
	assert.True(t, errors.Is(wrapped, inner))
}

func TestAsErrorWrapsPlainErrors(t *testing.T) {
	ctx := context.Background()
	plain := errors.New("connection refused")

	wrapped := AsError(ctx, LayerRepository, plain, "load turns")
	require.NotNil(t, wrapped)
	assert.Equal(t, ErrorTypeInternal, wrapped.GetErrorType())
	assert.True(t, errors.Is(wrapped, plain))
}

func TestAsErrorNil(t *testing.T) {
	assert.Nil(t, AsError(context.Background(), LayerDomain, nil, "noop"))
}

func TestErrorTypeToHTTPStatus(t *testing.T) {
	cases := map[ErrorType]int{
		ErrorTypeNotFound:       http.StatusNotFound,
		ErrorTypeValidation:     http.StatusBadRequest,
		ErrorTypeConflict:       http.StatusConflict,
		ErrorTypeUnauthorized:   http.StatusUnauthorized,
		ErrorTypeForbidden:      http.StatusForbidden,
		ErrorTypeNotImplemented: http.StatusNotImplemented,
		ErrorTypeDatabaseError:  http.StatusInternalServerError,
		ErrorTypeExternal:       http.StatusBadGateway,
		ErrorTypeInternal:       http.StatusInternalServerError,
		ErrorType("unknown"):    http.StatusInternalServerError,
	}
	for errorType, want := range cases {
		assert.Equal(t, want, ErrorTypeToHTTPStatus(errorType), string(errorType))
	}
}

func TestIsErrorType(t *testing.T) {
	ctx := context.Background()
	err := NewError(ctx, LayerDomain, ErrorTypeValidation, "bad input", nil, "")

	assert.True(t, IsErrorType(err, ErrorTypeValidation))
	assert.False(t, IsErrorType(err, ErrorTypeNotFound))
	assert.False(t, IsErrorType(errors.New("plain"), ErrorTypeValidation))
	assert.False(t, IsErrorType(nil, ErrorTypeValidation))
}
