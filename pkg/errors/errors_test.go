package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("mapping values are not allowed")
	err := NewParseError("stylekit.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "stylekit.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "stylekit.yaml")
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("theme.design", "unknown design language", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "theme.design", validationErr.Field)
	require.Equal(t, "validation error: theme.design: unknown design language", err.Error())
}

func TestBackendErrorIncludesBackendID(t *testing.T) {
	t.Parallel()

	err := NewBackendError("vr-headset", ErrUnknownBackend)

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	require.Equal(t, "vr-headset", backendErr.Backend)
	require.ErrorIs(t, err, ErrUnknownBackend)
	require.Equal(t, "backend error [vr-headset]: unknown backend", err.Error())
}

func TestNilErrorsAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var backendErr *BackendError
	require.Empty(t, parseErr.Error())
	require.NoError(t, backendErr.Unwrap())
}
