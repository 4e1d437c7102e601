package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUsesCatalogEntry(t *testing.T) {
	t.Parallel()

	de := New(NameNotFoundRoute)
	require.Equal(t, NameNotFoundRoute, de.Name)
	require.Equal(t, 1001, de.Code)
	require.Equal(t, http.StatusNotFound, de.StatusCode)
	require.NotEmpty(t, de.Message)
}

func TestNewUnknownNameDegradesToInternal(t *testing.T) {
	t.Parallel()

	de := New("NoSuchName")
	require.Equal(t, NameInternalError, de.Name)
	require.Equal(t, http.StatusInternalServerError, de.StatusCode)
}

func TestWrapKeepsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	de := Wrap(NameStoreFailure, cause)
	require.Equal(t, NameStoreFailure, de.Name)
	require.ErrorIs(t, de, cause)
}

func TestNewValidationOverridesMessage(t *testing.T) {
	t.Parallel()

	de := NewValidation("name is required")
	require.Equal(t, NameValidationFailed, de.Name)
	require.Equal(t, "name is required", de.Message)
	require.Equal(t, http.StatusBadRequest, de.StatusCode)
}

func TestToDomainError(t *testing.T) {
	t.Parallel()

	require.Nil(t, ToDomainError(nil))

	de := New(NameEmailNotFound)
	require.Same(t, de, ToDomainError(de))

	wrapped := ToDomainError(errors.New("driver exploded"))
	require.Equal(t, NameInternalError, wrapped.Name)
}

func TestTokenStatusCodes(t *testing.T) {
	t.Parallel()

	require.Equal(t, http.StatusForbidden, New(NameTokenMissing).StatusCode)
	require.Equal(t, http.StatusUnauthorized, New(NameTokenExpired).StatusCode)
	require.Equal(t, http.StatusForbidden, New(NameInvalidRefreshToken).StatusCode)
}
