package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("wraps a plain error", func(t *testing.T) {
		cause := stderrors.New("connection refused")
		err := Wrap(cause, CodePlatformAPIError, "request failed")

		require.NotNil(t, err)
		assert.Equal(t, CodePlatformAPIError, err.Code)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "PLATFORM_API_ERROR")
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("preserves an existing AppError", func(t *testing.T) {
		inner := NewUserFacing(CodeObjectNotFound, "object not found", "check the name")
		err := Wrap(fmt.Errorf("fetch: %w", inner), CodeInternal, "outer")

		assert.Equal(t, CodeObjectNotFound, err.Code)
		assert.True(t, err.IsUserFacing)
	})

	t.Run("nil error yields nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, CodeInternal, "ignored"))
	})
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeCredentialsMissing, GetCode(New(CodeCredentialsMissing, "no creds")))
	assert.Equal(t, CodeUnknown, GetCode(stderrors.New("plain")))
	assert.True(t, Is(New(CodeSchemaRegistry, "bad"), CodeSchemaRegistry))
	assert.False(t, Is(stderrors.New("plain"), CodeSchemaRegistry))
}

func TestGetUserFacingMessage(t *testing.T) {
	t.Run("finds a user-facing error behind wrapping", func(t *testing.T) {
		inner := NewUserFacing(CodeCredentialsMissing, "credentials are not set", "export the env vars")
		outer := Wrap(fmt.Errorf("bootstrap: %w", inner), CodeInternal, "startup failed")

		msg, action, ok := GetUserFacingMessage(outer)
		assert.True(t, ok)
		assert.Equal(t, "credentials are not set", msg)
		assert.Equal(t, "export the env vars", action)
	})

	t.Run("falls back to a generic message", func(t *testing.T) {
		msg, _, ok := GetUserFacingMessage(New(CodeInternal, "nil pointer"))
		assert.False(t, ok)
		assert.Equal(t, "An unexpected error occurred.", msg)
	})
}
