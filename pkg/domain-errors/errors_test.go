package domainerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodes(t *testing.T) {
	t.Run("new error carries code and message", func(t *testing.T) {
		err := New(CodeInvariantViolation, "status cannot change")
		assert.True(t, HasCode(err, CodeInvariantViolation))
		assert.Equal(t, "status cannot change", err.Error())
	})

	t.Run("wrap keeps cause reachable", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := Wrap(cause, CodeInternal, "failed to store application")
		require.Error(t, err)
		assert.True(t, Is(err, CodeInternal))
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "failed to store application: connection reset", err.Error())
	})

	t.Run("wrap of nil is nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, CodeInternal, "unused"))
	})

	t.Run("outermost code wins", func(t *testing.T) {
		inner := New(CodeNotFound, "missing")
		outer := Wrap(inner, CodeInternal, "load failed")
		assert.Equal(t, CodeInternal, CodeOf(outer))
		assert.False(t, HasCode(outer, CodeNotFound))
	})

	t.Run("plain errors have no code", func(t *testing.T) {
		assert.Equal(t, Code(""), CodeOf(errors.New("plain")))
	})
}
