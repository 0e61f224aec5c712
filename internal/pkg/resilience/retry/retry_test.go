package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	t.Run("succeeds on first attempt", func(t *testing.T) {
		r := New(WithDelay(time.Millisecond), WithMaxDelay(time.Millisecond))

		var calls int
		err := r.Execute(t.Context(), func() error {
			calls++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("recovers after transient failures", func(t *testing.T) {
		r := New(WithAttempts(3), WithDelay(time.Millisecond), WithMaxDelay(time.Millisecond))

		var calls int
		err := r.Execute(t.Context(), func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error when attempts are exhausted", func(t *testing.T) {
		r := New(WithAttempts(2), WithDelay(time.Millisecond), WithMaxDelay(time.Millisecond))

		lastErr := errors.New("still down")
		var calls int
		err := r.Execute(t.Context(), func() error {
			calls++
			return lastErr
		})

		require.Error(t, err)
		assert.Equal(t, 2, calls)
		assert.ErrorIs(t, err, lastErr)
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		r := New(WithAttempts(100), WithDelay(10*time.Millisecond))

		ctx, cancel := context.WithCancel(t.Context())

		var calls int
		err := r.Execute(ctx, func() error {
			calls++
			cancel()
			return errors.New("failing")
		})

		require.Error(t, err)
		assert.Less(t, calls, 100)
	})
}
