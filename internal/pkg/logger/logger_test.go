package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Run("invalid level is rejected", func(t *testing.T) {
		err := Init("shouting")

		assert.Error(t, err)
	})

	t.Run("valid level initializes the global logger", func(t *testing.T) {
		err := Init("error")

		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("second init keeps the existing logger", func(t *testing.T) {
		require.NoError(t, Init("error"))
		first := log

		require.NoError(t, Init("debug"))

		assert.Same(t, first, log)
	})
}
