package chanx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecv(t *testing.T) {
	t.Run("receives a buffered value", func(t *testing.T) {
		ch := make(chan int, 1)
		ch <- 7

		v, ok := Recv(t.Context(), ch)

		assert.True(t, ok)
		assert.Equal(t, 7, v)
	})

	t.Run("closed channel", func(t *testing.T) {
		ch := make(chan int)
		close(ch)

		v, ok := Recv(t.Context(), ch)

		assert.False(t, ok)
		assert.Zero(t, v)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		v, ok := Recv(ctx, make(chan int))

		assert.False(t, ok)
		assert.Zero(t, v)
	})
}

func TestSend(t *testing.T) {
	t.Run("sends when there is room", func(t *testing.T) {
		ch := make(chan string, 1)

		ok := Send(t.Context(), ch, "head")

		assert.True(t, ok)
		assert.Equal(t, "head", <-ch)
	})

	t.Run("canceled context while blocked", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		ok := Send(ctx, make(chan string), "head")

		assert.False(t, ok)
	})
}
