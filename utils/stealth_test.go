package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPause(t *testing.T) {
	t.Run("zero delay returns immediately", func(t *testing.T) {
		assert.NoError(t, Pause(context.Background(), 0))
	})

	t.Run("waits the full delay", func(t *testing.T) {
		start := time.Now()
		assert.NoError(t, Pause(context.Background(), 20*time.Millisecond))
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("cancelled context stops the wait", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := Pause(ctx, time.Hour)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
