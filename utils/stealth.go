package utils

import (
	"context"
	"time"
)

// Pause sleeps for d, returning early with the context error if ctx is done.
// Delays between requests are fixed; there is no jitter or backoff.
func Pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
