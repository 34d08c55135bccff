package repository

import (
	"context"
	"time"
)

// WithRetry runs an idempotent store read up to 1+retries times, backing
// off briefly between attempts. It stops early when the caller's context
// is done, so a client disconnect aborts the remaining attempts.
func WithRetry(ctx context.Context, retries int, op func(context.Context) error) error {
	var err error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * 100 * time.Millisecond):
			}
		}
		if err = op(ctx); err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return err
		}
	}
	return err
}
