package resilience

import (
	"context"
	"time"
)

// RetryPolicy retries with linear backoff: attempt n waits n*Backoff.
type RetryPolicy struct {
	MaxRetries int
	Backoff    time.Duration
}

// Retry runs fn until it succeeds, retryable reports false, retries are
// exhausted or ctx is done. The last error is returned.
func Retry(ctx context.Context, policy RetryPolicy, retryable func(error) bool, fn func(context.Context) error) error {
	if policy.MaxRetries < 0 {
		policy.MaxRetries = 0
	}

	var err error
	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if retryable != nil && !retryable(err) {
			return err
		}
		if attempt == policy.MaxRetries {
			break
		}

		wait := time.Duration(attempt+1) * policy.Backoff
		if wait <= 0 {
			continue
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return err
}
