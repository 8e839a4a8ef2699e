package executor

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"

	gferrors "github.com/vnykmshr/goexec/pkg/common/errors"
)

// BackoffRunnable wraps a Runnable with exponential backoff retry. A run
// counts as one attempt from the executor's point of view; retries happen
// inside it on the same worker. Validation errors are not retried; return
// backoff.Permanent(err) from the wrapped Runnable to stop early on others.
type BackoffRunnable struct {
	Runnable     Runnable
	MaxRetries   uint
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// Run implements the Runnable interface with backoff retry logic.
func (b BackoffRunnable) Run(ctx context.Context) error {
	eb := backoff.NewExponentialBackOff()
	if b.InitialDelay > 0 {
		eb.InitialInterval = b.InitialDelay
	}
	if b.MaxDelay > 0 {
		eb.MaxInterval = b.MaxDelay
	}
	eb.RandomizationFactor = 0

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := b.Runnable.Run(ctx)
		if gferrors.IsValidationError(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	}, backoff.WithBackOff(eb), backoff.WithMaxTries(b.MaxRetries+1))
	return err
}
