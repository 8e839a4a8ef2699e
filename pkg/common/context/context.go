// Package context holds small helpers shared by goexec's blocking calls.
package context

import (
	"context"
	"errors"
)

// IsCanceled returns true if the context has been canceled
func IsCanceled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// IsTimedOut returns true if the context ended because its deadline passed
func IsTimedOut(ctx context.Context) bool {
	return errors.Is(ctx.Err(), context.DeadlineExceeded)
}

// OnDone runs fn once ctx is done. The returned stop function detaches fn
// and reports whether it did so before fn started.
func OnDone(ctx context.Context, fn func()) (stop func() bool) {
	return context.AfterFunc(ctx, fn)
}
