package executor

import gferrors "github.com/vnykmshr/goexec/pkg/common/errors"

// Errors reported by executors and futures. They are the shared sentinels
// from pkg/common/errors, repeated here so callers need a single import.
var (
	ErrNotRunning     = gferrors.ErrNotRunning
	ErrAlreadyStarted = gferrors.ErrAlreadyStarted
	ErrCanceled       = gferrors.ErrCanceled
	ErrPanicked       = gferrors.ErrPanicked
	ErrAborted        = gferrors.ErrAborted
	ErrTimeout        = gferrors.ErrTimeout
)
