package executor

import (
	"context"
	"fmt"
	"time"

	gfcontext "github.com/vnykmshr/goexec/pkg/common/context"
	"github.com/vnykmshr/goexec/pkg/common/cond"
	gferrors "github.com/vnykmshr/goexec/pkg/common/errors"
)

// Future is a handle to a submitted task. It can wait for the task to finish
// and cancel it. A Future is safe for concurrent use; any number of
// goroutines may wait on the same task.
type Future struct {
	t *task
}

func newFuture(t *task) *Future {
	return &Future{t: t}
}

// ID returns the task's unique identifier.
func (f *Future) ID() string {
	return f.t.id
}

// State returns the task's current state.
func (f *Future) State() TaskState {
	e := f.t.ex
	e.mu.Lock()
	defer e.mu.Unlock()
	return f.t.state
}

// Runs returns how many times the task's callback has completed.
func (f *Future) Runs() int {
	e := f.t.ex
	e.mu.Lock()
	defer e.mu.Unlock()
	return f.t.runs
}

// Canceled reports whether cancellation was requested, by Cancel or by Shutdown.
func (f *Future) Canceled() bool {
	e := f.t.ex
	e.mu.Lock()
	defer e.mu.Unlock()
	return f.t.canceled
}

// Deadline returns the time the task is, or was last, due to run.
func (f *Future) Deadline() time.Time {
	e := f.t.ex
	e.mu.Lock()
	defer e.mu.Unlock()
	return f.t.deadline
}

// Wait blocks until the task is finished and returns its outcome: nil, the
// error returned by the last run, or ErrCanceled when the task was canceled.
// For repeating tasks this means waiting until the repetition ends.
func (f *Future) Wait() error {
	e := f.t.ex
	e.mu.Lock()
	defer e.mu.Unlock()

	for f.t.state != TaskFinished {
		e.cond.Wait()
	}
	return f.t.resultLocked()
}

// WaitTimeout is like Wait but gives up after d. It reports false if the
// task had not finished by then.
func (f *Future) WaitTimeout(d time.Duration) (bool, error) {
	e := f.t.ex
	deadline := time.Now().Add(d)

	e.mu.Lock()
	defer e.mu.Unlock()

	for f.t.state != TaskFinished {
		if e.cond.WaitTimeout(time.Until(deadline)) == cond.TimedOut && f.t.state != TaskFinished {
			return false, nil
		}
	}
	return true, f.t.resultLocked()
}

// WaitContext is like Wait but returns early when ctx is done. The returned
// error then wraps both ErrTimeout and ctx.Err().
func (f *Future) WaitContext(ctx context.Context) error {
	e := f.t.ex
	stop := gfcontext.OnDone(ctx, func() {
		e.mu.Lock()
		e.cond.Broadcast()
		e.mu.Unlock()
	})
	defer stop()

	e.mu.Lock()
	defer e.mu.Unlock()

	for f.t.state != TaskFinished {
		if gfcontext.IsCanceled(ctx) {
			return fmt.Errorf("%w: %w", gferrors.ErrTimeout, ctx.Err())
		}
		e.cond.Wait()
	}
	return f.t.resultLocked()
}

// Cancel requests cancellation of the task. A queued task is removed and
// never runs. A running task has its context canceled and will not be
// rescheduled; Cancel does not wait for the callback to return.
// Cancel reports false if the task was already canceled or finished.
func (f *Future) Cancel() bool {
	e := f.t.ex
	e.mu.Lock()
	defer e.mu.Unlock()

	if !f.t.cancelLocked() {
		return false
	}
	e.log.Debugw("task canceled", "task", f.t.id)
	return true
}

func (f *Future) String() string {
	return fmt.Sprintf("Future(%s, %s)", f.t.id, f.State())
}
